package memory

import (
	"time"

	"github.com/rpggio/fieldbook/internal/domain/appointment"
	"github.com/rpggio/fieldbook/internal/domain/client"
	"github.com/rpggio/fieldbook/internal/domain/invoice"
	"github.com/rpggio/fieldbook/internal/domain/project"
	"github.com/rpggio/fieldbook/internal/domain/proposal"
	"github.com/rpggio/fieldbook/internal/domain/signing"
)

// Seed holds the initial contents of the demo collections.
type Seed struct {
	Clients      []client.Client
	Projects     []project.Project
	Invoices     []invoice.Invoice
	Proposals    []proposal.Proposal
	Appointments []appointment.Appointment
}

// Fixtures returns the built-in demo dataset.
func Fixtures() *Seed {
	seeded := time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)

	return &Seed{
		Clients: []client.Client{
			{
				ID: 1, Name: "Hartley Residence", Email: "j.hartley@example.com",
				Phone: "555-0148", Address: "12 Alder Court", PropertySize: "0.4 acres",
				LastContact: "2025-01-03", Status: client.StatusActive,
				ProjectsCount: 2, TotalRevenue: 14250, CreatedAt: seeded,
			},
			{
				ID: 2, Name: "Birchwood HOA", Email: "board@birchwoodhoa.example.com",
				Phone: "555-0171", Address: "200 Birchwood Loop", PropertySize: "3.1 acres",
				Notes: "Quarterly maintenance contract", LastContact: "2024-12-18",
				Status: client.StatusActive, ProjectsCount: 1, TotalRevenue: 30600,
				CreatedAt: seeded,
			},
			{
				ID: 3, Name: "Moreno Dental Group", Email: "office@morenodental.example.com",
				Phone: "555-0115", Address: "88 Commerce Way", PropertySize: "0.2 acres",
				LastContact: "2024-10-02", Status: client.StatusInactive,
				ProjectsCount: 1, TotalRevenue: 4100, CreatedAt: seeded,
			},
		},
		Projects: []project.Project{
			{
				ID: 1, Name: "Backyard Renovation", Title: "Backyard Renovation",
				Description: "Full regrade, paver patio, and native planting beds.",
				ClientID:    1, Budget: 18000, ActualCost: 9400, Progress: 55,
				StartDate: "2025-01-10", EndDate: "2025-03-28",
				Status: project.StatusInProgress, CreatedAt: seeded,
			},
			{
				ID: 2, Name: "Common Area Refresh", Title: "Common Area Refresh",
				Description: "Replace entry plantings and repair irrigation zones 3-5.",
				ClientID:    2, Budget: 30600, ActualCost: 30600, Progress: 100,
				StartDate: "2024-09-02", EndDate: "2024-11-22",
				Status: project.StatusCompleted, CreatedAt: seeded,
			},
			{
				ID: 3, Name: "Street Frontage Planting", Title: "Street Frontage Planting",
				ClientID: 3, Budget: 5200, Progress: 0,
				StartDate: "2025-04-01", Status: project.StatusPlanning,
				Notes: "Waiting on city permit", CreatedAt: seeded,
			},
		},
		Invoices: []invoice.Invoice{
			{
				ID: 1, Name: "Backyard Renovation - Phase 1", InvoiceNumber: "INV-2025-001",
				ProjectID: 1, ClientID: 1, Subtotal: 8500, Tax: 680, Total: 9180,
				Status: invoice.StatusSent, IssueDate: "2025-01-20", DueDate: "2025-02-19",
				SigningStatus: signing.StatusUnsigned, CreatedAt: seeded,
			},
			{
				ID: 2, Name: "Common Area Refresh - Final", InvoiceNumber: "INV-2024-087",
				ProjectID: 2, ClientID: 2, Subtotal: 10200, Tax: 816, Total: 11016,
				Status: invoice.StatusPaid, IssueDate: "2024-11-25", DueDate: "2024-12-25",
				PaidDate: strPtr("2024-12-10"), SigningStatus: signing.StatusUnsigned,
				CreatedAt: seeded,
			},
			{
				ID: 3, Name: "Fall Cleanup", InvoiceNumber: "INV-2024-090",
				ClientID: 3, Subtotal: 950, Tax: 76, Total: 1026,
				Status: invoice.StatusOverdue, IssueDate: "2024-11-01", DueDate: "2024-12-01",
				SigningStatus: signing.StatusUnsigned, CreatedAt: seeded,
			},
		},
		Proposals: []proposal.Proposal{
			{
				ID: 1, Name: "Irrigation Overhaul", Title: "Irrigation Overhaul",
				Description: "Replace aging controllers and add drip zones to all beds.",
				ClientID:    2, Subtotal: 12400, Tax: 992, Total: 13392,
				Status: proposal.StatusPending, ValidUntil: "2025-02-28",
				SigningStatus: signing.StatusUnsigned, CreatedAt: seeded,
			},
			{
				ID: 2, Name: "Front Yard Xeriscape", Title: "Front Yard Xeriscape",
				Description: "Drought-tolerant redesign of the street-facing beds.",
				ClientID:    1, Subtotal: 6800, Tax: 544, Total: 7344,
				Status: proposal.StatusAccepted, ValidUntil: "2024-12-31",
				AcceptedDate:  strPtr("2024-12-02"),
				SigningStatus: signing.StatusUnsigned, CreatedAt: seeded,
			},
		},
		Appointments: []appointment.Appointment{
			{
				ID: 1, Name: "Site Walkthrough", Title: "Site Walkthrough",
				ClientID: 1, ProjectID: 1, Type: "consultation", Date: "2025-01-15",
				Duration: 60, AssignedCrew: "Crew A", Location: "12 Alder Court",
				Status: appointment.StatusCompleted, CreatedAt: seeded,
			},
			{
				ID: 2, Name: "Paver Delivery", Title: "Paver Delivery",
				ClientID: 1, ProjectID: 1, Type: "delivery", Date: "2025-02-03",
				Duration: 30, AssignedCrew: "Crew A", Location: "12 Alder Court",
				Status: appointment.StatusScheduled, CreatedAt: seeded,
			},
			{
				ID: 3, Name: "Spring Estimate", Title: "Spring Estimate",
				ClientID: 3, Type: "estimate", Date: "2025-03-12", Duration: 45,
				AssignedCrew: "Crew B", Location: "88 Commerce Way",
				Status: appointment.StatusScheduled, Notes: "Bring frontage sketches",
				CreatedAt: seeded,
			},
		},
	}
}

func strPtr(s string) *string { return &s }
