package invoice

import (
	"time"

	"github.com/rpggio/fieldbook/internal/domain/signing"
)

// Status represents the billing state of an invoice
type Status string

const (
	StatusDraft   Status = "draft"
	StatusSent    Status = "sent"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
)

// Valid reports whether the status is one of the known values.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusPaid, StatusOverdue:
		return true
	}
	return false
}

// Invoice represents a bill issued to a client. The signing fields exist
// together or not at all: a link is never stored without its token.
type Invoice struct {
	ID            int            `json:"id"`
	Name          string         `json:"name"`
	InvoiceNumber string         `json:"invoice_number"`
	ProjectID     int            `json:"project_id,omitempty"`
	ClientID      int            `json:"client_id"`
	Subtotal      float64        `json:"subtotal"`
	Tax           float64        `json:"tax"`
	Total         float64        `json:"total"`
	Status        Status         `json:"status"`
	IssueDate     string         `json:"issue_date,omitempty"`
	DueDate       string         `json:"due_date,omitempty"`
	PaidDate      *string        `json:"paid_date"`
	Notes         string         `json:"notes,omitempty"`
	SigningToken  *string        `json:"signing_token,omitempty"`
	SigningLink   *string        `json:"signing_link,omitempty"`
	SigningStatus signing.Status `json:"signing_status"`
	LinkCreatedAt *time.Time     `json:"link_created_at,omitempty"`
	SignedAt      *time.Time     `json:"signed_at,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}
