package normalize

import (
	"log/slog"

	"github.com/rpggio/fieldbook/internal/domain/appointment"
	"github.com/rpggio/fieldbook/internal/domain/client"
	"github.com/rpggio/fieldbook/internal/domain/invoice"
	"github.com/rpggio/fieldbook/internal/domain/project"
	"github.com/rpggio/fieldbook/internal/domain/proposal"
	"github.com/rpggio/fieldbook/internal/domain/signing"
)

// Client normalizes a raw client record. Returns nil when the identifier or
// name cannot be resolved.
func Client(raw map[string]any) *client.Client {
	id, ok := idField(raw, "Id", "id")
	if !ok {
		return nil
	}
	name := stringField(raw, "Name", "name")
	if name == "" {
		return nil
	}

	status := client.Status(stringField(raw, "status"))
	if !status.Valid() {
		status = client.StatusActive
	}

	return &client.Client{
		ID:            id,
		Name:          name,
		Email:         stringField(raw, "email"),
		Phone:         stringField(raw, "phone"),
		Address:       stringField(raw, "address"),
		PropertySize:  stringField(raw, "property_size", "propertySize"),
		Notes:         stringField(raw, "notes"),
		LastContact:   dateField(raw, "last_contact", "lastContact"),
		Status:        status,
		ProjectsCount: int(numberField(raw, 0, "projects_count", "projectsCount")),
		TotalRevenue:  numberField(raw, 0, "total_revenue", "totalRevenue"),
		CreatedAt:     timestampField(raw, "CreatedOn", "created_at", "createdAt"),
	}
}

// Project normalizes a raw project record. Returns nil when the identifier or
// title cannot be resolved.
func Project(raw map[string]any) *project.Project {
	id, ok := idField(raw, "Id", "id")
	if !ok {
		return nil
	}
	name := stringField(raw, "Name", "name", "title")
	title := stringField(raw, "title", "Name", "name")
	if name == "" && title == "" {
		return nil
	}

	status := project.Status(stringField(raw, "status"))
	if !status.Valid() {
		status = project.StatusPlanning
	}

	return &project.Project{
		ID:          id,
		Name:        name,
		Title:       title,
		Description: stringField(raw, "description"),
		ClientID:    intField(raw, "client_id", "clientId"),
		Budget:      numberField(raw, 0, "budget"),
		ActualCost:  numberField(raw, 0, "actual_cost", "actualCost"),
		Progress:    numberField(raw, 0, "progress"),
		StartDate:   dateField(raw, "start_date", "startDate"),
		EndDate:     dateField(raw, "end_date", "endDate"),
		Status:      status,
		Notes:       stringField(raw, "notes"),
		CreatedAt:   timestampField(raw, "CreatedOn", "created_at", "createdAt"),
	}
}

// Invoice normalizes a raw invoice record. Returns nil when the identifier
// cannot be resolved or neither a name nor an invoice number exists.
func Invoice(raw map[string]any) *invoice.Invoice {
	id, ok := idField(raw, "Id", "id")
	if !ok {
		return nil
	}
	name := stringField(raw, "Name", "name")
	number := stringField(raw, "invoice_number", "invoiceNumber")
	if name == "" && number == "" {
		return nil
	}

	status := invoice.Status(stringField(raw, "status"))
	if !status.Valid() {
		status = invoice.StatusDraft
	}
	signingStatus := signing.Status(stringField(raw, "signing_status", "signingStatus"))
	if !signingStatus.Valid() {
		signingStatus = signing.StatusUnsigned
	}
	token := optionalString(raw, "signing_token", "signingToken")

	return &invoice.Invoice{
		ID:            id,
		Name:          name,
		InvoiceNumber: number,
		ProjectID:     intField(raw, "project_id", "projectId"),
		ClientID:      intField(raw, "client_id", "clientId"),
		Subtotal:      numberField(raw, 0, "subtotal"),
		Tax:           numberField(raw, 0, "tax"),
		Total:         numberField(raw, 0, "total"),
		Status:        status,
		IssueDate:     dateField(raw, "issue_date", "issueDate"),
		DueDate:       dateField(raw, "due_date", "dueDate"),
		PaidDate:      optionalString(raw, "paid_date", "paidDate"),
		Notes:         stringField(raw, "notes"),
		SigningToken:  token,
		SigningLink:   linkForToken(raw, token),
		SigningStatus: signingStatus,
		CreatedAt:     timestampField(raw, "CreatedOn", "created_at", "createdAt"),
	}
}

// Proposal normalizes a raw proposal record. Returns nil when the identifier
// or title cannot be resolved.
func Proposal(raw map[string]any) *proposal.Proposal {
	id, ok := idField(raw, "Id", "id")
	if !ok {
		return nil
	}
	name := stringField(raw, "Name", "name", "title")
	title := stringField(raw, "title", "Name", "name")
	if name == "" && title == "" {
		return nil
	}

	status := proposal.Status(stringField(raw, "status"))
	if !status.Valid() {
		status = proposal.StatusPending
	}
	signingStatus := signing.Status(stringField(raw, "signing_status", "signingStatus"))
	if !signingStatus.Valid() {
		signingStatus = signing.StatusUnsigned
	}
	token := optionalString(raw, "signing_token", "signingToken")

	return &proposal.Proposal{
		ID:            id,
		Name:          name,
		Title:         title,
		Description:   stringField(raw, "description"),
		ClientID:      intField(raw, "client_id", "clientId"),
		Subtotal:      numberField(raw, 0, "subtotal"),
		Tax:           numberField(raw, 0, "tax"),
		Total:         numberField(raw, 0, "total"),
		Status:        status,
		ValidUntil:    dateField(raw, "valid_until", "validUntil"),
		AcceptedDate:  optionalString(raw, "accepted_date", "acceptedDate"),
		Notes:         stringField(raw, "notes"),
		SigningToken:  token,
		SigningLink:   linkForToken(raw, token),
		SigningStatus: signingStatus,
		CreatedAt:     timestampField(raw, "CreatedOn", "created_at", "createdAt"),
	}
}

// Appointment normalizes a raw appointment record. Returns nil when the
// identifier or title cannot be resolved.
func Appointment(raw map[string]any) *appointment.Appointment {
	id, ok := idField(raw, "Id", "id")
	if !ok {
		return nil
	}
	name := stringField(raw, "Name", "name", "title")
	title := stringField(raw, "title", "Name", "name")
	if name == "" && title == "" {
		return nil
	}

	status := appointment.Status(stringField(raw, "status"))
	if !status.Valid() {
		status = appointment.StatusScheduled
	}

	return &appointment.Appointment{
		ID:           id,
		Name:         name,
		Title:        title,
		ClientID:     intField(raw, "client_id", "clientId"),
		ProjectID:    intField(raw, "project_id", "projectId"),
		Type:         stringField(raw, "type"),
		Date:         dateField(raw, "date"),
		Duration:     int(numberField(raw, 0, "duration")),
		AssignedCrew: stringField(raw, "assigned_crew", "assignedCrew"),
		Location:     stringField(raw, "location"),
		Status:       status,
		Notes:        stringField(raw, "notes"),
		CreatedAt:    timestampField(raw, "CreatedOn", "created_at", "createdAt"),
	}
}

// linkForToken resolves a stored signing link, but only when the record also
// carries a token: a link is derived state and must never outlive its token.
// Token-without-link is left for the link generator to recompute.
func linkForToken(raw map[string]any, token *string) *string {
	if token == nil {
		return nil
	}
	return optionalString(raw, "signing_link", "signingLink")
}

// Batch runs a per-record normalizer over a batch, dropping records the
// normalizer rejects. Every drop is logged so callers can report
// partial-success counts; the survivors are returned with the dropped count.
func Batch[T any](logger *slog.Logger, kind string, raws []map[string]any, fn func(map[string]any) *T) ([]T, int) {
	out := make([]T, 0, len(raws))
	dropped := 0
	for i, raw := range raws {
		rec := fn(raw)
		if rec == nil {
			dropped++
			logger.Warn("dropping malformed record", "kind", kind, "index", i)
			continue
		}
		out = append(out, *rec)
	}
	return out, dropped
}
