package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rpggio/fieldbook/internal/domain/invoice"
	"github.com/rpggio/fieldbook/internal/repository"
)

// InvoiceRepository implements invoice.Repository for SQLite
type InvoiceRepository struct {
	db *DB
}

// NewInvoiceRepository creates a new InvoiceRepository
func NewInvoiceRepository(db *DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

const invoiceColumns = `
	id, name, invoice_number, project_id, client_id, subtotal, tax, total,
	status, issue_date, due_date, paid_date, notes,
	signing_token, signing_link, signing_status, link_created_at, signed_at,
	created_at
`

func scanInvoice(row interface{ Scan(...any) error }) (*invoice.Invoice, error) {
	var inv invoice.Invoice
	err := row.Scan(
		&inv.ID,
		&inv.Name,
		&inv.InvoiceNumber,
		&inv.ProjectID,
		&inv.ClientID,
		&inv.Subtotal,
		&inv.Tax,
		&inv.Total,
		&inv.Status,
		&inv.IssueDate,
		&inv.DueDate,
		&inv.PaidDate,
		&inv.Notes,
		&inv.SigningToken,
		&inv.SigningLink,
		&inv.SigningStatus,
		&inv.LinkCreatedAt,
		&inv.SignedAt,
		&inv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InvoiceRepository) queryInvoices(ctx context.Context, query string, args ...any) ([]invoice.Invoice, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	var out []invoice.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		out = append(out, *inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return out, nil
}

// GetAll retrieves every invoice ordered by identifier.
func (r *InvoiceRepository) GetAll(ctx context.Context) ([]invoice.Invoice, error) {
	return r.queryInvoices(ctx, `SELECT `+invoiceColumns+` FROM invoices ORDER BY id`)
}

// GetByID retrieves an invoice by identifier.
func (r *InvoiceRepository) GetByID(ctx context.Context, id int) (*invoice.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = ?`

	inv, err := scanInvoice(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	return inv, nil
}

// GetByClientID retrieves the invoices issued to a client.
func (r *InvoiceRepository) GetByClientID(ctx context.Context, clientID int) ([]invoice.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE client_id = ? ORDER BY id`
	return r.queryInvoices(ctx, query, clientID)
}

// GetBySigningToken retrieves the invoice holding the exact token.
func (r *InvoiceRepository) GetBySigningToken(ctx context.Context, token string) (*invoice.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE signing_token = ?`

	inv, err := scanInvoice(r.db.QueryRowContext(ctx, query, token))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrInvalidToken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice by token: %w", err)
	}
	return inv, nil
}

// Create inserts an invoice and assigns its identifier.
func (r *InvoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		INSERT INTO invoices (
			name, invoice_number, project_id, client_id, subtotal, tax, total,
			status, issue_date, due_date, paid_date, notes,
			signing_token, signing_link, signing_status, link_created_at, signed_at,
			created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	res, err := r.db.ExecContext(ctx, query,
		inv.Name,
		inv.InvoiceNumber,
		inv.ProjectID,
		inv.ClientID,
		inv.Subtotal,
		inv.Tax,
		inv.Total,
		inv.Status,
		inv.IssueDate,
		inv.DueDate,
		inv.PaidDate,
		inv.Notes,
		inv.SigningToken,
		inv.SigningLink,
		inv.SigningStatus,
		inv.LinkCreatedAt,
		inv.SignedAt,
		inv.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrInvalidInput
		}
		return fmt.Errorf("failed to create invoice: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read invoice id: %w", err)
	}
	inv.ID = int(id)
	return nil
}

// Update replaces the stored invoice with the same identifier. A single
// statement writes the billing and signing columns, so the paired status
// change lands atomically.
func (r *InvoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		UPDATE invoices
		SET name = ?, invoice_number = ?, project_id = ?, client_id = ?,
		    subtotal = ?, tax = ?, total = ?, status = ?, issue_date = ?,
		    due_date = ?, paid_date = ?, notes = ?, signing_token = ?,
		    signing_link = ?, signing_status = ?, link_created_at = ?,
		    signed_at = ?
		WHERE id = ?
	`

	res, err := r.db.ExecContext(ctx, query,
		inv.Name,
		inv.InvoiceNumber,
		inv.ProjectID,
		inv.ClientID,
		inv.Subtotal,
		inv.Tax,
		inv.Total,
		inv.Status,
		inv.IssueDate,
		inv.DueDate,
		inv.PaidDate,
		inv.Notes,
		inv.SigningToken,
		inv.SigningLink,
		inv.SigningStatus,
		inv.LinkCreatedAt,
		inv.SignedAt,
		inv.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrInvalidInput
		}
		return fmt.Errorf("failed to update invoice: %w", err)
	}
	return requireRowAffected(res)
}

// Delete removes an invoice by identifier.
func (r *InvoiceRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM invoices WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	return requireRowAffected(res)
}
