package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rpggio/fieldbook/internal/domain/proposal"
	"github.com/rpggio/fieldbook/internal/repository"
)

// ProposalRepository implements proposal.Repository for SQLite
type ProposalRepository struct {
	db *DB
}

// NewProposalRepository creates a new ProposalRepository
func NewProposalRepository(db *DB) *ProposalRepository {
	return &ProposalRepository{db: db}
}

const proposalColumns = `
	id, name, title, description, client_id, subtotal, tax, total,
	status, valid_until, accepted_date, notes,
	signing_token, signing_link, signing_status, link_created_at, signed_at,
	created_at
`

func scanProposal(row interface{ Scan(...any) error }) (*proposal.Proposal, error) {
	var p proposal.Proposal
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Title,
		&p.Description,
		&p.ClientID,
		&p.Subtotal,
		&p.Tax,
		&p.Total,
		&p.Status,
		&p.ValidUntil,
		&p.AcceptedDate,
		&p.Notes,
		&p.SigningToken,
		&p.SigningLink,
		&p.SigningStatus,
		&p.LinkCreatedAt,
		&p.SignedAt,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProposalRepository) queryProposals(ctx context.Context, query string, args ...any) ([]proposal.Proposal, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}
	defer rows.Close()

	var out []proposal.Proposal
	for rows.Next() {
		p, err := scanProposal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan proposal: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}
	return out, nil
}

// GetAll retrieves every proposal ordered by identifier.
func (r *ProposalRepository) GetAll(ctx context.Context) ([]proposal.Proposal, error) {
	return r.queryProposals(ctx, `SELECT `+proposalColumns+` FROM proposals ORDER BY id`)
}

// GetByID retrieves a proposal by identifier.
func (r *ProposalRepository) GetByID(ctx context.Context, id int) (*proposal.Proposal, error) {
	query := `SELECT ` + proposalColumns + ` FROM proposals WHERE id = ?`

	p, err := scanProposal(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get proposal: %w", err)
	}
	return p, nil
}

// GetByClientID retrieves the proposals prepared for a client.
func (r *ProposalRepository) GetByClientID(ctx context.Context, clientID int) ([]proposal.Proposal, error) {
	query := `SELECT ` + proposalColumns + ` FROM proposals WHERE client_id = ? ORDER BY id`
	return r.queryProposals(ctx, query, clientID)
}

// GetBySigningToken retrieves the proposal holding the exact token.
func (r *ProposalRepository) GetBySigningToken(ctx context.Context, token string) (*proposal.Proposal, error) {
	query := `SELECT ` + proposalColumns + ` FROM proposals WHERE signing_token = ?`

	p, err := scanProposal(r.db.QueryRowContext(ctx, query, token))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrInvalidToken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get proposal by token: %w", err)
	}
	return p, nil
}

// Create inserts a proposal and assigns its identifier.
func (r *ProposalRepository) Create(ctx context.Context, p *proposal.Proposal) error {
	query := `
		INSERT INTO proposals (
			name, title, description, client_id, subtotal, tax, total,
			status, valid_until, accepted_date, notes,
			signing_token, signing_link, signing_status, link_created_at, signed_at,
			created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	res, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.Title,
		p.Description,
		p.ClientID,
		p.Subtotal,
		p.Tax,
		p.Total,
		p.Status,
		p.ValidUntil,
		p.AcceptedDate,
		p.Notes,
		p.SigningToken,
		p.SigningLink,
		p.SigningStatus,
		p.LinkCreatedAt,
		p.SignedAt,
		p.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrInvalidInput
		}
		return fmt.Errorf("failed to create proposal: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read proposal id: %w", err)
	}
	p.ID = int(id)
	return nil
}

// Update replaces the stored proposal with the same identifier. A single
// statement writes the review and signing columns, so the paired status
// change lands atomically.
func (r *ProposalRepository) Update(ctx context.Context, p *proposal.Proposal) error {
	query := `
		UPDATE proposals
		SET name = ?, title = ?, description = ?, client_id = ?, subtotal = ?,
		    tax = ?, total = ?, status = ?, valid_until = ?, accepted_date = ?,
		    notes = ?, signing_token = ?, signing_link = ?, signing_status = ?,
		    link_created_at = ?, signed_at = ?
		WHERE id = ?
	`

	res, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.Title,
		p.Description,
		p.ClientID,
		p.Subtotal,
		p.Tax,
		p.Total,
		p.Status,
		p.ValidUntil,
		p.AcceptedDate,
		p.Notes,
		p.SigningToken,
		p.SigningLink,
		p.SigningStatus,
		p.LinkCreatedAt,
		p.SignedAt,
		p.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrInvalidInput
		}
		return fmt.Errorf("failed to update proposal: %w", err)
	}
	return requireRowAffected(res)
}

// Delete removes a proposal by identifier.
func (r *ProposalRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM proposals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete proposal: %w", err)
	}
	return requireRowAffected(res)
}
