package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rpggio/fieldbook/internal/domain/client"
	"github.com/rpggio/fieldbook/internal/repository"
)

// ClientRepository implements client.Repository for SQLite
type ClientRepository struct {
	db *DB
}

// NewClientRepository creates a new ClientRepository
func NewClientRepository(db *DB) *ClientRepository {
	return &ClientRepository{db: db}
}

const clientColumns = `
	id, name, email, phone, address, property_size, notes,
	last_contact, status, projects_count, total_revenue, created_at
`

func scanClient(row interface{ Scan(...any) error }) (*client.Client, error) {
	var c client.Client
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.Phone,
		&c.Address,
		&c.PropertySize,
		&c.Notes,
		&c.LastContact,
		&c.Status,
		&c.ProjectsCount,
		&c.TotalRevenue,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetAll retrieves every client ordered by identifier.
func (r *ClientRepository) GetAll(ctx context.Context) ([]client.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var out []client.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return out, nil
}

// GetByID retrieves a client by identifier.
func (r *ClientRepository) GetByID(ctx context.Context, id int) (*client.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = ?`

	c, err := scanClient(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return c, nil
}

// Create inserts a client and assigns its identifier.
func (r *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	query := `
		INSERT INTO clients (
			name, email, phone, address, property_size, notes,
			last_contact, status, projects_count, total_revenue, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	res, err := r.db.ExecContext(ctx, query,
		c.Name,
		c.Email,
		c.Phone,
		c.Address,
		c.PropertySize,
		c.Notes,
		c.LastContact,
		c.Status,
		c.ProjectsCount,
		c.TotalRevenue,
		c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read client id: %w", err)
	}
	c.ID = int(id)
	return nil
}

// Update replaces the stored client with the same identifier.
func (r *ClientRepository) Update(ctx context.Context, c *client.Client) error {
	query := `
		UPDATE clients
		SET name = ?, email = ?, phone = ?, address = ?, property_size = ?,
		    notes = ?, last_contact = ?, status = ?, projects_count = ?,
		    total_revenue = ?
		WHERE id = ?
	`

	res, err := r.db.ExecContext(ctx, query,
		c.Name,
		c.Email,
		c.Phone,
		c.Address,
		c.PropertySize,
		c.Notes,
		c.LastContact,
		c.Status,
		c.ProjectsCount,
		c.TotalRevenue,
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	return requireRowAffected(res)
}

// Delete removes a client by identifier.
func (r *ClientRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return requireRowAffected(res)
}

// requireRowAffected translates a zero-row write into ErrNotFound.
func requireRowAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
