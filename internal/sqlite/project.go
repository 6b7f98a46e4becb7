package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rpggio/fieldbook/internal/domain/project"
	"github.com/rpggio/fieldbook/internal/repository"
)

// ProjectRepository implements project.Repository for SQLite
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `
	id, name, title, description, client_id, budget, actual_cost,
	progress, start_date, end_date, status, notes, created_at
`

func scanProject(row interface{ Scan(...any) error }) (*project.Project, error) {
	var p project.Project
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Title,
		&p.Description,
		&p.ClientID,
		&p.Budget,
		&p.ActualCost,
		&p.Progress,
		&p.StartDate,
		&p.EndDate,
		&p.Status,
		&p.Notes,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) queryProjects(ctx context.Context, query string, args ...any) ([]project.Project, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var out []project.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return out, nil
}

// GetAll retrieves every project ordered by identifier.
func (r *ProjectRepository) GetAll(ctx context.Context) ([]project.Project, error) {
	return r.queryProjects(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY id`)
}

// GetByID retrieves a project by identifier.
func (r *ProjectRepository) GetByID(ctx context.Context, id int) (*project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`

	p, err := scanProject(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// GetByClientID retrieves the projects belonging to a client.
func (r *ProjectRepository) GetByClientID(ctx context.Context, clientID int) ([]project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE client_id = ? ORDER BY id`
	return r.queryProjects(ctx, query, clientID)
}

// Create inserts a project and assigns its identifier.
func (r *ProjectRepository) Create(ctx context.Context, p *project.Project) error {
	query := `
		INSERT INTO projects (
			name, title, description, client_id, budget, actual_cost,
			progress, start_date, end_date, status, notes, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	res, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.Title,
		p.Description,
		p.ClientID,
		p.Budget,
		p.ActualCost,
		p.Progress,
		p.StartDate,
		p.EndDate,
		p.Status,
		p.Notes,
		p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read project id: %w", err)
	}
	p.ID = int(id)
	return nil
}

// Update replaces the stored project with the same identifier.
func (r *ProjectRepository) Update(ctx context.Context, p *project.Project) error {
	query := `
		UPDATE projects
		SET name = ?, title = ?, description = ?, client_id = ?, budget = ?,
		    actual_cost = ?, progress = ?, start_date = ?, end_date = ?,
		    status = ?, notes = ?
		WHERE id = ?
	`

	res, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.Title,
		p.Description,
		p.ClientID,
		p.Budget,
		p.ActualCost,
		p.Progress,
		p.StartDate,
		p.EndDate,
		p.Status,
		p.Notes,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	return requireRowAffected(res)
}

// Delete removes a project by identifier.
func (r *ProjectRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return requireRowAffected(res)
}
