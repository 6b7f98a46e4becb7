package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rpggio/fieldbook/internal/domain/appointment"
	"github.com/rpggio/fieldbook/internal/repository"
)

// AppointmentRepository implements appointment.Repository for SQLite
type AppointmentRepository struct {
	db *DB
}

// NewAppointmentRepository creates a new AppointmentRepository
func NewAppointmentRepository(db *DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

const appointmentColumns = `
	id, name, title, client_id, project_id, type, date, duration,
	assigned_crew, location, status, notes, created_at
`

func scanAppointment(row interface{ Scan(...any) error }) (*appointment.Appointment, error) {
	var a appointment.Appointment
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Title,
		&a.ClientID,
		&a.ProjectID,
		&a.Type,
		&a.Date,
		&a.Duration,
		&a.AssignedCrew,
		&a.Location,
		&a.Status,
		&a.Notes,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AppointmentRepository) queryAppointments(ctx context.Context, query string, args ...any) ([]appointment.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer rows.Close()

	var out []appointment.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan appointment: %w", err)
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return out, nil
}

// GetAll retrieves every appointment ordered by identifier.
func (r *AppointmentRepository) GetAll(ctx context.Context) ([]appointment.Appointment, error) {
	return r.queryAppointments(ctx, `SELECT `+appointmentColumns+` FROM appointments ORDER BY id`)
}

// GetByID retrieves an appointment by identifier.
func (r *AppointmentRepository) GetByID(ctx context.Context, id int) (*appointment.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = ?`

	a, err := scanAppointment(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return a, nil
}

// GetByClientID retrieves the appointments booked for a client.
func (r *AppointmentRepository) GetByClientID(ctx context.Context, clientID int) ([]appointment.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE client_id = ? ORDER BY id`
	return r.queryAppointments(ctx, query, clientID)
}

// GetByDate retrieves the appointments scheduled on an exact date.
func (r *AppointmentRepository) GetByDate(ctx context.Context, date string) ([]appointment.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE date = ? ORDER BY id`
	return r.queryAppointments(ctx, query, date)
}

// Create inserts an appointment and assigns its identifier.
func (r *AppointmentRepository) Create(ctx context.Context, a *appointment.Appointment) error {
	query := `
		INSERT INTO appointments (
			name, title, client_id, project_id, type, date, duration,
			assigned_crew, location, status, notes, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	res, err := r.db.ExecContext(ctx, query,
		a.Name,
		a.Title,
		a.ClientID,
		a.ProjectID,
		a.Type,
		a.Date,
		a.Duration,
		a.AssignedCrew,
		a.Location,
		a.Status,
		a.Notes,
		a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read appointment id: %w", err)
	}
	a.ID = int(id)
	return nil
}

// Update replaces the stored appointment with the same identifier.
func (r *AppointmentRepository) Update(ctx context.Context, a *appointment.Appointment) error {
	query := `
		UPDATE appointments
		SET name = ?, title = ?, client_id = ?, project_id = ?, type = ?,
		    date = ?, duration = ?, assigned_crew = ?, location = ?,
		    status = ?, notes = ?
		WHERE id = ?
	`

	res, err := r.db.ExecContext(ctx, query,
		a.Name,
		a.Title,
		a.ClientID,
		a.ProjectID,
		a.Type,
		a.Date,
		a.Duration,
		a.AssignedCrew,
		a.Location,
		a.Status,
		a.Notes,
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update appointment: %w", err)
	}
	return requireRowAffected(res)
}

// Delete removes an appointment by identifier.
func (r *AppointmentRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	return requireRowAffected(res)
}
