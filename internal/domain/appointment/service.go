package appointment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/rpggio/fieldbook/internal/repository"
	"github.com/rpggio/fieldbook/internal/validation"
)

// Service handles appointment business logic.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new appointment service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest describes an appointment creation request.
type CreateRequest struct {
	Name         string               `json:"name"`
	Title        string               `json:"title"`
	ClientID     validation.FormValue `json:"client_id"`
	ProjectID    validation.FormValue `json:"project_id"`
	Type         string               `json:"type"`
	Date         string               `json:"date"`
	Duration     validation.FormValue `json:"duration"`
	AssignedCrew string               `json:"assigned_crew"`
	Location     string               `json:"location"`
	Status       Status               `json:"status"`
	Notes        string               `json:"notes"`
}

// UpdateRequest describes a partial appointment update.
type UpdateRequest struct {
	Name         *string `json:"name"`
	Title        *string `json:"title"`
	Type         *string `json:"type"`
	Date         *string `json:"date"`
	Duration     *int    `json:"duration"`
	AssignedCrew *string `json:"assigned_crew"`
	Location     *string `json:"location"`
	Notes        *string `json:"notes"`
}

// GetAll returns every appointment.
func (s *Service) GetAll(ctx context.Context) ([]Appointment, error) {
	return s.repo.GetAll(ctx)
}

// Get returns an appointment by ID.
func (s *Service) Get(ctx context.Context, id int) (*Appointment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("getting appointment: %w", err)
	}
	return a, nil
}

// GetByClient returns the appointments booked for a client.
func (s *Service) GetByClient(ctx context.Context, clientID int) ([]Appointment, error) {
	return s.repo.GetByClientID(ctx, clientID)
}

// GetByDate returns the appointments falling on a calendar date.
func (s *Service) GetByDate(ctx context.Context, date string) ([]Appointment, error) {
	return s.repo.GetByDate(ctx, date)
}

// Create validates and stores a new appointment.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Appointment, error) {
	title := req.Title
	if title == "" {
		title = req.Name
	}

	form := FormInput{
		Title:    title,
		ClientID: req.ClientID.String(),
		Date:     req.Date,
		Duration: req.Duration.String(),
		Notes:    req.Notes,
	}
	if err := validation.NewError(ValidateForm(form)); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = StatusScheduled
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	name := req.Name
	if name == "" {
		name = title
	}

	a := &Appointment{
		Name:         name,
		Title:        title,
		ClientID:     req.ClientID.Int(),
		ProjectID:    req.ProjectID.Int(),
		Type:         req.Type,
		Date:         req.Date,
		Duration:     req.Duration.Int(),
		AssignedCrew: req.AssignedCrew,
		Location:     req.Location,
		Status:       status,
		Notes:        req.Notes,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("creating appointment: %w", err)
	}

	s.logger.Info("appointment created", "id", a.ID, "title", a.Title, "date", a.Date)
	return a, nil
}

// Update merges the given fields onto an existing appointment.
func (s *Service) Update(ctx context.Context, id int, req UpdateRequest) (*Appointment, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.Title != nil {
		updated.Title = *req.Title
	}
	if req.Type != nil {
		updated.Type = *req.Type
	}
	if req.Date != nil {
		updated.Date = *req.Date
	}
	if req.Duration != nil {
		updated.Duration = *req.Duration
	}
	if req.AssignedCrew != nil {
		updated.AssignedCrew = *req.AssignedCrew
	}
	if req.Location != nil {
		updated.Location = *req.Location
	}
	if req.Notes != nil {
		updated.Notes = *req.Notes
	}

	form := FormInput{
		Title:    updated.Title,
		ClientID: strconv.Itoa(updated.ClientID),
		Date:     updated.Date,
		Duration: strconv.Itoa(updated.Duration),
		Notes:    updated.Notes,
	}
	if updated.Duration == 0 {
		form.Duration = ""
	}
	if err := validation.NewError(ValidateForm(form)); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("updating appointment: %w", err)
	}

	return &updated, nil
}

// UpdateStatus sets the appointment status.
func (s *Service) UpdateStatus(ctx context.Context, id int, status Status) (*Appointment, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	updated.Status = status

	if err := s.repo.Update(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("updating appointment status: %w", err)
	}

	return &updated, nil
}

// Delete removes an appointment permanently.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAppointmentNotFound
		}
		return fmt.Errorf("deleting appointment: %w", err)
	}

	s.logger.Info("appointment deleted", "id", id)
	return nil
}
