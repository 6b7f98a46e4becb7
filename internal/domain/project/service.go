package project

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

// Service handles project business logic.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new project service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest describes a project creation request.
type CreateRequest struct {
	Name        string               `json:"name"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	ClientID    validation.FormValue `json:"client_id"`
	Budget      validation.FormValue `json:"budget"`
	StartDate   string               `json:"start_date"`
	EndDate     string               `json:"end_date"`
	Notes       string               `json:"notes"`
}

// UpdateRequest describes a partial project update.
type UpdateRequest struct {
	Name        *string  `json:"name"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Budget      *float64 `json:"budget"`
	ActualCost  *float64 `json:"actual_cost"`
	Progress    *float64 `json:"progress"`
	StartDate   *string  `json:"start_date"`
	EndDate     *string  `json:"end_date"`
	Notes       *string  `json:"notes"`
}

// GetAll returns every project.
func (s *Service) GetAll(ctx context.Context) ([]Project, error) {
	return s.repo.GetAll(ctx)
}

// Get returns a project by ID.
func (s *Service) Get(ctx context.Context, id int) (*Project, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return p, nil
}

// GetByClient returns the projects belonging to a client.
func (s *Service) GetByClient(ctx context.Context, clientID int) ([]Project, error) {
	return s.repo.GetByClientID(ctx, clientID)
}

// Create validates and stores a new project. New projects start in planning
// with zero progress and cost.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Project, error) {
	title := req.Title
	if title == "" {
		title = req.Name
	}

	form := FormInput{
		Title:       title,
		ClientID:    req.ClientID.String(),
		Description: req.Description,
		Budget:      req.Budget.String(),
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Notes:       req.Notes,
	}
	if err := validation.NewError(ValidateForm(form)); err != nil {
		return nil, err
	}

	name := req.Name
	if name == "" {
		name = title
	}

	p := &Project{
		Name:        name,
		Title:       title,
		Description: req.Description,
		ClientID:    req.ClientID.Int(),
		Budget:      req.Budget.Float(),
		ActualCost:  0,
		Progress:    0,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      StatusPlanning,
		Notes:       req.Notes,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	s.logger.Info("project created", "id", p.ID, "title", p.Title)
	return p, nil
}

// Update merges the given fields onto an existing project.
func (s *Service) Update(ctx context.Context, id int, req UpdateRequest) (*Project, error) {
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
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.Budget != nil {
		updated.Budget = *req.Budget
	}
	if req.ActualCost != nil {
		updated.ActualCost = *req.ActualCost
	}
	if req.Progress != nil {
		updated.Progress = clampProgress(*req.Progress)
	}
	if req.StartDate != nil {
		updated.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		updated.EndDate = *req.EndDate
	}
	if req.Notes != nil {
		updated.Notes = *req.Notes
	}

	form := FormInput{
		Title:       updated.Title,
		ClientID:    strconv.Itoa(updated.ClientID),
		Description: updated.Description,
		Budget:      strconv.FormatFloat(updated.Budget, 'f', -1, 64),
		StartDate:   updated.StartDate,
		EndDate:     updated.EndDate,
		Notes:       updated.Notes,
	}
	if err := validation.NewError(ValidateForm(form)); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("updating project: %w", err)
	}

	return &updated, nil
}

// UpdateStatus sets the project status. Completing a project forces progress
// to 100.
func (s *Service) UpdateStatus(ctx context.Context, id int, status Status) (*Project, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	updated.Status = status
	if status == StatusCompleted {
		updated.Progress = 100
	}

	if err := s.repo.Update(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("updating project status: %w", err)
	}

	return &updated, nil
}

// Delete removes a project permanently.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("deleting project: %w", err)
	}

	s.logger.Info("project deleted", "id", id)
	return nil
}

func clampProgress(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
