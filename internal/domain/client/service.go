package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rpggio/fieldbook/internal/repository"
	"github.com/rpggio/fieldbook/internal/validation"
)

// Service handles client business logic.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new client service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest describes a client creation request.
type CreateRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	PropertySize string `json:"property_size"`
	Notes        string `json:"notes"`
	LastContact  string `json:"last_contact"`
	Status       Status `json:"status"`
}

// UpdateRequest describes a partial client update.
type UpdateRequest struct {
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
	PropertySize *string `json:"property_size"`
	Notes        *string `json:"notes"`
	LastContact  *string `json:"last_contact"`
}

// GetAll returns every client.
func (s *Service) GetAll(ctx context.Context) ([]Client, error) {
	return s.repo.GetAll(ctx)
}

// Get returns a client by ID.
func (s *Service) Get(ctx context.Context, id int) (*Client, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("getting client: %w", err)
	}
	return c, nil
}

// Create validates and stores a new client. New clients start with zero
// projects and revenue regardless of the input.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Client, error) {
	if err := validation.NewError(ValidateForm(req.Name, req.Email, req.Notes)); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = StatusActive
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	c := &Client{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		PropertySize:  req.PropertySize,
		Notes:         req.Notes,
		LastContact:   req.LastContact,
		Status:        status,
		ProjectsCount: 0,
		TotalRevenue:  0,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	s.logger.Info("client created", "id", c.ID, "name", c.Name)
	return c, nil
}

// Update merges the given fields onto an existing client.
func (s *Service) Update(ctx context.Context, id int, req UpdateRequest) (*Client, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.Email != nil {
		updated.Email = *req.Email
	}
	if req.Phone != nil {
		updated.Phone = *req.Phone
	}
	if req.Address != nil {
		updated.Address = *req.Address
	}
	if req.PropertySize != nil {
		updated.PropertySize = *req.PropertySize
	}
	if req.Notes != nil {
		updated.Notes = *req.Notes
	}
	if req.LastContact != nil {
		updated.LastContact = *req.LastContact
	}

	if err := validation.NewError(ValidateForm(updated.Name, updated.Email, updated.Notes)); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("updating client: %w", err)
	}

	return &updated, nil
}

// UpdateStatus sets the client status.
func (s *Service) UpdateStatus(ctx context.Context, id int, status Status) (*Client, error) {
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
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("updating client status: %w", err)
	}

	return &updated, nil
}

// Delete removes a client permanently.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrClientNotFound
		}
		return fmt.Errorf("deleting client: %w", err)
	}

	s.logger.Info("client deleted", "id", id)
	return nil
}
