package proposal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rpggio/fieldbook/internal/domain/signing"
	"github.com/rpggio/fieldbook/internal/repository"
	"github.com/rpggio/fieldbook/internal/validation"
)

// Service handles proposal business logic, including the signing-link
// lifecycle.
type Service struct {
	repo    Repository
	baseURL string
	logger  *slog.Logger
}

// NewService creates a new proposal service. baseURL is the public origin
// signing links are minted under.
func NewService(repo Repository, baseURL string, logger *slog.Logger) *Service {
	return &Service{repo: repo, baseURL: baseURL, logger: logger}
}

// CreateRequest describes a proposal creation request.
type CreateRequest struct {
	Name        string               `json:"name"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	ClientID    validation.FormValue `json:"client_id"`
	Subtotal    validation.FormValue `json:"subtotal"`
	Tax         validation.FormValue `json:"tax"`
	Total       validation.FormValue `json:"total"`
	ValidUntil  string               `json:"valid_until"`
	Notes       string               `json:"notes"`
}

// UpdateRequest describes a partial proposal update.
type UpdateRequest struct {
	Name        *string  `json:"name"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Subtotal    *float64 `json:"subtotal"`
	Tax         *float64 `json:"tax"`
	Total       *float64 `json:"total"`
	ValidUntil  *string  `json:"valid_until"`
	Notes       *string  `json:"notes"`
}

// LinkResult is the outcome of generating a signing link.
type LinkResult struct {
	SigningLink  string    `json:"signing_link"`
	SigningToken string    `json:"signing_token"`
	Proposal     *Proposal `json:"proposal"`
}

// GetAll returns every proposal.
func (s *Service) GetAll(ctx context.Context) ([]Proposal, error) {
	return s.repo.GetAll(ctx)
}

// Get returns a proposal by ID.
func (s *Service) Get(ctx context.Context, id int) (*Proposal, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProposalNotFound
		}
		return nil, fmt.Errorf("getting proposal: %w", err)
	}
	return p, nil
}

// GetByClient returns the proposals sent to a client.
func (s *Service) GetByClient(ctx context.Context, clientID int) ([]Proposal, error) {
	return s.repo.GetByClientID(ctx, clientID)
}

// Create validates and stores a new proposal. New proposals start pending.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Proposal, error) {
	title := req.Title
	if title == "" {
		title = req.Name
	}

	form := FormInput{
		Title:       title,
		ClientID:    req.ClientID.String(),
		Description: req.Description,
		Subtotal:    req.Subtotal.String(),
		Tax:         req.Tax.String(),
		Total:       req.Total.String(),
		ValidUntil:  req.ValidUntil,
		Notes:       req.Notes,
	}
	if err := validation.NewError(ValidateForm(form)); err != nil {
		return nil, err
	}

	name := req.Name
	if name == "" {
		name = title
	}

	p := &Proposal{
		Name:          name,
		Title:         title,
		Description:   req.Description,
		ClientID:      req.ClientID.Int(),
		Subtotal:      req.Subtotal.Float(),
		Tax:           req.Tax.Float(),
		Total:         req.Total.Float(),
		Status:        StatusPending,
		ValidUntil:    req.ValidUntil,
		AcceptedDate:  nil,
		Notes:         req.Notes,
		SigningStatus: signing.StatusUnsigned,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("creating proposal: %w", err)
	}

	s.logger.Info("proposal created", "id", p.ID, "title", p.Title)
	return p, nil
}

// Update merges the given fields onto an existing proposal.
func (s *Service) Update(ctx context.Context, id int, req UpdateRequest) (*Proposal, error) {
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
	if req.Subtotal != nil {
		updated.Subtotal = *req.Subtotal
	}
	if req.Tax != nil {
		updated.Tax = *req.Tax
	}
	if req.Total != nil {
		updated.Total = *req.Total
	}
	if req.ValidUntil != nil {
		updated.ValidUntil = *req.ValidUntil
	}
	if req.Notes != nil {
		updated.Notes = *req.Notes
	}

	form := FormInput{
		Title:       updated.Title,
		ClientID:    fmt.Sprintf("%d", updated.ClientID),
		Description: updated.Description,
		Subtotal:    fmt.Sprintf("%g", updated.Subtotal),
		Tax:         fmt.Sprintf("%g", updated.Tax),
		Total:       fmt.Sprintf("%g", updated.Total),
		ValidUntil:  updated.ValidUntil,
		Notes:       updated.Notes,
	}
	if err := validation.NewError(ValidateForm(form)); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProposalNotFound
		}
		return nil, fmt.Errorf("updating proposal: %w", err)
	}

	return &updated, nil
}

// UpdateStatus sets the proposal status. Accepting a proposal stamps the
// accepted date.
func (s *Service) UpdateStatus(ctx context.Context, id int, status Status) (*Proposal, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	updated.Status = status
	if status == StatusAccepted && updated.AcceptedDate == nil {
		accepted := time.Now().Format("2006-01-02")
		updated.AcceptedDate = &accepted
	}

	if err := s.repo.Update(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProposalNotFound
		}
		return nil, fmt.Errorf("updating proposal status: %w", err)
	}

	return &updated, nil
}

// GenerateSigningLink mints a signing token and public link for a proposal.
// It is idempotent: an existing link is returned unchanged rather than
// re-minted, so previously distributed links stay valid.
func (s *Service) GenerateSigningLink(ctx context.Context, id int) (*LinkResult, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if current.SigningToken != nil {
		// The link is derived from the token, never trusted from storage:
		// imported records may carry a token without a link, or a link built
		// against another deployment's base URL.
		link := signing.Link(s.baseURL, signing.KindProposal, *current.SigningToken)
		if current.SigningLink == nil || *current.SigningLink != link {
			updated := *current
			updated.SigningLink = &link
			if updated.LinkCreatedAt == nil {
				now := time.Now()
				updated.LinkCreatedAt = &now
			}
			if err := s.repo.Update(ctx, &updated); err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return nil, ErrProposalNotFound
				}
				return nil, fmt.Errorf("persisting signing link: %w", err)
			}
			current = &updated
		}
		return &LinkResult{
			SigningLink:  link,
			SigningToken: *current.SigningToken,
			Proposal:     current,
		}, nil
	}

	token, err := signing.MintToken()
	if err != nil {
		return nil, fmt.Errorf("minting signing token: %w", err)
	}
	link := signing.Link(s.baseURL, signing.KindProposal, token)
	now := time.Now()

	updated := *current
	updated.SigningToken = &token
	updated.SigningLink = &link
	updated.LinkCreatedAt = &now

	if err := s.repo.Update(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProposalNotFound
		}
		return nil, fmt.Errorf("persisting signing link: %w", err)
	}

	s.logger.Info("signing link generated", "proposal", id)
	return &LinkResult{SigningLink: link, SigningToken: token, Proposal: &updated}, nil
}

// GetBySigningToken resolves a proposal from a signing token. This is the
// entry point the public signer page uses; anything but an exact match is
// ErrInvalidToken.
func (s *Service) GetBySigningToken(ctx context.Context, token string) (*Proposal, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrInvalidToken
	}
	p, err := s.repo.GetBySigningToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrInvalidToken) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("resolving signing token: %w", err)
	}
	return p, nil
}

// UpdateSigningStatus sets the signing status. A transition to signed stamps
// the signed timestamp and promotes the proposal to accepted in the same
// store write, overriding whatever status it held. Signing an already-signed
// proposal is a no-op.
func (s *Service) UpdateSigningStatus(ctx context.Context, id int, status signing.Status) (*Proposal, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if status == signing.StatusSigned && current.SigningStatus == signing.StatusSigned {
		return current, nil
	}

	updated := *current
	updated.SigningStatus = status
	if status == signing.StatusSigned {
		now := time.Now()
		accepted := now.Format("2006-01-02")
		updated.SignedAt = &now
		updated.Status = StatusAccepted
		updated.AcceptedDate = &accepted
	}

	if err := s.repo.Update(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProposalNotFound
		}
		return nil, fmt.Errorf("updating signing status: %w", err)
	}

	if status == signing.StatusSigned {
		s.logger.Info("proposal signed", "id", id)
	}
	return &updated, nil
}

// Delete removes a proposal permanently.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProposalNotFound
		}
		return fmt.Errorf("deleting proposal: %w", err)
	}

	s.logger.Info("proposal deleted", "id", id)
	return nil
}
