package invoice

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

// Service handles invoice business logic, including the signing-link
// lifecycle.
type Service struct {
	repo    Repository
	baseURL string
	logger  *slog.Logger
}

// NewService creates a new invoice service. baseURL is the public origin
// signing links are minted under.
func NewService(repo Repository, baseURL string, logger *slog.Logger) *Service {
	return &Service{repo: repo, baseURL: baseURL, logger: logger}
}

// CreateRequest describes an invoice creation request.
type CreateRequest struct {
	Name          string               `json:"name"`
	InvoiceNumber string               `json:"invoice_number"`
	ProjectID     validation.FormValue `json:"project_id"`
	ClientID      validation.FormValue `json:"client_id"`
	Subtotal      validation.FormValue `json:"subtotal"`
	Tax           validation.FormValue `json:"tax"`
	Total         validation.FormValue `json:"total"`
	IssueDate     string               `json:"issue_date"`
	DueDate       string               `json:"due_date"`
	Notes         string               `json:"notes"`
}

// UpdateRequest describes a partial invoice update.
type UpdateRequest struct {
	Name          *string  `json:"name"`
	InvoiceNumber *string  `json:"invoice_number"`
	ProjectID     *int     `json:"project_id"`
	Subtotal      *float64 `json:"subtotal"`
	Tax           *float64 `json:"tax"`
	Total         *float64 `json:"total"`
	IssueDate     *string  `json:"issue_date"`
	DueDate       *string  `json:"due_date"`
	Notes         *string  `json:"notes"`
}

// LinkResult is the outcome of generating a signing link.
type LinkResult struct {
	SigningLink  string   `json:"signing_link"`
	SigningToken string   `json:"signing_token"`
	Invoice      *Invoice `json:"invoice"`
}

// GetAll returns every invoice.
func (s *Service) GetAll(ctx context.Context) ([]Invoice, error) {
	return s.repo.GetAll(ctx)
}

// Get returns an invoice by ID.
func (s *Service) Get(ctx context.Context, id int) (*Invoice, error) {
	inv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("getting invoice: %w", err)
	}
	return inv, nil
}

// GetByClient returns the invoices issued to a client.
func (s *Service) GetByClient(ctx context.Context, clientID int) ([]Invoice, error) {
	return s.repo.GetByClientID(ctx, clientID)
}

// Create validates and stores a new invoice. New invoices start as drafts
// with no paid date; name and invoice number are generated when omitted.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Invoice, error) {
	form := FormInput{
		ClientID:  req.ClientID.String(),
		Subtotal:  req.Subtotal.String(),
		Tax:       req.Tax.String(),
		Total:     req.Total.String(),
		IssueDate: req.IssueDate,
		DueDate:   req.DueDate,
		Notes:     req.Notes,
	}
	if err := validation.NewError(ValidateForm(form)); err != nil {
		return nil, err
	}

	now := time.Now()

	name := req.Name
	if name == "" {
		name = fmt.Sprintf("Invoice %d", now.UnixMilli())
	}
	number := req.InvoiceNumber
	if number == "" {
		number = fmt.Sprintf("INV-%d", now.UnixMilli())
	}
	issueDate := req.IssueDate
	if issueDate == "" {
		issueDate = now.Format("2006-01-02")
	}

	inv := &Invoice{
		Name:          name,
		InvoiceNumber: number,
		ProjectID:     req.ProjectID.Int(),
		ClientID:      req.ClientID.Int(),
		Subtotal:      req.Subtotal.Float(),
		Tax:           req.Tax.Float(),
		Total:         req.Total.Float(),
		Status:        StatusDraft,
		IssueDate:     issueDate,
		DueDate:       req.DueDate,
		PaidDate:      nil,
		Notes:         req.Notes,
		SigningStatus: signing.StatusUnsigned,
		CreatedAt:     now,
	}

	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("creating invoice: %w", err)
	}

	s.logger.Info("invoice created", "id", inv.ID, "number", inv.InvoiceNumber)
	return inv, nil
}

// Update merges the given fields onto an existing invoice.
func (s *Service) Update(ctx context.Context, id int, req UpdateRequest) (*Invoice, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.InvoiceNumber != nil {
		updated.InvoiceNumber = *req.InvoiceNumber
	}
	if req.ProjectID != nil {
		updated.ProjectID = *req.ProjectID
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
	if req.IssueDate != nil {
		updated.IssueDate = *req.IssueDate
	}
	if req.DueDate != nil {
		updated.DueDate = *req.DueDate
	}
	if req.Notes != nil {
		updated.Notes = *req.Notes
	}

	form := FormInput{
		ClientID:  fmt.Sprintf("%d", updated.ClientID),
		Subtotal:  formatMoney(updated.Subtotal),
		Tax:       formatMoney(updated.Tax),
		Total:     formatMoney(updated.Total),
		IssueDate: updated.IssueDate,
		DueDate:   updated.DueDate,
		Notes:     updated.Notes,
	}
	if err := validation.NewError(ValidateForm(form)); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("updating invoice: %w", err)
	}

	return &updated, nil
}

// UpdateStatus sets the invoice status. Marking an invoice paid stamps the
// paid date.
func (s *Service) UpdateStatus(ctx context.Context, id int, status Status) (*Invoice, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	updated.Status = status
	if status == StatusPaid && updated.PaidDate == nil {
		paid := time.Now().Format("2006-01-02")
		updated.PaidDate = &paid
	}

	if err := s.repo.Update(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("updating invoice status: %w", err)
	}

	return &updated, nil
}

// GenerateSigningLink mints a signing token and public link for an invoice.
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
		link := signing.Link(s.baseURL, signing.KindInvoice, *current.SigningToken)
		if current.SigningLink == nil || *current.SigningLink != link {
			updated := *current
			updated.SigningLink = &link
			if updated.LinkCreatedAt == nil {
				now := time.Now()
				updated.LinkCreatedAt = &now
			}
			if err := s.repo.Update(ctx, &updated); err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return nil, ErrInvoiceNotFound
				}
				return nil, fmt.Errorf("persisting signing link: %w", err)
			}
			current = &updated
		}
		return &LinkResult{
			SigningLink:  link,
			SigningToken: *current.SigningToken,
			Invoice:      current,
		}, nil
	}

	token, err := signing.MintToken()
	if err != nil {
		return nil, fmt.Errorf("minting signing token: %w", err)
	}
	link := signing.Link(s.baseURL, signing.KindInvoice, token)
	now := time.Now()

	updated := *current
	updated.SigningToken = &token
	updated.SigningLink = &link
	updated.LinkCreatedAt = &now

	if err := s.repo.Update(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("persisting signing link: %w", err)
	}

	s.logger.Info("signing link generated", "invoice", id)
	return &LinkResult{SigningLink: link, SigningToken: token, Invoice: &updated}, nil
}

// GetBySigningToken resolves an invoice from a signing token. This is the
// entry point the public signer page uses; anything but an exact match is
// ErrInvalidToken.
func (s *Service) GetBySigningToken(ctx context.Context, token string) (*Invoice, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrInvalidToken
	}
	inv, err := s.repo.GetBySigningToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrInvalidToken) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("resolving signing token: %w", err)
	}
	return inv, nil
}

// UpdateSigningStatus sets the signing status. A transition to signed stamps
// the signed timestamp and promotes the invoice to paid in the same store
// write, overriding whatever status it held. Signing an already-signed
// invoice is a no-op.
func (s *Service) UpdateSigningStatus(ctx context.Context, id int, status signing.Status) (*Invoice, error) {
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
		paid := now.Format("2006-01-02")
		updated.SignedAt = &now
		updated.Status = StatusPaid
		updated.PaidDate = &paid
	}

	if err := s.repo.Update(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("updating signing status: %w", err)
	}

	if status == signing.StatusSigned {
		s.logger.Info("invoice signed", "id", id)
	}
	return &updated, nil
}

// Delete removes an invoice permanently.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvoiceNotFound
		}
		return fmt.Errorf("deleting invoice: %w", err)
	}

	s.logger.Info("invoice deleted", "id", id)
	return nil
}

func formatMoney(v float64) string {
	return fmt.Sprintf("%g", v)
}
