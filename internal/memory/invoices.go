package memory

import (
	"context"
	"sync"
	"time"

	"github.com/rpggio/fieldbook/internal/domain/invoice"
	"github.com/rpggio/fieldbook/internal/repository"
)

// InvoiceStore implements invoice.Repository in memory.
type InvoiceStore struct {
	mu      sync.Mutex
	items   []invoice.Invoice
	nextID  int
	latency time.Duration
}

func newInvoiceStore(seed []invoice.Invoice, latency time.Duration) *InvoiceStore {
	items := make([]invoice.Invoice, len(seed))
	for i := range seed {
		items[i] = cloneInvoice(seed[i])
	}
	return &InvoiceStore{
		items:   items,
		nextID:  nextID(items, func(inv invoice.Invoice) int { return inv.ID }),
		latency: latency,
	}
}

// cloneInvoice deep-copies an invoice: the optional date and signing fields
// are pointers, so a plain struct copy would still alias store internals.
func cloneInvoice(in invoice.Invoice) invoice.Invoice {
	out := in
	out.PaidDate = clonePtr(in.PaidDate)
	out.SigningToken = clonePtr(in.SigningToken)
	out.SigningLink = clonePtr(in.SigningLink)
	out.LinkCreatedAt = clonePtr(in.LinkCreatedAt)
	out.SignedAt = clonePtr(in.SignedAt)
	return out
}

// GetAll returns a copy of every invoice.
func (s *InvoiceStore) GetAll(ctx context.Context) ([]invoice.Invoice, error) {
	if err := simulate(ctx, s.latency); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]invoice.Invoice, len(s.items))
	for i := range s.items {
		out[i] = cloneInvoice(s.items[i])
	}
	return out, nil
}

// GetByID returns a copy of the invoice with the given identifier.
func (s *InvoiceStore) GetByID(ctx context.Context, id int) (*invoice.Invoice, error) {
	if err := simulate(ctx, s.latency); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			inv := cloneInvoice(s.items[i])
			return &inv, nil
		}
	}
	return nil, repository.ErrNotFound
}

// GetByClientID returns copies of the invoices issued to a client.
func (s *InvoiceStore) GetByClientID(ctx context.Context, clientID int) ([]invoice.Invoice, error) {
	if err := simulate(ctx, s.latency); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []invoice.Invoice
	for i := range s.items {
		if s.items[i].ClientID == clientID {
			out = append(out, cloneInvoice(s.items[i]))
		}
	}
	return out, nil
}

// GetBySigningToken returns a copy of the invoice holding the exact token.
func (s *InvoiceStore) GetBySigningToken(ctx context.Context, token string) (*invoice.Invoice, error) {
	if err := simulate(ctx, s.latency); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].SigningToken != nil && *s.items[i].SigningToken == token {
			inv := cloneInvoice(s.items[i])
			return &inv, nil
		}
	}
	return nil, repository.ErrInvalidToken
}

// Create assigns the next identifier and appends the invoice.
func (s *InvoiceStore) Create(ctx context.Context, inv *invoice.Invoice) error {
	if err := simulate(ctx, s.latency); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	inv.ID = s.nextID
	s.nextID++
	s.items = append(s.items, cloneInvoice(*inv))
	return nil
}

// Update replaces the stored invoice with the same identifier. Because the
// whole record is swapped under the lock, the signing-status and business-
// status fields change in one atomic step.
func (s *InvoiceStore) Update(ctx context.Context, inv *invoice.Invoice) error {
	if err := simulate(ctx, s.latency); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == inv.ID {
			s.items[i] = cloneInvoice(*inv)
			return nil
		}
	}
	return repository.ErrNotFound
}

// Delete removes the invoice with the given identifier.
func (s *InvoiceStore) Delete(ctx context.Context, id int) error {
	if err := simulate(ctx, s.latency); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
