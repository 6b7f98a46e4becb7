package memory

import (
	"context"
	"sync"
	"time"

	"github.com/rpggio/fieldbook/internal/domain/proposal"
	"github.com/rpggio/fieldbook/internal/repository"
)

// ProposalStore implements proposal.Repository in memory.
type ProposalStore struct {
	mu      sync.Mutex
	items   []proposal.Proposal
	nextID  int
	latency time.Duration
}

func newProposalStore(seed []proposal.Proposal, latency time.Duration) *ProposalStore {
	items := make([]proposal.Proposal, len(seed))
	for i := range seed {
		items[i] = cloneProposal(seed[i])
	}
	return &ProposalStore{
		items:   items,
		nextID:  nextID(items, func(p proposal.Proposal) int { return p.ID }),
		latency: latency,
	}
}

// cloneProposal deep-copies a proposal: the optional date and signing fields
// are pointers, so a plain struct copy would still alias store internals.
func cloneProposal(in proposal.Proposal) proposal.Proposal {
	out := in
	out.AcceptedDate = clonePtr(in.AcceptedDate)
	out.SigningToken = clonePtr(in.SigningToken)
	out.SigningLink = clonePtr(in.SigningLink)
	out.LinkCreatedAt = clonePtr(in.LinkCreatedAt)
	out.SignedAt = clonePtr(in.SignedAt)
	return out
}

// GetAll returns a copy of every proposal.
func (s *ProposalStore) GetAll(ctx context.Context) ([]proposal.Proposal, error) {
	if err := simulate(ctx, s.latency); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]proposal.Proposal, len(s.items))
	for i := range s.items {
		out[i] = cloneProposal(s.items[i])
	}
	return out, nil
}

// GetByID returns a copy of the proposal with the given identifier.
func (s *ProposalStore) GetByID(ctx context.Context, id int) (*proposal.Proposal, error) {
	if err := simulate(ctx, s.latency); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			p := cloneProposal(s.items[i])
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

// GetByClientID returns copies of the proposals sent to a client.
func (s *ProposalStore) GetByClientID(ctx context.Context, clientID int) ([]proposal.Proposal, error) {
	if err := simulate(ctx, s.latency); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []proposal.Proposal
	for i := range s.items {
		if s.items[i].ClientID == clientID {
			out = append(out, cloneProposal(s.items[i]))
		}
	}
	return out, nil
}

// GetBySigningToken returns a copy of the proposal holding the exact token.
func (s *ProposalStore) GetBySigningToken(ctx context.Context, token string) (*proposal.Proposal, error) {
	if err := simulate(ctx, s.latency); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].SigningToken != nil && *s.items[i].SigningToken == token {
			p := cloneProposal(s.items[i])
			return &p, nil
		}
	}
	return nil, repository.ErrInvalidToken
}

// Create assigns the next identifier and appends the proposal.
func (s *ProposalStore) Create(ctx context.Context, p *proposal.Proposal) error {
	if err := simulate(ctx, s.latency); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextID
	s.nextID++
	s.items = append(s.items, cloneProposal(*p))
	return nil
}

// Update replaces the stored proposal with the same identifier. Because the
// whole record is swapped under the lock, the signing-status and business-
// status fields change in one atomic step.
func (s *ProposalStore) Update(ctx context.Context, p *proposal.Proposal) error {
	if err := simulate(ctx, s.latency); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items[i] = cloneProposal(*p)
			return nil
		}
	}
	return repository.ErrNotFound
}

// Delete removes the proposal with the given identifier.
func (s *ProposalStore) Delete(ctx context.Context, id int) error {
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
