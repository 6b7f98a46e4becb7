package memory

import (
	"context"
	"sync"
	"time"

	"github.com/rpggio/fieldbook/internal/domain/client"
	"github.com/rpggio/fieldbook/internal/repository"
)

// ClientStore implements client.Repository in memory.
type ClientStore struct {
	mu      sync.Mutex
	items   []client.Client
	nextID  int
	latency time.Duration
}

func newClientStore(seed []client.Client, latency time.Duration) *ClientStore {
	items := make([]client.Client, len(seed))
	copy(items, seed)
	return &ClientStore{
		items:   items,
		nextID:  nextID(items, func(c client.Client) int { return c.ID }),
		latency: latency,
	}
}

// GetAll returns a copy of every client.
func (s *ClientStore) GetAll(ctx context.Context) ([]client.Client, error) {
	if err := simulate(ctx, s.latency); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]client.Client, len(s.items))
	copy(out, s.items)
	return out, nil
}

// GetByID returns a copy of the client with the given identifier.
func (s *ClientStore) GetByID(ctx context.Context, id int) (*client.Client, error) {
	if err := simulate(ctx, s.latency); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			c := s.items[i]
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

// Create assigns the next identifier and appends the client.
func (s *ClientStore) Create(ctx context.Context, c *client.Client) error {
	if err := simulate(ctx, s.latency); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.nextID
	s.nextID++
	s.items = append(s.items, *c)
	return nil
}

// Update replaces the stored client with the same identifier.
func (s *ClientStore) Update(ctx context.Context, c *client.Client) error {
	if err := simulate(ctx, s.latency); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == c.ID {
			s.items[i] = *c
			return nil
		}
	}
	return repository.ErrNotFound
}

// Delete removes the client with the given identifier.
func (s *ClientStore) Delete(ctx context.Context, id int) error {
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
