package memory

import (
	"context"
	"sync"
	"time"

	"github.com/rpggio/fieldbook/internal/domain/project"
	"github.com/rpggio/fieldbook/internal/repository"
)

// ProjectStore implements project.Repository in memory.
type ProjectStore struct {
	mu      sync.Mutex
	items   []project.Project
	nextID  int
	latency time.Duration
}

func newProjectStore(seed []project.Project, latency time.Duration) *ProjectStore {
	items := make([]project.Project, len(seed))
	copy(items, seed)
	return &ProjectStore{
		items:   items,
		nextID:  nextID(items, func(p project.Project) int { return p.ID }),
		latency: latency,
	}
}

// GetAll returns a copy of every project.
func (s *ProjectStore) GetAll(ctx context.Context) ([]project.Project, error) {
	if err := simulate(ctx, s.latency); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]project.Project, len(s.items))
	copy(out, s.items)
	return out, nil
}

// GetByID returns a copy of the project with the given identifier.
func (s *ProjectStore) GetByID(ctx context.Context, id int) (*project.Project, error) {
	if err := simulate(ctx, s.latency); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			p := s.items[i]
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

// GetByClientID returns copies of the projects belonging to a client.
func (s *ProjectStore) GetByClientID(ctx context.Context, clientID int) ([]project.Project, error) {
	if err := simulate(ctx, s.latency); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []project.Project
	for i := range s.items {
		if s.items[i].ClientID == clientID {
			out = append(out, s.items[i])
		}
	}
	return out, nil
}

// Create assigns the next identifier and appends the project.
func (s *ProjectStore) Create(ctx context.Context, p *project.Project) error {
	if err := simulate(ctx, s.latency); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextID
	s.nextID++
	s.items = append(s.items, *p)
	return nil
}

// Update replaces the stored project with the same identifier.
func (s *ProjectStore) Update(ctx context.Context, p *project.Project) error {
	if err := simulate(ctx, s.latency); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items[i] = *p
			return nil
		}
	}
	return repository.ErrNotFound
}

// Delete removes the project with the given identifier.
func (s *ProjectStore) Delete(ctx context.Context, id int) error {
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
