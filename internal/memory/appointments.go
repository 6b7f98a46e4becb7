package memory

import (
	"context"
	"sync"
	"time"

	"github.com/rpggio/fieldbook/internal/domain/appointment"
	"github.com/rpggio/fieldbook/internal/repository"
)

// AppointmentStore implements appointment.Repository in memory.
type AppointmentStore struct {
	mu      sync.Mutex
	items   []appointment.Appointment
	nextID  int
	latency time.Duration
}

func newAppointmentStore(seed []appointment.Appointment, latency time.Duration) *AppointmentStore {
	items := make([]appointment.Appointment, len(seed))
	copy(items, seed)
	return &AppointmentStore{
		items:   items,
		nextID:  nextID(items, func(a appointment.Appointment) int { return a.ID }),
		latency: latency,
	}
}

// GetAll returns a copy of every appointment.
func (s *AppointmentStore) GetAll(ctx context.Context) ([]appointment.Appointment, error) {
	if err := simulate(ctx, s.latency); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]appointment.Appointment, len(s.items))
	copy(out, s.items)
	return out, nil
}

// GetByID returns a copy of the appointment with the given identifier.
func (s *AppointmentStore) GetByID(ctx context.Context, id int) (*appointment.Appointment, error) {
	if err := simulate(ctx, s.latency); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			a := s.items[i]
			return &a, nil
		}
	}
	return nil, repository.ErrNotFound
}

// GetByClientID returns copies of the appointments booked for a client.
func (s *AppointmentStore) GetByClientID(ctx context.Context, clientID int) ([]appointment.Appointment, error) {
	if err := simulate(ctx, s.latency); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []appointment.Appointment
	for i := range s.items {
		if s.items[i].ClientID == clientID {
			out = append(out, s.items[i])
		}
	}
	return out, nil
}

// GetByDate returns copies of the appointments falling on a calendar date.
func (s *AppointmentStore) GetByDate(ctx context.Context, date string) ([]appointment.Appointment, error) {
	if err := simulate(ctx, s.latency); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []appointment.Appointment
	for i := range s.items {
		if s.items[i].Date == date {
			out = append(out, s.items[i])
		}
	}
	return out, nil
}

// Create assigns the next identifier and appends the appointment.
func (s *AppointmentStore) Create(ctx context.Context, a *appointment.Appointment) error {
	if err := simulate(ctx, s.latency); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = s.nextID
	s.nextID++
	s.items = append(s.items, *a)
	return nil
}

// Update replaces the stored appointment with the same identifier.
func (s *AppointmentStore) Update(ctx context.Context, a *appointment.Appointment) error {
	if err := simulate(ctx, s.latency); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == a.ID {
			s.items[i] = *a
			return nil
		}
	}
	return repository.ErrNotFound
}

// Delete removes the appointment with the given identifier.
func (s *AppointmentStore) Delete(ctx context.Context, id int) error {
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
