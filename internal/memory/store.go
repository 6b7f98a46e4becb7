// Package memory implements the repository interfaces with fixture-seeded
// in-memory collections. It is the demo backend: state lives for the process
// lifetime and is lost on restart. Each collection is guarded by its own
// mutex so every operation is a single atomic mutation, including the dual
// signing-status/business-status write.
package memory

import (
	"context"
	"time"
)

// Options configures the demo store.
type Options struct {
	// Latency is simulated per-operation delay, a UX concern inherited from
	// the demo backend. Zero disables it; call ordering is unaffected.
	Latency time.Duration
	// Seed preloads the collections. Nil seeds the built-in fixtures.
	Seed *Seed
}

// Store bundles the per-kind repositories backed by one process-local
// dataset.
type Store struct {
	Clients      *ClientStore
	Projects     *ProjectStore
	Invoices     *InvoiceStore
	Proposals    *ProposalStore
	Appointments *AppointmentStore
}

// New creates a demo store seeded with fixture data.
func New(opts Options) *Store {
	seed := opts.Seed
	if seed == nil {
		seed = Fixtures()
	}
	return &Store{
		Clients:      newClientStore(seed.Clients, opts.Latency),
		Projects:     newProjectStore(seed.Projects, opts.Latency),
		Invoices:     newInvoiceStore(seed.Invoices, opts.Latency),
		Proposals:    newProposalStore(seed.Proposals, opts.Latency),
		Appointments: newAppointmentStore(seed.Appointments, opts.Latency),
	}
}

// simulate blocks for the configured latency, honoring cancellation. It runs
// before the critical section so a canceled caller never mutates state.
func simulate(ctx context.Context, latency time.Duration) error {
	if latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// clonePtr copies an optional field so records handed out by the store never
// alias its internals.
func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// nextID computes the starting identifier for a seeded collection:
// max(existing)+1, monotonic for the process lifetime so deleted identifiers
// are never reused.
func nextID[T any](items []T, id func(T) int) int {
	max := 0
	for _, item := range items {
		if n := id(item); n > max {
			max = n
		}
	}
	return max + 1
}
