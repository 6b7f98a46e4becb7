package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rpggio/fieldbook/internal/domain/client"
	"github.com/rpggio/fieldbook/internal/domain/invoice"
	"github.com/rpggio/fieldbook/internal/domain/signing"
	"github.com/rpggio/fieldbook/internal/repository"
)

func emptyStore() *Store {
	return New(Options{Seed: &Seed{}})
}

func TestNewSeedsFixtures(t *testing.T) {
	store := New(Options{})
	ctx := context.Background()

	clients, err := store.Clients.GetAll(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, clients)

	invoices, err := store.Invoices.GetAll(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, invoices)
}

func TestClientStoreCRUD(t *testing.T) {
	store := emptyStore()
	ctx := context.Background()

	c := &client.Client{Name: "Hartley Residence", Email: "j.hartley@example.com", Status: client.StatusActive}
	require.NoError(t, store.Clients.Create(ctx, c))
	require.Equal(t, 1, c.ID)

	got, err := store.Clients.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, "Hartley Residence", got.Name)

	got.Phone = "555-0148"
	require.NoError(t, store.Clients.Update(ctx, got))

	again, err := store.Clients.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, "555-0148", again.Phone)

	require.NoError(t, store.Clients.Delete(ctx, c.ID))
	_, err = store.Clients.GetByID(ctx, c.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpdateMissingReturnsNotFound(t *testing.T) {
	store := emptyStore()
	ctx := context.Background()

	err := store.Clients.Update(ctx, &client.Client{ID: 42, Name: "Ghost"})
	require.ErrorIs(t, err, repository.ErrNotFound)

	err = store.Invoices.Delete(ctx, 42)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestIdentifiersAreNeverReused(t *testing.T) {
	store := emptyStore()
	ctx := context.Background()

	first := &client.Client{Name: "First"}
	require.NoError(t, store.Clients.Create(ctx, first))
	require.NoError(t, store.Clients.Delete(ctx, first.ID))

	second := &client.Client{Name: "Second"}
	require.NoError(t, store.Clients.Create(ctx, second))
	require.Equal(t, first.ID+1, second.ID)
}

func TestSeededIdentifiersContinueFromMax(t *testing.T) {
	store := New(Options{Seed: &Seed{
		Clients: []client.Client{{ID: 7, Name: "Seeded"}},
	}})

	c := &client.Client{Name: "Next"}
	require.NoError(t, store.Clients.Create(context.Background(), c))
	require.Equal(t, 8, c.ID)
}

func TestReadsReturnCopies(t *testing.T) {
	store := emptyStore()
	ctx := context.Background()

	c := &client.Client{Name: "Original"}
	require.NoError(t, store.Clients.Create(ctx, c))

	got, err := store.Clients.GetByID(ctx, c.ID)
	require.NoError(t, err)
	got.Name = "Mutated"

	all, err := store.Clients.GetAll(ctx)
	require.NoError(t, err)
	all[0].Email = "mutated@example.com"

	stored, err := store.Clients.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, "Original", stored.Name)
	require.Empty(t, stored.Email)
}

func TestReadsCopyPointerFields(t *testing.T) {
	// Optional fields are pointers; writing through a returned record must
	// not reach the stored one.
	store := emptyStore()
	ctx := context.Background()

	paid := "2024-12-10"
	token := "abcdefghijklmnopqrstuvwxyzABCDEF"
	inv := &invoice.Invoice{
		Name: "Backyard Renovation", ClientID: 1,
		Status: invoice.StatusPaid, PaidDate: &paid,
		SigningToken: &token, SigningStatus: signing.StatusUnsigned,
	}
	require.NoError(t, store.Invoices.Create(ctx, inv))

	got, err := store.Invoices.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	*got.PaidDate = "1999-01-01"
	*got.SigningToken = "clobbered"

	stored, err := store.Invoices.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, "2024-12-10", *stored.PaidDate)
	require.Equal(t, token, *stored.SigningToken)

	// The caller's record does not alias the store either.
	*inv.PaidDate = "2000-01-01"
	stored, err = store.Invoices.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, "2024-12-10", *stored.PaidDate)
}

func TestInvoiceGetBySigningToken(t *testing.T) {
	store := emptyStore()
	ctx := context.Background()

	token := "abcdefghijklmnopqrstuvwxyzABCDEF"
	inv := &invoice.Invoice{Name: "Backyard Renovation", ClientID: 1, Total: 9180, SigningToken: &token}
	require.NoError(t, store.Invoices.Create(ctx, inv))

	got, err := store.Invoices.GetBySigningToken(ctx, token)
	require.NoError(t, err)
	require.Equal(t, inv.ID, got.ID)

	_, err = store.Invoices.GetBySigningToken(ctx, "no-such-token")
	require.ErrorIs(t, err, repository.ErrInvalidToken)
}

func TestInvoiceGetByClientID(t *testing.T) {
	store := emptyStore()
	ctx := context.Background()

	require.NoError(t, store.Invoices.Create(ctx, &invoice.Invoice{Name: "A", ClientID: 1}))
	require.NoError(t, store.Invoices.Create(ctx, &invoice.Invoice{Name: "B", ClientID: 2}))
	require.NoError(t, store.Invoices.Create(ctx, &invoice.Invoice{Name: "C", ClientID: 1}))

	got, err := store.Invoices.GetByClientID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestSimulatedLatencyHonorsCancellation(t *testing.T) {
	store := New(Options{Seed: &Seed{}, Latency: 50 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.Clients.Create(ctx, &client.Client{Name: "Never stored"})
	require.ErrorIs(t, err, context.Canceled)

	all, err := store.Clients.GetAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, all)
}
