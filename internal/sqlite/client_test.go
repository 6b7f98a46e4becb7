package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rpggio/fieldbook/internal/domain/client"
	"github.com/rpggio/fieldbook/internal/repository"
)

func TestClientRepositoryCRUD(t *testing.T) {
	db := NewTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	c := &client.Client{
		Name:         "Hartley Residence",
		Email:        "j.hartley@example.com",
		Phone:        "555-0148",
		Address:      "12 Alder Court",
		PropertySize: "0.4 acres",
		LastContact:  "2025-01-03",
		Status:       client.StatusActive,
		TotalRevenue: 14250,
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, c))
	require.Equal(t, 1, c.ID)

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, "Hartley Residence", got.Name)
	require.Equal(t, client.StatusActive, got.Status)
	require.Equal(t, 14250.0, got.TotalRevenue)

	got.Status = client.StatusInactive
	got.Notes = "Moved out of service area"
	require.NoError(t, repo.Update(ctx, got))

	again, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, client.StatusInactive, again.Status)
	require.Equal(t, "Moved out of service area", again.Notes)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	require.NoError(t, repo.Delete(ctx, c.ID))
	_, err = repo.GetByID(ctx, c.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestClientRepositoryMissingRows(t *testing.T) {
	db := NewTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 99)
	require.ErrorIs(t, err, repository.ErrNotFound)

	err = repo.Update(ctx, &client.Client{ID: 99, Name: "Ghost", Status: client.StatusActive})
	require.ErrorIs(t, err, repository.ErrNotFound)

	err = repo.Delete(ctx, 99)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestClientRepositoryIDsNotReused(t *testing.T) {
	db := NewTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	first := &client.Client{Name: "First", Email: "first@example.com", Status: client.StatusActive}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Delete(ctx, first.ID))

	second := &client.Client{Name: "Second", Email: "second@example.com", Status: client.StatusActive}
	require.NoError(t, repo.Create(ctx, second))
	require.Equal(t, first.ID+1, second.ID)
}
