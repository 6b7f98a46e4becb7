package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rpggio/fieldbook/internal/domain/appointment"
	"github.com/rpggio/fieldbook/internal/repository"
)

func TestAppointmentRepositoryCRUD(t *testing.T) {
	db := NewTestDB(t)
	repo := NewAppointmentRepository(db)
	ctx := context.Background()

	a := &appointment.Appointment{
		Name:         "Site Walkthrough",
		Title:        "Site Walkthrough",
		ClientID:     1,
		ProjectID:    1,
		Type:         "consultation",
		Date:         "2025-01-15",
		Duration:     60,
		AssignedCrew: "Crew A",
		Location:     "12 Alder Court",
		Status:       appointment.StatusScheduled,
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, a))
	require.Equal(t, 1, a.ID)

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, "2025-01-15", got.Date)
	require.Equal(t, 60, got.Duration)

	got.Status = appointment.StatusCompleted
	require.NoError(t, repo.Update(ctx, got))

	again, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, appointment.StatusCompleted, again.Status)

	require.NoError(t, repo.Delete(ctx, a.ID))
	_, err = repo.GetByID(ctx, a.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAppointmentRepositoryGetByDate(t *testing.T) {
	db := NewTestDB(t)
	repo := NewAppointmentRepository(db)
	ctx := context.Background()

	for _, a := range []*appointment.Appointment{
		{Name: "Morning Visit", ClientID: 1, Date: "2025-01-15", Status: appointment.StatusScheduled},
		{Name: "Afternoon Visit", ClientID: 2, Date: "2025-01-15", Status: appointment.StatusScheduled},
		{Name: "Next Week", ClientID: 1, Date: "2025-01-22", Status: appointment.StatusScheduled},
	} {
		a.CreatedAt = time.Now().UTC()
		require.NoError(t, repo.Create(ctx, a))
	}

	got, err := repo.GetByDate(ctx, "2025-01-15")
	require.NoError(t, err)
	require.Len(t, got, 2)

	byClient, err := repo.GetByClientID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, byClient, 2)
}
