package appointment_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/fieldbook/internal/domain/appointment"
	"github.com/rpggio/fieldbook/internal/repository"
	"github.com/rpggio/fieldbook/internal/repository/mocks"
	"github.com/rpggio/fieldbook/internal/validation"
)

func newTestService(repo appointment.Repository) *appointment.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return appointment.NewService(repo, logger)
}

func TestAppointmentService_Create_Defaults(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.AppointmentRepository{}
	repo.On("Create", ctx, mock.Anything).Return(nil)

	svc := newTestService(repo)
	a, err := svc.Create(ctx, appointment.CreateRequest{
		Title:    "Site Walkthrough",
		ClientID: validation.FormValue("1"),
		Date:     "2025-01-15",
		Duration: validation.FormValue("60"),
	})
	require.NoError(t, err)
	require.Equal(t, appointment.StatusScheduled, a.Status)
	require.Equal(t, 60, a.Duration)
	require.Equal(t, "Site Walkthrough", a.Name)
}

func TestAppointmentService_Create_ValidationFails(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.AppointmentRepository{}

	svc := newTestService(repo)
	_, err := svc.Create(ctx, appointment.CreateRequest{
		Title:    "Site Walkthrough",
		ClientID: validation.FormValue("1"),
		Date:     "next tuesday",
		Duration: validation.FormValue("-15"),
	})

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "date")
	require.Contains(t, verr.Fields, "duration")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAppointmentService_Update_AllowsZeroDuration(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.AppointmentRepository{}
	repo.On("GetByID", ctx, 1).Return(&appointment.Appointment{
		ID: 1, Title: "Site Walkthrough", ClientID: 1, Date: "2025-01-15",
		Status: appointment.StatusScheduled,
	}, nil)
	repo.On("Update", ctx, mock.Anything).Return(nil)

	location := "12 Alder Court"
	svc := newTestService(repo)
	a, err := svc.Update(ctx, 1, appointment.UpdateRequest{Location: &location})
	require.NoError(t, err)
	require.Equal(t, location, a.Location)
}

func TestAppointmentService_GetByDate(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.AppointmentRepository{}
	repo.On("GetByDate", ctx, "2025-01-15").Return([]appointment.Appointment{
		{ID: 1, Date: "2025-01-15"},
		{ID: 2, Date: "2025-01-15"},
	}, nil)

	svc := newTestService(repo)
	got, err := svc.GetByDate(ctx, "2025-01-15")
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestAppointmentService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.AppointmentRepository{}
	repo.On("GetByID", ctx, 1).Return(&appointment.Appointment{
		ID: 1, Title: "Site Walkthrough", ClientID: 1, Date: "2025-01-15",
		Status: appointment.StatusScheduled,
	}, nil)
	repo.On("Update", ctx, mock.Anything).Return(nil)

	svc := newTestService(repo)
	a, err := svc.UpdateStatus(ctx, 1, appointment.StatusCancelled)
	require.NoError(t, err)
	require.Equal(t, appointment.StatusCancelled, a.Status)

	_, err = svc.UpdateStatus(ctx, 1, appointment.Status("postponed"))
	require.ErrorIs(t, err, appointment.ErrInvalidStatus)
}

func TestAppointmentService_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.AppointmentRepository{}
	repo.On("GetByID", ctx, 99).Return(nil, repository.ErrNotFound)

	svc := newTestService(repo)
	_, err := svc.Get(ctx, 99)
	require.ErrorIs(t, err, appointment.ErrAppointmentNotFound)
}
