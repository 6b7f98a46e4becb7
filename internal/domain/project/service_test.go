package project_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/fieldbook/internal/domain/project"
	"github.com/rpggio/fieldbook/internal/repository"
	"github.com/rpggio/fieldbook/internal/repository/mocks"
	"github.com/rpggio/fieldbook/internal/validation"
)

func newTestService(repo project.Repository) *project.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return project.NewService(repo, logger)
}

func TestProjectService_Create_StartsPlanning(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ProjectRepository{}
	repo.On("Create", ctx, mock.Anything).Return(nil)

	svc := newTestService(repo)
	p, err := svc.Create(ctx, project.CreateRequest{
		Title:     "Backyard Renovation",
		ClientID:  validation.FormValue("1"),
		Budget:    validation.FormValue("18000"),
		StartDate: "2025-01-10",
		EndDate:   "2025-03-28",
	})
	require.NoError(t, err)
	require.Equal(t, project.StatusPlanning, p.Status)
	require.Zero(t, p.Progress)
	require.Zero(t, p.ActualCost)
	require.Equal(t, "Backyard Renovation", p.Name)
	require.Equal(t, 18000.0, p.Budget)
}

func TestProjectService_Create_ValidationFails(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ProjectRepository{}

	svc := newTestService(repo)
	_, err := svc.Create(ctx, project.CreateRequest{
		Title:     "Backyard Renovation",
		ClientID:  validation.FormValue("1"),
		Budget:    validation.FormValue("-50"),
		StartDate: "2025-03-28",
		EndDate:   "2025-01-10",
	})

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "budget")
	require.Contains(t, verr.Fields, "end_date")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProjectService_UpdateStatus_CompletedForcesProgress(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ProjectRepository{}
	repo.On("GetByID", ctx, 1).Return(&project.Project{
		ID: 1, Title: "Backyard Renovation", ClientID: 1,
		Status: project.StatusInProgress, Progress: 55,
	}, nil)
	repo.On("Update", ctx, mock.Anything).Return(nil)

	svc := newTestService(repo)
	p, err := svc.UpdateStatus(ctx, 1, project.StatusCompleted)
	require.NoError(t, err)
	require.Equal(t, project.StatusCompleted, p.Status)
	require.Equal(t, 100.0, p.Progress)
}

func TestProjectService_Update_ClampsProgress(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ProjectRepository{}
	repo.On("GetByID", ctx, 1).Return(&project.Project{
		ID: 1, Title: "Backyard Renovation", ClientID: 1,
		Status: project.StatusInProgress, Progress: 55,
	}, nil)
	repo.On("Update", ctx, mock.Anything).Return(nil)

	progress := 150.0
	svc := newTestService(repo)
	p, err := svc.Update(ctx, 1, project.UpdateRequest{Progress: &progress})
	require.NoError(t, err)
	require.Equal(t, 100.0, p.Progress)
}

func TestProjectService_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ProjectRepository{}
	repo.On("GetByID", ctx, 99).Return(nil, repository.ErrNotFound)

	svc := newTestService(repo)
	_, err := svc.Get(ctx, 99)
	require.ErrorIs(t, err, project.ErrProjectNotFound)
}
