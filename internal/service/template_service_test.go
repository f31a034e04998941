package service

import (
	"context"
	"testing"
	"time"

	"github.com/izayahhudnut/detailerpro/internal/repository"
	"github.com/izayahhudnut/detailerpro/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateService_CreateNumbersSteps(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewTemplateService(repository.NewSQLiteTemplateRepo(database))
	ctx := context.Background()

	tmpl := testutil.NewTestTemplate("Full detail", "Wash", "Clay", "Polish")
	tmpl.ID = ""
	for i := range tmpl.Steps {
		tmpl.Steps[i].ID = ""
		tmpl.Steps[i].OrderNumber = 0
	}
	require.NoError(t, svc.Create(ctx, tmpl))

	fetched, err := svc.GetByID(ctx, tmpl.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Steps, 3)
	for i, step := range fetched.Steps {
		assert.Equal(t, i+1, step.OrderNumber)
		assert.NotEmpty(t, step.ID)
		assert.Equal(t, tmpl.ID, step.TemplateID)
	}
	assert.Equal(t, "Clay", fetched.Steps[1].Title)
}

func TestTodoService_ToggleCreatesThenFlips(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	clientRepo := repository.NewSQLiteClientRepo(database)
	vehicleRepo := repository.NewSQLiteVehicleRepo(database)
	jobRepo := repository.NewSQLiteJobRepo(database)
	tmplRepo := repository.NewSQLiteTemplateRepo(database)
	svc := NewTodoService(repository.NewSQLiteTodoRepo(database), jobRepo)

	client := testutil.NewTestClient("Ada", "Boone")
	require.NoError(t, clientRepo.Create(ctx, client))
	vehicle := testutil.NewTestVehicle(client.ID, "Jeep", "Wrangler")
	require.NoError(t, vehicleRepo.Create(ctx, vehicle))
	tmpl := testutil.NewTestTemplate("Basic", "Wash", "Dry")
	require.NoError(t, tmplRepo.Create(ctx, tmpl))
	job := testutil.NewTestJob(vehicle.ID, "Basic wash", time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC), 1)
	require.NoError(t, jobRepo.Create(ctx, job))

	step := tmpl.Steps[0]

	done, err := svc.Toggle(ctx, job.ID, step.ID, true)
	require.NoError(t, err)
	assert.True(t, done.Completed)
	require.NotNil(t, done.CompletedAt)

	undone, err := svc.Toggle(ctx, job.ID, step.ID, false)
	require.NoError(t, err)
	assert.False(t, undone.Completed)
	assert.Nil(t, undone.CompletedAt)
	// Same row both times, not a new record per toggle.
	assert.Equal(t, done.ID, undone.ID)

	todos, err := svc.ListByJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Len(t, todos, 1)
}

func TestTodoService_ToggleUnknownJob(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewTodoService(repository.NewSQLiteTodoRepo(database), repository.NewSQLiteJobRepo(database))

	_, err := svc.Toggle(context.Background(), "missing", "step", true)
	assert.Error(t, err)
}
