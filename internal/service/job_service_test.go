package service

import (
	"context"
	"testing"
	"time"

	"github.com/izayahhudnut/detailerpro/internal/domain"
	"github.com/izayahhudnut/detailerpro/internal/repository"
	"github.com/izayahhudnut/detailerpro/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type jobServiceEnv struct {
	svc      JobService
	clients  repository.ClientRepo
	vehicles repository.VehicleRepo
	items    repository.InventoryRepo
	usage    repository.UsageRepo
}

func setupJobService(t *testing.T) jobServiceEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	jobRepo := repository.NewSQLiteJobRepo(database)
	vehicleRepo := repository.NewSQLiteVehicleRepo(database)
	return jobServiceEnv{
		svc:      NewJobService(jobRepo, vehicleRepo, testutil.NewTestUoW(database)),
		clients:  repository.NewSQLiteClientRepo(database),
		vehicles: vehicleRepo,
		items:    repository.NewSQLiteInventoryRepo(database),
		usage:    repository.NewSQLiteUsageRepo(database),
	}
}

func seedJobVehicle(t *testing.T, env jobServiceEnv) *domain.Vehicle {
	t.Helper()
	ctx := context.Background()
	client := testutil.NewTestClient("Dana", "Whitfield")
	require.NoError(t, env.clients.Create(ctx, client))
	vehicle := testutil.NewTestVehicle(client.ID, "Ford", "Transit")
	require.NoError(t, env.vehicles.Create(ctx, vehicle))
	return vehicle
}

func TestJobService_CreateAssignsDefaults(t *testing.T) {
	env := setupJobService(t)
	ctx := context.Background()
	vehicle := seedJobVehicle(t, env)

	job := testutil.NewTestJob(vehicle.ID, "Full detail", time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC), 2)
	job.ID = ""
	job.Status = ""
	require.NoError(t, env.svc.Create(ctx, job))

	assert.NotEmpty(t, job.ID)
	assert.Equal(t, domain.JobNotStarted, job.Status)
	assert.False(t, job.CreatedAt.IsZero())
}

func TestJobService_CreateRejectsBadInput(t *testing.T) {
	env := setupJobService(t)
	ctx := context.Background()
	vehicle := seedJobVehicle(t, env)
	start := time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		mutate func(*domain.Job)
	}{
		{"zero duration", func(j *domain.Job) { j.DurationHours = 0 }},
		{"negative duration", func(j *domain.Job) { j.DurationHours = -1.5 }},
		{"zero start", func(j *domain.Job) { j.StartTime = time.Time{} }},
		{"empty title", func(j *domain.Job) { j.Title = "  " }},
		{"unknown status", func(j *domain.Job) { j.Status = "paused" }},
		{"both assignees", func(j *domain.Job) {
			e, c := "emp-1", "crew-1"
			j.EmployeeID = &e
			j.CrewID = &c
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := testutil.NewTestJob(vehicle.ID, "Wax", start, 2)
			tt.mutate(job)
			assert.Error(t, env.svc.Create(ctx, job))
		})
	}
}

func TestJobService_CreateRequiresKnownVehicle(t *testing.T) {
	env := setupJobService(t)
	ctx := context.Background()

	job := testutil.NewTestJob("no-such-vehicle", "Wax", time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC), 1)
	err := env.svc.Create(ctx, job)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resolving vehicle")
}

func TestJobService_SetStatus(t *testing.T) {
	env := setupJobService(t)
	ctx := context.Background()
	vehicle := seedJobVehicle(t, env)

	job := testutil.NewTestJob(vehicle.ID, "Ceramic coat", time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC), 4)
	require.NoError(t, env.svc.Create(ctx, job))

	require.NoError(t, env.svc.SetStatus(ctx, job.ID, domain.JobInProgress))
	fetched, err := env.svc.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobInProgress, fetched.Status)

	assert.Error(t, env.svc.SetStatus(ctx, job.ID, "archived"))
}

func TestJobService_RecordUsageDecrementsStock(t *testing.T) {
	env := setupJobService(t)
	ctx := context.Background()
	vehicle := seedJobVehicle(t, env)

	job := testutil.NewTestJob(vehicle.ID, "Interior", time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC), 2)
	require.NoError(t, env.svc.Create(ctx, job))

	item := testutil.NewTestItem("Microfiber towels", testutil.WithQuantity(10), testutil.WithCostPerUnit(3.50))
	require.NoError(t, env.items.Create(ctx, item))

	require.NoError(t, env.svc.RecordUsage(ctx, job.ID, item.ID, 4))

	after, err := env.items.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.InDelta(t, 6, after.Quantity, 0.001)

	records, err := env.usage.ListByJob(ctx, job.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.InDelta(t, 4, records[0].Quantity, 0.001)
	assert.InDelta(t, 3.50, records[0].CostAtTime, 0.001)
	assert.InDelta(t, 14, records[0].Cost(), 0.001)
}

func TestJobService_RecordUsageRejectsOverdraw(t *testing.T) {
	env := setupJobService(t)
	ctx := context.Background()
	vehicle := seedJobVehicle(t, env)

	job := testutil.NewTestJob(vehicle.ID, "Wash", time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC), 1)
	require.NoError(t, env.svc.Create(ctx, job))

	item := testutil.NewTestItem("Degreaser", testutil.WithQuantity(2))
	require.NoError(t, env.items.Create(ctx, item))

	err := env.svc.RecordUsage(ctx, job.ID, item.ID, 5)
	require.ErrorIs(t, err, ErrInsufficientStock)

	// Nothing committed on rejection: stock untouched, no usage rows.
	after, getErr := env.items.GetByID(ctx, item.ID)
	require.NoError(t, getErr)
	assert.InDelta(t, 2, after.Quantity, 0.001)

	records, listErr := env.usage.ListByJob(ctx, job.ID)
	require.NoError(t, listErr)
	assert.Empty(t, records)
}

func TestJobService_RecordUsageRejectsNonPositiveQuantity(t *testing.T) {
	env := setupJobService(t)
	ctx := context.Background()

	assert.Error(t, env.svc.RecordUsage(ctx, "j", "i", 0))
	assert.Error(t, env.svc.RecordUsage(ctx, "j", "i", -1))
}
