package cli

import (
	"context"
	"testing"
	"time"

	"github.com/izayahhudnut/detailerpro/internal/calendar"
	"github.com/izayahhudnut/detailerpro/internal/repository"
	"github.com/izayahhudnut/detailerpro/internal/service"
	"github.com/izayahhudnut/detailerpro/internal/teatest"
	"github.com/izayahhudnut/detailerpro/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scheduleTUIEnv struct {
	app     *App
	jobs    repository.JobRepo
	vehicle string
}

func setupScheduleApp(t *testing.T) scheduleTUIEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	clientRepo := repository.NewSQLiteClientRepo(database)
	vehicleRepo := repository.NewSQLiteVehicleRepo(database)
	jobRepo := repository.NewSQLiteJobRepo(database)

	client := testutil.NewTestClient("Dana", "Ortiz")
	require.NoError(t, clientRepo.Create(ctx, client))
	vehicle := testutil.NewTestVehicle(client.ID, "Audi", "A4")
	require.NoError(t, vehicleRepo.Create(ctx, vehicle))

	job := testutil.NewTestJob(vehicle.ID, "Ceramic coat", time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC), 3)
	require.NoError(t, jobRepo.Create(ctx, job))

	app := &App{
		Schedule: service.NewScheduleService(jobRepo, calendar.DefaultOptions()),
	}
	return scheduleTUIEnv{app: app, jobs: jobRepo, vehicle: vehicle.ID}
}

func newScheduleDriver(t *testing.T, env scheduleTUIEnv) *teatest.Driver {
	t.Helper()
	anchor := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	model := newScheduleModel(env.app, anchor, calendar.GranularityWeek)
	d := teatest.New(t, model, teatest.WithSize(120, 40))
	d.DrainInit()
	return d
}

func TestScheduleModel_InitialLoadShowsJobs(t *testing.T) {
	d := newScheduleDriver(t, setupScheduleApp(t))

	view := d.View()
	assert.Contains(t, view, "Ceramic coat")
	assert.Contains(t, view, "Mar 17")
	assert.Contains(t, view, "Mar 23")
}

func TestScheduleModel_GranularityKeysSwitchView(t *testing.T) {
	d := newScheduleDriver(t, setupScheduleApp(t))

	d.PressKey('m')
	assert.Contains(t, d.View(), "MARCH 2024")

	d.PressKey('y')
	assert.Contains(t, d.View(), "2024")

	d.PressKey('d')
	assert.Contains(t, d.View(), "MARCH 20, 2024")

	d.PressKey('w')
	assert.Contains(t, d.View(), "Mar 17")
}

func TestScheduleModel_NavigationMovesWindow(t *testing.T) {
	d := newScheduleDriver(t, setupScheduleApp(t))

	d.PressKey('l')
	view := d.View()
	assert.Contains(t, view, "Mar 24")
	assert.NotContains(t, view, "Ceramic coat")

	d.PressKey('h')
	view = d.View()
	assert.Contains(t, view, "Mar 17")
	assert.Contains(t, view, "Ceramic coat")
}

func TestScheduleModel_TodayResetsAnchor(t *testing.T) {
	d := newScheduleDriver(t, setupScheduleApp(t))

	for i := 0; i < 5; i++ {
		d.PressKey('l')
	}
	assert.NotContains(t, d.View(), "Mar 17")

	d.PressKey('t')
	// Anchor resets to the wall clock, so the header shows the current week.
	weekStart := calendar.WeekStart(time.Now())
	assert.Contains(t, d.View(), weekStart.Format("Jan 2"))
}

func TestScheduleModel_NavigationDoesNotSeeNewJobsUntilRefresh(t *testing.T) {
	env := setupScheduleApp(t)
	d := newScheduleDriver(t, env)
	ctx := context.Background()

	// Written after the snapshot was loaded.
	late := testutil.NewTestJob(env.vehicle, "Engine bay clean", time.Date(2024, 3, 21, 13, 0, 0, 0, time.UTC), 1)
	require.NoError(t, env.jobs.Create(ctx, late))

	// Pure navigation keeps rendering the stale snapshot.
	d.PressKey('l')
	d.PressKey('h')
	assert.NotContains(t, d.View(), "Engine bay clean")

	d.PressKey('r')
	assert.Contains(t, d.View(), "Engine bay clean")
}

func TestScheduleModel_QuitKeys(t *testing.T) {
	d := newScheduleDriver(t, setupScheduleApp(t))

	d.PressKey('q')
	assert.True(t, d.Quitting)

	d = newScheduleDriver(t, setupScheduleApp(t))
	d.PressCtrlC()
	assert.True(t, d.Quitting)
}
