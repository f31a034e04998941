package service

import (
	"context"
	"testing"
	"time"

	"github.com/izayahhudnut/detailerpro/internal/contract"
	"github.com/izayahhudnut/detailerpro/internal/repository"
	"github.com/izayahhudnut/detailerpro/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type invoiceEnv struct {
	svc       InvoiceService
	jobSvc    JobService
	clients   repository.ClientRepo
	vehicles  repository.VehicleRepo
	employees repository.EmployeeRepo
	crews     repository.CrewRepo
	items     repository.InventoryRepo
}

func setupInvoiceService(t *testing.T) invoiceEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	jobRepo := repository.NewSQLiteJobRepo(database)
	vehicleRepo := repository.NewSQLiteVehicleRepo(database)
	itemRepo := repository.NewSQLiteInventoryRepo(database)
	return invoiceEnv{
		svc:       NewInvoiceService(jobRepo, itemRepo),
		jobSvc:    NewJobService(jobRepo, vehicleRepo, testutil.NewTestUoW(database)),
		clients:   repository.NewSQLiteClientRepo(database),
		vehicles:  vehicleRepo,
		employees: repository.NewSQLiteEmployeeRepo(database),
		crews:     repository.NewSQLiteCrewRepo(database),
		items:     itemRepo,
	}
}

func TestInvoiceService_LaborFromEmployeeRate(t *testing.T) {
	env := setupInvoiceService(t)
	ctx := context.Background()

	client := testutil.NewTestClient("Priya", "Nair")
	require.NoError(t, env.clients.Create(ctx, client))
	vehicle := testutil.NewTestVehicle(client.ID, "BMW", "M4")
	require.NoError(t, env.vehicles.Create(ctx, vehicle))
	tech := testutil.NewTestEmployee("Jo Reyes", testutil.WithCostPerHour(60))
	require.NoError(t, env.employees.Create(ctx, tech))

	job := testutil.NewTestJob(vehicle.ID, "Paint correction",
		time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC), 2.5, testutil.WithEmployee(tech.ID))
	require.NoError(t, env.jobSvc.Create(ctx, job))

	inv, err := env.svc.Generate(ctx, job.ID)
	require.NoError(t, err)

	assert.Equal(t, "Priya Nair", inv.ClientName)
	require.Len(t, inv.Lines, 1)
	labor := inv.Lines[0]
	assert.Equal(t, contract.LineLabor, labor.Kind)
	assert.InDelta(t, 2.5, labor.Quantity, 0.001)
	assert.InDelta(t, 60, labor.UnitCost, 0.001)
	assert.InDelta(t, 150, inv.LaborTotal, 0.001)
	assert.InDelta(t, 150, inv.Total, 0.001)
}

func TestInvoiceService_CrewBillsSummedMemberRates(t *testing.T) {
	env := setupInvoiceService(t)
	ctx := context.Background()

	client := testutil.NewTestClient("Omar", "Haddad")
	require.NoError(t, env.clients.Create(ctx, client))
	vehicle := testutil.NewTestVehicle(client.ID, "Sprinter", "Van")
	require.NoError(t, env.vehicles.Create(ctx, vehicle))

	a := testutil.NewTestEmployee("A", testutil.WithCostPerHour(40))
	b := testutil.NewTestEmployee("B", testutil.WithCostPerHour(55))
	require.NoError(t, env.employees.Create(ctx, a))
	require.NoError(t, env.employees.Create(ctx, b))

	crew := testutil.NewTestCrew("Fleet team")
	require.NoError(t, env.crews.Create(ctx, crew))
	require.NoError(t, env.crews.AddMember(ctx, crew.ID, a.ID))
	require.NoError(t, env.crews.AddMember(ctx, crew.ID, b.ID))

	job := testutil.NewTestJob(vehicle.ID, "Fleet wash",
		time.Date(2024, 3, 21, 8, 0, 0, 0, time.UTC), 2, testutil.WithCrew(crew.ID))
	require.NoError(t, env.jobSvc.Create(ctx, job))

	inv, err := env.svc.Generate(ctx, job.ID)
	require.NoError(t, err)
	require.Len(t, inv.Lines, 1)
	assert.InDelta(t, 95, inv.Lines[0].UnitCost, 0.001)
	assert.InDelta(t, 190, inv.Total, 0.001)
}

func TestInvoiceService_PartsFromUsageAtCapturedCost(t *testing.T) {
	env := setupInvoiceService(t)
	ctx := context.Background()

	client := testutil.NewTestClient("Lena", "Ortiz")
	require.NoError(t, env.clients.Create(ctx, client))
	vehicle := testutil.NewTestVehicle(client.ID, "Audi", "Q5")
	require.NoError(t, env.vehicles.Create(ctx, vehicle))

	item := testutil.NewTestItem("Ceramic coating", testutil.WithQuantity(5), testutil.WithCostPerUnit(80))
	require.NoError(t, env.items.Create(ctx, item))

	job := testutil.NewTestJob(vehicle.ID, "Coating",
		time.Date(2024, 3, 22, 10, 0, 0, 0, time.UTC), 3)
	require.NoError(t, env.jobSvc.Create(ctx, job))
	require.NoError(t, env.jobSvc.RecordUsage(ctx, job.ID, item.ID, 2))

	// Price changes after use must not rewrite the invoice.
	item.CostPerUnit = 120
	require.NoError(t, env.items.Update(ctx, item))

	inv, err := env.svc.Generate(ctx, job.ID)
	require.NoError(t, err)

	// Unassigned job bills no labor.
	require.Len(t, inv.Lines, 1)
	parts := inv.Lines[0]
	assert.Equal(t, contract.LineParts, parts.Kind)
	assert.Equal(t, "Ceramic coating", parts.Description)
	assert.InDelta(t, 80, parts.UnitCost, 0.001)
	assert.InDelta(t, 160, inv.PartsTotal, 0.001)
	assert.InDelta(t, 0, inv.LaborTotal, 0.001)
	assert.InDelta(t, 160, inv.Total, 0.001)
}

func TestInvoiceService_UnknownJob(t *testing.T) {
	env := setupInvoiceService(t)
	_, err := env.svc.Generate(context.Background(), "missing")
	assert.Error(t, err)
}
