package repository

import (
	"context"
	"testing"

	"github.com/izayahhudnut/detailerpro/internal/domain"
	"github.com/izayahhudnut/detailerpro/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeRepo_CertificationsRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteEmployeeRepo(database)

	e := testutil.NewTestEmployee("Sarah Johnson",
		testutil.WithCertifications("A&P License", "Avionics, Level II"))
	require.NoError(t, repo.Create(ctx, e))

	got, err := repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"A&P License", "Avionics, Level II"}, got.Certifications,
		"entries containing commas must survive storage")
}

func TestEmployeeRepo_ListFiltersInactive(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteEmployeeRepo(database)

	active := testutil.NewTestEmployee("Active Tech")
	inactive := testutil.NewTestEmployee("Former Tech",
		testutil.WithEmployeeStatus(domain.EmployeeInactive))
	require.NoError(t, repo.Create(ctx, active))
	require.NoError(t, repo.Create(ctx, inactive))

	onlyActive, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, onlyActive, 1)
	assert.Equal(t, "Active Tech", onlyActive[0].Name)

	all, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCrewRepo_MembersAndHourlyCost(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	employees := NewSQLiteEmployeeRepo(database)
	crews := NewSQLiteCrewRepo(database)

	a := testutil.NewTestEmployee("Tech A", testutil.WithCostPerHour(40))
	b := testutil.NewTestEmployee("Tech B", testutil.WithCostPerHour(55))
	require.NoError(t, employees.Create(ctx, a))
	require.NoError(t, employees.Create(ctx, b))

	crew := &domain.Crew{ID: "crew-1", Name: "Night Shift"}
	crew.CreatedAt = a.CreatedAt
	crew.UpdatedAt = a.UpdatedAt
	require.NoError(t, crews.Create(ctx, crew))
	require.NoError(t, crews.AddMember(ctx, crew.ID, a.ID))
	require.NoError(t, crews.AddMember(ctx, crew.ID, b.ID))

	got, err := crews.GetByID(ctx, crew.ID)
	require.NoError(t, err)
	require.Len(t, got.Members, 2)
	assert.Equal(t, 95.0, got.HourlyCost())

	require.NoError(t, crews.RemoveMember(ctx, crew.ID, a.ID))
	got, err = crews.GetByID(ctx, crew.ID)
	require.NoError(t, err)
	assert.Len(t, got.Members, 1)
}

func TestTodoRepo_UpsertTogglesInPlace(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	todos := NewSQLiteTodoRepo(database)
	templates := NewSQLiteTemplateRepo(database)
	jobs := NewSQLiteJobRepo(database)
	_, v := seedVehicle(t, NewSQLiteClientRepo(database), NewSQLiteVehicleRepo(database))

	tpl := &domain.ProgressTemplate{
		ID: "tpl-1", Name: "Full Detail",
		Steps: []domain.ProgressStep{{ID: "step-1", TemplateID: "tpl-1", Title: "Wash", OrderNumber: 1}},
	}
	require.NoError(t, templates.Create(ctx, tpl))
	j := testutil.NewTestJob(v.ID, "Detail", v.CreatedAt, 2)
	require.NoError(t, jobs.Create(ctx, j))

	missing, err := todos.GetByJobStep(ctx, j.ID, "step-1")
	require.NoError(t, err)
	assert.Nil(t, missing, "no todo yet for this pair")

	now := j.CreatedAt
	first := &domain.Todo{
		ID: "t-1", JobID: j.ID, StepID: "step-1",
		Completed: true, CompletedAt: &now, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, todos.Upsert(ctx, first))

	// Toggling off reuses the existing row.
	second := &domain.Todo{
		ID: "t-2", JobID: j.ID, StepID: "step-1",
		Completed: false, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, todos.Upsert(ctx, second))

	got, err := todos.GetByJobStep(ctx, j.ID, "step-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "t-1", got.ID, "conflict update keeps the original row")
	assert.False(t, got.Completed)
	assert.Nil(t, got.CompletedAt)

	list, err := todos.ListByJob(ctx, j.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
