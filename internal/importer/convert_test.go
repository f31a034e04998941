package importer

import (
	"testing"
	"time"

	"github.com/izayahhudnut/detailerpro/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_ResolvesRefsToUUIDs(t *testing.T) {
	schema := validMinimalSchema()
	schema.Employees = []EmployeeImport{{Ref: "e1", Name: "Jo Reyes", CostPerHour: 55}}
	schema.Jobs[0].EmployeeRef = ptrStr("e1")

	snap, err := Convert(schema)
	require.NoError(t, err)

	require.Len(t, snap.Clients, 1)
	require.Len(t, snap.Vehicles, 1)
	require.Len(t, snap.Jobs, 1)

	client := snap.Clients[0]
	vehicle := snap.Vehicles[0]
	job := snap.Jobs[0]

	assert.NotEmpty(t, client.ID)
	assert.Equal(t, client.ID, vehicle.ClientID)
	assert.Equal(t, vehicle.ID, job.VehicleID)
	require.NotNil(t, job.EmployeeID)
	assert.Equal(t, snap.Employees[0].ID, *job.EmployeeID)
	assert.Nil(t, job.CrewID)
}

func TestConvert_ParsesTimesAndDefaults(t *testing.T) {
	schema := validMinimalSchema()
	schema.Employees = []EmployeeImport{{Ref: "e1", Name: "Sam", HireDate: ptrStr("2022-06-01")}}

	snap, err := Convert(schema)
	require.NoError(t, err)

	job := snap.Jobs[0]
	assert.Equal(t, time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC), job.StartTime.UTC())
	assert.Equal(t, domain.JobNotStarted, job.Status)

	emp := snap.Employees[0]
	assert.Equal(t, domain.EmployeeActive, emp.Status)
	require.NotNil(t, emp.HireDate)
	assert.Equal(t, 2022, emp.HireDate.Year())
}

func TestConvert_CrewMembership(t *testing.T) {
	schema := validMinimalSchema()
	schema.Employees = []EmployeeImport{
		{Ref: "e1", Name: "A"},
		{Ref: "e2", Name: "B"},
	}
	schema.Crews = []CrewImport{{Ref: "cr1", Name: "Team", MemberRefs: []string{"e1", "e2"}}}

	snap, err := Convert(schema)
	require.NoError(t, err)
	require.Len(t, snap.Crews, 1)

	members := snap.CrewMembers[snap.Crews[0].ID]
	require.Len(t, members, 2)
	assert.Equal(t, snap.Employees[0].ID, members[0])
	assert.Equal(t, snap.Employees[1].ID, members[1])
}

func TestConvert_TemplateStepsNumbered(t *testing.T) {
	schema := validMinimalSchema()
	schema.Templates = []TemplateImport{
		{Ref: "t1", Name: "Full detail", Steps: []StepImport{{Title: "Wash"}, {Title: "Clay"}, {Title: "Seal"}}},
	}
	schema.Jobs[0].TemplateRef = ptrStr("t1")

	snap, err := Convert(schema)
	require.NoError(t, err)
	require.Len(t, snap.Templates, 1)

	tmpl := snap.Templates[0]
	require.Len(t, tmpl.Steps, 3)
	for i, step := range tmpl.Steps {
		assert.Equal(t, i+1, step.OrderNumber)
		assert.Equal(t, tmpl.ID, step.TemplateID)
	}
	require.NotNil(t, snap.Jobs[0].TemplateID)
	assert.Equal(t, tmpl.ID, *snap.Jobs[0].TemplateID)
}

func TestConvert_InventoryUnitDefault(t *testing.T) {
	schema := validMinimalSchema()
	schema.Inventory = []InventoryImport{{Ref: "i1", Name: "Wax", Quantity: 3}}

	snap, err := Convert(schema)
	require.NoError(t, err)
	require.Len(t, snap.Inventory, 1)
	assert.Equal(t, "unit", snap.Inventory[0].Unit)
}
