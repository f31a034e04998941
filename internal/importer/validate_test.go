package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrStr(s string) *string { return &s }

func validMinimalSchema() *SnapshotSchema {
	return &SnapshotSchema{
		Clients: []ClientImport{
			{
				Ref:       "c1",
				FirstName: "Dana",
				LastName:  "Whitfield",
				Vehicles: []VehicleImport{
					{Ref: "v1", Make: "Honda", Model: "Civic"},
				},
			},
		},
		Jobs: []JobImport{
			{
				Ref:           "j1",
				Title:         "Exterior wash",
				VehicleRef:    "v1",
				StartTime:     "2024-03-20T09:00:00Z",
				DurationHours: 1.5,
			},
		},
	}
}

func TestValidateSnapshotSchema_ValidMinimal(t *testing.T) {
	errs := ValidateSnapshotSchema(validMinimalSchema())
	assert.Empty(t, errs)
}

func TestValidateSnapshotSchema_ValidFull(t *testing.T) {
	schema := validMinimalSchema()
	schema.Employees = []EmployeeImport{
		{Ref: "e1", Name: "Jo Reyes", Status: "active", CostPerHour: 55, HireDate: ptrStr("2022-06-01"), Certifications: []string{"Ceramic Pro"}},
		{Ref: "e2", Name: "Sam Park"},
	}
	schema.Crews = []CrewImport{
		{Ref: "cr1", Name: "Detail team", MemberRefs: []string{"e1", "e2"}},
	}
	schema.Inventory = []InventoryImport{
		{Ref: "i1", Name: "Wax", Quantity: 10, Unit: "ea"},
	}
	schema.Templates = []TemplateImport{
		{Ref: "t1", Name: "Full detail", Steps: []StepImport{{Title: "Wash"}, {Title: "Dry"}}},
	}
	schema.Jobs = append(schema.Jobs, JobImport{
		Ref: "j2", Title: "Crew job", VehicleRef: "v1", CrewRef: ptrStr("cr1"),
		TemplateRef: ptrStr("t1"), StartTime: "2024-03-21T08:00:00Z", DurationHours: 4, Status: "in-progress",
	})

	errs := ValidateSnapshotSchema(schema)
	assert.Empty(t, errs)
}

func TestValidateSnapshotSchema_DuplicateRefs(t *testing.T) {
	schema := validMinimalSchema()
	schema.Clients = append(schema.Clients, ClientImport{Ref: "c1", FirstName: "Other"})

	errs := ValidateSnapshotSchema(schema)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Error(), `duplicate ref "c1"`)
}

func TestValidateSnapshotSchema_JobErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*JobImport)
		want   string
	}{
		{"missing vehicle", func(j *JobImport) { j.VehicleRef = "ghost" }, `vehicle_ref "ghost" not found`},
		{"bad start time", func(j *JobImport) { j.StartTime = "next tuesday" }, "invalid start_time"},
		{"zero duration", func(j *JobImport) { j.DurationHours = 0 }, "duration_hours must be positive"},
		{"negative duration", func(j *JobImport) { j.DurationHours = -2 }, "duration_hours must be positive"},
		{"bad status", func(j *JobImport) { j.Status = "paused" }, `invalid status "paused"`},
		{"both assignees", func(j *JobImport) {
			j.EmployeeRef = ptrStr("e-missing")
			j.CrewRef = ptrStr("cr-missing")
		}, "mutually exclusive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := validMinimalSchema()
			tt.mutate(&schema.Jobs[0])
			errs := ValidateSnapshotSchema(schema)
			require.NotEmpty(t, errs)
			found := false
			for _, e := range errs {
				if strings.Contains(e.Error(), tt.want) {
					found = true
				}
			}
			assert.True(t, found, "expected an error containing %q, got %v", tt.want, errs)
		})
	}
}

func TestValidateSnapshotSchema_CollectsAllErrors(t *testing.T) {
	schema := &SnapshotSchema{
		Clients: []ClientImport{
			{Ref: "", FirstName: ""},
		},
		Employees: []EmployeeImport{
			{Ref: "e1", Name: "", CostPerHour: -5},
		},
	}
	errs := ValidateSnapshotSchema(schema)
	assert.GreaterOrEqual(t, len(errs), 4)
}

func TestValidateSnapshotSchema_CrewUnknownMember(t *testing.T) {
	schema := validMinimalSchema()
	schema.Crews = []CrewImport{{Ref: "cr1", Name: "Team", MemberRefs: []string{"ghost"}}}

	errs := ValidateSnapshotSchema(schema)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Error(), `member_ref "ghost" not found`)
}
