package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJob_End(t *testing.T) {
	j := &Job{
		StartTime:     time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC),
		DurationHours: 2.5,
	}
	assert.Equal(t, time.Date(2024, 3, 20, 11, 30, 0, 0, time.UTC), j.End())
}

func TestJobDetail_AssigneeLabel(t *testing.T) {
	empID := "e1"
	crewID := "c1"

	unassigned := &JobDetail{}
	assert.Equal(t, "Unassigned", unassigned.AssigneeLabel())

	withEmployee := &JobDetail{
		Job:      Job{EmployeeID: &empID},
		Employee: &Employee{Name: "Sam Reed"},
	}
	assert.Equal(t, "Sam Reed", withEmployee.AssigneeLabel())

	withCrew := &JobDetail{
		Job:  Job{CrewID: &crewID},
		Crew: &CrewWithMembers{Crew: Crew{Name: "Paint Team"}},
	}
	assert.Equal(t, "Crew: Paint Team", withCrew.AssigneeLabel())
}

func TestCrewWithMembers_HourlyCost(t *testing.T) {
	crew := &CrewWithMembers{
		Members: []*Employee{
			{CostPerHour: 40},
			{CostPerHour: 55},
		},
	}
	assert.Equal(t, 95.0, crew.HourlyCost())

	empty := &CrewWithMembers{}
	assert.Equal(t, 0.0, empty.HourlyCost())
}

func TestInventoryItem_LowStock(t *testing.T) {
	assert.True(t, (&InventoryItem{Quantity: 2, MinimumStock: 5}).LowStock())
	assert.True(t, (&InventoryItem{Quantity: 5, MinimumStock: 5}).LowStock())
	assert.False(t, (&InventoryItem{Quantity: 6, MinimumStock: 5}).LowStock())
}

func TestUsageRecord_Cost(t *testing.T) {
	u := &UsageRecord{Quantity: 4, CostAtTime: 3.5}
	assert.Equal(t, 14.0, u.Cost())
}
