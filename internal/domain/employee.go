package domain

import "time"

type Employee struct {
	ID             string
	Name           string
	Email          string
	Phone          string
	Specialization string
	HireDate       *time.Time
	Status         EmployeeStatus
	Certifications []string
	CostPerHour    float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Crew struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CrewWithMembers carries a crew and its resolved member list.
type CrewWithMembers struct {
	Crew
	Members []*Employee
}

// HourlyCost is the summed hourly rate across all members.
func (c *CrewWithMembers) HourlyCost() float64 {
	var total float64
	for _, m := range c.Members {
		total += m.CostPerHour
	}
	return total
}
