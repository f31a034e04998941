package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/izayahhudnut/detailerpro/internal/domain"
)

// Client options
type ClientOption func(*domain.Client)

func WithClientEmail(email string) ClientOption {
	return func(c *domain.Client) {
		c.Email = email
	}
}

func NewTestClient(first, last string, opts ...ClientOption) *domain.Client {
	now := time.Now().UTC().Truncate(time.Second)
	c := &domain.Client{
		ID:        uuid.New().String(),
		FirstName: first,
		LastName:  last,
		City:      "St. Louis",
		State:     "MO",
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Vehicle options
type VehicleOption func(*domain.Vehicle)

func WithRegistration(reg string) VehicleOption {
	return func(v *domain.Vehicle) {
		v.Registration = reg
	}
}

func NewTestVehicle(clientID, makeName, model string, opts ...VehicleOption) *domain.Vehicle {
	now := time.Now().UTC().Truncate(time.Second)
	v := &domain.Vehicle{
		ID:        uuid.New().String(),
		ClientID:  clientID,
		Make:      makeName,
		Model:     model,
		Year:      "2020",
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Employee options
type EmployeeOption func(*domain.Employee)

func WithCostPerHour(cost float64) EmployeeOption {
	return func(e *domain.Employee) {
		e.CostPerHour = cost
	}
}

func WithEmployeeStatus(s domain.EmployeeStatus) EmployeeOption {
	return func(e *domain.Employee) {
		e.Status = s
	}
}

func WithCertifications(certs ...string) EmployeeOption {
	return func(e *domain.Employee) {
		e.Certifications = certs
	}
}

func NewTestEmployee(name string, opts ...EmployeeOption) *domain.Employee {
	now := time.Now().UTC().Truncate(time.Second)
	e := &domain.Employee{
		ID:             uuid.New().String(),
		Name:           name,
		Specialization: "General Maintenance",
		Status:         domain.EmployeeActive,
		CostPerHour:    45,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func NewTestCrew(name string) *domain.Crew {
	now := time.Now().UTC().Truncate(time.Second)
	return &domain.Crew{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewTestTemplate builds a checklist template with one step per title, in
// order.
func NewTestTemplate(name string, stepTitles ...string) *domain.ProgressTemplate {
	now := time.Now().UTC().Truncate(time.Second)
	t := &domain.ProgressTemplate{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for i, title := range stepTitles {
		t.Steps = append(t.Steps, domain.ProgressStep{
			ID:          uuid.New().String(),
			TemplateID:  t.ID,
			Title:       title,
			OrderNumber: i + 1,
			CreatedAt:   now,
		})
	}
	return t
}

// Inventory options
type ItemOption func(*domain.InventoryItem)

func WithQuantity(q float64) ItemOption {
	return func(i *domain.InventoryItem) {
		i.Quantity = q
	}
}

func WithMinimumStock(m float64) ItemOption {
	return func(i *domain.InventoryItem) {
		i.MinimumStock = m
	}
}

func WithCostPerUnit(c float64) ItemOption {
	return func(i *domain.InventoryItem) {
		i.CostPerUnit = c
	}
}

func NewTestItem(name string, opts ...ItemOption) *domain.InventoryItem {
	now := time.Now().UTC().Truncate(time.Second)
	i := &domain.InventoryItem{
		ID:           uuid.New().String(),
		Name:         name,
		Type:         "consumable",
		Quantity:     10,
		MinimumStock: 2,
		Unit:         "ea",
		CostPerUnit:  5,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Job options
type JobOption func(*domain.Job)

func WithJobStatus(s domain.JobStatus) JobOption {
	return func(j *domain.Job) {
		j.Status = s
	}
}

func WithEmployee(employeeID string) JobOption {
	return func(j *domain.Job) {
		j.EmployeeID = &employeeID
		j.CrewID = nil
	}
}

func WithCrew(crewID string) JobOption {
	return func(j *domain.Job) {
		j.CrewID = &crewID
		j.EmployeeID = nil
	}
}

func NewTestJob(vehicleID, title string, start time.Time, hours float64, opts ...JobOption) *domain.Job {
	now := time.Now().UTC().Truncate(time.Second)
	j := &domain.Job{
		ID:            uuid.New().String(),
		Title:         title,
		VehicleID:     vehicleID,
		StartTime:     start,
		DurationHours: hours,
		Status:        domain.JobNotStarted,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}
