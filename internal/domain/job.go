package domain

import "time"

// Job is a scheduled piece of shop work against a single vehicle. Exactly one
// of EmployeeID / CrewID may be set; both empty means unassigned.
type Job struct {
	ID            string
	Title         string
	Description   string
	VehicleID     string
	EmployeeID    *string
	CrewID        *string
	StartTime     time.Time
	DurationHours float64
	Status        JobStatus
	TemplateID    *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// End is the derived end of the job's scheduled window. Never persisted.
func (j *Job) End() time.Time {
	return j.StartTime.Add(time.Duration(float64(time.Hour) * j.DurationHours))
}

// JobDetail is a job joined with its display context: the vehicle, the owning
// client, and whichever assignee (employee or crew) the job carries.
type JobDetail struct {
	Job
	Vehicle    Vehicle
	Client     Client
	Employee   *Employee
	Crew       *CrewWithMembers
	Usage      []UsageRecord
	Todos      []Todo
}

// AssigneeLabel names who the job is assigned to, for lists and calendars.
func (d *JobDetail) AssigneeLabel() string {
	switch {
	case d.Employee != nil:
		return d.Employee.Name
	case d.Crew != nil:
		return "Crew: " + d.Crew.Name
	default:
		return "Unassigned"
	}
}
