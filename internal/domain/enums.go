package domain

type JobStatus string

const (
	JobNotStarted JobStatus = "not-started"
	JobInProgress JobStatus = "in-progress"
	JobQA         JobStatus = "qa"
	JobDone       JobStatus = "done"
)

// ValidJobStatuses is the canonical set of accepted job statuses.
var ValidJobStatuses = map[JobStatus]bool{
	JobNotStarted: true, JobInProgress: true, JobQA: true, JobDone: true,
}

type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "active"
	EmployeeInactive EmployeeStatus = "inactive"
)
