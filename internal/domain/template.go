package domain

import "time"

// ProgressTemplate is a reusable checklist applied to jobs.
type ProgressTemplate struct {
	ID          string
	Name        string
	Description string
	Steps       []ProgressStep
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ProgressStep struct {
	ID          string
	TemplateID  string
	Title       string
	Description string
	OrderNumber int
	CreatedAt   time.Time
}

// Todo records completion of one template step on one job.
type Todo struct {
	ID          string
	JobID       string
	StepID      string
	Description string
	Completed   bool
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
