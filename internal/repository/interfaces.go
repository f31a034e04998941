package repository

import (
	"context"
	"time"

	"github.com/izayahhudnut/detailerpro/internal/domain"
)

type ClientRepo interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, id string) error
}

type VehicleRepo interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
	List(ctx context.Context) ([]*domain.Vehicle, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	Delete(ctx context.Context, id string) error
}

type EmployeeRepo interface {
	Create(ctx context.Context, e *domain.Employee) error
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context, includeInactive bool) ([]*domain.Employee, error)
	Update(ctx context.Context, e *domain.Employee) error
	Delete(ctx context.Context, id string) error
}

type CrewRepo interface {
	Create(ctx context.Context, c *domain.Crew) error
	GetByID(ctx context.Context, id string) (*domain.CrewWithMembers, error)
	List(ctx context.Context) ([]*domain.CrewWithMembers, error)
	Update(ctx context.Context, c *domain.Crew) error
	Delete(ctx context.Context, id string) error
	AddMember(ctx context.Context, crewID, employeeID string) error
	RemoveMember(ctx context.Context, crewID, employeeID string) error
}

type InventoryRepo interface {
	Create(ctx context.Context, i *domain.InventoryItem) error
	GetByID(ctx context.Context, id string) (*domain.InventoryItem, error)
	List(ctx context.Context) ([]*domain.InventoryItem, error)
	Update(ctx context.Context, i *domain.InventoryItem) error
	Delete(ctx context.Context, id string) error
}

type JobRepo interface {
	Create(ctx context.Context, j *domain.Job) error
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	GetDetail(ctx context.Context, id string) (*domain.JobDetail, error)
	List(ctx context.Context) ([]*domain.Job, error)
	// ListWindow returns jobs whose [start, end) interval overlaps
	// [from, to); the calendar uses it to load a view snapshot, including
	// jobs that began before the window but continue into it.
	ListWindow(ctx context.Context, from, to time.Time) ([]*domain.Job, error)
	ListDetails(ctx context.Context) ([]*domain.JobDetail, error)
	ListDetailsWindow(ctx context.Context, from, to time.Time) ([]*domain.JobDetail, error)
	Update(ctx context.Context, j *domain.Job) error
	Delete(ctx context.Context, id string) error
}

type UsageRepo interface {
	Create(ctx context.Context, u *domain.UsageRecord) error
	ListByJob(ctx context.Context, jobID string) ([]domain.UsageRecord, error)
}

type TemplateRepo interface {
	Create(ctx context.Context, t *domain.ProgressTemplate) error
	GetByID(ctx context.Context, id string) (*domain.ProgressTemplate, error)
	List(ctx context.Context) ([]*domain.ProgressTemplate, error)
	Delete(ctx context.Context, id string) error
}

type TodoRepo interface {
	// GetByJobStep returns nil (no error) when no todo exists yet for the
	// (job, step) pair.
	GetByJobStep(ctx context.Context, jobID, stepID string) (*domain.Todo, error)
	Upsert(ctx context.Context, t *domain.Todo) error
	ListByJob(ctx context.Context, jobID string) ([]domain.Todo, error)
}
