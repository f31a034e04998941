package service

import (
	"context"

	"github.com/izayahhudnut/detailerpro/internal/calendar"
	"github.com/izayahhudnut/detailerpro/internal/contract"
	"github.com/izayahhudnut/detailerpro/internal/domain"
	"github.com/izayahhudnut/detailerpro/internal/importer"
)

type ClientService interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, id string) error
}

type VehicleService interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
	List(ctx context.Context) ([]*domain.Vehicle, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	Delete(ctx context.Context, id string) error
}

type EmployeeService interface {
	Create(ctx context.Context, e *domain.Employee) error
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context, includeInactive bool) ([]*domain.Employee, error)
	Update(ctx context.Context, e *domain.Employee) error
	Delete(ctx context.Context, id string) error
}

type CrewService interface {
	Create(ctx context.Context, c *domain.Crew) error
	GetByID(ctx context.Context, id string) (*domain.CrewWithMembers, error)
	List(ctx context.Context) ([]*domain.CrewWithMembers, error)
	AddMember(ctx context.Context, crewID, employeeID string) error
	RemoveMember(ctx context.Context, crewID, employeeID string) error
	Delete(ctx context.Context, id string) error
}

type InventoryService interface {
	Create(ctx context.Context, i *domain.InventoryItem) error
	GetByID(ctx context.Context, id string) (*domain.InventoryItem, error)
	List(ctx context.Context) ([]*domain.InventoryItem, error)
	Update(ctx context.Context, i *domain.InventoryItem) error
	Restock(ctx context.Context, id string, quantity float64) error
	LowStock(ctx context.Context) ([]*domain.InventoryItem, error)
	Delete(ctx context.Context, id string) error
}

type JobService interface {
	Create(ctx context.Context, j *domain.Job) error
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	GetDetail(ctx context.Context, id string) (*domain.JobDetail, error)
	List(ctx context.Context) ([]*domain.Job, error)
	Update(ctx context.Context, j *domain.Job) error
	SetStatus(ctx context.Context, id string, status domain.JobStatus) error
	// RecordUsage consumes stock for a job inside one transaction: the
	// item's quantity is decremented and a usage record is written with
	// the unit cost captured at use time.
	RecordUsage(ctx context.Context, jobID, itemID string, quantity float64) error
	Delete(ctx context.Context, id string) error
}

type TemplateService interface {
	Create(ctx context.Context, t *domain.ProgressTemplate) error
	GetByID(ctx context.Context, id string) (*domain.ProgressTemplate, error)
	List(ctx context.Context) ([]*domain.ProgressTemplate, error)
	Delete(ctx context.Context, id string) error
}

type TodoService interface {
	// Toggle flips completion of a (job, step) checklist entry, creating
	// the record on first touch.
	Toggle(ctx context.Context, jobID, stepID string, completed bool) (*domain.Todo, error)
	ListByJob(ctx context.Context, jobID string) ([]domain.Todo, error)
}

type ScheduleService interface {
	// GetSchedule loads the jobs overlapping the request's visible range
	// and lays them out in one call. One-shot renders (schedule show,
	// export) use this.
	GetSchedule(ctx context.Context, req contract.ScheduleRequest) (*contract.ScheduleResponse, error)
	// GetSnapshot loads the full job list with display context for
	// client-side layout. Calling it again is the explicit refresh
	// boundary.
	GetSnapshot(ctx context.Context) (*contract.ScheduleSnapshot, error)
	// Layout positions an already-loaded snapshot for one view state.
	// Pure recompute, no I/O; navigation never touches the database.
	Layout(snap *contract.ScheduleSnapshot, state calendar.ViewState) *contract.ScheduleResponse
}

type InvoiceService interface {
	Generate(ctx context.Context, jobID string) (*contract.Invoice, error)
}

type ImportService interface {
	ImportSnapshot(ctx context.Context, filePath string) (*ImportResult, error)
	ImportFromSchema(ctx context.Context, schema *importer.SnapshotSchema) (*ImportResult, error)
}
