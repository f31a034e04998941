package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/izayahhudnut/detailerpro/internal/db"
	"github.com/izayahhudnut/detailerpro/internal/domain"
)

const jobColumns = `id, title, description, vehicle_id, employee_id, crew_id,
		start_time, duration_hours, status, template_id, created_at, updated_at`

// windowOverlap matches jobs whose [start, start+duration) interval overlaps
// [?, ?): jobs that began before the window but run into it still match.
const windowOverlap = `datetime(start_time) < datetime(?)
		AND datetime(start_time, '+' || CAST(duration_hours * 3600 AS INTEGER) || ' seconds') > datetime(?)`

// SQLiteJobRepo implements JobRepo using a SQLite database.
type SQLiteJobRepo struct {
	db db.DBTX
}

// NewSQLiteJobRepo creates a new SQLiteJobRepo.
func NewSQLiteJobRepo(conn db.DBTX) *SQLiteJobRepo {
	return &SQLiteJobRepo{db: conn}
}

func (r *SQLiteJobRepo) Create(ctx context.Context, j *domain.Job) error {
	query := `INSERT INTO jobs (` + jobColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		j.ID, j.Title, j.Description, j.VehicleID,
		nullableStringToValue(j.EmployeeID),
		nullableStringToValue(j.CrewID),
		j.StartTime.UTC().Format(time.RFC3339),
		j.DurationHours,
		string(j.Status),
		nullableStringToValue(j.TemplateID),
		j.CreatedAt.Format(time.RFC3339), j.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting job: %w", err)
	}
	return nil
}

func (r *SQLiteJobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = ?`
	j, err := scanJob(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("job not found")
	}
	return j, err
}

func (r *SQLiteJobRepo) List(ctx context.Context) ([]*domain.Job, error) {
	return r.list(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY start_time, id`)
}

func (r *SQLiteJobRepo) ListWindow(ctx context.Context, from, to time.Time) ([]*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE ` + windowOverlap + ` ORDER BY start_time, id`
	return r.list(ctx, query, to.UTC().Format(time.RFC3339), from.UTC().Format(time.RFC3339))
}

func (r *SQLiteJobRepo) list(ctx context.Context, query string, args ...any) ([]*domain.Job, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*domain.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating jobs: %w", err)
	}
	return jobs, nil
}

// GetDetail loads a job with its vehicle, owning client, assignee, inventory
// usage, and todos resolved.
func (r *SQLiteJobRepo) GetDetail(ctx context.Context, id string) (*domain.JobDetail, error) {
	d, err := r.detail(ctx, id)
	if err != nil {
		return nil, err
	}

	usage := NewSQLiteUsageRepo(r.db)
	if d.Usage, err = usage.ListByJob(ctx, id); err != nil {
		return nil, err
	}
	todos := NewSQLiteTodoRepo(r.db)
	if d.Todos, err = todos.ListByJob(ctx, id); err != nil {
		return nil, err
	}
	return d, nil
}

// ListDetails loads every job with display context (vehicle, client,
// assignee) resolved; usage and todos are left empty since calendars don't
// show them.
func (r *SQLiteJobRepo) ListDetails(ctx context.Context) ([]*domain.JobDetail, error) {
	jobs, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	return r.details(ctx, jobs)
}

// ListDetailsWindow is ListDetails restricted to jobs overlapping [from, to).
func (r *SQLiteJobRepo) ListDetailsWindow(ctx context.Context, from, to time.Time) ([]*domain.JobDetail, error) {
	jobs, err := r.ListWindow(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return r.details(ctx, jobs)
}

func (r *SQLiteJobRepo) details(ctx context.Context, jobs []*domain.Job) ([]*domain.JobDetail, error) {
	details := make([]*domain.JobDetail, 0, len(jobs))
	for _, j := range jobs {
		d, err := r.detail(ctx, j.ID)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, nil
}

func (r *SQLiteJobRepo) detail(ctx context.Context, id string) (*domain.JobDetail, error) {
	j, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	d := &domain.JobDetail{Job: *j}

	vehicles := NewSQLiteVehicleRepo(r.db)
	v, err := vehicles.GetByID(ctx, j.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("resolving job vehicle: %w", err)
	}
	d.Vehicle = *v

	clients := NewSQLiteClientRepo(r.db)
	c, err := clients.GetByID(ctx, v.ClientID)
	if err != nil {
		return nil, fmt.Errorf("resolving vehicle owner: %w", err)
	}
	d.Client = *c

	if j.EmployeeID != nil {
		employees := NewSQLiteEmployeeRepo(r.db)
		e, err := employees.GetByID(ctx, *j.EmployeeID)
		if err != nil {
			return nil, fmt.Errorf("resolving job employee: %w", err)
		}
		d.Employee = e
	}
	if j.CrewID != nil {
		crews := NewSQLiteCrewRepo(r.db)
		cw, err := crews.GetByID(ctx, *j.CrewID)
		if err != nil {
			return nil, fmt.Errorf("resolving job crew: %w", err)
		}
		d.Crew = cw
	}
	return d, nil
}

func (r *SQLiteJobRepo) Update(ctx context.Context, j *domain.Job) error {
	query := `UPDATE jobs SET title = ?, description = ?, vehicle_id = ?, employee_id = ?,
		crew_id = ?, start_time = ?, duration_hours = ?, status = ?, template_id = ?,
		updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		j.Title, j.Description, j.VehicleID,
		nullableStringToValue(j.EmployeeID),
		nullableStringToValue(j.CrewID),
		j.StartTime.UTC().Format(time.RFC3339),
		j.DurationHours,
		string(j.Status),
		nullableStringToValue(j.TemplateID),
		j.UpdatedAt.Format(time.RFC3339), j.ID,
	)
	if err != nil {
		return fmt.Errorf("updating job: %w", err)
	}
	return requireRowAffected(res, "job")
}

func (r *SQLiteJobRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting job: %w", err)
	}
	return requireRowAffected(res, "job")
}

func scanJob(s scanner) (*domain.Job, error) {
	var j domain.Job
	var statusStr, startStr string
	var employeeIDStr, crewIDStr, templateIDStr sql.NullString
	var createdAtStr, updatedAtStr string
	err := s.Scan(
		&j.ID, &j.Title, &j.Description, &j.VehicleID,
		&employeeIDStr, &crewIDStr,
		&startStr, &j.DurationHours, &statusStr, &templateIDStr,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning job: %w", err)
	}

	j.Status = domain.JobStatus(statusStr)
	j.EmployeeID = nullStringToPtr(employeeIDStr)
	j.CrewID = nullStringToPtr(crewIDStr)
	j.TemplateID = nullStringToPtr(templateIDStr)

	var parseErr error
	j.StartTime, parseErr = time.Parse(time.RFC3339, startStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing start_time: %w", parseErr)
	}
	j.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	j.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &j, nil
}
