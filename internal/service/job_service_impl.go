package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/izayahhudnut/detailerpro/internal/db"
	"github.com/izayahhudnut/detailerpro/internal/domain"
	"github.com/izayahhudnut/detailerpro/internal/repository"
)

type jobService struct {
	jobs     repository.JobRepo
	vehicles repository.VehicleRepo
	uow      db.UnitOfWork
}

func NewJobService(jobs repository.JobRepo, vehicles repository.VehicleRepo, uow db.UnitOfWork) JobService {
	return &jobService{jobs: jobs, vehicles: vehicles, uow: uow}
}

func validateJob(j *domain.Job) error {
	if strings.TrimSpace(j.Title) == "" {
		return fmt.Errorf("job title is required")
	}
	if j.StartTime.IsZero() {
		return fmt.Errorf("job start time is required")
	}
	if j.DurationHours <= 0 {
		return fmt.Errorf("job duration must be positive, got %v", j.DurationHours)
	}
	if j.EmployeeID != nil && j.CrewID != nil {
		return ErrAmbiguousAssignee
	}
	if j.Status != "" && !domain.ValidJobStatuses[j.Status] {
		return fmt.Errorf("invalid job status %q", j.Status)
	}
	return nil
}

func (s *jobService) Create(ctx context.Context, j *domain.Job) error {
	if err := validateJob(j); err != nil {
		return err
	}
	if _, err := s.vehicles.GetByID(ctx, j.VehicleID); err != nil {
		return fmt.Errorf("resolving vehicle: %w", err)
	}
	if j.ID == "" {
		j.ID = uuid.New().String()
	}
	if j.Status == "" {
		j.Status = domain.JobNotStarted
	}
	now := time.Now().UTC()
	j.CreatedAt = now
	j.UpdatedAt = now
	return s.jobs.Create(ctx, j)
}

func (s *jobService) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	return s.jobs.GetByID(ctx, id)
}

func (s *jobService) GetDetail(ctx context.Context, id string) (*domain.JobDetail, error) {
	return s.jobs.GetDetail(ctx, id)
}

func (s *jobService) List(ctx context.Context) ([]*domain.Job, error) {
	return s.jobs.List(ctx)
}

func (s *jobService) Update(ctx context.Context, j *domain.Job) error {
	if err := validateJob(j); err != nil {
		return err
	}
	j.UpdatedAt = time.Now().UTC()
	return s.jobs.Update(ctx, j)
}

func (s *jobService) SetStatus(ctx context.Context, id string, status domain.JobStatus) error {
	if !domain.ValidJobStatuses[status] {
		return fmt.Errorf("invalid job status %q", status)
	}
	j, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return err
	}
	j.Status = status
	j.UpdatedAt = time.Now().UTC()
	return s.jobs.Update(ctx, j)
}

func (s *jobService) RecordUsage(ctx context.Context, jobID, itemID string, quantity float64) error {
	if quantity <= 0 {
		return fmt.Errorf("usage quantity must be positive")
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txJobs := repository.NewSQLiteJobRepo(tx)
		txItems := repository.NewSQLiteInventoryRepo(tx)
		txUsage := repository.NewSQLiteUsageRepo(tx)

		job, err := txJobs.GetByID(ctx, jobID)
		if err != nil {
			return err
		}
		item, err := txItems.GetByID(ctx, itemID)
		if err != nil {
			return err
		}
		if item.Quantity < quantity {
			return fmt.Errorf("%w: %s has %v %s, need %v", ErrInsufficientStock, item.Name, item.Quantity, item.Unit, quantity)
		}

		item.Quantity -= quantity
		if err := txItems.Update(ctx, item); err != nil {
			return err
		}

		now := time.Now().UTC()
		return txUsage.Create(ctx, &domain.UsageRecord{
			ID:         uuid.New().String(),
			JobID:      job.ID,
			ItemID:     item.ID,
			Quantity:   quantity,
			CostAtTime: item.CostPerUnit,
			UsedAt:     now,
			CreatedAt:  now,
		})
	})
}

func (s *jobService) Delete(ctx context.Context, id string) error {
	return s.jobs.Delete(ctx, id)
}
