package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/izayahhudnut/detailerpro/internal/domain"
	"github.com/izayahhudnut/detailerpro/internal/repository"
)

type employeeService struct {
	employees repository.EmployeeRepo
}

func NewEmployeeService(employees repository.EmployeeRepo) EmployeeService {
	return &employeeService{employees: employees}
}

func (s *employeeService) Create(ctx context.Context, e *domain.Employee) error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("employee name is required")
	}
	if e.CostPerHour < 0 {
		return fmt.Errorf("cost per hour cannot be negative")
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Status == "" {
		e.Status = domain.EmployeeActive
	}
	e.CreatedAt = time.Now().UTC()
	return s.employees.Create(ctx, e)
}

func (s *employeeService) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	return s.employees.GetByID(ctx, id)
}

func (s *employeeService) List(ctx context.Context, includeInactive bool) ([]*domain.Employee, error) {
	return s.employees.List(ctx, includeInactive)
}

func (s *employeeService) Update(ctx context.Context, e *domain.Employee) error {
	if e.CostPerHour < 0 {
		return fmt.Errorf("cost per hour cannot be negative")
	}
	return s.employees.Update(ctx, e)
}

func (s *employeeService) Delete(ctx context.Context, id string) error {
	return s.employees.Delete(ctx, id)
}

type crewService struct {
	crews     repository.CrewRepo
	employees repository.EmployeeRepo
}

func NewCrewService(crews repository.CrewRepo, employees repository.EmployeeRepo) CrewService {
	return &crewService{crews: crews, employees: employees}
}

func (s *crewService) Create(ctx context.Context, c *domain.Crew) error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("crew name is required")
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	c.CreatedAt = time.Now().UTC()
	return s.crews.Create(ctx, c)
}

func (s *crewService) GetByID(ctx context.Context, id string) (*domain.CrewWithMembers, error) {
	return s.crews.GetByID(ctx, id)
}

func (s *crewService) List(ctx context.Context) ([]*domain.CrewWithMembers, error) {
	return s.crews.List(ctx)
}

func (s *crewService) AddMember(ctx context.Context, crewID, employeeID string) error {
	if _, err := s.employees.GetByID(ctx, employeeID); err != nil {
		return fmt.Errorf("resolving employee: %w", err)
	}
	return s.crews.AddMember(ctx, crewID, employeeID)
}

func (s *crewService) RemoveMember(ctx context.Context, crewID, employeeID string) error {
	return s.crews.RemoveMember(ctx, crewID, employeeID)
}

func (s *crewService) Delete(ctx context.Context, id string) error {
	return s.crews.Delete(ctx, id)
}
