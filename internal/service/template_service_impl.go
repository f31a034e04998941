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

type templateService struct {
	templates repository.TemplateRepo
}

func NewTemplateService(templates repository.TemplateRepo) TemplateService {
	return &templateService{templates: templates}
}

func (s *templateService) Create(ctx context.Context, t *domain.ProgressTemplate) error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("template name is required")
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	for i := range t.Steps {
		step := &t.Steps[i]
		if strings.TrimSpace(step.Title) == "" {
			return fmt.Errorf("step %d: title is required", i+1)
		}
		if step.ID == "" {
			step.ID = uuid.New().String()
		}
		step.TemplateID = t.ID
		step.OrderNumber = i + 1
		step.CreatedAt = now
	}
	return s.templates.Create(ctx, t)
}

func (s *templateService) GetByID(ctx context.Context, id string) (*domain.ProgressTemplate, error) {
	return s.templates.GetByID(ctx, id)
}

func (s *templateService) List(ctx context.Context) ([]*domain.ProgressTemplate, error) {
	return s.templates.List(ctx)
}

func (s *templateService) Delete(ctx context.Context, id string) error {
	return s.templates.Delete(ctx, id)
}

type todoService struct {
	todos repository.TodoRepo
	jobs  repository.JobRepo
}

func NewTodoService(todos repository.TodoRepo, jobs repository.JobRepo) TodoService {
	return &todoService{todos: todos, jobs: jobs}
}

func (s *todoService) Toggle(ctx context.Context, jobID, stepID string, completed bool) (*domain.Todo, error) {
	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	todo, err := s.todos.GetByJobStep(ctx, jobID, stepID)
	if err != nil {
		return nil, err
	}
	if todo == nil {
		todo = &domain.Todo{
			ID:        uuid.New().String(),
			JobID:     jobID,
			StepID:    stepID,
			CreatedAt: now,
		}
	}
	todo.Completed = completed
	todo.UpdatedAt = now
	if completed {
		todo.CompletedAt = &now
	} else {
		todo.CompletedAt = nil
	}
	if err := s.todos.Upsert(ctx, todo); err != nil {
		return nil, err
	}
	return s.todos.GetByJobStep(ctx, jobID, stepID)
}

func (s *todoService) ListByJob(ctx context.Context, jobID string) ([]domain.Todo, error) {
	return s.todos.ListByJob(ctx, jobID)
}
