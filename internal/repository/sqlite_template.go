package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/izayahhudnut/detailerpro/internal/db"
	"github.com/izayahhudnut/detailerpro/internal/domain"
)

// SQLiteTemplateRepo implements TemplateRepo using a SQLite database.
// Steps are stored alongside the template and written atomically with it.
type SQLiteTemplateRepo struct {
	db db.DBTX
}

// NewSQLiteTemplateRepo creates a new SQLiteTemplateRepo.
func NewSQLiteTemplateRepo(conn db.DBTX) *SQLiteTemplateRepo {
	return &SQLiteTemplateRepo{db: conn}
}

func (r *SQLiteTemplateRepo) Create(ctx context.Context, t *domain.ProgressTemplate) error {
	query := `INSERT INTO progress_templates (id, name, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.Name, t.Description,
		t.CreatedAt.Format(time.RFC3339), t.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting progress template: %w", err)
	}
	for _, step := range t.Steps {
		stepQuery := `INSERT INTO progress_steps (id, template_id, title, description, order_number, created_at)
			VALUES (?, ?, ?, ?, ?, ?)`
		if _, err := r.db.ExecContext(ctx, stepQuery,
			step.ID, t.ID, step.Title, step.Description, step.OrderNumber,
			step.CreatedAt.Format(time.RFC3339)); err != nil {
			return fmt.Errorf("inserting progress step: %w", err)
		}
	}
	return nil
}

func (r *SQLiteTemplateRepo) GetByID(ctx context.Context, id string) (*domain.ProgressTemplate, error) {
	query := `SELECT id, name, description, created_at, updated_at FROM progress_templates WHERE id = ?`
	t, err := scanTemplate(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("progress template not found")
	}
	if err != nil {
		return nil, err
	}
	if t.Steps, err = r.steps(ctx, id); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *SQLiteTemplateRepo) List(ctx context.Context) ([]*domain.ProgressTemplate, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, description, created_at, updated_at FROM progress_templates ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing progress templates: %w", err)
	}
	defer rows.Close()

	var templates []*domain.ProgressTemplate
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating progress templates: %w", err)
	}
	for _, t := range templates {
		if t.Steps, err = r.steps(ctx, t.ID); err != nil {
			return nil, err
		}
	}
	return templates, nil
}

func (r *SQLiteTemplateRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM progress_templates WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting progress template: %w", err)
	}
	return requireRowAffected(res, "progress template")
}

func (r *SQLiteTemplateRepo) steps(ctx context.Context, templateID string) ([]domain.ProgressStep, error) {
	query := `SELECT id, template_id, title, description, order_number, created_at
		FROM progress_steps WHERE template_id = ? ORDER BY order_number`
	rows, err := r.db.QueryContext(ctx, query, templateID)
	if err != nil {
		return nil, fmt.Errorf("listing progress steps: %w", err)
	}
	defer rows.Close()

	var steps []domain.ProgressStep
	for rows.Next() {
		var step domain.ProgressStep
		var createdAtStr string
		if err := rows.Scan(&step.ID, &step.TemplateID, &step.Title, &step.Description,
			&step.OrderNumber, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning progress step: %w", err)
		}
		var parseErr error
		step.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing created_at: %w", parseErr)
		}
		steps = append(steps, step)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating progress steps: %w", err)
	}
	return steps, nil
}

func scanTemplate(s scanner) (*domain.ProgressTemplate, error) {
	var t domain.ProgressTemplate
	var createdAtStr, updatedAtStr string
	err := s.Scan(&t.ID, &t.Name, &t.Description, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning progress template: %w", err)
	}
	var parseErr error
	t.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	t.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &t, nil
}
