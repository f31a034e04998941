package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/izayahhudnut/detailerpro/internal/db"
	"github.com/izayahhudnut/detailerpro/internal/domain"
)

const todoColumns = `id, job_id, step_id, description, completed, completed_at, created_at, updated_at`

// SQLiteTodoRepo implements TodoRepo using a SQLite database.
type SQLiteTodoRepo struct {
	db db.DBTX
}

// NewSQLiteTodoRepo creates a new SQLiteTodoRepo.
func NewSQLiteTodoRepo(conn db.DBTX) *SQLiteTodoRepo {
	return &SQLiteTodoRepo{db: conn}
}

func (r *SQLiteTodoRepo) GetByJobStep(ctx context.Context, jobID, stepID string) (*domain.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE job_id = ? AND step_id = ?`
	t, err := scanTodo(r.db.QueryRowContext(ctx, query, jobID, stepID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return t, err
}

// Upsert inserts the todo or, if one already exists for the (job, step)
// pair, updates its completion state.
func (r *SQLiteTodoRepo) Upsert(ctx context.Context, t *domain.Todo) error {
	query := `INSERT INTO todos (` + todoColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (job_id, step_id) DO UPDATE SET
			completed = excluded.completed,
			completed_at = excluded.completed_at,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.JobID, t.StepID, t.Description,
		boolToInt(t.Completed),
		nullableTimeToString(t.CompletedAt, time.RFC3339),
		t.CreatedAt.Format(time.RFC3339), t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting todo: %w", err)
	}
	return nil
}

func (r *SQLiteTodoRepo) ListByJob(ctx context.Context, jobID string) ([]domain.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE job_id = ? ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, jobID)
	if err != nil {
		return nil, fmt.Errorf("listing todos: %w", err)
	}
	defer rows.Close()

	var todos []domain.Todo
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating todos: %w", err)
	}
	return todos, nil
}

func scanTodo(s scanner) (*domain.Todo, error) {
	var t domain.Todo
	var completedInt int
	var completedAtStr sql.NullString
	var createdAtStr, updatedAtStr string
	err := s.Scan(&t.ID, &t.JobID, &t.StepID, &t.Description,
		&completedInt, &completedAtStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning todo: %w", err)
	}
	t.Completed = intToBool(completedInt)
	t.CompletedAt = parseNullableTime(completedAtStr, time.RFC3339)

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
