package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/izayahhudnut/detailerpro/internal/db"
	"github.com/izayahhudnut/detailerpro/internal/domain"
)

const usageColumns = `id, job_id, item_id, quantity_used, cost_at_time, used_at, created_at`

// SQLiteUsageRepo implements UsageRepo using a SQLite database.
type SQLiteUsageRepo struct {
	db db.DBTX
}

// NewSQLiteUsageRepo creates a new SQLiteUsageRepo.
func NewSQLiteUsageRepo(conn db.DBTX) *SQLiteUsageRepo {
	return &SQLiteUsageRepo{db: conn}
}

func (r *SQLiteUsageRepo) Create(ctx context.Context, u *domain.UsageRecord) error {
	query := `INSERT INTO job_inventory_usage (` + usageColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		u.ID, u.JobID, u.ItemID, u.Quantity, u.CostAtTime,
		u.UsedAt.UTC().Format(time.RFC3339),
		u.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting usage record: %w", err)
	}
	return nil
}

func (r *SQLiteUsageRepo) ListByJob(ctx context.Context, jobID string) ([]domain.UsageRecord, error) {
	query := `SELECT ` + usageColumns + ` FROM job_inventory_usage WHERE job_id = ? ORDER BY used_at, id`
	rows, err := r.db.QueryContext(ctx, query, jobID)
	if err != nil {
		return nil, fmt.Errorf("listing usage records: %w", err)
	}
	defer rows.Close()

	var records []domain.UsageRecord
	for rows.Next() {
		var u domain.UsageRecord
		var usedAtStr, createdAtStr string
		if err := rows.Scan(&u.ID, &u.JobID, &u.ItemID, &u.Quantity, &u.CostAtTime,
			&usedAtStr, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning usage record: %w", err)
		}
		var parseErr error
		u.UsedAt, parseErr = time.Parse(time.RFC3339, usedAtStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing used_at: %w", parseErr)
		}
		u.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing created_at: %w", parseErr)
		}
		records = append(records, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating usage records: %w", err)
	}
	return records, nil
}
