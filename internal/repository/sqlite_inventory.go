package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/izayahhudnut/detailerpro/internal/db"
	"github.com/izayahhudnut/detailerpro/internal/domain"
)

const inventoryColumns = `id, name, type, description, quantity, minimum_stock, unit,
		location, cost_per_unit, last_restocked, created_at, updated_at`

// SQLiteInventoryRepo implements InventoryRepo using a SQLite database.
type SQLiteInventoryRepo struct {
	db db.DBTX
}

// NewSQLiteInventoryRepo creates a new SQLiteInventoryRepo.
func NewSQLiteInventoryRepo(conn db.DBTX) *SQLiteInventoryRepo {
	return &SQLiteInventoryRepo{db: conn}
}

func (r *SQLiteInventoryRepo) Create(ctx context.Context, i *domain.InventoryItem) error {
	query := `INSERT INTO inventory_items (` + inventoryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		i.ID, i.Name, i.Type, i.Description, i.Quantity, i.MinimumStock, i.Unit,
		i.Location, i.CostPerUnit,
		nullableTimeToString(i.LastRestocked, time.RFC3339),
		i.CreatedAt.Format(time.RFC3339), i.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting inventory item: %w", err)
	}
	return nil
}

func (r *SQLiteInventoryRepo) GetByID(ctx context.Context, id string) (*domain.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE id = ?`
	i, err := scanInventoryItem(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("inventory item not found")
	}
	return i, err
}

func (r *SQLiteInventoryRepo) List(ctx context.Context) ([]*domain.InventoryItem, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+inventoryColumns+` FROM inventory_items ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing inventory items: %w", err)
	}
	defer rows.Close()

	var items []*domain.InventoryItem
	for rows.Next() {
		i, err := scanInventoryItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating inventory items: %w", err)
	}
	return items, nil
}

func (r *SQLiteInventoryRepo) Update(ctx context.Context, i *domain.InventoryItem) error {
	query := `UPDATE inventory_items SET name = ?, type = ?, description = ?, quantity = ?,
		minimum_stock = ?, unit = ?, location = ?, cost_per_unit = ?, last_restocked = ?,
		updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		i.Name, i.Type, i.Description, i.Quantity, i.MinimumStock, i.Unit,
		i.Location, i.CostPerUnit,
		nullableTimeToString(i.LastRestocked, time.RFC3339),
		i.UpdatedAt.Format(time.RFC3339), i.ID,
	)
	if err != nil {
		return fmt.Errorf("updating inventory item: %w", err)
	}
	return requireRowAffected(res, "inventory item")
}

func (r *SQLiteInventoryRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM inventory_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting inventory item: %w", err)
	}
	return requireRowAffected(res, "inventory item")
}

func scanInventoryItem(s scanner) (*domain.InventoryItem, error) {
	var i domain.InventoryItem
	var lastRestockedStr sql.NullString
	var createdAtStr, updatedAtStr string
	err := s.Scan(
		&i.ID, &i.Name, &i.Type, &i.Description, &i.Quantity, &i.MinimumStock, &i.Unit,
		&i.Location, &i.CostPerUnit, &lastRestockedStr,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning inventory item: %w", err)
	}
	i.LastRestocked = parseNullableTime(lastRestockedStr, time.RFC3339)

	var parseErr error
	i.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	i.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &i, nil
}
