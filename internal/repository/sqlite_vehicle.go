package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/izayahhudnut/detailerpro/internal/db"
	"github.com/izayahhudnut/detailerpro/internal/domain"
)

const vehicleColumns = `id, client_id, make, model, registration, year, created_at, updated_at`

// SQLiteVehicleRepo implements VehicleRepo using a SQLite database.
type SQLiteVehicleRepo struct {
	db db.DBTX
}

// NewSQLiteVehicleRepo creates a new SQLiteVehicleRepo.
func NewSQLiteVehicleRepo(conn db.DBTX) *SQLiteVehicleRepo {
	return &SQLiteVehicleRepo{db: conn}
}

func (r *SQLiteVehicleRepo) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (` + vehicleColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		v.ID, v.ClientID, v.Make, v.Model, v.Registration, v.Year,
		v.CreatedAt.Format(time.RFC3339), v.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting vehicle: %w", err)
	}
	return nil
}

func (r *SQLiteVehicleRepo) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = ?`
	v, err := scanVehicle(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("vehicle not found")
	}
	return v, err
}

func (r *SQLiteVehicleRepo) List(ctx context.Context) ([]*domain.Vehicle, error) {
	return r.list(ctx, `SELECT `+vehicleColumns+` FROM vehicles ORDER BY make, model`)
}

func (r *SQLiteVehicleRepo) ListByClient(ctx context.Context, clientID string) ([]*domain.Vehicle, error) {
	return r.list(ctx, `SELECT `+vehicleColumns+` FROM vehicles WHERE client_id = ? ORDER BY make, model`, clientID)
}

func (r *SQLiteVehicleRepo) list(ctx context.Context, query string, args ...any) ([]*domain.Vehicle, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []*domain.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating vehicles: %w", err)
	}
	return vehicles, nil
}

func (r *SQLiteVehicleRepo) Update(ctx context.Context, v *domain.Vehicle) error {
	query := `UPDATE vehicles SET client_id = ?, make = ?, model = ?, registration = ?,
		year = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		v.ClientID, v.Make, v.Model, v.Registration, v.Year,
		v.UpdatedAt.Format(time.RFC3339), v.ID,
	)
	if err != nil {
		return fmt.Errorf("updating vehicle: %w", err)
	}
	return requireRowAffected(res, "vehicle")
}

func (r *SQLiteVehicleRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting vehicle: %w", err)
	}
	return requireRowAffected(res, "vehicle")
}

func scanVehicle(s scanner) (*domain.Vehicle, error) {
	var v domain.Vehicle
	var createdAtStr, updatedAtStr string
	err := s.Scan(&v.ID, &v.ClientID, &v.Make, &v.Model, &v.Registration, &v.Year,
		&createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning vehicle: %w", err)
	}
	var parseErr error
	v.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	v.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &v, nil
}
