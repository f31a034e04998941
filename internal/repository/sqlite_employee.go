package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/izayahhudnut/detailerpro/internal/db"
	"github.com/izayahhudnut/detailerpro/internal/domain"
)

const dateLayout = "2006-01-02"

const employeeColumns = `id, name, email, phone, specialization, hire_date, status,
		certifications, cost_per_hour, created_at, updated_at`

// employeeColumnsAliased is the same column list prefixed with "e." for join queries.
const employeeColumnsAliased = `e.id, e.name, e.email, e.phone, e.specialization, e.hire_date, e.status,
		e.certifications, e.cost_per_hour, e.created_at, e.updated_at`

// SQLiteEmployeeRepo implements EmployeeRepo using a SQLite database.
type SQLiteEmployeeRepo struct {
	db db.DBTX
}

// NewSQLiteEmployeeRepo creates a new SQLiteEmployeeRepo.
func NewSQLiteEmployeeRepo(conn db.DBTX) *SQLiteEmployeeRepo {
	return &SQLiteEmployeeRepo{db: conn}
}

func (r *SQLiteEmployeeRepo) Create(ctx context.Context, e *domain.Employee) error {
	query := `INSERT INTO employees (` + employeeColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.Name, e.Email, e.Phone, e.Specialization,
		nullableTimeToString(e.HireDate, dateLayout),
		string(e.Status),
		joinCerts(e.Certifications),
		e.CostPerHour,
		e.CreatedAt.Format(time.RFC3339), e.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting employee: %w", err)
	}
	return nil
}

func (r *SQLiteEmployeeRepo) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = ?`
	e, err := scanEmployee(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("employee not found")
	}
	return e, err
}

func (r *SQLiteEmployeeRepo) List(ctx context.Context, includeInactive bool) ([]*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees`
	if !includeInactive {
		query += ` WHERE status = 'active'`
	}
	query += ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing employees: %w", err)
	}
	defer rows.Close()

	var employees []*domain.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating employees: %w", err)
	}
	return employees, nil
}

func (r *SQLiteEmployeeRepo) Update(ctx context.Context, e *domain.Employee) error {
	query := `UPDATE employees SET name = ?, email = ?, phone = ?, specialization = ?,
		hire_date = ?, status = ?, certifications = ?, cost_per_hour = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		e.Name, e.Email, e.Phone, e.Specialization,
		nullableTimeToString(e.HireDate, dateLayout),
		string(e.Status),
		joinCerts(e.Certifications),
		e.CostPerHour,
		e.UpdatedAt.Format(time.RFC3339), e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating employee: %w", err)
	}
	return requireRowAffected(res, "employee")
}

func (r *SQLiteEmployeeRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting employee: %w", err)
	}
	return requireRowAffected(res, "employee")
}

func scanEmployee(s scanner) (*domain.Employee, error) {
	var e domain.Employee
	var statusStr, certsStr string
	var hireDateStr sql.NullString
	var createdAtStr, updatedAtStr string
	err := s.Scan(
		&e.ID, &e.Name, &e.Email, &e.Phone, &e.Specialization,
		&hireDateStr, &statusStr, &certsStr, &e.CostPerHour,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning employee: %w", err)
	}

	e.Status = domain.EmployeeStatus(statusStr)
	e.Certifications = splitCerts(certsStr)
	e.HireDate = parseNullableTime(hireDateStr, dateLayout)

	var parseErr error
	e.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	e.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &e, nil
}
