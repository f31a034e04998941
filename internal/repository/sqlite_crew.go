package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/izayahhudnut/detailerpro/internal/db"
	"github.com/izayahhudnut/detailerpro/internal/domain"
)

const crewColumns = `id, name, description, created_at, updated_at`

// SQLiteCrewRepo implements CrewRepo using a SQLite database.
type SQLiteCrewRepo struct {
	db db.DBTX
}

// NewSQLiteCrewRepo creates a new SQLiteCrewRepo.
func NewSQLiteCrewRepo(conn db.DBTX) *SQLiteCrewRepo {
	return &SQLiteCrewRepo{db: conn}
}

func (r *SQLiteCrewRepo) Create(ctx context.Context, c *domain.Crew) error {
	query := `INSERT INTO crews (` + crewColumns + `) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.Name, c.Description,
		c.CreatedAt.Format(time.RFC3339), c.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting crew: %w", err)
	}
	return nil
}

func (r *SQLiteCrewRepo) GetByID(ctx context.Context, id string) (*domain.CrewWithMembers, error) {
	query := `SELECT ` + crewColumns + ` FROM crews WHERE id = ?`
	c, err := scanCrew(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("crew not found")
	}
	if err != nil {
		return nil, err
	}
	members, err := r.members(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	return &domain.CrewWithMembers{Crew: *c, Members: members}, nil
}

func (r *SQLiteCrewRepo) List(ctx context.Context) ([]*domain.CrewWithMembers, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+crewColumns+` FROM crews ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing crews: %w", err)
	}
	defer rows.Close()

	var crews []*domain.Crew
	for rows.Next() {
		c, err := scanCrew(rows)
		if err != nil {
			return nil, err
		}
		crews = append(crews, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating crews: %w", err)
	}

	out := make([]*domain.CrewWithMembers, 0, len(crews))
	for _, c := range crews {
		members, err := r.members(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, &domain.CrewWithMembers{Crew: *c, Members: members})
	}
	return out, nil
}

func (r *SQLiteCrewRepo) Update(ctx context.Context, c *domain.Crew) error {
	query := `UPDATE crews SET name = ?, description = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		c.Name, c.Description, c.UpdatedAt.Format(time.RFC3339), c.ID)
	if err != nil {
		return fmt.Errorf("updating crew: %w", err)
	}
	return requireRowAffected(res, "crew")
}

func (r *SQLiteCrewRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM crews WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting crew: %w", err)
	}
	return requireRowAffected(res, "crew")
}

func (r *SQLiteCrewRepo) AddMember(ctx context.Context, crewID, employeeID string) error {
	query := `INSERT OR IGNORE INTO crew_members (crew_id, employee_id, created_at) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, crewID, employeeID, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("adding crew member: %w", err)
	}
	return nil
}

func (r *SQLiteCrewRepo) RemoveMember(ctx context.Context, crewID, employeeID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM crew_members WHERE crew_id = ? AND employee_id = ?`, crewID, employeeID)
	if err != nil {
		return fmt.Errorf("removing crew member: %w", err)
	}
	return requireRowAffected(res, "crew member")
}

func (r *SQLiteCrewRepo) members(ctx context.Context, crewID string) ([]*domain.Employee, error) {
	query := `SELECT ` + employeeColumnsAliased + ` FROM employees e
		JOIN crew_members cm ON cm.employee_id = e.id
		WHERE cm.crew_id = ?
		ORDER BY e.name`
	rows, err := r.db.QueryContext(ctx, query, crewID)
	if err != nil {
		return nil, fmt.Errorf("listing crew members: %w", err)
	}
	defer rows.Close()

	var members []*domain.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating crew members: %w", err)
	}
	return members, nil
}

func scanCrew(s scanner) (*domain.Crew, error) {
	var c domain.Crew
	var createdAtStr, updatedAtStr string
	err := s.Scan(&c.ID, &c.Name, &c.Description, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning crew: %w", err)
	}
	var parseErr error
	c.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	c.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &c, nil
}
