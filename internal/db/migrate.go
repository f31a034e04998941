package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. The statement list is append-only and
// re-run in full on every open; CREATE ... IF NOT EXISTS and the duplicate
// column tolerance below keep it idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from additive
			// ALTER TABLE statements on already-migrated databases.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS clients (
		id         TEXT PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name  TEXT NOT NULL,
		email      TEXT NOT NULL DEFAULT '',
		phone      TEXT NOT NULL DEFAULT '',
		street     TEXT NOT NULL DEFAULT '',
		city       TEXT NOT NULL DEFAULT '',
		state      TEXT NOT NULL DEFAULT '',
		zip_code   TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS vehicles (
		id           TEXT PRIMARY KEY,
		client_id    TEXT NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
		make         TEXT NOT NULL DEFAULT '',
		model        TEXT NOT NULL,
		registration TEXT NOT NULL DEFAULT '',
		year         TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_vehicles_client ON vehicles(client_id)`,

	`CREATE TABLE IF NOT EXISTS employees (
		id             TEXT PRIMARY KEY,
		name           TEXT NOT NULL,
		email          TEXT NOT NULL DEFAULT '',
		phone          TEXT NOT NULL DEFAULT '',
		specialization TEXT NOT NULL DEFAULT '',
		hire_date      TEXT,
		status         TEXT NOT NULL DEFAULT 'active'
		               CHECK(status IN ('active','inactive')),
		certifications TEXT NOT NULL DEFAULT '',
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	// Hourly cost arrived after the first schema shipped; additive ALTER.
	`ALTER TABLE employees ADD COLUMN cost_per_hour REAL NOT NULL DEFAULT 0`,

	`CREATE TABLE IF NOT EXISTS crews (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS crew_members (
		crew_id     TEXT NOT NULL REFERENCES crews(id) ON DELETE CASCADE,
		employee_id TEXT NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		created_at  TEXT NOT NULL,
		PRIMARY KEY (crew_id, employee_id)
	)`,

	`CREATE TABLE IF NOT EXISTS inventory_items (
		id             TEXT PRIMARY KEY,
		name           TEXT NOT NULL,
		type           TEXT NOT NULL DEFAULT '',
		description    TEXT NOT NULL DEFAULT '',
		quantity       REAL NOT NULL DEFAULT 0,
		minimum_stock  REAL NOT NULL DEFAULT 0,
		unit           TEXT NOT NULL DEFAULT '',
		location       TEXT NOT NULL DEFAULT '',
		cost_per_unit  REAL NOT NULL DEFAULT 0,
		last_restocked TEXT,
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS progress_templates (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS progress_steps (
		id           TEXT PRIMARY KEY,
		template_id  TEXT NOT NULL REFERENCES progress_templates(id) ON DELETE CASCADE,
		title        TEXT NOT NULL,
		description  TEXT NOT NULL DEFAULT '',
		order_number INTEGER NOT NULL DEFAULT 0,
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_progress_steps_template ON progress_steps(template_id)`,

	`CREATE TABLE IF NOT EXISTS jobs (
		id             TEXT PRIMARY KEY,
		title          TEXT NOT NULL,
		description    TEXT NOT NULL DEFAULT '',
		vehicle_id     TEXT NOT NULL REFERENCES vehicles(id) ON DELETE CASCADE,
		employee_id    TEXT REFERENCES employees(id) ON DELETE SET NULL,
		crew_id        TEXT REFERENCES crews(id) ON DELETE SET NULL,
		start_time     TEXT NOT NULL,
		duration_hours REAL NOT NULL CHECK(duration_hours > 0),
		status         TEXT NOT NULL DEFAULT 'not-started'
		               CHECK(status IN ('not-started','in-progress','qa','done')),
		template_id    TEXT REFERENCES progress_templates(id) ON DELETE SET NULL,
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_jobs_vehicle ON jobs(vehicle_id)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_start ON jobs(start_time)`,

	`CREATE TABLE IF NOT EXISTS job_inventory_usage (
		id            TEXT PRIMARY KEY,
		job_id        TEXT NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
		item_id       TEXT NOT NULL REFERENCES inventory_items(id) ON DELETE CASCADE,
		quantity_used REAL NOT NULL,
		cost_at_time  REAL NOT NULL,
		used_at       TEXT NOT NULL,
		created_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_usage_job ON job_inventory_usage(job_id)`,

	`CREATE TABLE IF NOT EXISTS todos (
		id           TEXT PRIMARY KEY,
		job_id       TEXT NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
		step_id      TEXT NOT NULL REFERENCES progress_steps(id) ON DELETE CASCADE,
		description  TEXT NOT NULL DEFAULT '',
		completed    INTEGER NOT NULL DEFAULT 0,
		completed_at TEXT,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL,
		UNIQUE (job_id, step_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_todos_job ON todos(job_id)`,
}
