package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. The statements are valid for both
// SQLite and Postgres.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate re-applied ALTER TABLE statements since the
			// migration system re-runs all statements.
			if isDuplicateColumn(err) {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

func isDuplicateColumn(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "duplicate column name") ||
		(strings.Contains(msg, "column") && strings.Contains(msg, "already exists"))
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS cows (
		id             TEXT PRIMARY KEY,
		name           TEXT NOT NULL,
		breed          TEXT NOT NULL DEFAULT '',
		age            INTEGER NOT NULL DEFAULT 0,
		status         TEXT NOT NULL DEFAULT 'active'
		               CHECK(status IN ('active','pregnant','sick','retired')),
		health_notes   TEXT NOT NULL DEFAULT '',
		last_sync_date TEXT,
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS sync_methods (
		id                     TEXT PRIMARY KEY,
		name                   TEXT NOT NULL,
		description            TEXT NOT NULL DEFAULT '',
		duration               INTEGER NOT NULL,
		is_custom              INTEGER NOT NULL DEFAULT 0,
		has_workforce_settings INTEGER NOT NULL DEFAULT 0,
		created_at             TEXT NOT NULL,
		updated_at             TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS sync_steps (
		sync_method_id      TEXT NOT NULL REFERENCES sync_methods(id) ON DELETE CASCADE,
		id                  TEXT NOT NULL,
		position            INTEGER NOT NULL,
		day                 INTEGER NOT NULL CHECK(day >= 0),
		title               TEXT NOT NULL,
		description         TEXT NOT NULL DEFAULT '',
		hormone_type        TEXT NOT NULL DEFAULT '',
		notes               TEXT NOT NULL DEFAULT '',
		worker_per_cows     DOUBLE PRECISION,
		technician_per_cows DOUBLE PRECISION,
		doctor_per_cows     DOUBLE PRECISION,
		PRIMARY KEY (sync_method_id, id)
	)`,

	`CREATE TABLE IF NOT EXISTS reminders (
		id                    TEXT PRIMARY KEY,
		cow_id                TEXT NOT NULL REFERENCES cows(id) ON DELETE CASCADE,
		sync_method_id        TEXT,
		sync_step_id          TEXT,
		title                 TEXT NOT NULL,
		description           TEXT NOT NULL DEFAULT '',
		due_date              TEXT NOT NULL,
		completed             INTEGER NOT NULL DEFAULT 0,
		completed_at          TEXT,
		priority              TEXT NOT NULL DEFAULT 'medium'
		                      CHECK(priority IN ('low','medium','high')),
		type                  TEXT NOT NULL DEFAULT 'custom'
		                      CHECK(type IN ('injection','checkup','ai','custom')),
		estimated_cow_count   INTEGER CHECK(estimated_cow_count >= 0),
		workforce_workers     INTEGER,
		workforce_technicians INTEGER,
		workforce_doctors     INTEGER,
		created_at            TEXT NOT NULL,
		updated_at            TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_reminders_due_date ON reminders(due_date)`,
	`CREATE INDEX IF NOT EXISTS idx_reminders_cow ON reminders(cow_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sync_steps_method ON sync_steps(sync_method_id)`,
}
