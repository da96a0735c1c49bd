package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations are applied in order on every open. Statements are written to
// be re-runnable (IF NOT EXISTS / tolerated ALTER errors).
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS plans (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		number      TEXT NOT NULL UNIQUE,
		client_name TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL DEFAULT 'open',
		issued_at   TEXT,
		due_at      TEXT,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS activities (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		plan_id     INTEGER NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		code        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		responsible TEXT,
		start_date  TEXT,
		end_date    TEXT,
		status      TEXT NOT NULL DEFAULT 'pending'
		            CHECK(status IN ('pending','in_progress','done','cancelled')),
		progress    INTEGER NOT NULL DEFAULT 0 CHECK(progress BETWEEN 0 AND 100),
		kind        TEXT NOT NULL DEFAULT 'delivery'
		            CHECK(kind IN ('delivery','milestone','summary')),
		order_index INTEGER NOT NULL DEFAULT 0,
		parent_id   INTEGER REFERENCES activities(id) ON DELETE CASCADE,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL,
		UNIQUE(plan_id, code)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_activities_plan ON activities(plan_id)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_parent ON activities(parent_id)`,

	`CREATE TABLE IF NOT EXISTS followups (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		activity_id INTEGER NOT NULL REFERENCES activities(id) ON DELETE CASCADE,
		date        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		responsible TEXT,
		status      TEXT NOT NULL DEFAULT 'pending',
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_followups_activity ON followups(activity_id)`,

	`CREATE TABLE IF NOT EXISTS external_links (
		id                 INTEGER PRIMARY KEY AUTOINCREMENT,
		activity_id        INTEGER NOT NULL REFERENCES activities(id) ON DELETE CASCADE,
		purchase_order_ref TEXT,
		service_order_ref  TEXT,
		created_at         TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_external_links_activity ON external_links(activity_id)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
