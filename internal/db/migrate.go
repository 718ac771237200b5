package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies the schema. Every statement is idempotent so it runs on
// each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS schedules (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		public_id  TEXT NOT NULL UNIQUE,
		title      TEXT NOT NULL,
		created_at TEXT NOT NULL,
		is_active  INTEGER NOT NULL DEFAULT 1
	)`,

	`CREATE INDEX IF NOT EXISTS idx_schedules_title ON schedules(title)`,

	`CREATE TABLE IF NOT EXISTS wbs (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		public_id   TEXT NOT NULL UNIQUE,
		code        TEXT NOT NULL,
		name        TEXT NOT NULL DEFAULT '',
		schedule_id INTEGER NOT NULL REFERENCES schedules(id),
		parent_id   INTEGER REFERENCES wbs(id),
		created_at  TEXT NOT NULL,
		is_active   INTEGER NOT NULL DEFAULT 1
	)`,

	// (schedule_id, code) uniqueness lives in the store so that two concurrent
	// imports racing on the same code fail the second insert.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_wbs_schedule_code ON wbs(schedule_id, code)`,
	`CREATE INDEX IF NOT EXISTS idx_wbs_parent ON wbs(parent_id)`,

	`CREATE TABLE IF NOT EXISTS source_files (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		public_id   TEXT NOT NULL UNIQUE,
		name        TEXT NOT NULL,
		extension   TEXT NOT NULL DEFAULT '',
		stored_path TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		is_active   INTEGER NOT NULL DEFAULT 1
	)`,
}
