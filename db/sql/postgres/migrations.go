package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// StatusSchema creates the table StatusRepository mirrors the status table into.
var StatusSchema = []string{
	`CREATE TABLE IF NOT EXISTS status_codes (
		name        TEXT PRIMARY KEY,
		code        INTEGER NOT NULL CHECK (code BETWEEN 100 AND 599),
		class       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		reference   TEXT NOT NULL DEFAULT '',
		deprecated  BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`ALTER TABLE status_codes ADD COLUMN IF NOT EXISTS position INTEGER NOT NULL DEFAULT 0`,
	`CREATE INDEX IF NOT EXISTS status_codes_code_position_idx ON status_codes (code, position)`,
}

// ApplyMigrations executes the provided SQL statements in order within the given context.
func ApplyMigrations(ctx context.Context, db *sql.DB, statements ...string) error {
	if db == nil {
		return fmt.Errorf("postgres: db is nil")
	}
	for _, stmt := range statements {
		if stmt == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("postgres: migrate: %w", err)
		}
	}
	return nil
}
