package db

import (
	"context"
	"fmt"
)

// Statements are idempotent so both binaries can run them at startup.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS jobs (
		id BIGSERIAL PRIMARY KEY,
		title VARCHAR(120) NOT NULL,
		company VARCHAR(120) NOT NULL,
		location VARCHAR(120) NOT NULL,
		posting_date TIMESTAMPTZ NOT NULL DEFAULT now(),
		job_type VARCHAR(50) NOT NULL DEFAULT '',
		tags VARCHAR(255) NOT NULL DEFAULT '',
		link VARCHAR(255) NOT NULL DEFAULT ''
	)`,
	// Authoritative guard for the (title, company, location) fingerprint.
	`CREATE UNIQUE INDEX IF NOT EXISTS jobs_fingerprint_idx
		ON jobs (title, company, location)`,
	`CREATE TABLE IF NOT EXISTS scrape_runs (
		id UUID PRIMARY KEY,
		source VARCHAR(255) NOT NULL,
		started_at TIMESTAMPTZ NOT NULL,
		finished_at TIMESTAMPTZ,
		cards_found INT NOT NULL DEFAULT 0,
		posted INT NOT NULL DEFAULT 0,
		skipped INT NOT NULL DEFAULT 0,
		dropped INT NOT NULL DEFAULT 0
	)`,
}

// EnsureSchema creates the tables and indexes the service depends on.
func (db *DB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensuring schema: %w", err)
		}
	}
	return nil
}
