package store

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"time"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

// runMigrations applies the embedded migration files for the dialect in
// filename order, recording each applied version in schema_migrations. The
// runner is idempotent: already-recorded versions are skipped.
func runMigrations(db *sql.DB, dialect string) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		version TEXT PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL
	)`); err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	dir := "migrations/" + dialect
	entries, err := fs.ReadDir(migrationsFS, dir)
	if err != nil {
		return fmt.Errorf("failed to read embedded migrations for %s: %w", dialect, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	existsQuery := `SELECT COUNT(1) FROM schema_migrations WHERE version = ?`
	insertStmt := `INSERT INTO schema_migrations (version, applied_at) VALUES (?, ?)`
	if dialect == "postgres" {
		existsQuery = `SELECT COUNT(1) FROM schema_migrations WHERE version = $1`
		insertStmt = `INSERT INTO schema_migrations (version, applied_at) VALUES ($1, $2)`
	}

	for _, name := range names {
		var applied int
		if err := db.QueryRow(existsQuery, name).Scan(&applied); err != nil {
			return fmt.Errorf("failed to check migration %s: %w", name, err)
		}
		if applied > 0 {
			slog.Debug("Migration already applied", "version", name)
			continue
		}

		content, err := migrationsFS.ReadFile(dir + "/" + name)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", name, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin migration %s: %w", name, err)
		}
		if _, err := tx.Exec(string(content)); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to apply migration %s: %w", name, err)
		}
		if _, err := tx.Exec(insertStmt, name, time.Now().UTC()); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %s: %w", name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %s: %w", name, err)
		}
		slog.Info("Applied migration", "version", name, "dialect", dialect)
	}
	return nil
}
