package database

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"go-jobboard/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const migrationsTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
	version TEXT PRIMARY KEY,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// PendingMigrations returns the *.up.sql files in fsys, sorted by name, that
// are not in applied.
func PendingMigrations(fsys fs.FS, applied map[string]bool) ([]string, error) {
	names, err := fs.Glob(fsys, "*.up.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	pending := make([]string, 0, len(names))
	for _, name := range names {
		if !applied[strings.TrimSuffix(name, ".up.sql")] {
			pending = append(pending, name)
		}
	}
	return pending, nil
}

// Migrate applies every pending up migration, each in its own transaction.
func Migrate(ctx context.Context, pool *pgxpool.Pool, fsys fs.FS) error {
	if _, err := pool.Exec(ctx, migrationsTable); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	rows, err := pool.Query(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return err
	}
	versions, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return err
	}
	applied := make(map[string]bool, len(versions))
	for _, v := range versions {
		applied[v] = true
	}

	pending, err := PendingMigrations(fsys, applied)
	if err != nil {
		return err
	}

	for _, name := range pending {
		sqlBytes, err := fs.ReadFile(fsys, name)
		if err != nil {
			return err
		}
		version := strings.TrimSuffix(name, ".up.sql")
		if err := pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, string(sqlBytes)); err != nil {
				return err
			}
			_, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, version)
			return err
		}); err != nil {
			return fmt.Errorf("migration %s: %w", name, err)
		}
		logger.Log.Info("Applied migration", "version", version)
	}
	return nil
}
