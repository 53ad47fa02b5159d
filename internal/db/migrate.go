package db

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	embedsql "github.com/gyeh/cnpjload/internal/sql"
)

// MigrationNames lists the embedded migration files in the order they run.
func MigrationNames() ([]string, error) {
	// fs.ReadDir returns entries sorted by filename.
	entries, err := fs.ReadDir(embedsql.Migrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// ApplyMigrations runs every embedded migration, each in its own
// transaction. All DDL uses IF NOT EXISTS so re-running is a no-op.
func ApplyMigrations(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger) error {
	names, err := MigrationNames()
	if err != nil {
		return err
	}

	for _, name := range names {
		data, err := fs.ReadFile(embedsql.Migrations, path.Join("migrations", name))
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}

		start := time.Now()
		err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
			_, err := tx.Exec(ctx, string(data))
			return err
		})
		if err != nil {
			return fmt.Errorf("execute migration %s: %w", name, err)
		}
		log.Info().Str("migration", name).Dur("duration", time.Since(start)).Msg("migration applied")
	}

	log.Info().Int("count", len(names)).Msg("all migrations applied")
	return nil
}
