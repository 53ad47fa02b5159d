package ingest_test

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	embeddedpostgres "github.com/fergusstrange/embedded-postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/cnpjload/internal/db"
	"github.com/gyeh/cnpjload/internal/fixture"
	"github.com/gyeh/cnpjload/internal/model"
)

const (
	testPort     = 15433
	testDB       = "cnpjtest"
	testUser     = "postgres"
	testPassword = "postgres"
)

// testDSN stays empty when the embedded database is not started; DB tests skip.
var testDSN string

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() || os.Getenv("CNPJLOAD_SKIP_PG") != "" {
		os.Exit(m.Run())
	}

	dsn := fmt.Sprintf("postgresql://%s:%s@localhost:%d/%s?sslmode=disable",
		testUser, testPassword, testPort, testDB)

	pg := embeddedpostgres.NewDatabase(
		embeddedpostgres.DefaultConfig().
			Port(uint32(testPort)).
			Database(testDB).
			Username(testUser).
			Password(testPassword).
			Version(embeddedpostgres.V16).
			StartTimeout(30*time.Second),
	)

	if err := pg.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start embedded postgres: %v\n", err)
		os.Exit(1)
	}
	testDSN = dsn

	code := m.Run()

	if err := pg.Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to stop embedded postgres: %v\n", err)
	}

	os.Exit(code)
}

func setupLog() zerolog.Logger {
	return zerolog.Nop()
}

// setupDB connects to the embedded database, drops the schemas and
// re-applies migrations.
func setupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testDSN == "" {
		t.Skip("embedded postgres disabled")
	}
	ctx := context.Background()

	pool, err := db.NewPool(ctx, testDSN)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	for _, schema := range []string{"ref", "ingest"} {
		if _, err := pool.Exec(ctx, fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schema)); err != nil {
			pool.Close()
			t.Fatalf("drop schema %s: %v", schema, err)
		}
	}

	if err := db.ApplyMigrations(ctx, pool, setupLog()); err != nil {
		pool.Close()
		t.Fatalf("migrations: %v", err)
	}

	t.Cleanup(func() { pool.Close() })
	return pool
}

// writeFixture writes rows to a Parquet file in a temp dir and returns its path.
func writeFixture(t *testing.T, rows []model.CompanyRow) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "registry.parquet")
	if err := fixture.WriteParquet(path, rows); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func strPtr(s string) *string { return &s }
