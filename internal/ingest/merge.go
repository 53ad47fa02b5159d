package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	embedsql "github.com/gyeh/cnpjload/internal/sql"
)

// MergeResult holds metrics from the staging → ref.companies upsert.
type MergeResult struct {
	RowsMerged int64
	Duration   time.Duration
}

// Merge upserts the staged batch into ref.companies keyed by compact CNPJ.
// When a CNPJ repeats inside the batch, the last row in file order wins.
func Merge(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, batchID uuid.UUID) (*MergeResult, error) {
	start := time.Now()

	tag, err := pool.Exec(ctx, embedsql.MergeCompanies, batchID)
	if err != nil {
		return nil, fmt.Errorf("merge companies: %w", err)
	}

	dur := time.Since(start)
	rows := tag.RowsAffected()

	log.Info().
		Int64("rows_merged", rows).
		Str("duration", dur.String()).
		Float64("rows_per_sec", float64(rows)/dur.Seconds()).
		Msg("merge complete")

	return &MergeResult{
		RowsMerged: rows,
		Duration:   dur,
	}, nil
}
