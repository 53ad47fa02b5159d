package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	embedsql "github.com/gyeh/cnpjload/internal/sql"
)

// Finalize marks the source file as merged and runs ANALYZE on ref.companies.
func Finalize(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, sourceFileID int64) (time.Duration, error) {
	start := time.Now()

	if err := UpdateStatus(ctx, pool, sourceFileID, StatusMerged); err != nil {
		return 0, fmt.Errorf("update status to merged: %w", err)
	}
	log.Info().Int64("source_file_id", sourceFileID).Msg("source file merged")

	if _, err := pool.Exec(ctx, embedsql.AnalyzeCompanies); err != nil {
		return 0, fmt.Errorf("analyze companies: %w", err)
	}
	log.Info().Msg("ANALYZE complete")

	return time.Since(start), nil
}
