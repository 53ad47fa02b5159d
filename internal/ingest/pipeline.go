package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/cnpjload/internal/config"
	"github.com/gyeh/cnpjload/internal/model"
)

// Pipeline phases, reported in PipelineError.Phase.
const (
	PhasePreflight = "preflight"
	PhaseStage     = "stage"
	PhaseMerge     = "merge"
	PhaseFinalize  = "finalize"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Run executes the full ingest pipeline: preflight → stage → merge →
// finalize → cleanup.
func Run(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, cfg *config.Config) (*model.IngestSummary, error) {
	totalStart := time.Now()

	// Phase 1: Preflight
	log.Info().Str("file", cfg.FilePath).Msg("starting preflight")
	pf, err := Preflight(ctx, pool, log, cfg.FilePath, cfg.Force)
	if err != nil {
		return nil, &PipelineError{Phase: PhasePreflight, Err: err}
	}

	if pf.AlreadyLoaded {
		log.Info().
			Int64("source_file_id", pf.SourceFileID).
			Str("sha256", pf.FileSHA256).
			Msg("file already merged, skipping (use --force to re-import)")
		return &model.IngestSummary{
			FilePath:      pf.FilePath,
			FileSHA256:    pf.FileSHA256,
			SourceFileID:  pf.SourceFileID,
			IngestBatchID: pf.IngestBatchID.String(),
			AlreadyLoaded: true,
			DurationTotal: time.Since(totalStart),
		}, nil
	}

	// Phase 2: Stage
	log.Info().Strs("schemes", cfg.Schemes).Msg("starting staging")
	if err := UpdateStatus(ctx, pool, pf.SourceFileID, StatusStaging); err != nil {
		return nil, &PipelineError{Phase: PhaseStage, Err: err}
	}

	stageResult, err := Stage(ctx, pool, log, pf, cfg.AcceptedSchemes())
	if err != nil {
		_ = UpdateStatus(ctx, pool, pf.SourceFileID, StatusFailed)
		return nil, &PipelineError{Phase: PhaseStage, Err: err}
	}

	if err := UpdateStatus(ctx, pool, pf.SourceFileID, StatusStaged); err != nil {
		return nil, &PipelineError{Phase: PhaseStage, Err: err}
	}

	// Phase 3: Merge
	log.Info().Msg("starting merge")
	if err := UpdateStatus(ctx, pool, pf.SourceFileID, StatusMerging); err != nil {
		return nil, &PipelineError{Phase: PhaseMerge, Err: err}
	}

	mergeResult, err := Merge(ctx, pool, log, pf.IngestBatchID)
	if err != nil {
		_ = UpdateStatus(ctx, pool, pf.SourceFileID, StatusFailed)
		return nil, &PipelineError{Phase: PhaseMerge, Err: err}
	}

	// Phase 4: Finalize
	log.Info().Msg("finalizing")
	finalizeDur, err := Finalize(ctx, pool, log, pf.SourceFileID)
	if err != nil {
		_ = UpdateStatus(ctx, pool, pf.SourceFileID, StatusFailed)
		return nil, &PipelineError{Phase: PhaseFinalize, Err: err}
	}

	// Phase 5: Cleanup staging
	if !cfg.KeepStaging {
		log.Info().Msg("cleaning up staging")
		if err := Cleanup(ctx, pool, log, pf.IngestBatchID); err != nil {
			log.Warn().Err(err).Msg("staging cleanup failed (non-fatal)")
		}
	}

	summary := &model.IngestSummary{
		FilePath:      pf.FilePath,
		FileSHA256:    pf.FileSHA256,
		SourceFileID:  pf.SourceFileID,
		IngestBatchID: pf.IngestBatchID.String(),
		RowsRead:      stageResult.RowsRead,
		RowsStaged:    stageResult.RowsStaged,
		RowsRejected:  stageResult.RowsRejected,
		RowsMerged:    mergeResult.RowsMerged,
		RowsByScheme:  stageResult.RowsByScheme,
		DurationStage: stageResult.Duration,
		DurationMerge: mergeResult.Duration,
		DurationFinal: finalizeDur,
		DurationTotal: time.Since(totalStart),
	}

	log.Info().
		Int64("rows_read", summary.RowsRead).
		Int64("rows_staged", summary.RowsStaged).
		Int64("rows_merged", summary.RowsMerged).
		Int64("rows_rejected", summary.RowsRejected).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("ingest pipeline complete")

	return summary, nil
}
