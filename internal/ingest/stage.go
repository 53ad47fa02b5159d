package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/gyeh/cnpjload/internal/db"
	"github.com/gyeh/cnpjload/internal/model"
	"github.com/gyeh/cnpjload/internal/normalize"
	"github.com/gyeh/cnpjload/internal/parquetread"
	"github.com/gyeh/cnpjload/pkg/cnpj"
)

const readBatchSize = 1024

// Rejection reasons reported in StageResult.RejectedByReason.
const (
	ReasonInvalidCNPJ    = "invalid_cnpj"
	ReasonSchemeFiltered = "scheme_filtered"
	ReasonMissingName    = "missing_name"
	ReasonOther          = "other"
)

// StageResult holds metrics from the staging phase.
type StageResult struct {
	RowsRead         int64
	RowsStaged       int64
	RowsRejected     int64
	RowsByScheme     map[string]int64
	RejectedByReason map[string]int64
	Duration         time.Duration
}

// Stage streams rows from the Parquet file, validates and normalizes them,
// and COPY-loads the accepted rows into the staging table via a
// channel-backed CopyFromSource.
func Stage(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, pf *PreflightResult, schemes []cnpj.Scheme) (*StageResult, error) {
	start := time.Now()

	reader, err := parquetread.Open(pf.FilePath)
	if err != nil {
		return nil, fmt.Errorf("stage open: %w", err)
	}
	defer reader.Close()

	res := &StageResult{
		RowsByScheme:     make(map[string]int64),
		RejectedByReason: make(map[string]int64),
	}

	ch := make(chan *model.StagingRow, readBatchSize)
	source := db.NewChannelSource(ch)
	g, gctx := errgroup.WithContext(ctx)

	// Producer: read Parquet → validate/normalize → push to channel
	g.Go(func() error {
		err := produce(gctx, reader, log, pf, schemes, res, ch)
		if err != nil {
			source.Abort(err)
		}
		close(ch)
		if err != nil {
			return fmt.Errorf("stage producer: %w", err)
		}
		return nil
	})

	// Consumer: COPY from channel into staging table
	g.Go(func() error {
		n, err := pool.CopyFrom(gctx,
			pgx.Identifier{"ingest", "stage_company_rows"},
			model.StagingColumns(),
			source,
		)
		if err != nil {
			return fmt.Errorf("stage copy: %w", err)
		}
		res.RowsStaged = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	res.Duration = time.Since(start)
	log.Info().
		Int64("rows_read", res.RowsRead).
		Int64("rows_staged", res.RowsStaged).
		Int64("rows_rejected", res.RowsRejected).
		Str("duration", res.Duration.String()).
		Float64("rows_per_sec", float64(res.RowsStaged)/res.Duration.Seconds()).
		Msg("staging complete")

	return res, nil
}

func produce(ctx context.Context, reader *parquetread.Reader, log zerolog.Logger, pf *PreflightResult, schemes []cnpj.Scheme, res *StageResult, ch chan<- *model.StagingRow) error {
	buf := make([]model.CompanyRow, readBatchSize)
	var rowNum int64

	for {
		n, readErr := reader.Read(buf)
		for i := 0; i < n; i++ {
			rowNum++
			res.RowsRead++

			staging, normErr := normalize.ToStagingRow(&buf[i], pf.IngestBatchID, pf.SourceFileID, rowNum, schemes)
			if normErr != nil {
				res.RowsRejected++
				res.RejectedByReason[rejectReason(normErr)]++
				log.Warn().Err(normErr).Int64("row", rowNum).Msg("row rejected")
				continue
			}
			res.RowsByScheme[staging.Scheme]++

			select {
			case ch <- staging:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			return fmt.Errorf("read parquet at row %d: %w", rowNum, readErr)
		}
	}
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, normalize.ErrInvalidCNPJ):
		return ReasonInvalidCNPJ
	case errors.Is(err, normalize.ErrSchemeNotAllowed):
		return ReasonSchemeFiltered
	case errors.Is(err, normalize.ErrMissingName):
		return ReasonMissingName
	default:
		return ReasonOther
	}
}
