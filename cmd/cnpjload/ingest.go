package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/cnpjload/internal/db"
	"github.com/gyeh/cnpjload/internal/exitcode"
	"github.com/gyeh/cnpjload/internal/ingest"
	"github.com/gyeh/cnpjload/internal/logging"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Validate and load a registry Parquet file into the database",
	RunE:  runIngest,
}

func init() {
	f := ingestCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to Parquet file (required)")
	f.StringVar(&cfg.ConfigPath, "config", "", "Optional YAML config (schemes filter, keep_staging)")
	f.BoolVar(&cfg.Force, "force", false, "Re-import even if file SHA was already merged")
	f.BoolVar(&cfg.KeepStaging, "keep-staging", false, "Keep staging rows after merge")
	_ = ingestCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	if err := cfg.ValidateWithDSN(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	summary, err := ingest.Run(ctx, pool, log, &cfg)
	if err != nil {
		var pe *ingest.PipelineError
		if errors.As(err, &pe) {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("ingest failed")
			pool.Close()
			switch pe.Phase {
			case ingest.PhasePreflight:
				os.Exit(exitcode.ValidationError)
			case ingest.PhaseStage:
				os.Exit(exitcode.CopyError)
			default:
				os.Exit(exitcode.MergeError)
			}
		}
		log.Error().Err(err).Msg("ingest failed")
		pool.Close()
		os.Exit(exitcode.MergeError)
	}

	if summary.AlreadyLoaded {
		fmt.Printf("File already merged (source_file_id=%d); nothing to do\n", summary.SourceFileID)
		return nil
	}

	fmt.Printf("Ingest complete: %d rows read, %d staged, %d rejected, %d companies merged (%.1fs)\n",
		summary.RowsRead, summary.RowsStaged, summary.RowsRejected, summary.RowsMerged, summary.DurationTotal.Seconds())

	if summary.RowsRejected > 0 {
		pool.Close()
		os.Exit(exitcode.PartialSuccess)
	}
	return nil
}
