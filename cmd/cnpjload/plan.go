package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/gyeh/cnpjload/internal/exitcode"
	"github.com/gyeh/cnpjload/internal/ingest"
	"github.com/gyeh/cnpjload/internal/logging"
)

var planLimit int64

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run validation and stats (no writes)",
	RunE:  runPlan,
}

func init() {
	f := planCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to Parquet file (required)")
	f.StringVar(&cfg.ConfigPath, "config", "", "Optional YAML config (schemes filter)")
	f.Int64Var(&planLimit, "limit", 0, "Scan at most this many rows (0 = all)")
	_ = planCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	rep, err := ingest.Plan(cfg.FilePath, cfg.AcceptedSchemes(), planLimit)
	if err != nil {
		log.Error().Err(err).Msg("plan failed")
		os.Exit(exitcode.ValidationError)
	}

	fmt.Println("=== cnpjload plan ===")
	fmt.Printf("File:       %s\n", rep.FilePath)
	fmt.Printf("SHA-256:    %s\n", rep.FileSHA256)
	fmt.Printf("Size:       %d bytes\n", rep.FileSize)
	fmt.Printf("Total rows: %d\n", rep.NumRows)
	fmt.Printf("Scanned:    %d rows\n", rep.Scanned)
	fmt.Println()
	fmt.Printf("Valid:      %d\n", rep.Valid)

	schemes := make([]string, 0, len(rep.ByScheme))
	for s := range rep.ByScheme {
		schemes = append(schemes, s)
	}
	sort.Strings(schemes)
	for _, s := range schemes {
		fmt.Printf("  %-13s %d\n", s, rep.ByScheme[s])
	}

	fmt.Printf("Invalid:    %d\n", rep.Invalid)
	fmt.Printf("Empty:      %d\n", rep.Empty)
	fmt.Printf("Filtered:   %d (scheme not in %v)\n", rep.Filtered, cfg.Schemes)
	if len(rep.InvalidSamples) > 0 {
		fmt.Println("\nInvalid samples:")
		for _, s := range rep.InvalidSamples {
			fmt.Printf("  %q\n", s)
		}
	}
	fmt.Println("\nSchema validation: OK")

	return nil
}
