package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gyeh/cnpjload/internal/config"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "cnpjload",
	Short: "CNPJ validator, formatter and registry → Postgres loader",
	Long: "Validates and formats Brazilian CNPJ identifiers (numeric and alphanumeric) and " +
		"bulk-loads company registry Parquet files into Postgres via the COPY protocol.",
	SilenceUsage: true,
}

func init() {
	// A missing .env is fine.
	_ = godotenv.Load()

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.DSN, "dsn", os.Getenv("CNPJLOAD_DB_URL"), "Postgres connection string (or set CNPJLOAD_DB_URL)")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
}
