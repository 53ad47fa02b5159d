package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/cnpjload/internal/exitcode"
	"github.com/gyeh/cnpjload/internal/logging"
	"github.com/gyeh/cnpjload/pkg/cnpj"
)

var (
	validateFormatted   bool
	validateRejectEmpty bool
)

var validateCmd = &cobra.Command{
	Use:   "validate [CNPJ...]",
	Short: "Check CNPJ check digits (reads stdin lines when no arguments are given)",
	RunE:  runValidate,
}

func init() {
	f := validateCmd.Flags()
	f.BoolVar(&validateFormatted, "formatted", false, "Print valid CNPJs as XX.XXX.XXX/XXXX-XX")
	f.BoolVar(&validateRejectEmpty, "reject-empty", false, "Treat empty input as invalid")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	inputs := args
	if len(inputs) == 0 {
		var err error
		inputs, err = readLines(cmd.InOrStdin())
		if err != nil {
			log.Error().Err(err).Msg("failed to read stdin")
			os.Exit(exitcode.UsageError)
		}
	}

	var opts []cnpj.Option
	if validateFormatted {
		opts = append(opts, cnpj.Formatted())
	}
	if validateRejectEmpty {
		opts = append(opts, cnpj.RejectEmpty())
	}

	invalid := validateAll(cmd.OutOrStdout(), inputs, opts...)
	log.Debug().Int("checked", len(inputs)).Int("invalid", invalid).Msg("validation complete")

	if invalid > 0 {
		os.Exit(exitcode.ValidationError)
	}
	return nil
}

// validateAll writes one tab-separated line per input:
// input, valid|invalid, scheme, normalized value. It returns the number of invalid inputs.
func validateAll(w io.Writer, inputs []string, opts ...cnpj.Option) int {
	invalid := 0
	for _, in := range inputs {
		r := cnpj.Validate(in, opts...)
		status := "valid"
		if !r.Valid {
			status = "invalid"
			invalid++
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", in, status, r.Scheme, r.Value)
	}
	return invalid
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
