package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gyeh/cnpjload/pkg/cnpj"
)

var formatCompact bool

var formatCmd = &cobra.Command{
	Use:   "format [CNPJ...]",
	Short: "Print CNPJs in canonical form without checking check digits",
	RunE:  runFormat,
}

func init() {
	formatCmd.Flags().BoolVar(&formatCompact, "compact", false, "Print the 14-character form without punctuation")
	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	inputs := args
	if len(inputs) == 0 {
		var err error
		if inputs, err = readLines(cmd.InOrStdin()); err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	}
	formatAll(cmd.OutOrStdout(), inputs, formatCompact)
	return nil
}

func formatAll(w io.Writer, inputs []string, compact bool) {
	for _, in := range inputs {
		if compact {
			fmt.Fprintln(w, cnpj.Compact(in))
			continue
		}
		fmt.Fprintln(w, cnpj.Format(in))
	}
}
