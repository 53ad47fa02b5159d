// mkfixture writes a synthetic company registry Parquet file with a mix of
// numeric, alphanumeric, invalid and empty CNPJs.
// Usage: go run ./cmd/mkfixture --out testdata/registry-small.parquet --rows 200
// With --check it prints the CNPJ breakdown of an existing file instead.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gyeh/cnpjload/internal/fixture"
	"github.com/gyeh/cnpjload/internal/model"
	"github.com/gyeh/cnpjload/internal/parquetread"
	"github.com/gyeh/cnpjload/pkg/cnpj"
)

func main() {
	out := flag.String("out", "testdata/registry-small.parquet", "output parquet")
	rows := flag.Int("rows", 200, "rows to generate")
	seed := flag.Uint64("seed", 1, "generator seed")
	alnum := flag.Int("alnum", fixture.DefaultMix.Alphanumeric, "percent of alphanumeric CNPJs")
	invalid := flag.Int("invalid", fixture.DefaultMix.Invalid, "percent of CNPJs with a wrong check digit")
	empty := flag.Int("empty", fixture.DefaultMix.Empty, "percent of rows with no CNPJ")
	check := flag.String("check", "", "only print stats for this parquet file, don't write")
	flag.Parse()

	if *check != "" {
		if err := printStats(*check); err != nil {
			fmt.Fprintf(os.Stderr, "check: %v\n", err)
			os.Exit(1)
		}
		return
	}

	mix := fixture.Mix{Alphanumeric: *alnum, Invalid: *invalid, Empty: *empty}
	if mix.Alphanumeric+mix.Invalid+mix.Empty > 100 {
		fmt.Fprintln(os.Stderr, "--alnum + --invalid + --empty must not exceed 100")
		os.Exit(1)
	}

	generated := fixture.NewGenerator(*seed, mix).Rows(*rows)
	if err := fixture.WriteParquet(*out, generated); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d rows to %s\n", len(generated), *out)
	if err := printStats(*out); err != nil {
		fmt.Fprintf(os.Stderr, "stats: %v\n", err)
		os.Exit(1)
	}
}

func printStats(path string) error {
	r, err := parquetread.Open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	counts := make(map[string]int)
	total := 0
	buf := make([]model.CompanyRow, 1024)
	for {
		n, readErr := r.Read(buf)
		for i := 0; i < n; i++ {
			total++
			res := cnpj.Validate(buf[i].CNPJ, cnpj.RejectEmpty())
			switch {
			case res.Empty:
				counts["empty"]++
			case !res.Valid:
				counts["invalid"]++
			default:
				counts[res.Scheme.String()]++
			}
		}
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return fmt.Errorf("read: %w", readErr)
		}
	}

	fmt.Printf("Total: %d\n", total)
	for _, k := range []string{cnpj.Numeric.String(), cnpj.Alphanumeric.String(), "invalid", "empty"} {
		fmt.Printf("  %-13s %d\n", k, counts[k])
	}
	return nil
}
