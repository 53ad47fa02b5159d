package ingest

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/gyeh/cnpjload/internal/model"
	"github.com/gyeh/cnpjload/internal/normalize"
	"github.com/gyeh/cnpjload/internal/parquetread"
	"github.com/gyeh/cnpjload/pkg/cnpj"
)

const maxInvalidSamples = 10

// PlanReport summarizes a dry run over a registry file.
type PlanReport struct {
	FilePath   string
	FileSHA256 string
	FileSize   int64
	NumRows    int64
	Scanned    int64

	Valid    int64
	Invalid  int64
	Empty    int64
	Filtered int64 // valid, but the scheme is not accepted
	ByScheme map[string]int64

	// InvalidSamples holds up to maxInvalidSamples raw values that failed validation.
	InvalidSamples []string
}

// Plan validates the schema of the file at path and classifies the CNPJ of
// up to limit rows (limit <= 0 scans the whole file). Nothing is written.
func Plan(path string, schemes []cnpj.Scheme, limit int64) (*PlanReport, error) {
	sha, err := normalize.FileHash(path)
	if err != nil {
		return nil, fmt.Errorf("plan hash: %w", err)
	}
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("plan stat: %w", err)
	}

	reader, err := parquetread.Open(path)
	if err != nil {
		return nil, fmt.Errorf("plan open: %w", err)
	}
	defer reader.Close()

	rep := &PlanReport{
		FilePath:   path,
		FileSHA256: sha,
		FileSize:   stat.Size(),
		NumRows:    reader.NumRows(),
		ByScheme:   make(map[string]int64),
	}
	if limit <= 0 || limit > rep.NumRows {
		limit = rep.NumRows
	}

	buf := make([]model.CompanyRow, 256)
	for rep.Scanned < limit {
		n, readErr := reader.Read(buf)
		for i := 0; i < n && rep.Scanned < limit; i++ {
			rep.Scanned++
			rep.observe(buf[i].CNPJ, schemes)
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("plan read: %w", readErr)
		}
	}

	return rep, nil
}

func (r *PlanReport) observe(raw string, schemes []cnpj.Scheme) {
	res := cnpj.Validate(raw)
	switch {
	case res.Empty:
		r.Empty++
	case !res.Valid:
		r.Invalid++
		if len(r.InvalidSamples) < maxInvalidSamples {
			r.InvalidSamples = append(r.InvalidSamples, raw)
		}
	case len(schemes) > 0 && !slices.Contains(schemes, res.Scheme):
		r.Filtered++
	default:
		r.Valid++
		r.ByScheme[res.Scheme.String()]++
	}
}
