package normalize

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/gyeh/cnpjload/internal/model"
	"github.com/gyeh/cnpjload/pkg/cnpj"
)

var (
	ErrInvalidCNPJ      = errors.New("invalid cnpj")
	ErrSchemeNotAllowed = errors.New("cnpj scheme not accepted")
	ErrMissingName      = errors.New("missing company name")
)

// ToStagingRow converts a Parquet-read CompanyRow into a normalized StagingRow.
// Rows whose CNPJ is empty or fails check-digit validation are rejected, as are
// rows whose scheme is not listed in schemes (nil accepts every scheme).
func ToStagingRow(row *model.CompanyRow, batchID uuid.UUID, sourceFileID int64, rowNum int64, schemes []cnpj.Scheme) (*model.StagingRow, error) {
	res := cnpj.Validate(row.CNPJ, cnpj.RejectEmpty(), cnpj.Formatted())
	if !res.Valid {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCNPJ, row.CNPJ)
	}
	if len(schemes) > 0 && !slices.Contains(schemes, res.Scheme) {
		return nil, fmt.Errorf("%w: %s", ErrSchemeNotAllowed, res.Scheme)
	}

	name := strings.TrimSpace(row.CompanyName)
	if name == "" {
		return nil, ErrMissingName
	}

	s := &model.StagingRow{
		IngestBatchID:   batchID,
		SourceFileID:    sourceFileID,
		SourceRowNumber: rowNum,

		CNPJ:        cnpj.Compact(res.Value),
		CNPJDisplay: res.Value,
		Scheme:      res.Scheme.String(),

		CompanyName:     *NormalizeName(&name),
		CompanyNameNorm: FoldName(name),
		TradeName:       NormalizeName(row.TradeName),
		LegalNature:     NormalizeCode(row.LegalNature),

		State: NormalizeState(row.State),
		City:  NormalizeName(row.City),

		CapitalCents: ReaisToCents(row.Capital),
	}
	if row.OpenedOn != nil {
		s.OpenedOn = ParseDate(*row.OpenedOn)
	}

	s.SourceRowHash = ContentHash(s)

	return s, nil
}
