package model

import (
	"time"

	"github.com/google/uuid"
)

// StagingRow is the normalized, DB-ready representation of a registry entry.
// CNPJ holds the compact 14-character form; capital is stored in centavos.
type StagingRow struct {
	IngestBatchID uuid.UUID
	SourceFileID  int64

	SourceRowNumber int64
	SourceRowHash   []byte

	CNPJ        string
	CNPJDisplay string
	Scheme      string

	CompanyName     string
	CompanyNameNorm string
	TradeName       *string
	LegalNature     *string

	State *string
	City  *string

	OpenedOn     *time.Time
	CapitalCents *int64
}

// StagingColumns returns the ordered column names for COPY into ingest.stage_company_rows.
func StagingColumns() []string {
	return []string{
		"ingest_batch_id",
		"source_file_id",
		"source_row_number",
		"source_row_hash",
		"cnpj",
		"cnpj_display",
		"scheme",
		"company_name",
		"company_name_norm",
		"trade_name",
		"legal_nature",
		"state",
		"city",
		"opened_on",
		"capital_cents",
	}
}

// CopyValues returns the row values in the same order as StagingColumns(),
// suitable for pgx CopyFromSource.
func (r *StagingRow) CopyValues() []any {
	return []any{
		r.IngestBatchID,
		r.SourceFileID,
		r.SourceRowNumber,
		r.SourceRowHash,
		r.CNPJ,
		r.CNPJDisplay,
		r.Scheme,
		r.CompanyName,
		r.CompanyNameNorm,
		r.TradeName,
		r.LegalNature,
		r.State,
		r.City,
		r.OpenedOn,
		r.CapitalCents,
	}
}
