package model

// CompanyRow mirrors the Parquet schema for a single registry entry.
// The CNPJ arrives as free text (punctuated or not); it is validated and
// compacted during normalization.
type CompanyRow struct {
	CNPJ        string `parquet:"cnpj"`
	CompanyName string `parquet:"company_name"`

	TradeName   *string `parquet:"trade_name,optional"`
	LegalNature *string `parquet:"legal_nature,optional"`

	// Address
	State *string `parquet:"state,optional"`
	City  *string `parquet:"city,optional"`

	// OpenedOn is kept as text; registry dumps mix YYYYMMDD and DD/MM/YYYY.
	OpenedOn *string `parquet:"opened_on,optional"`

	// Share capital in BRL, converted to centavos in normalize
	Capital *float64 `parquet:"capital,optional"`
}

// RequiredColumns are the Parquet columns a registry file must carry.
var RequiredColumns = []string{"cnpj", "company_name"}
