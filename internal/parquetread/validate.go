package parquetread

import (
	"fmt"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/cnpjload/internal/model"
)

// ValidateSchema checks that the Parquet schema contains every required
// registry column and that the cnpj column is a string.
func ValidateSchema(schema *parquet.Schema) error {
	columns := make(map[string]parquet.Field)
	for _, field := range schema.Fields() {
		columns[strings.ToLower(field.Name())] = field
	}

	var missing []string
	for _, col := range model.RequiredColumns {
		if _, ok := columns[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	cnpjField := columns["cnpj"]
	if !cnpjField.Leaf() || cnpjField.Type().Kind() != parquet.ByteArray {
		return fmt.Errorf("column cnpj must be a string, got %s", cnpjField.Type())
	}

	return nil
}
