package fixture

import (
	"path/filepath"
	"testing"

	"github.com/gyeh/cnpjload/internal/model"
	"github.com/gyeh/cnpjload/internal/parquetread"
	"github.com/gyeh/cnpjload/pkg/cnpj"
)

func TestGenerator_Deterministic(t *testing.T) {
	a := NewGenerator(42, DefaultMix).Rows(50)
	b := NewGenerator(42, DefaultMix).Rows(50)
	for i := range a {
		if a[i].CNPJ != b[i].CNPJ || a[i].CompanyName != b[i].CompanyName {
			t.Fatalf("row %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerator_Mix(t *testing.T) {
	rows := NewGenerator(7, Mix{Alphanumeric: 30, Invalid: 20, Empty: 10}).Rows(1000)
	var numeric, alpha, invalid, empty int
	for _, r := range rows {
		res := cnpj.Validate(r.CNPJ)
		switch {
		case res.Empty:
			empty++
		case !res.Valid:
			invalid++
		case res.Scheme == cnpj.Alphanumeric:
			alpha++
		default:
			numeric++
		}
	}
	if numeric == 0 || alpha == 0 || invalid == 0 || empty == 0 {
		t.Errorf("expected every kind of row, got numeric=%d alpha=%d invalid=%d empty=%d",
			numeric, alpha, invalid, empty)
	}
	if invalid < 100 || invalid > 300 {
		t.Errorf("invalid share out of range: %d", invalid)
	}
}

func TestValidGenerators(t *testing.T) {
	g := NewGenerator(1, DefaultMix)
	for i := 0; i < 200; i++ {
		if v := g.ValidNumeric(); !cnpj.IsValid(v) || cnpj.Classify(v) != cnpj.Numeric {
			t.Fatalf("ValidNumeric produced %q", v)
		}
		if v := g.ValidAlphanumeric(); !cnpj.IsValid(v) || cnpj.Classify(v) != cnpj.Alphanumeric {
			t.Fatalf("ValidAlphanumeric produced %q", v)
		}
	}
}

func TestCorrupt(t *testing.T) {
	if got := corrupt("11222333000181"); got != "11222333000182" {
		t.Errorf("corrupt = %q", got)
	}
	if got := corrupt("11222333000189"); got != "11222333000180" {
		t.Errorf("corrupt = %q", got)
	}
}

func TestWriteParquet(t *testing.T) {
	rows := NewGenerator(3, DefaultMix).Rows(20)
	path := filepath.Join(t.TempDir(), "fixture.parquet")
	if err := WriteParquet(path, rows); err != nil {
		t.Fatalf("WriteParquet: %v", err)
	}

	r, err := parquetread.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()
	if err := parquetread.ValidateSchema(r.Schema()); err != nil {
		t.Fatalf("ValidateSchema: %v", err)
	}
	if r.NumRows() != 20 {
		t.Errorf("NumRows = %d", r.NumRows())
	}
	buf := make([]model.CompanyRow, 20)
	n, _ := r.Read(buf)
	if n != 20 || buf[0].CNPJ != rows[0].CNPJ {
		t.Errorf("read back %d rows, first = %q want %q", n, buf[0].CNPJ, rows[0].CNPJ)
	}
}
