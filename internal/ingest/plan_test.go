package ingest_test

import (
	"testing"

	"github.com/gyeh/cnpjload/internal/ingest"
	"github.com/gyeh/cnpjload/internal/model"
	"github.com/gyeh/cnpjload/pkg/cnpj"
)

func planRows() []model.CompanyRow {
	return []model.CompanyRow{
		{CNPJ: "11.222.333/0001-81", CompanyName: "A"},
		{CNPJ: "41653207000142", CompanyName: "B"},
		{CNPJ: "12.ABC.345/01DE-35", CompanyName: "C"},
		{CNPJ: "11.222.333/0001-00", CompanyName: "D"},
		{CNPJ: "00000000000000", CompanyName: "E"},
		{CNPJ: "  ", CompanyName: "F"},
	}
}

func TestPlan_AllSchemes(t *testing.T) {
	path := writeFixture(t, planRows())

	rep, err := ingest.Plan(path, nil, 0)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if rep.NumRows != 6 || rep.Scanned != 6 {
		t.Errorf("NumRows=%d Scanned=%d, want 6/6", rep.NumRows, rep.Scanned)
	}
	if rep.Valid != 3 || rep.Invalid != 2 || rep.Empty != 1 || rep.Filtered != 0 {
		t.Errorf("valid=%d invalid=%d empty=%d filtered=%d", rep.Valid, rep.Invalid, rep.Empty, rep.Filtered)
	}
	if rep.ByScheme["numeric"] != 2 || rep.ByScheme["alphanumeric"] != 1 {
		t.Errorf("ByScheme = %v", rep.ByScheme)
	}
	if len(rep.InvalidSamples) != 2 || rep.InvalidSamples[0] != "11.222.333/0001-00" {
		t.Errorf("InvalidSamples = %v", rep.InvalidSamples)
	}
	if len(rep.FileSHA256) != 64 {
		t.Errorf("FileSHA256 = %q", rep.FileSHA256)
	}
}

func TestPlan_SchemeFilterAndLimit(t *testing.T) {
	path := writeFixture(t, planRows())

	rep, err := ingest.Plan(path, []cnpj.Scheme{cnpj.Numeric}, 0)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if rep.Valid != 2 || rep.Filtered != 1 {
		t.Errorf("valid=%d filtered=%d, want 2/1", rep.Valid, rep.Filtered)
	}

	rep, err = ingest.Plan(path, nil, 2)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if rep.Scanned != 2 || rep.Valid != 2 {
		t.Errorf("limit: scanned=%d valid=%d, want 2/2", rep.Scanned, rep.Valid)
	}
}

func TestPlan_MissingFile(t *testing.T) {
	if _, err := ingest.Plan("/nonexistent/registry.parquet", nil, 0); err == nil {
		t.Fatal("expected error for missing file")
	}
}
