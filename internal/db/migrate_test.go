package db

import (
	"slices"
	"testing"
)

func TestMigrationNames(t *testing.T) {
	names, err := MigrationNames()
	if err != nil {
		t.Fatalf("MigrationNames: %v", err)
	}
	want := []string{
		"001_schemas.sql",
		"002_source_files.sql",
		"003_stage_company_rows.sql",
		"004_companies.sql",
	}
	if !slices.Equal(names, want) {
		t.Errorf("got %v, want %v", names, want)
	}
}
