package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gyeh/cnpjload/pkg/cnpj"
)

func TestLoadFromFile_Valid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("schemes:\n  - numeric\nkeep_staging: true\n"), 0644)

	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if len(c.Schemes) != 1 || c.Schemes[0] != "numeric" {
		t.Fatalf("unexpected schemes: %v", c.Schemes)
	}
	if !c.KeepStaging {
		t.Error("expected keep_staging to be applied")
	}
	got := c.AcceptedSchemes()
	if len(got) != 1 || got[0] != cnpj.Numeric {
		t.Errorf("AcceptedSchemes = %v", got)
	}
}

func TestLoadFromFile_UnknownScheme(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("schemes:\n  - numeric\n  - cpf\n"), 0644)

	var c Config
	err := c.LoadFromFile(path)
	if !errors.Is(err, cnpj.ErrUnknownScheme) {
		t.Fatalf("expected ErrUnknownScheme, got %v", err)
	}
}

func TestLoadFromFile_EmptyDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("schemes: []\n"), 0644)

	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if len(c.Schemes) != 2 {
		t.Errorf("expected 2 default schemes, got %d: %v", len(c.Schemes), c.Schemes)
	}
	if c.KeepStaging {
		t.Error("keep_staging should stay false when absent")
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	var c Config
	err := c.LoadFromFile("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "registry.parquet")
	os.WriteFile(data, []byte("x"), 0644)

	var c Config
	if err := c.Validate(); err == nil {
		t.Error("expected error without --file")
	}

	c.FilePath = data
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(c.Schemes) != 2 {
		t.Errorf("expected default schemes, got %v", c.Schemes)
	}
	if err := c.ValidateWithDSN(); err == nil {
		t.Error("expected error without DSN")
	}

	c.DSN = "postgres://localhost/db"
	if err := c.ValidateWithDSN(); err != nil {
		t.Errorf("ValidateWithDSN: %v", err)
	}
}

func TestLoadFromFile_KeepStagingFlagWins(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("keep_staging: false\n"), 0644)

	c := Config{KeepStaging: true}
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if !c.KeepStaging {
		t.Error("--keep-staging should not be reset by the config file")
	}
}
