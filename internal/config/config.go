package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gyeh/cnpjload/pkg/cnpj"
)

// DefaultSchemes is used when no scheme filter is configured.
var DefaultSchemes = []string{cnpj.Numeric.String(), cnpj.Alphanumeric.String()}

// Config holds all runtime configuration for a cnpjload run.
type Config struct {
	DSN         string
	FilePath    string
	ConfigPath  string
	LogFormat   string // "text" or "json"
	Force       bool
	KeepStaging bool
	Schemes     []string `yaml:"schemes"` // CNPJ schemes accepted by ingest
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	Schemes     []string `yaml:"schemes"`
	KeepStaging *bool    `yaml:"keep_staging"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	c.Schemes = yc.Schemes
	// --keep-staging on the command line is never turned off by the file.
	if yc.KeepStaging != nil && !c.KeepStaging {
		c.KeepStaging = *yc.KeepStaging
	}
	return c.validateSchemes()
}

// validateSchemes checks that every entry in Schemes names a known scheme.
// If Schemes is empty, it defaults to DefaultSchemes.
func (c *Config) validateSchemes() error {
	if len(c.Schemes) == 0 {
		c.Schemes = append([]string(nil), DefaultSchemes...)
		return nil
	}
	for _, name := range c.Schemes {
		if _, err := cnpj.ParseScheme(name); err != nil {
			return fmt.Errorf("scheme %q in config: %w", name, err)
		}
	}
	return nil
}

// AcceptedSchemes returns Schemes parsed into cnpj.Scheme values.
// Unknown names are skipped; Validate reports them.
func (c *Config) AcceptedSchemes() []cnpj.Scheme {
	out := make([]cnpj.Scheme, 0, len(c.Schemes))
	for _, name := range c.Schemes {
		if s, err := cnpj.ParseScheme(name); err == nil {
			out = append(out, s)
		}
	}
	return out
}

// Validate checks required fields and returns an error if the config is invalid.
// A config file named by ConfigPath is loaded first.
func (c *Config) Validate() error {
	if c.FilePath == "" {
		return fmt.Errorf("--file is required")
	}
	if _, err := os.Stat(c.FilePath); err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}
	if c.ConfigPath != "" {
		return c.LoadFromFile(c.ConfigPath)
	}
	return c.validateSchemes()
}

// ValidateWithDSN checks both file and DSN fields.
func (c *Config) ValidateWithDSN() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.DSN == "" {
		return fmt.Errorf("--dsn or CNPJLOAD_DB_URL is required")
	}
	return nil
}
