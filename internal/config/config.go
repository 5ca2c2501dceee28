// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"souq-core/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Catalog contains product catalog configuration
	Catalog CatalogConfig `json:"catalog"`

	// Calendar contains date picker configuration
	Calendar CalendarConfig `json:"calendar"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Server contains HTTP server configuration
	Server ServerConfig `json:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// CatalogConfig contains product catalog settings
type CatalogConfig struct {
	// Dir is the directory holding .hcl catalog files
	Dir string `json:"dir"`

	// DefaultCurrency applies to products that omit a currency
	DefaultCurrency string `json:"default_currency"`
}

// CalendarConfig bounds the year ranges offered by date pickers.
// The calendar engine itself accepts any positive year; these bounds
// only shape the selector widgets.
type CalendarConfig struct {
	// GregorianMinYear is the earliest selectable Gregorian year
	GregorianMinYear int `json:"gregorian_min_year"`

	// GregorianMaxYearOffset is added to the current year for the
	// latest selectable Gregorian year
	GregorianMaxYearOffset int `json:"gregorian_max_year_offset"`

	// HijriMinYear is the earliest selectable Hijri year
	HijriMinYear int `json:"hijri_min_year"`

	// HijriMaxYear is the latest selectable Hijri year
	HijriMaxYear int `json:"hijri_max_year"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json)
	DefaultFormat string `json:"default_format"`

	// DefaultLocale is the display language (en, ar)
	DefaultLocale string `json:"default_locale"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	catalogDir := filepath.Join(homeDir, ".souq", "catalog")

	return &Config{
		Version: "1.0",
		Catalog: CatalogConfig{
			Dir:             catalogDir,
			DefaultCurrency: "SAR",
		},
		Calendar: CalendarConfig{
			GregorianMinYear:       1970,
			GregorianMaxYearOffset: 10,
			HijriMinYear:           1356,
			HijriMaxYear:           1500,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			DefaultLocale: "en",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
