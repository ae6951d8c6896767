// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/portfolio-cv/internal/catalog"
	"github.com/jonathan/portfolio-cv/internal/types"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Data      string `json:"data,omitempty"`       // Path to the portfolio repository (JSON or YAML)
	Template  string `json:"template,omitempty"`   // Path to a custom document template
	OutputDir string `json:"output_dir,omitempty"` // Directory for rendered and exported documents

	// Document options
	DocumentType string `json:"document_type,omitempty"` // resume or cv
	DomainFocus  string `json:"domain_focus,omitempty"`  // dataScience or nanotech
	Audience     string `json:"audience,omitempty"`      // academic, industry or all
	Locale       string `json:"locale,omitempty"`        // BCP 47 tag for month names

	// Catalog defaults
	Category string `json:"category,omitempty"`
	Sort     string `json:"sort,omitempty"`

	// Limits
	MaxPages       int      `json:"max_pages,omitempty"`        // Page limit checked on exported PDFs
	MaxBulletChars int      `json:"max_bullet_chars,omitempty"` // Bullet length that triggers a warning
	Forbidden      []string `json:"forbidden_phrases,omitempty"`

	// Behavior
	ExportTimeout string `json:"export_timeout,omitempty"` // Go duration, e.g. "45s"
	Addr          string `json:"addr,omitempty"`           // Listen address for serve
	Verbose       bool   `json:"verbose,omitempty"`        // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	opts := c.DocumentOptions()
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("config error: invalid document options: %w", err)
	}

	if _, err := catalog.ParseCategory(c.Category); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if _, err := catalog.ParseSortMode(c.Sort); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	// Validate numeric ranges
	if c.MaxPages < 0 {
		return fmt.Errorf("config error: 'max_pages' must be non-negative")
	}
	if c.MaxBulletChars < 0 {
		return fmt.Errorf("config error: 'max_bullet_chars' must be non-negative")
	}

	if c.ExportTimeout != "" {
		d, err := time.ParseDuration(c.ExportTimeout)
		if err != nil {
			return fmt.Errorf("config error: invalid 'export_timeout': %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("config error: 'export_timeout' must be positive")
		}
	}

	// Validate file paths exist (if specified)
	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			return fmt.Errorf("config error: template file not found: %s", c.Template)
		}
	}

	if c.Data != "" {
		if _, err := os.Stat(c.Data); os.IsNotExist(err) {
			return fmt.Errorf("config error: data file not found: %s", c.Data)
		}
	}

	return nil
}

// DocumentOptions converts the document fields to types.Options with defaults applied.
func (c *Config) DocumentOptions() types.Options {
	return types.Options{
		DocumentType: types.DocumentType(c.DocumentType),
		DomainFocus:  types.DomainFocus(c.DomainFocus),
		Audience:     types.Audience(c.Audience),
		Locale:       c.Locale,
	}.WithDefaults()
}

// Timeout returns the export timeout, or fallback when unset or invalid.
func (c *Config) Timeout(fallback time.Duration) time.Duration {
	if c.ExportTimeout == "" {
		return fallback
	}
	d, err := time.ParseDuration(c.ExportTimeout)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Data == "" {
		result.Data = defaults.Data
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.DocumentType == "" {
		result.DocumentType = defaults.DocumentType
	}
	if result.DomainFocus == "" {
		result.DomainFocus = defaults.DomainFocus
	}
	if result.Audience == "" {
		result.Audience = defaults.Audience
	}
	if result.Locale == "" {
		result.Locale = defaults.Locale
	}
	if result.Category == "" {
		result.Category = defaults.Category
	}
	if result.Sort == "" {
		result.Sort = defaults.Sort
	}
	if result.ExportTimeout == "" {
		result.ExportTimeout = defaults.ExportTimeout
	}
	if result.Addr == "" {
		result.Addr = defaults.Addr
	}

	// Int fields: use default if zero
	if result.MaxPages == 0 {
		result.MaxPages = defaults.MaxPages
	}
	if result.MaxBulletChars == 0 {
		result.MaxBulletChars = defaults.MaxBulletChars
	}

	if len(result.Forbidden) == 0 {
		result.Forbidden = defaults.Forbidden
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
