// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/consent-generator/internal/pipeline"
	"github.com/jonathan/consent-generator/internal/roster"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Operator inputs
	OrgName string `json:"org_name,omitempty"` // Organization named in every consent

	// Roster interpretation
	EscortRole  string   `json:"escort_role,omitempty"`  // Role label of accompanying adults
	TotalsRoles []string `json:"totals_roles,omitempty"` // Role labels of summary rows to skip

	// Output
	ArchivePrefix string `json:"archive_prefix,omitempty"` // Archive file name prefix
	OutputDir     string `json:"output_dir,omitempty"`     // Directory the archive is written to
	Template      string `json:"template,omitempty"`       // Optional disclosure template overriding the built-in text

	// Behavior
	Workers  int    `json:"workers,omitempty"`   // Concurrent renders (0 = GOMAXPROCS)
	LogLevel string `json:"log_level,omitempty"` // debug, info, warn, error
	Verbose  bool   `json:"verbose,omitempty"`   // Print the roster summary
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		EscortRole:    roster.DefaultEscortRole,
		TotalsRoles:   append([]string(nil), roster.DefaultTotalsRoles...),
		ArchivePrefix: pipeline.DefaultArchivePrefix,
		OutputDir:     ".",
		LogLevel:      "info",
	}
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

var logLevels = map[string]struct{}{
	"":      {},
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}

	if _, ok := logLevels[strings.ToLower(c.LogLevel)]; !ok {
		return fmt.Errorf("config error: unknown 'log_level' %q", c.LogLevel)
	}

	if strings.ContainsAny(c.ArchivePrefix, `\/:*?"<>|`) {
		return fmt.Errorf("config error: 'archive_prefix' contains characters not allowed in file names")
	}

	for _, role := range c.TotalsRoles {
		if strings.TrimSpace(role) == "" {
			return fmt.Errorf("config error: 'totals_roles' must not contain blank labels")
		}
	}

	// Validate file paths exist (if specified)
	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			return fmt.Errorf("config error: template file not found: %s", c.Template)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.OrgName == "" {
		result.OrgName = defaults.OrgName
	}
	if result.EscortRole == "" {
		result.EscortRole = defaults.EscortRole
	}
	if result.ArchivePrefix == "" {
		result.ArchivePrefix = defaults.ArchivePrefix
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}

	// Slice and int fields: use default if unset
	if len(result.TotalsRoles) == 0 {
		result.TotalsRoles = append([]string(nil), defaults.TotalsRoles...)
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
