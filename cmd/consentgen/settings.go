package main

import (
	"fmt"
	"os"

	"github.com/jonathan/consent-generator/internal/config"
	"github.com/jonathan/consent-generator/internal/observability"
	"go.uber.org/zap"
)

// loadSettings resolves the config file (flag, then environment), merges it
// with the built-in defaults and validates the result.
func loadSettings(path string) (config.Config, error) {
	if path == "" {
		path = os.Getenv(configEnvVar)
	}

	cfg := &config.Config{}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	merged := cfg.MergeWithDefaults(config.Defaults())
	if err := merged.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return merged, nil
}

// newLogger builds the CLI logger. The --log-level and --verbose flags win
// over log_level and verbose from the config.
func newLogger(flagLevel string, flagVerbose bool, cfg config.Config) (*zap.Logger, error) {
	return observability.NewLogger(firstNonEmpty(flagLevel, cfg.LogLevel), flagVerbose || cfg.Verbose)
}
