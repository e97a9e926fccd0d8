// Package main provides the consentgen CLI: roster in, consent archive out.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/consent-generator/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// configEnvVar names the config file when --config is not given
const configEnvVar = "CONSENTGEN_CONFIG"

var (
	// Global flags
	configPath string
	verbose    bool
	logLevel   string

	// Resolved in PersistentPreRunE
	settings config.Config

	// Logger
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "consentgen",
	Short: "Personal data consent generator",
	Long: `consentgen turns a group roster (JSON, .xlsx or .xls) into one personal data
processing consent per participant and packs them into a single zip archive.

Accompanying adults sign for themselves; for children the consent is signed by
the legal representative named in the roster.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		settings, err = loadSettings(configPath)
		if err != nil {
			return err
		}
		logger, err = newLogger(logLevel, verbose, settings)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file (default $"+configEnvVar+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging and roster summary")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
