package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/consent-generator/internal/observability"
	"github.com/jonathan/consent-generator/internal/roster"
	"github.com/jonathan/consent-generator/internal/schemas"
	"github.com/jonathan/consent-generator/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print how a roster is classified",
	Long:  "Loads a roster, prints the escorts and children it yields and, for JSON rosters, schema lint findings. Nothing is generated.",
	RunE:  runInspect,
}

var inspectRoster string

func init() {
	inspectCmd.Flags().StringVarP(&inspectRoster, "roster", "r", "", "Roster file: .json, .xlsx or .xls (required)")

	if err := inspectCmd.MarkFlagRequired("roster"); err != nil {
		panic(fmt.Sprintf("failed to mark roster flag as required: %v", err))
	}

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, _ []string) error {
	classifier := roster.NewClassifier(settings.EscortRole, settings.TotalsRoles)
	return inspect(logger, inspectRoster, classifier, cmd.OutOrStdout())
}

func inspect(log *zap.Logger, path string, classifier roster.Classifier, out io.Writer) error {
	printer := observability.NewPrinter(out)

	if roster.DetectFormat(path) == roster.FormatJSON {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read roster: %w", err)
		}
		findings, err := lint(content)
		if err != nil {
			log.Warn("Roster could not be linted", zap.String("roster", path), zap.Error(err))
		} else {
			printer.PrintLintFindings(findings)
		}
	}

	var session types.Session
	rows, err := roster.Upload(&session, path, classifier)
	if err != nil {
		if errors.Is(err, roster.ErrMalformedJSON) {
			log.Warn("Roster is not valid JSON", zap.String("roster", path), zap.Error(err))
			return nil
		}
		return fmt.Errorf("failed to load roster: %w", err)
	}

	log.Debug("Roster inspected", zap.Int("rows", rows), zap.Int("participants", len(session.Participants)))
	printer.PrintRoster(&session)
	return nil
}

// lint returns the schema findings of a JSON roster. A nil result with a nil
// error means the roster is clean.
func lint(content []byte) (*schemas.ValidationError, error) {
	err := schemas.LintRoster(content)
	if err == nil {
		return nil, nil
	}
	var findings *schemas.ValidationError
	if errors.As(err, &findings) {
		return findings, nil
	}
	return nil, err
}
