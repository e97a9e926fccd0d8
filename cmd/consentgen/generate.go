package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/consent-generator/internal/config"
	"github.com/jonathan/consent-generator/internal/observability"
	"github.com/jonathan/consent-generator/internal/pipeline"
	"github.com/jonathan/consent-generator/internal/rendering"
	"github.com/jonathan/consent-generator/internal/roster"
	"github.com/jonathan/consent-generator/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// consentDateLayout is the --date flag format
const consentDateLayout = "2006-01-02"

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the consent archive for a roster",
	Long: `Loads the roster, classifies escorts and children, renders one consent per
participant and writes <out>/<prefix>_<yyyyMMdd_HHmmss>.zip.

Generation is refused while the organization name, the consent date or the
participant list is missing. A malformed JSON roster is reported and nothing is
generated.`,
	RunE: runGenerate,
}

var (
	generateOrg      string
	generateDate     string
	generateRoster   string
	generateOut      string
	generateTemplate string
	generateWorkers  int
)

func init() {
	generateCmd.Flags().StringVar(&generateOrg, "org", "", "Organization name (overrides config org_name)")
	generateCmd.Flags().StringVarP(&generateDate, "date", "d", "", "Consent date, YYYY-MM-DD (required)")
	generateCmd.Flags().StringVarP(&generateRoster, "roster", "r", "", "Roster file: .json, .xlsx or .xls (required)")
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "Output directory (overrides config output_dir)")
	generateCmd.Flags().StringVar(&generateTemplate, "template", "", "Disclosure template file (overrides config template)")
	generateCmd.Flags().IntVar(&generateWorkers, "workers", 0, "Concurrent renders (overrides config workers)")

	if err := generateCmd.MarkFlagRequired("roster"); err != nil {
		panic(fmt.Sprintf("failed to mark roster flag as required: %v", err))
	}

	rootCmd.AddCommand(generateCmd)
}

// generateRequest holds everything one generation run needs after flags and
// config are merged.
type generateRequest struct {
	OrgName     string
	ConsentDate string
	RosterPath  string
	OutputDir   string
	Settings    config.Config
	PrintRoster bool
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	req := generateRequest{
		OrgName:     firstNonEmpty(generateOrg, settings.OrgName),
		ConsentDate: generateDate,
		RosterPath:  generateRoster,
		OutputDir:   firstNonEmpty(generateOut, settings.OutputDir),
		Settings:    settings,
		PrintRoster: verbose || settings.Verbose,
	}
	if generateTemplate != "" {
		req.Settings.Template = generateTemplate
	}
	if generateWorkers > 0 {
		req.Settings.Workers = generateWorkers
	}

	path, err := generate(cmd.Context(), logger, req, cmd.OutOrStdout(), time.Now())
	if err != nil {
		return err
	}
	if path != "" {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}

// generate runs one upload-and-package cycle. It returns the written archive
// path, or "" when a malformed JSON roster left nothing to generate.
func generate(ctx context.Context, log *zap.Logger, req generateRequest, out io.Writer, now time.Time) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	runID := uuid.New().String()
	log = log.With(zap.String("run_id", runID))

	session := types.Session{OrgName: req.OrgName}
	if strings.TrimSpace(req.ConsentDate) != "" {
		date, err := time.Parse(consentDateLayout, strings.TrimSpace(req.ConsentDate))
		if err != nil {
			return "", fmt.Errorf("invalid --date %q, expected YYYY-MM-DD: %w", req.ConsentDate, err)
		}
		session.ConsentDate = date
	}

	classifier := roster.NewClassifier(req.Settings.EscortRole, req.Settings.TotalsRoles)
	rows, err := roster.Upload(&session, req.RosterPath, classifier)
	if err != nil {
		if errors.Is(err, roster.ErrMalformedJSON) {
			log.Warn("Roster is not valid JSON, nothing generated",
				zap.String("roster", req.RosterPath),
				zap.Error(err))
			return "", nil
		}
		return "", fmt.Errorf("failed to load roster: %w", err)
	}

	log.Info("Roster loaded",
		zap.String("roster", req.RosterPath),
		zap.Int("rows", rows),
		zap.Int("participants", len(session.Participants)),
		zap.Int("escorts", len(session.Escorts())),
		zap.Int("children", len(session.Children())))

	if req.PrintRoster {
		observability.NewPrinter(out).PrintRoster(&session)
	}

	opts := pipeline.Options{
		ArchivePrefix: req.Settings.ArchivePrefix,
		EscortRole:    req.Settings.EscortRole,
		Workers:       req.Settings.Workers,
		OnProgress: func(event pipeline.ProgressEvent) {
			log.Debug("Consent rendered",
				zap.Int("index", event.Index),
				zap.String("file", event.FileName),
				zap.String("variant", event.Variant))
		},
	}
	if req.Settings.Template != "" {
		engine, err := rendering.LoadEngine(req.Settings.Template)
		if err != nil {
			return "", fmt.Errorf("failed to load template: %w", err)
		}
		opts.Engine = engine
	}

	packager := pipeline.NewPackager(opts)
	if err := packager.CheckPreconditions(session); err != nil {
		return "", fmt.Errorf("generation refused: %w", err)
	}

	log.Info("Generating consents", zap.Int("documents", len(session.Participants)))
	archive, err := packager.Generate(ctx, session, now)
	if err != nil {
		return "", err
	}

	path, err := archive.WriteToDir(req.OutputDir)
	if err != nil {
		return "", err
	}

	log.Info("Archive written",
		zap.String("path", path),
		zap.Int("entries", len(archive.Files)))

	if req.PrintRoster {
		observability.NewPrinter(out).PrintArchive(archive, path)
	}
	return path, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
