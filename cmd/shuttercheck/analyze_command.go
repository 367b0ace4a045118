package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"shuttercheck/internal/analysis"
	"shuttercheck/internal/config"
	"shuttercheck/internal/deps"
	"shuttercheck/internal/exifnative"
	"shuttercheck/internal/exiftool"
	"shuttercheck/internal/logging"
	"shuttercheck/internal/report"
	"shuttercheck/internal/scan"
)

type analyzeOptions struct {
	expectedModel string
	noModelFilter bool
	recursive     bool
	noExiftool    bool
	jsonOutput    bool
	slack         int64
}

func (o *analyzeOptions) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&o.expectedModel, "expected-model", "m", "", "Expected camera model; implies filtering unless --no-model-filter is set")
	flags.BoolVar(&o.noModelFilter, "no-model-filter", false, "Do not exclude files from other camera models")
	flags.BoolVarP(&o.recursive, "recursive", "r", false, "Also scan subdirectories")
	flags.BoolVar(&o.noExiftool, "no-exiftool", false, "Decode EXIF in-process instead of running exiftool")
	flags.BoolVar(&o.jsonOutput, "json", false, "Emit the full report as JSON")
	flags.Int64Var(&o.slack, "slack", 0, "Override the regression slack threshold")
}

func runAnalyze(cmd *cobra.Command, args []string, configFlag string, opts *analyzeOptions) error {
	cfg, _, _, err := config.Load(configFlag)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyAnalyzeFlags(cmd, cfg, opts)

	logger, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	folder := "."
	if len(args) == 1 && args[0] != "" {
		folder = args[0]
	}

	files, err := scan.Folder(folder, scan.Options{
		Extensions: cfg.Scan.Extensions,
		Recursive:  cfg.Scan.Recursive,
	})
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no image files found in %s", folder)
	}
	logger.Info("scanning folder", "folder", folder, "files", len(files))

	inputs, err := extractBatch(cmd.Context(), cfg, files, logger)
	if err != nil {
		return err
	}

	rep, err := report.Build(inputs, report.Options{
		Folder:            folder,
		ExpectedModel:     cfg.Analysis.ExpectedModel,
		RequireModelMatch: cfg.Analysis.RequireModelMatch,
		Thresholds:        thresholdsFromConfig(cfg),
		Logger:            logger,
	})
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		return writeJSON(cmd, rep)
	}
	renderReport(cmd.OutOrStdout(), rep)
	return nil
}

// applyAnalyzeFlags overlays command-line flags onto the loaded config.
// Flags win over the file; --expected-model turns the filter on unless
// --no-model-filter explicitly keeps it off.
func applyAnalyzeFlags(cmd *cobra.Command, cfg *config.Config, opts *analyzeOptions) {
	if opts.expectedModel != "" {
		cfg.Analysis.ExpectedModel = opts.expectedModel
		cfg.Analysis.RequireModelMatch = true
	}
	if opts.noModelFilter {
		cfg.Analysis.RequireModelMatch = false
	}
	if opts.recursive {
		cfg.Scan.Recursive = true
	}
	if opts.noExiftool {
		cfg.Extraction.UseExiftool = false
	}
	if cmd.Flags().Changed("slack") {
		cfg.Analysis.RegressionSlack = opts.slack
	}
}

func thresholdsFromConfig(cfg *config.Config) analysis.Thresholds {
	return analysis.Thresholds{
		RegressionSlack: cfg.Analysis.RegressionSlack,
		SecondaryRatio:  cfg.Analysis.SecondaryRatio,
		SecondaryOffset: cfg.Analysis.SecondaryOffset,
		SimpleDecrease:  cfg.Analysis.SimpleDecrease,
	}
}

// extractBatch obtains raw metadata for every file, preferring exiftool and
// falling back to the in-process EXIF reader when exiftool is disabled or
// missing.
func extractBatch(ctx context.Context, cfg *config.Config, files []string, logger *slog.Logger) ([]report.Input, error) {
	useExiftool := cfg.Extraction.UseExiftool
	if useExiftool {
		statuses := deps.CheckBinaries(deps.Requirements(cfg.Extraction.ExiftoolBinary))
		if len(statuses) > 0 && !statuses[0].Available {
			logger.Warn("exiftool unavailable, using native EXIF reader", "detail", statuses[0].Detail)
			useExiftool = false
		}
	}

	if useExiftool {
		ctx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Extraction.TimeoutSeconds)*time.Second)
		defer cancel()
		results, err := exiftool.Extract(ctx, cfg.Extraction.ExiftoolBinary, files)
		if err != nil {
			return nil, err
		}
		inputs := make([]report.Input, 0, len(results))
		for _, result := range results {
			inputs = append(inputs, report.Input{Filename: result.Path, Raw: result.Raw, Err: result.Err})
		}
		return inputs, nil
	}

	inputs := make([]report.Input, 0, len(files))
	for _, file := range files {
		raw, err := exifnative.Extract(file)
		inputs = append(inputs, report.Input{Filename: file, Raw: raw, Err: err})
	}
	return inputs, nil
}
