package report

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"shuttercheck/internal/analysis"
	"shuttercheck/internal/logging"
	"shuttercheck/internal/metadata"
	"shuttercheck/internal/record"
)

// ErrNoPhotos reports a batch with zero records left after extraction
// drops and model filtering.
var ErrNoPhotos = errors.New("no photo records left to analyze")

// Input is one enumerated file with its extraction result. Err marks a
// file the extraction collaborator could not read.
type Input struct {
	Filename string
	Raw      metadata.RawMetadata
	Err      error
}

// DroppedFile records a file excluded from the batch and why.
type DroppedFile struct {
	Filename string `json:"filename"`
	Reason   string `json:"reason"`
}

// Options configures one batch run.
type Options struct {
	Folder            string
	ExpectedModel     string
	RequireModelMatch bool
	Thresholds        analysis.Thresholds
	Logger            *slog.Logger
}

// Report is the complete result of one batch run.
type Report struct {
	RunID       string             `json:"run_id"`
	Folder      string             `json:"folder"`
	Scanned     int                `json:"scanned"`
	Dropped     []DroppedFile      `json:"dropped,omitempty"`
	FilteredOut int                `json:"filtered_out"`
	Usable      int                `json:"usable"`
	Undated     int                `json:"undated"`
	Photos      []record.Photo     `json:"photos"`
	Findings    []analysis.Finding `json:"findings"`
}

// Build runs the pipeline over the extracted inputs: build records, apply
// the model filter, order chronologically, detect anomalies. Inputs with
// extraction errors are dropped from the batch with the reason preserved.
func Build(inputs []Input, opts Options) (*Report, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	rep := &Report{
		RunID:   uuid.NewString(),
		Folder:  opts.Folder,
		Scanned: len(inputs),
	}

	photos := make([]record.Photo, 0, len(inputs))
	for _, input := range inputs {
		if input.Err != nil {
			rep.Dropped = append(rep.Dropped, DroppedFile{Filename: input.Filename, Reason: input.Err.Error()})
			logger.Warn("file dropped from batch", "file", input.Filename, "reason", input.Err.Error())
			continue
		}
		photos = append(photos, record.Build(input.Filename, input.Raw, len(photos)))
	}

	kept, removed := analysis.FilterByModel(photos, opts.ExpectedModel, opts.RequireModelMatch)
	rep.FilteredOut = removed
	if removed > 0 {
		logger.Info("model filter applied", "expected_model", opts.ExpectedModel, "kept", len(kept), "removed", removed)
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("%w (scanned %d, dropped %d, filtered out %d)", ErrNoPhotos, rep.Scanned, len(rep.Dropped), removed)
	}

	rep.Photos = analysis.OrderChronologically(kept)
	rep.Usable = analysis.CountDated(rep.Photos)
	rep.Undated = len(rep.Photos) - rep.Usable

	findings, err := analysis.Detect(rep.Photos, opts.Thresholds)
	if err != nil {
		return nil, fmt.Errorf("analyze %d records: %w", len(rep.Photos), err)
	}
	rep.Findings = findings

	logger.Info("batch analyzed",
		"run_id", rep.RunID,
		"records", len(rep.Photos),
		"usable", rep.Usable,
		"findings", len(findings))
	return rep, nil
}

// Suspicious reports whether any warning-level finding was produced.
func (r *Report) Suspicious() bool {
	for _, f := range r.Findings {
		if f.Severity == analysis.SeverityWarning {
			return true
		}
	}
	return false
}

// CameraLabel summarizes the make and model of the batch, taken from the
// first record, for report headers.
func (r *Report) CameraLabel() string {
	if len(r.Photos) == 0 {
		return record.UnknownText
	}
	first := r.Photos[0]
	label := strings.TrimSpace(DisplayMake(first.Make) + " " + first.Model)
	if label == "" {
		return record.UnknownText
	}
	return label
}

var makeCaser = cases.Title(language.Und)

// DisplayMake renders a vendor name for humans: "SONY" and "NIKON
// CORPORATION" become "Sony" and "Nikon Corporation".
func DisplayMake(vendor string) string {
	vendor = strings.TrimSpace(vendor)
	if vendor == "" || vendor == record.UnknownText {
		return vendor
	}
	return makeCaser.String(strings.ToLower(vendor))
}
