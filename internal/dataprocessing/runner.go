package dataprocessing

import (
	"fmt"
	"log/slog"

	"olympicscli/internal/exporter"
	"olympicscli/internal/ingest"
)

// RunOptions names the input and output files for one normalization run.
type RunOptions struct {
	BiosPath       string
	ResultsPath    string
	BiosOutPath    string
	ResultsOutPath string
	Writer         *exporter.CSVWriter
}

// RunSummary aggregates the per-dataset clean reports for one run.
type RunSummary struct {
	Bios    *CleanReport
	Results *CleanReport
}

// Runner executes the full normalization pipeline: ingest both raw
// datasets, clean them, and write the two cleaned outputs. Stages run
// sequentially over data fully resident in memory.
type Runner struct {
	logger *slog.Logger
}

// NewRunner creates a pipeline runner. A nil logger falls back to the
// default slog logger.
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{logger: logger}
}

// Run executes one normalization pass. I/O failures abort the run;
// per-field parse failures never do.
func (r *Runner) Run(opts RunOptions) (*RunSummary, error) {
	rawBios, err := ingest.LoadBiographies(opts.BiosPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load bios: %w", err)
	}

	rawResults, err := ingest.LoadResults(opts.ResultsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load results: %w", err)
	}

	bios, biosReport := NewBiosCleaner(r.logger).Clean(rawBios)
	biosReport.LogSummary(r.logger, "bios")

	results, resultsReport := NewResultsCleaner(r.logger).Clean(rawResults)
	resultsReport.LogSummary(r.logger, "results")

	if err := opts.Writer.WriteBiographies(opts.BiosOutPath, bios); err != nil {
		return nil, fmt.Errorf("failed to write cleaned bios: %w", err)
	}
	if err := opts.Writer.WriteResults(opts.ResultsOutPath, results); err != nil {
		return nil, fmt.Errorf("failed to write cleaned results: %w", err)
	}

	return &RunSummary{Bios: biosReport, Results: resultsReport}, nil
}
