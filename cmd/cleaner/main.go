package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"olympicscli/internal/config"
	"olympicscli/internal/dataprocessing"
	"olympicscli/internal/exporter"
	"olympicscli/internal/infrastructure"
)

func main() {
	biosIn := flag.String("bios", "", "raw bios file (.csv or .xlsx, defaults to data/raw/bios.csv relative to executable)")
	resultsIn := flag.String("results", "", "raw results file (.csv or .xlsx, defaults to data/raw/results.csv relative to executable)")
	biosOut := flag.String("bios-out", "", "cleaned bios output (defaults to data/clean/bios_clean.csv)")
	resultsOut := flag.String("results-out", "", "cleaned results output (defaults to data/clean/results_clean.csv)")
	flag.Parse()

	// Initialize paths first to get default locations
	paths, err := config.GetPaths()
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}

	if *biosIn == "" {
		*biosIn = paths.BiosCSV
	}
	if *resultsIn == "" {
		*resultsIn = paths.ResultsCSV
	}
	if *biosOut == "" {
		*biosOut = paths.BiosCleanCSV
	}
	if *resultsOut == "" {
		*resultsOut = paths.ResultsCleanCSV
	}

	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = &config.Config{
			Logging: config.LoggingConfig{
				Level:    "info",
				Format:   "json",
				Output:   "both",
				FilePath: paths.GetLogPath("cleaner.log"),
			},
		}
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.WithRunID(context.Background(), uuid.New().String())
	logger = infrastructure.LoggerFromContext(ctx)

	logger.Info("Starting athlete record normalization",
		slog.String("bios_in", *biosIn),
		slog.String("results_in", *resultsIn),
		slog.String("bios_out", *biosOut),
		slog.String("results_out", *resultsOut),
		slog.String("executable_dir", paths.ExecutableDir))

	runner := dataprocessing.NewRunner(logger)
	summary, err := runner.Run(dataprocessing.RunOptions{
		BiosPath:       *biosIn,
		ResultsPath:    *resultsIn,
		BiosOutPath:    *biosOut,
		ResultsOutPath: *resultsOut,
		Writer:         exporter.NewCSVWriter(paths),
	})
	if err != nil {
		logger.Error("Normalization run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Normalization completed",
		slog.Int("bios_in", summary.Bios.InputRows),
		slog.Int("bios_out", summary.Bios.OutputRows),
		slog.Int("bios_dropped", summary.Bios.DroppedRows()),
		slog.Float64("bios_retention_rate", summary.Bios.RetentionRate()),
		slog.Int("results_rows", summary.Results.OutputRows))
}
