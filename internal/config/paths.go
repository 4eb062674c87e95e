package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Paths contains all the application paths.
// This is the single source of truth for file paths in the application.
type Paths struct {
	ExecutableDir string
	DataDir       string
	RawDir        string
	CleanDir      string
	LogsDir       string

	// Well-known dataset files
	BiosCSV         string
	ResultsCSV      string
	BiosCleanCSV    string
	ResultsCleanCSV string
}

// GetPaths returns the application paths relative to the executable
// location, never the current working directory.
//
// Directory structure:
//
//	<exe dir>/
//	  ├── config.yaml        (optional)
//	  ├── data/
//	  │   ├── raw/           (bios.csv, results.csv as scraped)
//	  │   └── clean/         (normalized outputs)
//	  └── logs/
func GetPaths() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %v", err)
	}

	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %v", err)
	}

	return PathsFor(filepath.Dir(exe)), nil
}

// PathsFor builds the path set rooted at the given base directory.
func PathsFor(baseDir string) *Paths {
	dataDir := filepath.Join(baseDir, "data")
	rawDir := filepath.Join(dataDir, "raw")
	cleanDir := filepath.Join(dataDir, "clean")

	return &Paths{
		ExecutableDir: baseDir,
		DataDir:       dataDir,
		RawDir:        rawDir,
		CleanDir:      cleanDir,
		LogsDir:       filepath.Join(baseDir, "logs"),

		BiosCSV:         filepath.Join(rawDir, "bios.csv"),
		ResultsCSV:      filepath.Join(rawDir, "results.csv"),
		BiosCleanCSV:    filepath.Join(cleanDir, "bios_clean.csv"),
		ResultsCleanCSV: filepath.Join(cleanDir, "results_clean.csv"),
	}
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	directories := []string{
		p.DataDir,
		p.RawDir,
		p.CleanDir,
		p.LogsDir,
	}

	logger := slog.Default()

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %v", dir, err)
		}
		if logger != nil {
			logger.Debug("Ensured directory exists", slog.String("directory", dir))
		}
	}

	return nil
}

// GetRawPath returns the path for a raw dataset file
func (p *Paths) GetRawPath(filename string) string {
	return filepath.Join(p.RawDir, filename)
}

// GetCleanPath returns the path for a cleaned output file
func (p *Paths) GetCleanPath(filename string) string {
	return filepath.Join(p.CleanDir, filename)
}

// GetLogPath returns the path for a log file
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
