package dataprocessing

import (
	"log/slog"

	"olympicscli/pkg/contracts/domain"
)

// ResultsCleaner reshapes raw result rows into cleaned ones. The results
// dataset needs no parsing, only column selection and renaming: the empty
// column, the redundant nationality column (obtainable via the bios join),
// and the redundant display-name column are dropped. Every input row
// passes through, so output cardinality equals input cardinality.
type ResultsCleaner struct {
	logger *slog.Logger
}

// NewResultsCleaner creates a results cleaner. A nil logger falls back to
// the default slog logger.
func NewResultsCleaner(logger *slog.Logger) *ResultsCleaner {
	if logger == nil {
		logger = slog.Default()
	}
	return &ResultsCleaner{logger: logger}
}

// Clean maps every raw result row to its cleaned form.
func (c *ResultsCleaner) Clean(raw []domain.RawResult) ([]domain.CleanedResult, *CleanReport) {
	report := newCleanReport()
	report.InputRows = len(raw)

	cleaned := make([]domain.CleanedResult, 0, len(raw))
	for _, row := range raw {
		cleaned = append(cleaned, domain.CleanedResult{
			AthleteID:  row.AthleteID,
			NOC:        row.NOC,
			Games:      row.Games,
			Event:      row.Event,
			Team:       row.Team,
			Position:   row.Pos,
			Medal:      row.Medal,
			Discipline: row.Discipline,
		})
	}

	report.OutputRows = len(cleaned)
	return cleaned, report
}
