package dataprocessing

import "log/slog"

// maxExemplars bounds how many raw values the report keeps per field.
const maxExemplars = 20

// CleanReport captures what a cleaning run did to its input: row counts,
// structural anomalies, and per-field malformed values with raw exemplars.
// It makes the degrade-to-missing policy observable instead of leaving
// malformed values indistinguishable from absent ones.
type CleanReport struct {
	InputRows  int
	OutputRows int

	// Anomalies counts rows matching neither the competed marker nor any
	// exclusion category.
	Anomalies int

	// Malformed counts values that were present but failed extraction,
	// keyed by output field name.
	Malformed map[string]int

	// Exemplars holds up to maxExemplars raw values per field for the
	// malformed entries, a catalog of unmatched formats.
	Exemplars map[string][]string
}

func newCleanReport() *CleanReport {
	return &CleanReport{
		Malformed: make(map[string]int),
		Exemplars: make(map[string][]string),
	}
}

// recordMalformed counts a malformed value and keeps its raw form while
// the exemplar budget lasts.
func (r *CleanReport) recordMalformed(field, raw string) {
	r.Malformed[field]++
	if len(r.Exemplars[field]) < maxExemplars {
		r.Exemplars[field] = append(r.Exemplars[field], raw)
	}
}

// DroppedRows returns how many input rows did not survive filtering.
func (r *CleanReport) DroppedRows() int {
	return r.InputRows - r.OutputRows
}

// RetentionRate returns the fraction of input rows retained, in [0, 1].
func (r *CleanReport) RetentionRate() float64 {
	if r.InputRows == 0 {
		return 0
	}
	return float64(r.OutputRows) / float64(r.InputRows)
}

// LogSummary emits the run summary through the given logger.
func (r *CleanReport) LogSummary(logger *slog.Logger, dataset string) {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info("Cleaning summary",
		slog.String("dataset", dataset),
		slog.Int("input_rows", r.InputRows),
		slog.Int("output_rows", r.OutputRows),
		slog.Int("dropped_rows", r.DroppedRows()),
		slog.Float64("retention_rate", r.RetentionRate()),
		slog.Int("structural_anomalies", r.Anomalies))

	for field, count := range r.Malformed {
		logger.Warn("Malformed values coerced to missing",
			slog.String("dataset", dataset),
			slog.String("field", field),
			slog.Int("count", count),
			slog.Any("exemplars", r.Exemplars[field]))
	}
}
