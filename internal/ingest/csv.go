package ingest

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
)

// readCSVTable reads a CSV file with a header row. Ragged rows are
// tolerated: the scraped datasets occasionally carry short rows, and a
// short row simply reads as missing in the trailing columns.
func readCSVTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty csv file: %s", path)
	}

	headers := stripBOM(records[0])

	slog.Debug("Read CSV table",
		slog.String("path", path),
		slog.Int("columns", len(headers)),
		slog.Int("rows", len(records)-1))

	return newTable(headers, records[1:]), nil
}

// stripBOM removes a UTF-8 byte order mark from the first header cell.
// Files exported from Excel usually carry one.
func stripBOM(headers []string) []string {
	if len(headers) > 0 {
		headers[0] = trimBOM(headers[0])
	}
	return headers
}

func trimBOM(s string) string {
	const bom = "\xef\xbb\xbf"
	if len(s) >= len(bom) && s[:len(bom)] == bom {
		return s[len(bom):]
	}
	return s
}
