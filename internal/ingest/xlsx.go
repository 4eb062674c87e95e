package ingest

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"
)

// readXLSXTable reads the first sheet containing an athlete_id header.
// The raw datasets are also distributed as workbooks; the header row is
// discovered rather than assumed to be row zero, since exported sheets
// sometimes carry title rows above the data.
func readXLSXTable(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil || len(rows) == 0 {
			continue
		}

		headerRow := findHeaderRow(rows)
		if headerRow == -1 {
			continue
		}

		slog.Debug("Read XLSX table",
			slog.String("path", path),
			slog.String("sheet", sheet),
			slog.Int("header_row", headerRow),
			slog.Int("rows", len(rows)-headerRow-1))

		return newTable(rows[headerRow], rows[headerRow+1:]), nil
	}

	return nil, fmt.Errorf("no sheet with an athlete_id column in %s", path)
}

// findHeaderRow scans the leading rows for one containing athlete_id.
func findHeaderRow(rows [][]string) int {
	limit := len(rows)
	if limit > 10 {
		limit = 10
	}
	for i := 0; i < limit; i++ {
		for _, cell := range rows[i] {
			if strings.EqualFold(strings.TrimSpace(cell), "athlete_id") {
				return i
			}
		}
	}
	return -1
}
