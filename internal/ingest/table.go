// Package ingest reads the raw athlete datasets from disk into memory.
// Both CSV files and XLSX workbooks are accepted; columns are resolved by
// header name so the readers tolerate reordered or extra columns.
package ingest

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Table is an in-memory tabular dataset with a header row. Column positions
// are resolved by header name, never by index.
type Table struct {
	Headers []string
	Rows    [][]string

	columns map[string]int
}

func newTable(headers []string, rows [][]string) *Table {
	columns := make(map[string]int, len(headers))
	for i, h := range headers {
		columns[strings.TrimSpace(h)] = i
	}
	return &Table{Headers: headers, Rows: rows, columns: columns}
}

// Column returns the index of the named column.
func (t *Table) Column(name string) (int, bool) {
	idx, ok := t.columns[name]
	return idx, ok
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// Cell returns the value of the named column in the given row. An absent
// column or a row too short to reach it yields the empty string, the
// missing marker throughout the pipeline.
func (t *Table) Cell(row []string, name string) string {
	idx, ok := t.columns[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// ReadTable reads a tabular file, dispatching on the file extension.
func ReadTable(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSVTable(path)
	case ".xlsx":
		return readXLSXTable(path)
	default:
		return nil, fmt.Errorf("unsupported table format: %s", filepath.Ext(path))
	}
}
