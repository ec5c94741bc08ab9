package timesheet

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoHeaderRow   = errors.New("no header row found")
	ErrMissingColumn = errors.New("expected column not found")
)

// headerMarker identifies the header row: the first row whose first cell,
// trimmed and case-folded, equals this marker.
const headerMarker = "datum"

// Column names retained when building the column map. Everything else in the
// header row is ignored.
const (
	ColumnProject = "projekt"
	ColumnHours   = "stunden"
)

var recognizedColumns = []string{ColumnProject, ColumnHours}

// ColumnMap resolves recognized column names to their position in a sheet.
type ColumnMap map[string]int

// Index returns the cell index of a recognized column. A column that was not
// present in the header row yields ErrMissingColumn; callers must treat this
// as a per-file error, not a per-row one.
func (m ColumnMap) Index(name string) (int, error) {
	idx, ok := m[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMissingColumn, name)
	}
	return idx, nil
}

// FindHeaderRow scans rows from the top and returns the index of the first row
// whose first cell is the header marker. Returns ErrNoHeaderRow if no row
// qualifies.
func FindHeaderRow(rows [][]string) (int, error) {
	for i, row := range rows {
		if strings.ToLower(strings.TrimSpace(cellAt(row, 0))) == headerMarker {
			return i, nil
		}
	}
	return 0, ErrNoHeaderRow
}

// MapColumns builds the column map from a header row, retaining only the
// recognized column names.
func MapColumns(header []string) ColumnMap {
	columns := make(ColumnMap, len(recognizedColumns))
	for i, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		for _, recognized := range recognizedColumns {
			if name == recognized {
				if _, seen := columns[recognized]; !seen {
					columns[recognized] = i
				}
			}
		}
	}
	return columns
}

// cellAt reads a cell from a possibly ragged row. Decoded rows drop trailing
// empty cells, so an index past the end is an empty cell, not an error.
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
