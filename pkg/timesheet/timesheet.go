package timesheet

import (
	"github.com/shopspring/decimal"
)

// TotalLabel is the label of the synthetic summary record appended to every sheet.
const TotalLabel = "Total"

// AttendanceRecord is the aggregated attendance of one employee-sheet for one
// project label. Days is always Hours / 8.
type AttendanceRecord struct {
	Project string
	Hours   decimal.Decimal
	Days    decimal.Decimal
}

// IsTotal reports whether this is the synthetic per-sheet summary record.
func (r AttendanceRecord) IsTotal() bool {
	return r.Project == TotalLabel
}

// SheetResult holds the aggregated records of one employee-sheet. SheetID is
// "<employee>-<sheet name>". Records are never mutated after creation.
type SheetResult struct {
	SheetID string
	Records []AttendanceRecord
}

// SheetSource exposes the decoded rows of one named sheet of a spreadsheet
// file. Cell decoding is the source's responsibility; the pipeline only sees
// rows of text cells.
type SheetSource interface {
	Rows(path string, sheetName string) ([][]string, error)
}
