package report

import (
	"github.com/msesoft/zeitreport/pkg/catalog"
	"github.com/msesoft/zeitreport/pkg/timesheet"
)

// Attendance table columns, preserved verbatim from the timesheet contract.
var attendanceHeader = []string{"Projekt", "Stunden", "Tagen"}

// Project summary table columns.
var summaryHeader = []string{"Projekt", "OrderAmount", "Available Work Days", "Completed Work Days"}

// Renderer writes the assembled report tables to disk. Implementations own
// the file format; the pipeline only decides the path stem.
type Renderer interface {
	// Extension returns the file extension without the dot, e.g. "xlsx".
	Extension() string
	// WriteAttendance renders one table per sheet result.
	WriteAttendance(path string, title string, sheets []timesheet.SheetResult) error
	// WriteSummary renders the reconciled project summary table.
	WriteSummary(path string, title string, projects []*catalog.Project) error
}
