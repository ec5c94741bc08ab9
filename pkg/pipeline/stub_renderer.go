package pipeline

import (
	"os"

	"github.com/msesoft/zeitreport/pkg/catalog"
	"github.com/msesoft/zeitreport/pkg/timesheet"
)

// stubRenderer records what the pipeline hands to the rendering collaborator
// and writes empty marker files so path handling stays testable.
type stubRenderer struct {
	attendancePath string
	attendance     []timesheet.SheetResult
	summaryPath    string
	summary        []*catalog.Project
}

func newStubRenderer() *stubRenderer {
	return &stubRenderer{}
}

func (r *stubRenderer) Extension() string {
	return "stub"
}

func (r *stubRenderer) WriteAttendance(path string, _ string, sheets []timesheet.SheetResult) error {
	r.attendancePath = path
	r.attendance = sheets
	return os.WriteFile(path, nil, 0o644)
}

func (r *stubRenderer) WriteSummary(path string, _ string, projects []*catalog.Project) error {
	r.summaryPath = path
	r.summary = projects
	return os.WriteFile(path, nil, 0o644)
}
