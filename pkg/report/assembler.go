package report

import (
	"sort"

	"github.com/msesoft/zeitreport/pkg/catalog"
	"github.com/msesoft/zeitreport/pkg/timesheet"
)

// AssembleAttendance shapes sheet results for rendering: records sorted
// alphabetically by project label with the "Total" record last. The input is
// not mutated.
func AssembleAttendance(results []timesheet.SheetResult) []timesheet.SheetResult {
	assembled := make([]timesheet.SheetResult, 0, len(results))
	for _, result := range results {
		records := make([]timesheet.AttendanceRecord, 0, len(result.Records))
		var totals []timesheet.AttendanceRecord
		for _, record := range result.Records {
			if record.IsTotal() {
				totals = append(totals, record)
				continue
			}
			records = append(records, record)
		}
		sort.Slice(records, func(i, j int) bool {
			return records[i].Project < records[j].Project
		})
		records = append(records, totals...)
		assembled = append(assembled, timesheet.SheetResult{SheetID: result.SheetID, Records: records})
	}
	return assembled
}

// AssembleSummary shapes the catalog for the project summary: only projects
// with completed working days, sorted alphabetically by name.
func AssembleSummary(cat *catalog.Catalog) []*catalog.Project {
	projects := make([]*catalog.Project, 0, len(cat.Projects()))
	for _, project := range cat.Projects() {
		if project.CompletedWorkingDays.IsPositive() {
			projects = append(projects, project)
		}
	}
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].Name < projects[j].Name
	})
	return projects
}
