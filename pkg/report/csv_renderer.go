package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/msesoft/zeitreport/pkg/catalog"
	"github.com/msesoft/zeitreport/pkg/timesheet"
)

// CsvRenderer writes the report tables as CSV, for piping the numbers into
// other tooling instead of a formatted workbook.
type CsvRenderer struct{}

func NewCsvRenderer() *CsvRenderer {
	return &CsvRenderer{}
}

func (r *CsvRenderer) Extension() string {
	return "csv"
}

func (r *CsvRenderer) WriteAttendance(path string, title string, sheets []timesheet.SheetResult) error {
	data := make([][]string, 0)
	for _, sheet := range sheets {
		data = append(data, []string{fmt.Sprintf("%s (%s)", title, sheet.SheetID)})
		data = append(data, attendanceHeader)
		for _, record := range sheet.Records {
			data = append(data, []string{
				record.Project,
				record.Hours.StringFixed(2),
				record.Days.StringFixed(2),
			})
		}
		data = append(data, []string{})
	}
	return writeCsv(path, data)
}

func (r *CsvRenderer) WriteSummary(path string, title string, projects []*catalog.Project) error {
	data := make([][]string, 0, len(projects)+2)
	data = append(data, []string{title})
	data = append(data, summaryHeader)
	for _, project := range projects {
		data = append(data, []string{
			project.Name,
			project.OrderAmount.StringFixed(2),
			project.AvailableWorkingDays().StringFixed(2),
			project.CompletedWorkingDays.StringFixed(2),
		})
	}
	return writeCsv(path, data)
}

func writeCsv(path string, data [][]string) error {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		if len(row) == 0 {
			// csv.Writer refuses empty records; write a single empty field
			// to keep the blank separator line.
			row = []string{""}
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil {
		return fmt.Errorf("save csv report %s: %w", path, err)
	}
	return nil
}
