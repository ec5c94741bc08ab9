package report

import (
	"fmt"
	"strings"

	"github.com/msesoft/zeitreport/internal/utils"
	"github.com/msesoft/zeitreport/pkg/catalog"
	"github.com/msesoft/zeitreport/pkg/timesheet"
	"github.com/xuri/excelize/v2"
)

// maxTabNameLen is the xlsx limit for worksheet names.
const maxTabNameLen = 31

// ExcelRenderer writes report tables as xlsx workbooks, one worksheet per
// attendance sheet. All numbers are formatted with exactly two decimal places
// and an invariant decimal point.
type ExcelRenderer struct {
	clock utils.Clock
}

func NewExcelRenderer() *ExcelRenderer {
	return &ExcelRenderer{clock: &utils.SystemClock{}}
}

func (r *ExcelRenderer) Extension() string {
	return "xlsx"
}

func (r *ExcelRenderer) WriteAttendance(path string, title string, sheets []timesheet.SheetResult) error {
	file := excelize.NewFile()
	defer file.Close()

	bold, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	for i, sheet := range sheets {
		tab := tabName(sheet.SheetID, i)
		if i == 0 {
			if err := file.SetSheetName(file.GetSheetName(0), tab); err != nil {
				return fmt.Errorf("rename sheet %q: %w", tab, err)
			}
		} else {
			if _, err := file.NewSheet(tab); err != nil {
				return fmt.Errorf("create sheet %q: %w", tab, err)
			}
		}

		sheetTitle := fmt.Sprintf("%s (%s)", title, sheet.SheetID)
		if err := writeRow(file, tab, 1, []string{sheetTitle}, bold); err != nil {
			return err
		}
		if err := writeRow(file, tab, 2, attendanceHeader, bold); err != nil {
			return err
		}

		row := 3
		for _, record := range sheet.Records {
			style := 0
			if record.IsTotal() {
				style = bold
			}
			values := []string{
				record.Project,
				record.Hours.StringFixed(2),
				record.Days.StringFixed(2),
			}
			if err := writeRow(file, tab, row, values, style); err != nil {
				return err
			}
			row++
		}

		if err := writeRow(file, tab, row+1, []string{"Generated: " + r.clock.Now().Format("02.01.2006 15:04")}, 0); err != nil {
			return err
		}
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save attendance report %s: %w", path, err)
	}
	return nil
}

func (r *ExcelRenderer) WriteSummary(path string, title string, projects []*catalog.Project) error {
	file := excelize.NewFile()
	defer file.Close()

	bold, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	tab := file.GetSheetName(0)
	if err := writeRow(file, tab, 1, []string{title}, bold); err != nil {
		return err
	}
	if err := writeRow(file, tab, 2, summaryHeader, bold); err != nil {
		return err
	}

	for i, project := range projects {
		values := []string{
			project.Name,
			project.OrderAmount.StringFixed(2),
			project.AvailableWorkingDays().StringFixed(2),
			project.CompletedWorkingDays.StringFixed(2),
		}
		if err := writeRow(file, tab, i+3, values, 0); err != nil {
			return err
		}
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save project summary %s: %w", path, err)
	}
	return nil
}

func writeRow(file *excelize.File, sheet string, row int, values []string, style int) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("cell coordinates (%d,%d): %w", col+1, row, err)
		}
		if err := file.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
		if style != 0 {
			if err := file.SetCellStyle(sheet, cell, cell, style); err != nil {
				return fmt.Errorf("style cell %s: %w", cell, err)
			}
		}
	}
	return nil
}

// tabName derives a valid worksheet name from a sheet id. Characters xlsx
// forbids are replaced and the result is truncated to the 31-char limit; the
// index keeps truncated names unique.
func tabName(sheetID string, index int) string {
	replacer := strings.NewReplacer(":", "-", "\\", "-", "/", "-", "?", "-", "*", "-", "[", "(", "]", ")")
	name := replacer.Replace(sheetID)
	if len(name) > maxTabNameLen {
		suffix := fmt.Sprintf("~%d", index+1)
		name = name[:maxTabNameLen-len(suffix)] + suffix
	}
	return name
}
