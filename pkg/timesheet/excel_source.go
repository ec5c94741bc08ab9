package timesheet

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

var ErrSheetNotFound = errors.New("sheet not found in workbook")

// ExcelSheetSource reads sheet rows from xlsx workbooks via excelize.
type ExcelSheetSource struct{}

func NewExcelSheetSource() *ExcelSheetSource {
	return &ExcelSheetSource{}
}

// Rows returns the rows of the first sheet with the given name. A workbook
// that cannot be opened is an I/O error; a workbook without the requested
// sheet yields ErrSheetNotFound, which callers treat as a per-file condition.
func (s *ExcelSheetSource) Rows(path string, sheetName string) ([][]string, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer file.Close()

	for _, name := range file.GetSheetList() {
		if name != sheetName {
			continue
		}
		rows, err := file.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q of %s: %w", name, path, err)
		}
		return rows, nil
	}

	return nil, fmt.Errorf("%w: %q in %s", ErrSheetNotFound, sheetName, path)
}
