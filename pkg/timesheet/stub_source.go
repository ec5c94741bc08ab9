package timesheet

import "fmt"

// StubSheetSource serves in-memory rows in tests, keyed by path and sheet name.
type StubSheetSource struct {
	sheets map[string]map[string][][]string
}

func NewStubSheetSource() *StubSheetSource {
	return &StubSheetSource{sheets: make(map[string]map[string][][]string)}
}

func (s *StubSheetSource) AddSheet(path string, sheetName string, rows [][]string) {
	if s.sheets[path] == nil {
		s.sheets[path] = make(map[string][][]string)
	}
	s.sheets[path][sheetName] = rows
}

func (s *StubSheetSource) Rows(path string, sheetName string) ([][]string, error) {
	workbook, ok := s.sheets[path]
	if !ok {
		return nil, fmt.Errorf("open workbook %s: file not found", path)
	}
	rows, ok := workbook[sheetName]
	if !ok {
		return nil, fmt.Errorf("%w: %q in %s", ErrSheetNotFound, sheetName, path)
	}
	return rows, nil
}

func (s *StubSheetSource) Reset() {
	s.sheets = make(map[string]map[string][][]string)
}
