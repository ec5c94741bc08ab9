package timesheet

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTestWorkbook(t *testing.T, path string, sheetName string, rows [][]string) {
	t.Helper()
	file := excelize.NewFile()
	defer file.Close()

	require.NoError(t, file.SetSheetName(file.GetSheetName(0), sheetName))
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, file.SetCellValue(sheetName, cell, value))
		}
	}
	require.NoError(t, file.SaveAs(path))
}

func TestExcelSheetSource_Rows(t *testing.T) {
	// given
	path := filepath.Join(t.TempDir(), "anna.xlsx")
	writeTestWorkbook(t, path, "2025", [][]string{
		{"Datum", "Projekt", "Stunden"},
		{"01.01.2025", "MBAG", "8"},
	})

	// when
	rows, err := NewExcelSheetSource().Rows(path, "2025")

	// then
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Datum", "Projekt", "Stunden"}, rows[0])
	assert.Equal(t, "MBAG", rows[1][1])
}

func TestExcelSheetSource_sheetNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anna.xlsx")
	writeTestWorkbook(t, path, "2024", [][]string{{"Datum"}})

	_, err := NewExcelSheetSource().Rows(path, "2025")

	assert.ErrorIs(t, err, ErrSheetNotFound)
}

func TestExcelSheetSource_missingFile(t *testing.T) {
	_, err := NewExcelSheetSource().Rows(filepath.Join(t.TempDir(), "missing.xlsx"), "2025")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrSheetNotFound)
}
