package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/msesoft/zeitreport/pkg/timesheet"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCsvRenderer_WriteAttendance(t *testing.T) {
	// given
	path := filepath.Join(t.TempDir(), "report.csv")
	hours := decimal.NewFromFloat(6.5)
	sheets := []timesheet.SheetResult{
		{SheetID: "anna-2025", Records: []timesheet.AttendanceRecord{
			{Project: "MBAG", Hours: hours, Days: hours.Div(decimal.NewFromInt(8))},
		}},
	}

	// when
	err := NewCsvRenderer().WriteAttendance(path, "TEAM - Working Reports", sheets)

	// then
	require.NoError(t, err)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "TEAM - Working Reports (anna-2025)")
	assert.Contains(t, string(content), "Projekt,Stunden,Tagen")
	assert.Contains(t, string(content), "MBAG,6.50,0.81")
}

func TestCsvRenderer_WriteSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.csv")
	cat := newTestCatalog(t, map[string]int64{"MBAG": 2})

	err := NewCsvRenderer().WriteSummary(path, "TEAM - Project Summary", AssembleSummary(cat))

	require.NoError(t, err)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Projekt,OrderAmount,Available Work Days,Completed Work Days")
	assert.Contains(t, string(content), "MBAG,220000.00,")
	assert.Contains(t, string(content), ",2.00")
}

func TestCsvRenderer_Extension(t *testing.T) {
	assert.Equal(t, "csv", NewCsvRenderer().Extension())
}
