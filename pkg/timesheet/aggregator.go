package timesheet

import (
	"strings"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// Labels that are not attendance: vacation, placeholder, public holiday.
// Rows carrying them are skipped entirely.
var excludedLabels = map[string]struct{}{
	"urlaub":   {},
	"x":        {},
	"feiertag": {},
}

// sickLabel rows count as a full working day regardless of the hours cell.
const sickLabel = "krank"

var hoursPerDay = decimal.NewFromInt(8)

// Aggregate folds the data rows of one employee-sheet into one attendance
// record per distinct trimmed project label, followed by exactly one "Total"
// record summing all others. rows must be the rows strictly after the header
// row. An unparseable hours cell contributes zero for that row and is logged,
// never raised; a missing recognized column is a per-file error.
func Aggregate(sheetID string, rows [][]string, columns ColumnMap) ([]AttendanceRecord, error) {
	projectIdx, err := columns.Index(ColumnProject)
	if err != nil {
		return nil, err
	}
	hoursIdx, err := columns.Index(ColumnHours)
	if err != nil {
		return nil, err
	}

	hoursByLabel := make(map[string]decimal.Decimal)
	labelOrder := make([]string, 0)

	for i, row := range rows {
		if strings.TrimSpace(cellAt(row, 0)) == "" {
			continue
		}

		label := strings.TrimSpace(cellAt(row, projectIdx))
		folded := strings.ToLower(label)
		if label == "" {
			continue
		}
		if _, excluded := excludedLabels[folded]; excluded {
			continue
		}

		hoursText := cellAt(row, hoursIdx)
		if folded == sickLabel {
			// Sick days count as a full day, whatever the cell says.
			hoursText = "8"
		}

		hours, err := decimal.NewFromString(strings.TrimSpace(hoursText))
		if err != nil {
			log.Warnf("sheet %s row %d: unparseable hours %q for project %q, counting 0", sheetID, i+1, hoursText, label)
			hours = decimal.Zero
		}

		if accumulated, seen := hoursByLabel[label]; seen {
			hoursByLabel[label] = accumulated.Add(hours)
		} else {
			hoursByLabel[label] = hours
			labelOrder = append(labelOrder, label)
		}
	}

	records := make([]AttendanceRecord, 0, len(labelOrder)+1)
	totalHours := decimal.Zero
	for _, label := range labelOrder {
		hours := hoursByLabel[label]
		records = append(records, AttendanceRecord{
			Project: label,
			Hours:   hours,
			Days:    hours.Div(hoursPerDay),
		})
		totalHours = totalHours.Add(hours)
	}
	records = append(records, AttendanceRecord{
		Project: TotalLabel,
		Hours:   totalHours,
		Days:    totalHours.Div(hoursPerDay),
	})

	return records, nil
}
