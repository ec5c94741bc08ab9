package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindHeaderRow(t *testing.T) {
	// given
	rows := [][]string{
		{"Zeiterfassung 2025"},
		{},
		{"Name", "Anna Muster"},
		{" Datum ", "Projekt", "Stunden"},
		{"01.01.2025", "MBAG", "8"},
	}

	// when
	idx, err := FindHeaderRow(rows)

	// then
	require.NoError(t, err)
	assert.Equal(t, 3, idx)
}

func TestFindHeaderRow_caseInsensitive(t *testing.T) {
	rows := [][]string{
		{"DATUM", "PROJEKT", "STUNDEN"},
	}

	idx, err := FindHeaderRow(rows)

	require.NoError(t, err)
	assert.Equal(t, 0, idx)
}

func TestFindHeaderRow_notFound(t *testing.T) {
	rows := [][]string{
		{"Zeiterfassung"},
		{"Name", "Anna Muster"},
		{"01.01.2025", "MBAG", "8"},
	}

	_, err := FindHeaderRow(rows)

	assert.ErrorIs(t, err, ErrNoHeaderRow)
}

func TestFindHeaderRow_emptySheet(t *testing.T) {
	_, err := FindHeaderRow(nil)

	assert.ErrorIs(t, err, ErrNoHeaderRow)
}

func TestMapColumns(t *testing.T) {
	// given
	header := []string{"Datum", "Kommentar", " Projekt ", "Pause", "STUNDEN"}

	// when
	columns := MapColumns(header)

	// then
	projectIdx, err := columns.Index(ColumnProject)
	require.NoError(t, err)
	assert.Equal(t, 2, projectIdx)

	hoursIdx, err := columns.Index(ColumnHours)
	require.NoError(t, err)
	assert.Equal(t, 4, hoursIdx)
}

func TestMapColumns_ignoresUnknownColumns(t *testing.T) {
	header := []string{"Datum", "Projekt", "Stunden", "Notizen"}

	columns := MapColumns(header)

	assert.Len(t, columns, 2)
}

func TestMapColumns_missingColumn(t *testing.T) {
	header := []string{"Datum", "Projekt"}

	columns := MapColumns(header)

	_, err := columns.Index(ColumnHours)
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestMapColumns_firstOccurrenceWins(t *testing.T) {
	header := []string{"Datum", "Projekt", "Projekt", "Stunden"}

	columns := MapColumns(header)

	idx, err := columns.Index(ColumnProject)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}
