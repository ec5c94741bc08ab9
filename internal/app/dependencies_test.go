package app

import (
	"testing"

	"github.com/msesoft/zeitreport/internal/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCatalog_fromDefaults(t *testing.T) {
	// given the shipped default configuration
	cfg, err := config.Load("does-not-exist.yaml")
	require.NoError(t, err)

	// when
	cat, err := buildCatalog(cfg.Catalog)

	// then: seed order and rate classification survive the conversion
	require.NoError(t, err)
	projects := cat.Projects()
	require.Len(t, projects, 11)
	assert.Equal(t, "MBAG", projects[0].Name)

	// MBAG is in the 1100 bucket: 220000 / 1100 = 200 available days
	assert.True(t, projects[0].AvailableWorkingDays().Equal(decimal.NewFromInt(200)),
		"MBAG available days: %s", projects[0].AvailableWorkingDays())

	fallback, ok := cat.Fallback()
	require.True(t, ok)
	assert.Equal(t, "OTHERS", fallback.Name)
	assert.True(t, fallback.AvailableWorkingDays().IsZero())
}

func TestBuildCatalog_emptySeed(t *testing.T) {
	_, err := buildCatalog(config.Catalog{})

	assert.Error(t, err)
}

func TestBuildRenderer(t *testing.T) {
	xlsx, err := buildRenderer(config.Report{Format: "xlsx"})
	require.NoError(t, err)
	assert.Equal(t, "xlsx", xlsx.Extension())

	csv, err := buildRenderer(config.Report{Format: "csv"})
	require.NoError(t, err)
	assert.Equal(t, "csv", csv.Extension())

	_, err = buildRenderer(config.Report{Format: "pdf"})
	assert.Error(t, err)
}
