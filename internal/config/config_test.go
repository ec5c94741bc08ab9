package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_defaults(t *testing.T) {
	// when: no config file exists
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	// then: the contractual defaults apply
	require.NoError(t, err)
	assert.Equal(t, "2025", cfg.SheetName)
	assert.Equal(t, "xlsx", cfg.Report.Format)
	assert.Equal(t, "OTHERS", cfg.Catalog.Fallback)

	require.Len(t, cfg.Catalog.Projects, 11)
	assert.Equal(t, "MBAG", cfg.Catalog.Projects[0].Name)
	assert.Equal(t, "OTHERS", cfg.Catalog.Projects[10].Name)

	assert.Equal(t, float64(1122), cfg.Catalog.Rates.Default)
	require.Len(t, cfg.Catalog.Rates.Overrides, 4)
	assert.Equal(t, float64(1100), cfg.Catalog.Rates.Overrides[0].Rate)
	assert.Contains(t, cfg.Catalog.Rates.Overrides[0].Projects, "RAD-DB (AMG)")
}

func TestLoad_fileOverridesDefaults(t *testing.T) {
	// given
	path := filepath.Join(t.TempDir(), "application.yaml")
	content := []byte("sheetname: \"2024\"\nreport:\n  format: csv\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	// when
	cfg, err := Load(path)

	// then
	require.NoError(t, err)
	assert.Equal(t, "2024", cfg.SheetName)
	assert.Equal(t, "csv", cfg.Report.Format)
	// untouched sections keep their defaults
	assert.Equal(t, "OTHERS", cfg.Catalog.Fallback)
}

func TestLoad_envOverridesDefaults(t *testing.T) {
	t.Setenv("ZEITREPORT_SHEETNAME", "2026")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	require.NoError(t, err)
	assert.Equal(t, "2026", cfg.SheetName)
}

func TestLoad_invalidYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "application.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sheetname: [unclosed"), 0o644))

	_, err := Load(path)

	assert.Error(t, err)
}
