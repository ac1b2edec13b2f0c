// SPDX-License-Identifier: Apache-2.0

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxcalc/internal/config"
	"taxcalc/internal/tax"
)

// useTempConfigDir points os.UserConfigDir at a temp directory for the test.
func useTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func writeConfigFile(t *testing.T, dir, content string) {
	t.Helper()
	cfgDir := filepath.Join(dir, "taxcalc")
	require.NoError(t, os.MkdirAll(cfgDir, 0750))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte(content), 0640))
}

func TestLoadConfigMissingFile(t *testing.T) {
	useTempConfigDir(t)

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, config.Config{}, cfg)
}

func TestLoadConfigDefaults(t *testing.T) {
	dir := useTempConfigDir(t)
	writeConfigFile(t, dir, "default_filing_status: mfj\ndefault_state: TX\n")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "mfj", cfg.DefaultFilingStatus)
	assert.Equal(t, "TX", cfg.DefaultState)
}

func TestLoadConfigBadFilingStatus(t *testing.T) {
	dir := useTempConfigDir(t)
	writeConfigFile(t, dir, "default_filing_status: separately\n")

	_, err := config.LoadConfig()
	require.Error(t, err)
	assert.ErrorIs(t, err, tax.ErrInvalidInput)
}

func TestLoadConfigTableOverride(t *testing.T) {
	dir := useTempConfigDir(t)
	writeConfigFile(t, dir, `
tables:
  single:
    standard_deduction: 5000
    brackets:
      - rate: 0.10
        upper: 10000
      - rate: 0.20
`)

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	table, err := cfg.TableFor(tax.FilingSingle)
	require.NoError(t, err)
	assert.Equal(t, 5000.0, table.StandardDeduction)
	require.Len(t, table.Brackets, 2)
	assert.Equal(t, 0.0, table.Brackets[0].Lower)
	assert.Equal(t, 10000.0, table.Brackets[0].Upper)
	assert.Equal(t, 10000.0, table.Brackets[1].Lower)
	assert.True(t, table.Brackets[1].Open())

	// The other status keeps the built-in table.
	mfj, err := cfg.TableFor(tax.FilingMarriedJointly)
	require.NoError(t, err)
	builtin, err := tax.BuiltinTable(tax.FilingMarriedJointly)
	require.NoError(t, err)
	assert.Equal(t, builtin, mfj)
}

func TestLoadConfigInvalidTable(t *testing.T) {
	dir := useTempConfigDir(t)
	// Rates must be strictly increasing; this table is rejected at load.
	writeConfigFile(t, dir, `
tables:
  single:
    brackets:
      - rate: 0.20
        upper: 10000
      - rate: 0.10
`)

	_, err := config.LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid bracket table override")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	useTempConfigDir(t)

	in := config.Config{DefaultFilingStatus: "single", DefaultState: "WA"}
	require.NoError(t, config.SaveConfig(in))

	out, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestTableForUnknownStatus(t *testing.T) {
	_, err := config.Config{}.TableFor("unknown")
	assert.ErrorIs(t, err, tax.ErrInvalidInput)
}
