// SPDX-License-Identifier: Apache-2.0

// Package config handles application configuration: default filing status
// and state for the CLI/TUI, plus optional bracket table overrides (e.g.
// for a different tax year) loaded from a YAML file in the user config
// directory.
package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"taxcalc/internal/tax"
)

// BracketRow is one row of a configured bracket table. Rows are listed in
// ascending order; each row's lower bound is the previous row's upper
// bound. The final row omits upper to mark the open-ended top bracket.
type BracketRow struct {
	// Rate is the flat rate for this bracket, as a fraction (0.22 = 22%)
	Rate float64 `yaml:"rate"`

	// Upper is the exclusive upper bound; omit on the last row
	Upper *float64 `yaml:"upper,omitempty"`
}

// TableOverride replaces parts of a built-in bracket table for one filing
// status.
type TableOverride struct {
	// StandardDeduction overrides the built-in standard deduction
	StandardDeduction *float64 `yaml:"standard_deduction,omitempty"`

	// Brackets replaces the built-in bracket schedule entirely
	Brackets []BracketRow `yaml:"brackets,omitempty"`
}

// Config represents the top-level application configuration
type Config struct {
	// DefaultFilingStatus is used when no status flag or answer is given
	// ("single" or "mfj")
	DefaultFilingStatus string `yaml:"default_filing_status,omitempty"`

	// DefaultState is the two-letter state code used when none is given
	DefaultState string `yaml:"default_state,omitempty"`

	// Tables holds per-filing-status overrides keyed by "single" / "mfj"
	Tables map[string]TableOverride `yaml:"tables,omitempty"`
}

func DefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "taxcalc", "config.yaml"), nil
}

// LoadConfig reads and validates the config file. A missing file yields a
// zero Config; a present but invalid one (bad status key, malformed bracket
// table) is an error so bad tables never reach a calculation silently.
func LoadConfig() (Config, error) {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	if cfg.DefaultFilingStatus != "" {
		if _, err := tax.ParseFilingStatus(cfg.DefaultFilingStatus); err != nil {
			return Config{}, fmt.Errorf("config file %s: %w", configPath, err)
		}
	}
	for key := range cfg.Tables {
		status, err := tax.ParseFilingStatus(key)
		if err != nil {
			return Config{}, fmt.Errorf("config file %s: tables: %w", configPath, err)
		}
		if _, err := cfg.TableFor(status); err != nil {
			return Config{}, fmt.Errorf("config file %s: %w", configPath, err)
		}
	}

	return cfg, nil
}

func EnsureConfigDir() error {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return err
	}
	configDir := filepath.Dir(configPath)
	err = os.MkdirAll(configDir, 0750) // rwxr-x---
	if err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", configDir, err)
	}
	return nil
}

func SaveConfig(cfg Config) error {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return err
	}

	err = EnsureConfigDir()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	// Write with permissions rw-r----- (0640)
	err = os.WriteFile(configPath, data, 0640)
	if err != nil {
		return fmt.Errorf("failed to write config file %s: %w", configPath, err)
	}

	return nil
}

// TableFor resolves the effective bracket table for a filing status: the
// built-in table with any configured override applied and validated.
func (c Config) TableFor(status tax.FilingStatus) (tax.Table, error) {
	table, err := tax.BuiltinTable(status)
	if err != nil {
		return tax.Table{}, err
	}

	override, ok := c.Tables[string(status)]
	if !ok {
		return table, nil
	}

	if override.StandardDeduction != nil {
		table.StandardDeduction = *override.StandardDeduction
	}
	if len(override.Brackets) > 0 {
		brackets := make([]tax.Bracket, len(override.Brackets))
		lower := 0.0
		for i, row := range override.Brackets {
			upper := math.Inf(1)
			if row.Upper != nil {
				upper = *row.Upper
			}
			brackets[i] = tax.Bracket{Rate: row.Rate, Lower: lower, Upper: upper}
			lower = upper
		}
		table.Brackets = brackets
	}

	if err := table.Validate(); err != nil {
		return tax.Table{}, fmt.Errorf("invalid bracket table override for %q: %w", status, err)
	}
	return table, nil
}
