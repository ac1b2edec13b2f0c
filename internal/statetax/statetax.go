// SPDX-License-Identifier: Apache-2.0

// Package statetax classifies 2025 state income tax systems and produces
// the state line of a tax summary. Only the no-income-tax states are
// actually assessed; flat and graduated systems are recognized but not yet
// computed, so they yield an N/A assessment.
package statetax

import (
	"slices"
	"strings"
)

// Kind is the type of income tax system a state operates.
type Kind string

const (
	KindNone      Kind = "none"      // no state income tax
	KindFlat      Kind = "flat"      // single flat rate
	KindGraduated Kind = "graduated" // bracketed income tax
	KindUnknown   Kind = "unknown"   // unrecognized state code
)

// 2025 state income tax system type per state (plus DC).
var systems = map[string]Kind{
	"AK": KindNone, "AL": KindGraduated, "AR": KindGraduated, "AZ": KindFlat,
	"CA": KindGraduated, "CO": KindFlat, "CT": KindGraduated, "DC": KindGraduated,
	"DE": KindGraduated, "FL": KindNone, "GA": KindFlat, "HI": KindGraduated,
	"IA": KindFlat, "ID": KindFlat, "IL": KindFlat, "IN": KindFlat,
	"KS": KindGraduated, "KY": KindFlat, "LA": KindFlat, "MA": KindGraduated,
	"MD": KindGraduated, "ME": KindGraduated, "MI": KindFlat, "MN": KindGraduated,
	"MO": KindGraduated, "MS": KindFlat, "MT": KindGraduated, "NC": KindFlat,
	"ND": KindGraduated, "NE": KindGraduated, "NH": KindNone, "NJ": KindGraduated,
	"NM": KindGraduated, "NV": KindNone, "NY": KindGraduated, "OH": KindGraduated,
	"OK": KindGraduated, "OR": KindGraduated, "PA": KindFlat, "RI": KindGraduated,
	"SC": KindGraduated, "SD": KindNone, "TN": KindNone, "TX": KindNone,
	"UT": KindFlat, "VA": KindGraduated, "VT": KindGraduated, "WA": KindFlat,
	"WI": KindGraduated, "WV": KindGraduated, "WY": KindNone,
}

// Full-name aliases for the states without an income tax; typing "texas"
// should behave like "TX".
var aliases = map[string]string{
	"TEXAS":         "TX",
	"FLORIDA":       "FL",
	"NEVADA":        "NV",
	"WASHINGTON":    "WA",
	"ALASKA":        "AK",
	"NEW HAMPSHIRE": "NH",
	"SOUTH DAKOTA":  "SD",
	"TENNESSEE":     "TN",
	"WYOMING":       "WY",
}

// Normalize upper-cases and trims a user-supplied state and resolves
// full-name aliases to the two-letter code.
func Normalize(input string) string {
	s := strings.ToUpper(strings.TrimSpace(input))
	if code, ok := aliases[s]; ok {
		return code
	}
	return s
}

// Lookup returns the tax system kind for a normalized state code.
func Lookup(code string) Kind {
	if k, ok := systems[code]; ok {
		return k
	}
	return KindUnknown
}

// Codes returns all known state codes in sorted order.
func Codes() []string {
	codes := make([]string, 0, len(systems))
	for c := range systems {
		codes = append(codes, c)
	}
	slices.Sort(codes)
	return codes
}

// Assessment is the state income tax line of a summary. Computed is false
// when the amount could not be determined (flat/graduated systems are not
// implemented, unknown states cannot be classified).
type Assessment struct {
	Computed bool
	Tax      float64
	Label    string
}

// Assess produces the state tax assessment for taxable income in the given
// state. States without an income tax yield a computed $0.00; everything
// else yields an N/A label.
func Assess(taxableIncome float64, code string) Assessment {
	switch Lookup(code) {
	case KindNone:
		return Assessment{Computed: true, Tax: 0, Label: "No state income tax"}
	case KindFlat, KindGraduated:
		return Assessment{Label: "N/A (not implemented yet)"}
	default:
		return Assessment{Label: "N/A (unknown/unsupported state)"}
	}
}
