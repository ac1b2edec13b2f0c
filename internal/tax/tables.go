// SPDX-License-Identifier: Apache-2.0

package tax

import (
	"fmt"
	"math"
)

// FilingStatus selects which bracket table and standard deduction apply.
type FilingStatus string

const (
	FilingSingle         FilingStatus = "single"
	FilingMarriedJointly FilingStatus = "mfj"
)

// FilingStatuses lists the recognized statuses in display order.
var FilingStatuses = []FilingStatus{FilingSingle, FilingMarriedJointly}

// ParseFilingStatus maps user input to a FilingStatus. It accepts the wire
// values "single" and "mfj" plus the long form "married-filing-jointly".
func ParseFilingStatus(s string) (FilingStatus, error) {
	switch s {
	case "single":
		return FilingSingle, nil
	case "mfj", "married-filing-jointly":
		return FilingMarriedJointly, nil
	}
	return "", fmt.Errorf("%w: unrecognized filing status %q (expected single or mfj)", ErrInvalidInput, s)
}

// Description returns a human-readable label for the status.
func (fs FilingStatus) Description() string {
	switch fs {
	case FilingSingle:
		return "Single"
	case FilingMarriedJointly:
		return "Married Filing Jointly"
	}
	return string(fs)
}

// Bracket is a contiguous income range [Lower, Upper) taxed at a flat Rate.
// The top bracket of a table has Upper = +Inf.
type Bracket struct {
	Rate  float64
	Lower float64
	Upper float64
}

// Open reports whether the bracket has no upper bound.
func (b Bracket) Open() bool {
	return math.IsInf(b.Upper, 1)
}

// Table holds the progressive brackets and standard deduction for one
// filing status.
type Table struct {
	Status            FilingStatus
	StandardDeduction float64
	Brackets          []Bracket
}

// Validate checks the structural invariants of a bracket table: at least
// one bracket, lower bounds starting at 0 and contiguous with the previous
// upper bound, strictly increasing rates, and an open-ended final bracket.
// Built-in tables satisfy this by construction; it guards tables loaded
// from configuration.
func (t Table) Validate() error {
	if len(t.Brackets) == 0 {
		return fmt.Errorf("table for %q has no brackets", t.Status)
	}
	if t.StandardDeduction < 0 {
		return fmt.Errorf("table for %q has negative standard deduction", t.Status)
	}
	for i, b := range t.Brackets {
		if b.Rate <= 0 || b.Rate >= 1 {
			return fmt.Errorf("bracket %d: rate %v outside (0, 1)", i, b.Rate)
		}
		if i == 0 {
			if b.Lower != 0 {
				return fmt.Errorf("first bracket must start at 0, got %v", b.Lower)
			}
		} else {
			prev := t.Brackets[i-1]
			if b.Lower != prev.Upper {
				return fmt.Errorf("bracket %d: lower bound %v does not continue from %v", i, b.Lower, prev.Upper)
			}
			if b.Rate <= prev.Rate {
				return fmt.Errorf("bracket %d: rate %v not above previous rate %v", i, b.Rate, prev.Rate)
			}
		}
		last := i == len(t.Brackets)-1
		if last {
			if !b.Open() {
				return fmt.Errorf("final bracket must be open-ended")
			}
		} else if !(b.Upper > b.Lower) || b.Open() {
			return fmt.Errorf("bracket %d: upper bound %v must exceed lower bound %v", i, b.Upper, b.Lower)
		}
	}
	return nil
}

// MaxRate returns the rate of the top bracket.
func (t Table) MaxRate() float64 {
	return t.Brackets[len(t.Brackets)-1].Rate
}

// 2025 federal bracket tables and standard deductions.
var builtinTables = map[FilingStatus]Table{
	FilingSingle: {
		Status:            FilingSingle,
		StandardDeduction: 15750,
		Brackets: []Bracket{
			{Rate: 0.10, Lower: 0, Upper: 11925},
			{Rate: 0.12, Lower: 11925, Upper: 48475},
			{Rate: 0.22, Lower: 48475, Upper: 103350},
			{Rate: 0.24, Lower: 103350, Upper: 197300},
			{Rate: 0.32, Lower: 197300, Upper: 250525},
			{Rate: 0.35, Lower: 250525, Upper: 626350},
			{Rate: 0.37, Lower: 626350, Upper: math.Inf(1)},
		},
	},
	FilingMarriedJointly: {
		Status:            FilingMarriedJointly,
		StandardDeduction: 31500,
		Brackets: []Bracket{
			{Rate: 0.10, Lower: 0, Upper: 23850},
			{Rate: 0.12, Lower: 23850, Upper: 96950},
			{Rate: 0.22, Lower: 96950, Upper: 206700},
			{Rate: 0.24, Lower: 206700, Upper: 394600},
			{Rate: 0.32, Lower: 394600, Upper: 501050},
			{Rate: 0.35, Lower: 501050, Upper: 751600},
			{Rate: 0.37, Lower: 751600, Upper: math.Inf(1)},
		},
	},
}

// BuiltinTable returns the built-in 2025 table for the given filing status.
func BuiltinTable(status FilingStatus) (Table, error) {
	t, ok := builtinTables[status]
	if !ok {
		return Table{}, fmt.Errorf("%w: unrecognized filing status %q", ErrInvalidInput, status)
	}
	return t, nil
}

// StandardDeduction returns the built-in standard deduction for the status.
func StandardDeduction(status FilingStatus) (float64, error) {
	t, err := BuiltinTable(status)
	if err != nil {
		return 0, err
	}
	return t.StandardDeduction, nil
}
