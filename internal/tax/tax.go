// SPDX-License-Identifier: Apache-2.0

// Package tax computes estimated U.S. federal income tax over progressive
// bracket tables. The calculation is pure: it reads only its arguments and
// immutable static tables, so it is safe for concurrent callers.
package tax

import (
	"errors"
	"fmt"

	"taxcalc/internal/money"
)

// ErrInvalidInput is returned for negative income, negative deductions, or
// an unrecognized filing status.
var ErrInvalidInput = errors.New("invalid input")

// Input describes one calculation request.
type Input struct {
	GrossIncome float64
	Status      FilingStatus

	// Deduction overrides the standard deduction when non-nil.
	Deduction *float64
}

// BracketShare records how much income landed in one bracket and the tax
// it contributed.
type BracketShare struct {
	Rate   float64
	Lower  float64
	Upper  float64
	Amount float64
	Tax    float64
}

// Result is the outcome of a calculation.
type Result struct {
	Status          FilingStatus
	GrossIncome     float64
	Deduction       float64 // the deduction actually applied
	CustomDeduction bool    // true when the caller overrode the standard deduction
	TaxableIncome   float64

	TotalTax       float64 // rounded to cents, half-to-even
	MarginalRate   float64 // rate of the bracket holding the last taxable dollar
	EffectiveRate  float64 // TotalTax / GrossIncome, 0 for zero income
	AfterTaxIncome float64 // GrossIncome - TotalTax (federal only)

	Breakdown []BracketShare
}

// DeductionLabel describes the deduction that was applied, for summaries.
func (r Result) DeductionLabel() string {
	if r.CustomDeduction {
		return "Custom Deduction"
	}
	switch r.Status {
	case FilingMarriedJointly:
		return "Standard Deduction (MFJ)"
	default:
		return "Standard Deduction (Single)"
	}
}

// Compute calculates federal tax for in using the built-in table for its
// filing status.
func Compute(in Input) (Result, error) {
	table, err := BuiltinTable(in.Status)
	if err != nil {
		return Result{}, err
	}
	return ComputeWithTable(in, table)
}

// ComputeWithTable calculates federal tax for in against an explicit
// bracket table, e.g. one overridden via configuration. The table must be
// valid per Table.Validate.
func ComputeWithTable(in Input, table Table) (Result, error) {
	if in.GrossIncome < 0 {
		return Result{}, fmt.Errorf("%w: gross income must not be negative, got %v", ErrInvalidInput, in.GrossIncome)
	}
	deduction := table.StandardDeduction
	if in.Deduction != nil {
		deduction = *in.Deduction
	}
	if deduction < 0 {
		return Result{}, fmt.Errorf("%w: deduction must not be negative, got %v", ErrInvalidInput, deduction)
	}
	if err := table.Validate(); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	taxable := in.GrossIncome - deduction
	if taxable < 0 {
		taxable = 0
	}

	total := 0.0
	var breakdown []BracketShare
	for _, b := range table.Brackets {
		if taxable <= b.Lower {
			break
		}
		top := taxable
		if !b.Open() && b.Upper < taxable {
			top = b.Upper
		}
		amount := top - b.Lower
		share := amount * b.Rate
		total += share
		breakdown = append(breakdown, BracketShare{
			Rate:   b.Rate,
			Lower:  b.Lower,
			Upper:  b.Upper,
			Amount: amount,
			Tax:    money.RoundToCents(share),
		})
	}
	totalTax := money.RoundToCents(total)

	effectiveRate := 0.0
	if in.GrossIncome > 0 {
		effectiveRate = totalTax / in.GrossIncome
	}

	return Result{
		Status:          table.Status,
		GrossIncome:     in.GrossIncome,
		Deduction:       deduction,
		CustomDeduction: in.Deduction != nil,
		TaxableIncome:   taxable,
		TotalTax:        totalTax,
		MarginalRate:    marginalRate(taxable, table.Brackets),
		EffectiveRate:   effectiveRate,
		AfterTaxIncome:  in.GrossIncome - totalTax,
		Breakdown:       breakdown,
	}, nil
}

// marginalRate finds the rate of the bracket whose [lower, upper) range
// contains taxable. Income exactly on an upper bound therefore takes the
// next bracket's rate, and zero taxable income takes the first bracket's.
func marginalRate(taxable float64, brackets []Bracket) float64 {
	for _, b := range brackets {
		if taxable >= b.Lower && (b.Open() || taxable < b.Upper) {
			return b.Rate
		}
	}
	// Unreachable for a valid table; the final bracket is open-ended.
	return brackets[len(brackets)-1].Rate
}
