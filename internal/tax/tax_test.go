// SPDX-License-Identifier: Apache-2.0

package tax_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxcalc/internal/tax"
)

func deduction(v float64) *float64 { return &v }

// twoBracketTable mirrors a minimal progressive schedule: 10% up to
// 10,000, 20% above, standard deduction 5,000.
func twoBracketTable() tax.Table {
	return tax.Table{
		Status:            tax.FilingSingle,
		StandardDeduction: 5000,
		Brackets: []tax.Bracket{
			{Rate: 0.10, Lower: 0, Upper: 10000},
			{Rate: 0.20, Lower: 10000, Upper: math.Inf(1)},
		},
	}
}

func TestComputeWithTable(t *testing.T) {
	tests := []struct {
		name          string
		in            tax.Input
		wantTaxable   float64
		wantTax       float64
		wantMarginal  float64
		wantEffective float64
	}{
		{
			name:          "standard deduction spans both brackets",
			in:            tax.Input{GrossIncome: 20000, Status: tax.FilingSingle},
			wantTaxable:   15000,
			wantTax:       2000.00,
			wantMarginal:  0.20,
			wantEffective: 0.10,
		},
		{
			name:          "zero income",
			in:            tax.Input{GrossIncome: 0, Status: tax.FilingSingle},
			wantTaxable:   0,
			wantTax:       0,
			wantMarginal:  0.10,
			wantEffective: 0,
		},
		{
			name:          "deduction exceeds income",
			in:            tax.Input{GrossIncome: 3000, Status: tax.FilingSingle},
			wantTaxable:   0,
			wantTax:       0,
			wantMarginal:  0.10,
			wantEffective: 0,
		},
		{
			name:          "custom deduction overrides standard",
			in:            tax.Input{GrossIncome: 20000, Status: tax.FilingSingle, Deduction: deduction(12000)},
			wantTaxable:   8000,
			wantTax:       800.00,
			wantMarginal:  0.10,
			wantEffective: 0.04,
		},
		{
			name:          "zero custom deduction is honored",
			in:            tax.Input{GrossIncome: 10000, Status: tax.FilingSingle, Deduction: deduction(0)},
			wantTaxable:   10000,
			wantTax:       1000.00,
			wantMarginal:  0.20, // income exactly on the boundary takes the upper bracket's rate
			wantEffective: 0.10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tax.ComputeWithTable(tt.in, twoBracketTable())
			require.NoError(t, err)
			assert.InDelta(t, tt.wantTaxable, got.TaxableIncome, 1e-9)
			assert.InDelta(t, tt.wantTax, got.TotalTax, 1e-9)
			assert.InDelta(t, tt.wantMarginal, got.MarginalRate, 1e-9)
			assert.InDelta(t, tt.wantEffective, got.EffectiveRate, 1e-9)
			assert.InDelta(t, tt.in.GrossIncome-tt.wantTax, got.AfterTaxIncome, 1e-9)
		})
	}
}

func TestComputeInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		in   tax.Input
	}{
		{name: "negative gross income", in: tax.Input{GrossIncome: -100, Status: tax.FilingSingle}},
		{name: "negative deduction", in: tax.Input{GrossIncome: 100, Status: tax.FilingSingle, Deduction: deduction(-1)}},
		{name: "unknown filing status", in: tax.Input{GrossIncome: 100, Status: "hoh"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tax.Compute(tt.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, tax.ErrInvalidInput)
		})
	}
}

func TestComputeBuiltinTables(t *testing.T) {
	t.Run("single 50k standard deduction", func(t *testing.T) {
		got, err := tax.Compute(tax.Input{GrossIncome: 50000, Status: tax.FilingSingle})
		require.NoError(t, err)
		// taxable 34,250: 11,925 at 10% + 22,325 at 12%.
		assert.InDelta(t, 34250, got.TaxableIncome, 1e-9)
		assert.InDelta(t, 3871.50, got.TotalTax, 1e-9)
		assert.InDelta(t, 0.12, got.MarginalRate, 1e-9)
		assert.InDelta(t, 3871.50/50000, got.EffectiveRate, 1e-9)

		require.Len(t, got.Breakdown, 2)
		assert.InDelta(t, 11925, got.Breakdown[0].Amount, 1e-9)
		assert.InDelta(t, 1192.50, got.Breakdown[0].Tax, 1e-9)
		assert.InDelta(t, 22325, got.Breakdown[1].Amount, 1e-9)
		assert.InDelta(t, 2679.00, got.Breakdown[1].Tax, 1e-9)
	})

	t.Run("mfj 100k standard deduction", func(t *testing.T) {
		got, err := tax.Compute(tax.Input{GrossIncome: 100000, Status: tax.FilingMarriedJointly})
		require.NoError(t, err)
		// taxable 68,500: 23,850 at 10% + 44,650 at 12%.
		assert.InDelta(t, 68500, got.TaxableIncome, 1e-9)
		assert.InDelta(t, 7743.00, got.TotalTax, 1e-9)
		assert.InDelta(t, 0.12, got.MarginalRate, 1e-9)
	})

	t.Run("top bracket single", func(t *testing.T) {
		got, err := tax.Compute(tax.Input{GrossIncome: 1_000_000, Status: tax.FilingSingle, Deduction: deduction(0)})
		require.NoError(t, err)
		assert.InDelta(t, 0.37, got.MarginalRate, 1e-9)
		assert.Len(t, got.Breakdown, 7)
	})
}

func TestComputeBracketBoundary(t *testing.T) {
	// Taxable income exactly on a bracket's upper bound belongs to the next
	// bracket for marginal-rate purposes; the total is unaffected.
	below, err := tax.Compute(tax.Input{GrossIncome: 11924, Status: tax.FilingSingle, Deduction: deduction(0)})
	require.NoError(t, err)
	at, err := tax.Compute(tax.Input{GrossIncome: 11925, Status: tax.FilingSingle, Deduction: deduction(0)})
	require.NoError(t, err)

	assert.InDelta(t, 0.10, below.MarginalRate, 1e-9)
	assert.InDelta(t, 0.12, at.MarginalRate, 1e-9)
	assert.InDelta(t, 1192.50, at.TotalTax, 1e-9)
}

func TestComputeMonotonicity(t *testing.T) {
	prev := -1.0
	for income := 0.0; income <= 800_000; income += 7919 {
		got, err := tax.Compute(tax.Input{GrossIncome: income, Status: tax.FilingSingle})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got.TotalTax, prev, "income %v", income)
		assert.GreaterOrEqual(t, got.TotalTax, 0.0)
		table, _ := tax.BuiltinTable(tax.FilingSingle)
		assert.LessOrEqual(t, got.EffectiveRate, table.MaxRate())
		prev = got.TotalTax
	}
}

func TestComputeIdempotent(t *testing.T) {
	in := tax.Input{GrossIncome: 123456.78, Status: tax.FilingMarriedJointly, Deduction: deduction(20000)}
	first, err := tax.Compute(in)
	require.NoError(t, err)
	second, err := tax.Compute(in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestTableValidate(t *testing.T) {
	valid := twoBracketTable()
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*tax.Table)
	}{
		{name: "no brackets", mutate: func(tb *tax.Table) { tb.Brackets = nil }},
		{name: "first bracket not at zero", mutate: func(tb *tax.Table) { tb.Brackets[0].Lower = 100 }},
		{name: "gap between brackets", mutate: func(tb *tax.Table) { tb.Brackets[1].Lower = 10001 }},
		{name: "rates not increasing", mutate: func(tb *tax.Table) { tb.Brackets[1].Rate = 0.10 }},
		{name: "final bracket closed", mutate: func(tb *tax.Table) { tb.Brackets[1].Upper = 99999 }},
		{name: "rate out of range", mutate: func(tb *tax.Table) { tb.Brackets[0].Rate = 1.5 }},
		{name: "negative standard deduction", mutate: func(tb *tax.Table) { tb.StandardDeduction = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := twoBracketTable()
			tt.mutate(&tb)
			assert.Error(t, tb.Validate())
		})
	}
}

func TestBuiltinTablesAreValid(t *testing.T) {
	for _, status := range tax.FilingStatuses {
		table, err := tax.BuiltinTable(status)
		require.NoError(t, err)
		assert.NoError(t, table.Validate())
	}
}

func TestParseFilingStatus(t *testing.T) {
	got, err := tax.ParseFilingStatus("single")
	require.NoError(t, err)
	assert.Equal(t, tax.FilingSingle, got)

	got, err = tax.ParseFilingStatus("mfj")
	require.NoError(t, err)
	assert.Equal(t, tax.FilingMarriedJointly, got)

	_, err = tax.ParseFilingStatus("separately")
	assert.ErrorIs(t, err, tax.ErrInvalidInput)
}
