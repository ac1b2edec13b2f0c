// SPDX-License-Identifier: Apache-2.0

package statetax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taxcalc/internal/statetax"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"TX", "TX"},
		{"tx", "TX"},
		{"  wa ", "WA"},
		{"texas", "TX"},
		{"New Hampshire", "NH"},
		{"CA", "CA"},
		{"narnia", "NARNIA"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statetax.Normalize(tt.in))
	}
}

func TestLookup(t *testing.T) {
	assert.Equal(t, statetax.KindNone, statetax.Lookup("TX"))
	assert.Equal(t, statetax.KindFlat, statetax.Lookup("CO"))
	assert.Equal(t, statetax.KindGraduated, statetax.Lookup("CA"))
	assert.Equal(t, statetax.KindUnknown, statetax.Lookup("ZZ"))
}

func TestAssess(t *testing.T) {
	tests := []struct {
		name         string
		code         string
		wantComputed bool
		wantTax      float64
		wantLabel    string
	}{
		{name: "no income tax state", code: "FL", wantComputed: true, wantTax: 0, wantLabel: "No state income tax"},
		{name: "flat state not implemented", code: "IL", wantLabel: "N/A (not implemented yet)"},
		{name: "graduated state not implemented", code: "NY", wantLabel: "N/A (not implemented yet)"},
		{name: "unknown state", code: "XX", wantLabel: "N/A (unknown/unsupported state)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := statetax.Assess(80000, tt.code)
			assert.Equal(t, tt.wantComputed, got.Computed)
			assert.Equal(t, tt.wantTax, got.Tax)
			assert.Equal(t, tt.wantLabel, got.Label)
		})
	}
}

func TestCodes(t *testing.T) {
	codes := statetax.Codes()
	assert.Len(t, codes, 51) // 50 states + DC
	assert.IsIncreasing(t, codes)
	assert.Contains(t, codes, "DC")
}
