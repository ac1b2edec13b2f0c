// SPDX-License-Identifier: Apache-2.0

// Package money provides currency rounding, parsing, and formatting helpers
// shared by the calculator core and both frontends.
package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// centsPerDollar is the scale used for currency rounding (2 decimal places).
const centsPerDollar = 100

// RoundToCents rounds v to cent precision using round-half-to-even.
func RoundToCents(v float64) float64 {
	return math.RoundToEven(v*centsPerDollar) / centsPerDollar
}

// ParseAmount parses a user-supplied dollar amount. A leading dollar sign
// and thousands separators are tolerated, so "$1,234.56" parses as 1234.56.
func ParseAmount(s string) (float64, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return 0, fmt.Errorf("empty amount")
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return v, nil
}

// FormatUSD renders v as a dollar amount with thousands separators,
// e.g. 1234.5 -> "$1,234.50". Negative values render as "-$1,234.50".
func FormatUSD(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	dot := strings.IndexByte(s, '.')
	intPart, fracPart := s[:dot], s[dot:]

	var b strings.Builder
	b.WriteString(sign)
	b.WriteByte('$')
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	b.WriteString(fracPart)
	return b.String()
}

// FormatUSDWhole renders v as a whole-dollar amount with thousands
// separators, e.g. 11925 -> "$11,925". Used for bracket bounds.
func FormatUSDWhole(v float64) string {
	s := FormatUSD(math.Round(v))
	return strings.TrimSuffix(s, ".00")
}

// FormatPercent renders a rate fraction as a percentage with the given
// number of decimal places, e.g. FormatPercent(0.224, 2) -> "22.40%".
func FormatPercent(rate float64, decimals int) string {
	return strconv.FormatFloat(rate*100, 'f', decimals, 64) + "%"
}
