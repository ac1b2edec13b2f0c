// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// --- Form Creation ---

func newIncomeInput(status string) textinput.Model {
	t := textinput.New()
	if status == "mfj" {
		t.Placeholder = "Household gross income (e.g., 120,000)"
	} else {
		t.Placeholder = "Gross income (e.g., 85,000)"
	}
	t.Focus()
	t.CharLimit = 20
	t.Width = 40
	t.Validate = validateAmountChars
	return t
}

func newDeductionInput() textinput.Model {
	t := textinput.New()
	t.Placeholder = "Total custom deduction (e.g., 12,000)"
	t.Focus()
	t.CharLimit = 20
	t.Width = 40
	t.Validate = validateAmountChars
	return t
}

func newStateInput(defaultState string) textinput.Model {
	t := textinput.New()
	t.Placeholder = "State (e.g., TX)"
	if defaultState != "" {
		t.Placeholder = fmt.Sprintf("State (default %s)", defaultState)
	}
	t.Focus()
	t.CharLimit = 20
	t.Width = 30
	return t
}

// validateAmountChars rejects characters that can never appear in a dollar
// amount; full parsing happens on submit.
func validateAmountChars(s string) error {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			continue
		}
		if strings.ContainsRune("$,. ", r) {
			continue
		}
		return fmt.Errorf("amounts may only contain digits, commas, and a decimal point")
	}
	return nil
}
