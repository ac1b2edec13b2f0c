// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"fmt"
	"math"
	"strings"

	"taxcalc/internal/money"
	"taxcalc/internal/tax"
)

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Federal Tax Calculator"))
	b.WriteString("\n\n")

	switch m.currentState {
	case stateFilingStatus:
		m.viewFilingStatus(&b)
	case stateIncomeInput:
		m.viewIncomeInput(&b)
	case stateIncomeConfirm:
		m.viewIncomeConfirm(&b)
	case stateDeductionChoice:
		m.viewDeductionChoice(&b)
	case stateDeductionInput:
		m.viewDeductionInput(&b)
	case stateStateInput:
		m.viewStateInput(&b)
	case stateComputing:
		b.WriteString(statusStyle.Render("Calculating..."))
		b.WriteString("\n")
	case stateSummary:
		m.viewSummary(&b)
	case stateInputError:
		m.viewError(&b)
	}

	b.WriteString("\n")
	b.WriteString(m.footerView())
	return b.String()
}

func (m model) viewFilingStatus(b *strings.Builder) {
	b.WriteString(labelStyle.Render("Select your filing status:"))
	b.WriteString("\n\n")
	for i, fs := range tax.FilingStatuses {
		cursor := "  "
		line := fs.Description()
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
			line = cursorStyle.Render(line)
		}
		fmt.Fprintf(b, "%s%s\n", cursor, line)
	}
}

func (m model) viewIncomeInput(b *strings.Builder) {
	if m.status == tax.FilingMarriedJointly {
		b.WriteString(labelStyle.Render("Enter your household gross income:"))
	} else {
		b.WriteString(labelStyle.Render("Enter your gross income:"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.incomeInput.View())
	b.WriteString("\n")
}

func (m model) viewIncomeConfirm(b *strings.Builder) {
	fmt.Fprintf(b, "Income entered: %s\n\n", amountStyle.Render(money.FormatUSD(m.income)))
	b.WriteString("Is this correct? (y/n)\n")
}

func (m model) viewDeductionChoice(b *strings.Builder) {
	b.WriteString(labelStyle.Render("Which deduction should apply?"))
	b.WriteString("\n\n")

	standard := "Standard deduction"
	if table, err := m.cfg.TableFor(m.status); err == nil {
		standard = fmt.Sprintf("Standard deduction (%s)", money.FormatUSD(table.StandardDeduction))
	}
	choices := []string{standard, "Custom deduction..."}
	for i, choice := range choices {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
			choice = cursorStyle.Render(choice)
		}
		fmt.Fprintf(b, "%s%s\n", cursor, choice)
	}
}

func (m model) viewDeductionInput(b *strings.Builder) {
	b.WriteString(labelStyle.Render("Enter your total custom deduction:"))
	b.WriteString("\n\n")
	b.WriteString(m.deductionInput.View())
	b.WriteString("\n")
}

func (m model) viewStateInput(b *strings.Builder) {
	b.WriteString(labelStyle.Render("Which state do you live in?"))
	b.WriteString("\n\n")
	b.WriteString(m.stateInput.View())
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Two-letter code, e.g. TX. Leave empty for the configured default."))
	b.WriteString("\n")
}

func (m model) viewSummary(b *strings.Builder) {
	var s strings.Builder

	s.WriteString(labelStyle.Render("Federal Tax Bracket Breakdown"))
	s.WriteString("\n")
	s.WriteString(dimStyle.Render(strings.Repeat("-", 50)))
	s.WriteString("\n")
	for _, share := range m.result.Breakdown {
		upperText := "and up"
		if !math.IsInf(share.Upper, 1) {
			upperText = money.FormatUSDWhole(share.Upper)
		}
		fmt.Fprintf(&s, "%s on %s to %s: taxed %s -> %s\n",
			money.FormatPercent(share.Rate, 0),
			money.FormatUSDWhole(share.Lower),
			upperText,
			money.FormatUSD(share.Amount),
			amountStyle.Render(money.FormatUSD(share.Tax)))
	}
	if len(m.result.Breakdown) == 0 {
		s.WriteString(dimStyle.Render("No taxable income.\n"))
	}
	s.WriteString(dimStyle.Render(strings.Repeat("-", 50)))
	s.WriteString("\n\n")

	s.WriteString(titleStyle.Render("Federal Tax Summary (Simplified)"))
	s.WriteString("\n")
	fmt.Fprintf(&s, "Filing status: %s\n", m.result.Status.Description())
	fmt.Fprintf(&s, "Gross income: %s\n", money.FormatUSD(m.result.GrossIncome))
	fmt.Fprintf(&s, "Deduction used: %s - %s\n", m.result.DeductionLabel(), money.FormatUSD(m.result.Deduction))
	fmt.Fprintf(&s, "Taxable income: %s\n", money.FormatUSD(m.result.TaxableIncome))
	fmt.Fprintf(&s, "Total federal income tax: %s\n", successStyle.Render(money.FormatUSD(m.result.TotalTax)))
	if m.stateTax.Computed {
		fmt.Fprintf(&s, "State income tax (%s): %s (%s)\n", m.stateCode, money.FormatUSD(m.stateTax.Tax), m.stateTax.Label)
	} else {
		fmt.Fprintf(&s, "State income tax (%s): %s\n", m.stateCode, m.stateTax.Label)
	}
	fmt.Fprintf(&s, "Marginal tax rate: %s\n", money.FormatPercent(m.result.MarginalRate, 0))
	fmt.Fprintf(&s, "Effective tax rate: %s\n", money.FormatPercent(m.result.EffectiveRate, 2))
	fmt.Fprintf(&s, "After-tax income (federal only): %s\n", money.FormatUSD(m.result.AfterTaxIncome))

	b.WriteString(summaryBorderStyle.Render(s.String()))
	b.WriteString("\n")
}

func (m model) viewError(b *strings.Builder) {
	b.WriteString(errorStyle.Render("Invalid input"))
	b.WriteString("\n\n")
	fmt.Fprintf(b, "%v\n", m.inputErr)
	b.WriteString("\nPress enter to start over.\n")
}

// footerView renders context-appropriate key hints.
func (m model) footerView() string {
	sep := footerSeparatorStyle.Render(" | ")

	hint := func(k, desc string) string {
		return footerKeyStyle.Render(k) + footerStyle.Render(" "+desc)
	}

	switch m.currentState {
	case stateFilingStatus, stateDeductionChoice:
		return strings.Join([]string{hint("↑/↓", "move"), hint("enter", "select"), hint("q", "quit")}, sep)
	case stateIncomeInput, stateDeductionInput, stateStateInput:
		return strings.Join([]string{hint("enter", "submit"), hint("esc", "back"), hint("ctrl+c", "quit")}, sep)
	case stateIncomeConfirm:
		return strings.Join([]string{hint("y", "yes"), hint("n", "re-enter"), hint("q", "quit")}, sep)
	case stateSummary:
		return strings.Join([]string{hint("r", "run another"), hint("q", "quit")}, sep)
	case stateInputError:
		return strings.Join([]string{hint("enter", "start over"), hint("q", "quit")}, sep)
	}
	return ""
}
