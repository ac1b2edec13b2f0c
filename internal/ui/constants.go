// SPDX-License-Identifier: Apache-2.0

package ui

// state represents the different views or steps of the TUI wizard.
type state int

const (
	stateFilingStatus state = iota
	stateIncomeInput
	stateIncomeConfirm
	stateDeductionChoice
	stateDeductionInput
	stateStateInput
	stateComputing
	stateSummary
	stateInputError
)

// Deduction choices presented after income entry.
const (
	deductionChoiceStandard = iota
	deductionChoiceCustom
)

const headerHeight = 1 // Height reserved for the main title header.
