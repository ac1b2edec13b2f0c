// SPDX-License-Identifier: Apache-2.0

// Package ui implements the interactive tax calculation wizard as a Bubble
// Tea program: filing status, gross income (with a confirmation step),
// deduction choice, and state, followed by a bracket breakdown and summary.
package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taxcalc/internal/config"
	"taxcalc/internal/money"
	"taxcalc/internal/statetax"
	"taxcalc/internal/tax"
)

type model struct {
	keys KeyMap
	cfg  config.Config

	currentState state
	cursor       int

	// Collected answers
	status    tax.FilingStatus
	income    float64
	deduction *float64 // nil selects the standard deduction
	stateCode string

	incomeInput    textinput.Model
	deductionInput textinput.Model
	stateInput     textinput.Model

	result   tax.Result
	stateTax statetax.Assessment
	inputErr error

	width  int
	height int
}

// InitialModel builds the wizard's starting state. The cursor starts on the
// configured default filing status when one is set.
func InitialModel(cfg config.Config) model {
	m := model{
		keys:         DefaultKeyMap,
		cfg:          cfg,
		currentState: stateFilingStatus,
	}
	if cfg.DefaultFilingStatus != "" {
		for i, fs := range tax.FilingStatuses {
			if string(fs) == cfg.DefaultFilingStatus {
				m.cursor = i
			}
		}
	}
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case resultMsg:
		m.result = msg.result
		m.stateTax = msg.stateTax
		m.currentState = stateSummary
		return m, nil

	case computeFailedMsg:
		m.inputErr = msg.err
		m.currentState = stateInputError
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, even mid-input.
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.currentState {
	case stateFilingStatus:
		return m.handleFilingStatusKeys(msg)
	case stateIncomeInput:
		return m.handleIncomeInputKeys(msg)
	case stateIncomeConfirm:
		return m.handleIncomeConfirmKeys(msg)
	case stateDeductionChoice:
		return m.handleDeductionChoiceKeys(msg)
	case stateDeductionInput:
		return m.handleDeductionInputKeys(msg)
	case stateStateInput:
		return m.handleStateInputKeys(msg)
	case stateSummary:
		return m.handleSummaryKeys(msg)
	case stateInputError:
		return m.handleErrorKeys(msg)
	}
	return m, nil
}

func (m model) handleFilingStatusKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(tax.FilingStatuses)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Enter):
		m.status = tax.FilingStatuses[m.cursor]
		m.incomeInput = newIncomeInput(string(m.status))
		m.currentState = stateIncomeInput
		return m, m.incomeInput.Focus()
	}
	return m, nil
}

func (m model) handleIncomeInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc:
		m.currentState = stateFilingStatus
		return m, nil
	case msg.Type == tea.KeyEnter:
		income, err := money.ParseAmount(m.incomeInput.Value())
		if err != nil {
			m.inputErr = err
			m.currentState = stateInputError
			return m, nil
		}
		m.income = income
		m.currentState = stateIncomeConfirm
		return m, nil
	}

	var cmd tea.Cmd
	m.incomeInput, cmd = m.incomeInput.Update(msg)
	return m, cmd
}

func (m model) handleIncomeConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Yes), key.Matches(msg, m.keys.Enter):
		m.cursor = deductionChoiceStandard
		m.currentState = stateDeductionChoice
	case key.Matches(msg, m.keys.No), msg.Type == tea.KeyEsc:
		m.incomeInput = newIncomeInput(string(m.status))
		m.currentState = stateIncomeInput
		return m, m.incomeInput.Focus()
	}
	return m, nil
}

func (m model) handleDeductionChoiceKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case msg.Type == tea.KeyEsc:
		m.currentState = stateIncomeConfirm
	case key.Matches(msg, m.keys.Up):
		m.cursor = deductionChoiceStandard
	case key.Matches(msg, m.keys.Down):
		m.cursor = deductionChoiceCustom
	case key.Matches(msg, m.keys.Enter):
		if m.cursor == deductionChoiceCustom {
			m.deductionInput = newDeductionInput()
			m.currentState = stateDeductionInput
			return m, m.deductionInput.Focus()
		}
		m.deduction = nil
		m.stateInput = newStateInput(m.cfg.DefaultState)
		m.currentState = stateStateInput
		return m, m.stateInput.Focus()
	}
	return m, nil
}

func (m model) handleDeductionInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc:
		m.currentState = stateDeductionChoice
		return m, nil
	case msg.Type == tea.KeyEnter:
		amount, err := money.ParseAmount(m.deductionInput.Value())
		if err != nil {
			m.inputErr = err
			m.currentState = stateInputError
			return m, nil
		}
		m.deduction = &amount
		m.stateInput = newStateInput(m.cfg.DefaultState)
		m.currentState = stateStateInput
		return m, m.stateInput.Focus()
	}

	var cmd tea.Cmd
	m.deductionInput, cmd = m.deductionInput.Update(msg)
	return m, cmd
}

func (m model) handleStateInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc:
		m.currentState = stateDeductionChoice
		return m, nil
	case msg.Type == tea.KeyEnter:
		code := statetax.Normalize(m.stateInput.Value())
		if code == "" {
			code = statetax.Normalize(m.cfg.DefaultState)
		}
		m.stateCode = code
		m.currentState = stateComputing
		return m, m.computeCmd()
	}

	var cmd tea.Cmd
	m.stateInput, cmd = m.stateInput.Update(msg)
	return m, cmd
}

func (m model) handleSummaryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit), msg.Type == tea.KeyEsc:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Again):
		fresh := InitialModel(m.cfg)
		fresh.width = m.width
		fresh.height = m.height
		return fresh, nil
	}
	return m, nil
}

func (m model) handleErrorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Enter), msg.Type == tea.KeyEsc:
		// Back to the start of the wizard; collected inputs were suspect.
		fresh := InitialModel(m.cfg)
		fresh.width = m.width
		fresh.height = m.height
		return fresh, nil
	}
	return m, nil
}

// computeCmd runs the calculation off the update loop and reports back via
// resultMsg / computeFailedMsg.
func (m model) computeCmd() tea.Cmd {
	in := tax.Input{GrossIncome: m.income, Status: m.status, Deduction: m.deduction}
	cfg := m.cfg
	code := m.stateCode
	return func() tea.Msg {
		table, err := cfg.TableFor(in.Status)
		if err != nil {
			return computeFailedMsg{err}
		}
		result, err := tax.ComputeWithTable(in, table)
		if err != nil {
			return computeFailedMsg{err}
		}
		return resultMsg{result: result, stateTax: statetax.Assess(result.TaxableIncome, code)}
	}
}
