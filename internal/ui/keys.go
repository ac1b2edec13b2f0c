// SPDX-License-Identifier: Apache-2.0

// This file defines the keyboard bindings for the TUI wizard.

package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Up    key.Binding // Move cursor up
	Down  key.Binding // Move cursor down
	Enter key.Binding // Confirm selection / submit input
	Esc   key.Binding // Go back one step
	Quit  key.Binding // Exit the application
	Yes   key.Binding // Confirm in prompts
	No    key.Binding // Deny in prompts
	Again key.Binding // Start another calculation from the summary
}

// DefaultKeyMap provides the default keybindings.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "confirm"),
	),
	Esc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q/ctrl+c", "quit"),
	),
	Yes: key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("y", "yes"),
	),
	No: key.NewBinding(
		key.WithKeys("n", "N"),
		key.WithHelp("n", "no"),
	),
	Again: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "run another"),
	),
}
