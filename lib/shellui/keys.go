// Copyright 2026 The Convmag Authors
// SPDX-License-Identifier: Apache-2.0

package shellui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the shell. Character input and
// line editing belong to the text input widget and are not rebindable
// here.
type KeyMap struct {
	// Submit sends the current input line.
	Submit key.Binding

	// History recall at the prompt.
	HistoryPrevious key.Binding
	HistoryNext     key.Binding

	// CancelDialog abandons a guided cell dialog and returns to the
	// prompt without converting.
	CancelDialog key.Binding

	// Quit leaves the shell immediately (the "q" command does the
	// same thing politely).
	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "submit"),
	),
	HistoryPrevious: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "previous input"),
	),
	HistoryNext: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "next input"),
	),
	CancelDialog: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "cancel"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("C-c", "quit"),
	),
}
