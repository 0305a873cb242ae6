// Copyright 2026 The Convmag Authors
// SPDX-License-Identifier: Apache-2.0

// Package shellui implements the interactive convmag shell as a
// bubbletea model.
//
// The shell is a prompt/transcript loop: the user types either a
// command (units, conv, mat, q) or a conversion request of the form
// "<value> <start-unit> <end-unit>", and each exchange is appended to
// a scrolling transcript. Conversion errors become transcript entries
// like any other result; nothing the user types can abort the shell
// short of quitting it.
//
// Requests between muB/fu and T need lattice data that a conversion
// table cannot carry, so they switch the model into a short guided
// dialog (lattice parameters, cell angle, formula units) before the
// result is computed. Typing "use <material>" at the first dialog
// step fills the cell from the material catalogue instead.
//
// The model is pure state: all input arrives as bubbletea messages
// and all output is the View string, which keeps the whole shell
// testable by feeding synthetic tea.KeyMsg values and asserting on
// the rendered transcript.
package shellui
