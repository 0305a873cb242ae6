// Copyright 2026 The Convmag Authors
// SPDX-License-Identifier: Apache-2.0

package shellui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/magtools/convmag/lib/config"
)

// newTestModel builds a model with color disabled so View output is
// plain text that strings.Contains can assert on.
func newTestModel() Model {
	return New(Options{Color: config.ColorNever})
}

// typeString feeds s to the model one key at a time.
func typeString(m Model, s string) Model {
	for _, r := range s {
		var msg tea.KeyMsg
		if r == ' ' {
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		}
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

// submitLine types s and presses enter.
func submitLine(m Model, s string) Model {
	m = typeString(m, s)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model)
}

func TestConversionRequest(t *testing.T) {
	m := submitLine(newTestModel(), "5 T G")

	view := m.View()
	if !strings.Contains(view, "5 T = 5.00000e+04 G") {
		t.Errorf("View missing conversion result:\n%s", view)
	}
}

func TestBackspaceEditsInput(t *testing.T) {
	m := typeString(newTestModel(), "5 T GG")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = submitLine(updated.(Model), "")

	if !strings.Contains(m.View(), "5 T = 5.00000e+04 G") {
		t.Errorf("View missing corrected conversion:\n%s", m.View())
	}
}

func TestMidLineEditing(t *testing.T) {
	// Move the cursor back into "5 T G", replace the leading 5 with a
	// 6, and submit: the edit must land at the cursor, not the end.
	m := typeString(newTestModel(), "5 T G")
	for i := 0; i < 4; i++ {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
		m = updated.(Model)
	}
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = updated.(Model)
	m = typeString(m, "6")

	if m.input.Value() != "6 T G" {
		t.Fatalf("input after mid-line edit = %q, want %q", m.input.Value(), "6 T G")
	}

	m = submitLine(m, "")
	if !strings.Contains(m.View(), "6 T = 6.00000e+04 G") {
		t.Errorf("View missing edited conversion:\n%s", m.View())
	}
}

func TestUnknownUnitBecomesTranscriptError(t *testing.T) {
	m := submitLine(newTestModel(), "1 Z T")

	view := m.View()
	if !strings.Contains(view, `unrecognized unit "Z"`) {
		t.Errorf("View missing unit diagnostic:\n%s", view)
	}

	// The shell survives the error and keeps converting.
	m = submitLine(m, "1 T G")
	if !strings.Contains(m.View(), "1 T = 1.00000e+04 G") {
		t.Errorf("shell did not recover after error:\n%s", m.View())
	}
}

func TestMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"too few words", "5 T", "unrecognized input"},
		{"not a number", "five T G", "not a number"},
		{"cross family", "1 G muB", "conversion not available"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := submitLine(newTestModel(), test.line)
			if !strings.Contains(m.View(), test.want) {
				t.Errorf("View missing %q:\n%s", test.want, m.View())
			}
		})
	}
}

func TestUnitsListing(t *testing.T) {
	m := submitLine(newTestModel(), "units")

	view := m.View()
	for _, want := range []string{"base units:", "muB/fu", "prefixes:", "k = 1000"} {
		if !strings.Contains(view, want) {
			t.Errorf("units listing missing %q:\n%s", want, view)
		}
	}
}

func TestConversionListing(t *testing.T) {
	m := submitLine(newTestModel(), "conv")

	view := m.View()
	for _, want := range []string{"1e4 * MU_0", "requires lattice input", "MU_0 =", "MU_B ="} {
		if !strings.Contains(view, want) {
			t.Errorf("conv listing missing %q:\n%s", want, view)
		}
	}
}

func TestMaterialListing(t *testing.T) {
	m := submitLine(newTestModel(), "mat")

	view := m.View()
	if !strings.Contains(view, "Nd2Fe14B") || !strings.Contains(view, "SmCo5") {
		t.Errorf("mat listing missing presets:\n%s", view)
	}
}

func TestCellDialogWalkthrough(t *testing.T) {
	m := submitLine(newTestModel(), "1 muB/fu T")

	if !strings.Contains(m.View(), "lattice parameters a b c") {
		t.Fatalf("dialog did not open:\n%s", m.View())
	}

	m = submitLine(m, "4 4 6")
	if !strings.Contains(m.View(), "cell angle") {
		t.Fatalf("dialog did not advance to the angle step:\n%s", m.View())
	}

	m = submitLine(m, "120")
	if !strings.Contains(m.View(), "formula units per cell") {
		t.Fatalf("dialog did not advance to the formula-unit step:\n%s", m.View())
	}

	m = submitLine(m, "2")
	view := m.View()
	// Hexagonal volume 0.866·16·6 = 83.136 Å³.
	if !strings.Contains(view, "unit cell volume: 83.13600") {
		t.Errorf("result missing cell volume:\n%s", view)
	}
	if !strings.Contains(view, "1 muB/fu =") {
		t.Errorf("result missing conversion line:\n%s", view)
	}
}

func TestCellDialogRejectsBadAngle(t *testing.T) {
	m := submitLine(newTestModel(), "1 muB/fu T")
	m = submitLine(m, "4 4 6")
	m = submitLine(m, "100")

	view := m.View()
	if !strings.Contains(view, "must be 90 or 120") {
		t.Errorf("missing angle diagnostic:\n%s", view)
	}
	// Still on the angle step.
	if !strings.Contains(view, "cell angle") {
		t.Errorf("dialog left the angle step after bad input:\n%s", view)
	}
}

func TestCellDialogPreset(t *testing.T) {
	m := submitLine(newTestModel(), "1.07 T muB/fu")
	m = submitLine(m, "use SmCo5")

	view := m.View()
	if !strings.Contains(view, "1.07 T =") || !strings.Contains(view, "muB/fu") {
		t.Errorf("preset dialog did not produce a result:\n%s", view)
	}
}

func TestCellDialogUnknownPresetSuggests(t *testing.T) {
	m := submitLine(newTestModel(), "1 muB/fu T")
	m = submitLine(m, "use SmCo4")

	if !strings.Contains(m.View(), `did you mean "SmCo5"`) {
		t.Errorf("missing preset suggestion:\n%s", m.View())
	}
}

func TestCellDialogCancel(t *testing.T) {
	m := submitLine(newTestModel(), "1 muB/fu T")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)

	if !strings.Contains(m.View(), "cell dialog cancelled") {
		t.Errorf("missing cancel notice:\n%s", m.View())
	}
	if strings.Contains(m.View(), "lattice parameters a b c") {
		t.Errorf("dialog prompt still shown after cancel:\n%s", m.View())
	}
}

func TestQuitCommand(t *testing.T) {
	m := typeString(newTestModel(), "q")
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if cmd == nil {
		t.Fatal("q should produce a quit command")
	}
	if !m.quitting {
		t.Error("model should be quitting")
	}
}

func TestHistoryRecall(t *testing.T) {
	m := submitLine(newTestModel(), "5 T G")
	m = submitLine(m, "units")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	if m.input.Value() != "units" {
		t.Errorf("first recall = %q, want units", m.input.Value())
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	if m.input.Value() != "5 T G" {
		t.Errorf("second recall = %q, want 5 T G", m.input.Value())
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	if m.input.Value() != "units" {
		t.Errorf("forward recall = %q, want units", m.input.Value())
	}
}

func TestTranscriptLimit(t *testing.T) {
	m := New(Options{Color: config.ColorNever, TranscriptLimit: 2})
	m = submitLine(m, "1 T G")
	m = submitLine(m, "2 T G")
	m = submitLine(m, "3 T G")

	view := m.View()
	if strings.Contains(view, "1 T = 1.00000e+04 G") {
		t.Errorf("oldest entry should have been trimmed:\n%s", view)
	}
	if !strings.Contains(view, "3 T = 3.00000e+04 G") {
		t.Errorf("newest entry missing:\n%s", view)
	}
}

func TestViewRespectsHeight(t *testing.T) {
	m := newTestModel()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 5})
	m = updated.(Model)
	for _, line := range []string{"1 T G", "2 T G", "3 T G", "4 T G"} {
		m = submitLine(m, line)
	}

	view := m.View()
	if lines := strings.Count(view, "\n") + 1; lines > 5 {
		t.Errorf("View has %d lines, want at most 5", lines)
	}
	// The prompt is always the last line on screen.
	lastLine := view[strings.LastIndex(view, "\n")+1:]
	if !strings.Contains(lastLine, "»") {
		t.Errorf("View should end with the prompt line:\n%s", view)
	}
}
