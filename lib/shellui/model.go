// Copyright 2026 The Convmag Authors
// SPDX-License-Identifier: Apache-2.0

package shellui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/magtools/convmag/lib/config"
	"github.com/magtools/convmag/lib/magunit"
	"github.com/magtools/convmag/lib/material"
	"github.com/magtools/convmag/lib/unitcell"
)

// promptMarker precedes the input line at the command prompt and
// echoes the user's input in the transcript.
const promptMarker = "» "

// mode identifies what the prompt line currently asks for.
type mode int

const (
	// modePrompt is the normal command prompt.
	modePrompt mode = iota
	// modeCellDims asks for the lattice parameters a b c.
	modeCellDims
	// modeCellGamma asks for the cell angle.
	modeCellGamma
	// modeCellFU asks for the formula units per cell.
	modeCellFU
)

// entryKind classifies a transcript entry for styling.
type entryKind int

const (
	kindResult entryKind = iota
	kindError
	kindInfo
)

// entry is one completed exchange in the transcript: the echoed input
// and the lines it produced.
type entry struct {
	input string
	lines []string
	kind  entryKind
}

// cellDialog carries the state of a guided muB/fu↔T request across
// the dialog steps.
type cellDialog struct {
	// momentToTesla is true for "muB/fu → T", false for the reverse.
	momentToTesla bool
	// value is the number being converted.
	value float64
	cell  unitcell.Cell
	numFU int
}

// Options configures a shell model. Zero values select defaults.
type Options struct {
	// Keys overrides the default key bindings.
	Keys *KeyMap
	// Theme overrides the default color scheme.
	Theme *Theme
	// Color selects the terminal color profile.
	Color config.ColorMode
	// Catalogue provides material presets for the cell dialog. Nil
	// means the built-in catalogue.
	Catalogue *material.Catalogue
	// TranscriptLimit bounds retained exchanges; 0 means unlimited.
	TranscriptLimit int
}

// Model is the bubbletea model for the interactive shell.
type Model struct {
	keys            KeyMap
	styles          styles
	catalogue       *material.Catalogue
	transcriptLimit int

	width  int
	height int

	// Prompt line state. The text input owns editing (cursor
	// movement, mid-line edits, the usual readline chords); the model
	// layers history recall on top.
	input        textinput.Model
	history      []string
	historyIndex int // len(history) when not recalling
	draft        string

	transcript []entry
	mode       mode
	dialog     cellDialog
	quitting   bool
}

// New builds a shell model.
func New(options Options) Model {
	keys := DefaultKeyMap
	if options.Keys != nil {
		keys = *options.Keys
	}
	theme := DefaultTheme
	if options.Theme != nil {
		theme = *options.Theme
	}
	catalogue := options.Catalogue
	if catalogue == nil {
		catalogue = material.Builtin()
	}

	st := newStyles(newRenderer(options.Color), theme)
	input := textinput.New()
	input.Prompt = promptMarker
	input.PromptStyle = st.prompt
	input.Focus()

	return Model{
		keys:            keys,
		styles:          st,
		input:           input,
		catalogue:       catalogue,
		transcriptLimit: options.TranscriptLimit,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		return m.submit()

	case key.Matches(msg, m.keys.CancelDialog):
		if m.mode != modePrompt {
			m.appendEntry(entry{
				input: m.input.Value(),
				lines: []string{"cell dialog cancelled"},
				kind:  kindInfo,
			})
			m.mode = modePrompt
			m.dialog = cellDialog{}
			m.input.Reset()
		}
		return m, nil

	case key.Matches(msg, m.keys.HistoryPrevious):
		if m.mode == modePrompt {
			m.recallPrevious()
		}
		return m, nil

	case key.Matches(msg, m.keys.HistoryNext):
		if m.mode == modePrompt {
			m.recallNext()
		}
		return m, nil
	}

	// Everything else is editing, handled by the text input.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// recallPrevious moves one step back in the input history, saving the
// in-progress line so [recallNext] can restore it.
func (m *Model) recallPrevious() {
	if len(m.history) == 0 || m.historyIndex == 0 {
		return
	}
	if m.historyIndex == len(m.history) {
		m.draft = m.input.Value()
	}
	m.historyIndex--
	m.input.SetValue(m.history[m.historyIndex])
	m.input.CursorEnd()
}

func (m *Model) recallNext() {
	if m.historyIndex >= len(m.history) {
		return
	}
	m.historyIndex++
	if m.historyIndex == len(m.history) {
		m.input.SetValue(m.draft)
		m.input.CursorEnd()
		return
	}
	m.input.SetValue(m.history[m.historyIndex])
	m.input.CursorEnd()
}

// submit processes the current input line according to the mode.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	if line == "" {
		m.input.Reset()
		return m, nil
	}

	if m.mode == modePrompt {
		m.history = append(m.history, line)
	}
	m.historyIndex = len(m.history)
	m.draft = ""
	m.input.Reset()

	switch m.mode {
	case modePrompt:
		return m.execPrompt(line)
	default:
		m.execDialog(line)
		return m, nil
	}
}

// execPrompt dispatches a line typed at the command prompt.
func (m Model) execPrompt(line string) (tea.Model, tea.Cmd) {
	switch line {
	case "q", "quit", "exit":
		m.quitting = true
		return m, tea.Quit
	case "units":
		m.appendEntry(entry{input: line, lines: unitLines(), kind: kindInfo})
		return m, nil
	case "conv":
		m.appendEntry(entry{input: line, lines: conversionLines(), kind: kindInfo})
		return m, nil
	case "mat", "materials":
		m.appendEntry(entry{input: line, lines: materialLines(m.catalogue), kind: kindInfo})
		return m, nil
	case "help", "?":
		m.appendEntry(entry{input: line, lines: helpLines(), kind: kindInfo})
		return m, nil
	}

	fields := strings.Fields(line)
	if len(fields) != 3 {
		m.appendEntry(entry{
			input: line,
			lines: []string{fmt.Sprintf("unrecognized input %q — expected \"<value> <start-unit> <end-unit>\" (try \"help\")", line)},
			kind:  kindError,
		})
		return m, nil
	}

	value, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		m.appendEntry(entry{
			input: line,
			lines: []string{fmt.Sprintf("not a number: %q", fields[0])},
			kind:  kindError,
		})
		return m, nil
	}
	startUnit, endUnit := fields[1], fields[2]

	// muB/fu ↔ T cannot come from the table: it needs lattice data,
	// so it opens the guided cell dialog instead.
	if startUnit == momentPerFU && endUnit == "T" {
		return m.startDialog(line, value, true), nil
	}
	if startUnit == "T" && endUnit == momentPerFU {
		return m.startDialog(line, value, false), nil
	}

	result, err := magunit.Convert(value, startUnit, endUnit)
	if err != nil {
		m.appendEntry(entry{input: line, lines: []string{err.Error()}, kind: kindError})
		return m, nil
	}
	m.appendEntry(entry{
		input: line,
		lines: []string{magunit.Describe(value, startUnit, endUnit, result)},
		kind:  kindResult,
	})
	return m, nil
}

func (m Model) startDialog(line string, value float64, momentToTesla bool) Model {
	m.appendEntry(entry{
		input: line,
		lines: []string{"lattice data required — answer the prompts, or \"use <material>\" for a preset (Esc cancels)"},
		kind:  kindInfo,
	})
	m.mode = modeCellDims
	m.dialog = cellDialog{momentToTesla: momentToTesla, value: value}
	return m
}

// execDialog consumes one answer of the guided cell dialog. Bad
// answers are reported and the dialog stays on the same step.
func (m *Model) execDialog(line string) {
	switch m.mode {
	case modeCellDims:
		if name, ok := strings.CutPrefix(line, "use "); ok {
			preset, err := m.catalogue.Lookup(strings.TrimSpace(name))
			if err != nil {
				m.appendEntry(entry{input: line, lines: []string{err.Error()}, kind: kindError})
				return
			}
			m.dialog.cell = preset.Cell()
			m.dialog.numFU = preset.FormulaUnits
			m.finishDialog(line)
			return
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			m.appendEntry(entry{
				input: line,
				lines: []string{"expected three lattice parameters: a b c (in Å)"},
				kind:  kindError,
			})
			return
		}
		values := make([]float64, 3)
		for i, field := range fields {
			parsed, err := strconv.ParseFloat(field, 64)
			if err != nil {
				m.appendEntry(entry{
					input: line,
					lines: []string{fmt.Sprintf("not a number: %q", field)},
					kind:  kindError,
				})
				return
			}
			values[i] = parsed
		}
		m.dialog.cell.A, m.dialog.cell.B, m.dialog.cell.C = values[0], values[1], values[2]
		m.mode = modeCellGamma

	case modeCellGamma:
		gamma, err := strconv.ParseFloat(line, 64)
		if err != nil || (gamma != unitcell.GammaOrthogonal && gamma != unitcell.GammaHexagonal) {
			m.appendEntry(entry{
				input: line,
				lines: []string{fmt.Sprintf("cell angle must be 90 or 120, got %q", line)},
				kind:  kindError,
			})
			return
		}
		m.dialog.cell.Gamma = gamma
		m.mode = modeCellFU

	case modeCellFU:
		numFU, err := strconv.Atoi(line)
		if err != nil || numFU <= 0 {
			m.appendEntry(entry{
				input: line,
				lines: []string{fmt.Sprintf("formula units per cell must be a positive integer, got %q", line)},
				kind:  kindError,
			})
			return
		}
		m.dialog.numFU = numFU
		m.finishDialog(line)
	}
}

// finishDialog computes the moment↔polarization result from the
// collected cell data and returns to the prompt.
func (m *Model) finishDialog(line string) {
	defer func() {
		m.mode = modePrompt
		m.dialog = cellDialog{}
	}()

	volumeA3, err := m.dialog.cell.Volume()
	if err != nil {
		m.appendEntry(entry{input: line, lines: []string{err.Error()}, kind: kindError})
		return
	}
	volumeM3, err := m.dialog.cell.VolumeCubicMeters()
	if err != nil {
		m.appendEntry(entry{input: line, lines: []string{err.Error()}, kind: kindError})
		return
	}

	var result float64
	var resultLine string
	if m.dialog.momentToTesla {
		result, err = unitcell.MomentToPolarization(m.dialog.value, m.dialog.numFU, volumeM3)
		resultLine = fmt.Sprintf("%s %s = %s T",
			magunit.FormatNumber(m.dialog.value), momentPerFU, magunit.FormatResult(result))
	} else {
		result, err = unitcell.PolarizationToMoment(m.dialog.value, m.dialog.numFU, volumeM3)
		resultLine = fmt.Sprintf("%s T = %s %s",
			magunit.FormatNumber(m.dialog.value), magunit.FormatResult(result), momentPerFU)
	}
	if err != nil {
		m.appendEntry(entry{input: line, lines: []string{err.Error()}, kind: kindError})
		return
	}

	m.appendEntry(entry{
		input: line,
		lines: []string{
			fmt.Sprintf("unit cell volume: %s Å^3 (%d f.u.)", magunit.FormatResult(volumeA3), m.dialog.numFU),
			resultLine,
		},
		kind: kindResult,
	})
}

// appendEntry records an exchange, trimming the oldest entries past
// the transcript limit.
func (m *Model) appendEntry(e entry) {
	m.transcript = append(m.transcript, e)
	if m.transcriptLimit > 0 && len(m.transcript) > m.transcriptLimit {
		m.transcript = m.transcript[len(m.transcript)-m.transcriptLimit:]
	}
}

// promptLabel returns the text shown ahead of the input line for the
// current mode.
func (m Model) promptLabel() string {
	switch m.mode {
	case modeCellDims:
		return "lattice parameters a b c (Å): "
	case modeCellGamma:
		return "cell angle γ (90 or 120): "
	case modeCellFU:
		return "formula units per cell: "
	default:
		return ""
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var lines []string
	lines = append(lines,
		m.styles.header.Render("convmag — magnetic unit conversion"),
		m.styles.faint.Render(`type "<value> <start-unit> <end-unit>", "units", "conv", "mat", or "q"`),
		"",
	)

	for _, e := range m.transcript {
		lines = append(lines, m.styles.prompt.Render(promptMarker)+m.styles.echo.Render(e.input))
		style := m.styles.result
		switch e.kind {
		case kindError:
			style = m.styles.errMsg
		case kindInfo:
			style = m.styles.faint
		}
		for _, line := range e.lines {
			lines = append(lines, style.Render(line))
		}
	}

	// Dialog steps restyle the input's prompt in place; the copy is
	// local, so the prompt reverts when the dialog ends.
	input := m.input
	if label := m.promptLabel(); label != "" {
		input.Prompt = label
		input.PromptStyle = m.styles.faint
	}
	lines = append(lines, input.View())

	if m.width > 0 {
		for i, line := range lines {
			lines[i] = ansi.Truncate(line, m.width, "…")
		}
	}

	// Keep the prompt on screen: show only the tail that fits.
	if m.height > 0 && len(lines) > m.height {
		lines = lines[len(lines)-m.height:]
	}

	return strings.Join(lines, "\n")
}
