// Copyright 2026 The Convmag Authors
// SPDX-License-Identifier: Apache-2.0

package shellui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/magtools/convmag/lib/config"
)

// Theme defines the color palette for the shell. All colors use
// lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// PromptForeground colors the prompt marker.
	PromptForeground lipgloss.Color

	// EchoForeground colors the user's input as replayed in the
	// transcript.
	EchoForeground lipgloss.Color

	// ResultForeground colors successful conversion output.
	ResultForeground lipgloss.Color

	// ErrorForeground colors diagnostics.
	ErrorForeground lipgloss.Color

	// FaintText colors listings, dialog prompts, and the help line.
	FaintText lipgloss.Color

	// HeaderForeground colors the banner line.
	HeaderForeground lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	PromptForeground: lipgloss.Color("75"),  // blue
	EchoForeground:   lipgloss.Color("255"), // bright white
	ResultForeground: lipgloss.Color("114"), // green
	ErrorForeground:  lipgloss.Color("196"), // red
	FaintText:        lipgloss.Color("245"), // gray
	HeaderForeground: lipgloss.Color("255"),
}

// newRenderer builds the lipgloss renderer for a color mode. Forcing
// the termenv profile (rather than letting lipgloss re-detect from
// the environment) keeps rendering deterministic: "always" yields
// ANSI256 even when piped, "never" strips all styling.
func newRenderer(mode config.ColorMode) *lipgloss.Renderer {
	switch mode {
	case config.ColorAlways:
		renderer := lipgloss.NewRenderer(os.Stdout, termenv.WithProfile(termenv.ANSI256))
		renderer.SetColorProfile(termenv.ANSI256)
		return renderer
	case config.ColorNever:
		renderer := lipgloss.NewRenderer(os.Stdout, termenv.WithProfile(termenv.Ascii))
		renderer.SetColorProfile(termenv.Ascii)
		return renderer
	default:
		return lipgloss.DefaultRenderer()
	}
}

// styles holds the pre-built lipgloss styles derived from a Theme.
type styles struct {
	prompt lipgloss.Style
	echo   lipgloss.Style
	result lipgloss.Style
	errMsg lipgloss.Style
	faint  lipgloss.Style
	header lipgloss.Style
}

func newStyles(renderer *lipgloss.Renderer, theme Theme) styles {
	return styles{
		prompt: renderer.NewStyle().Foreground(theme.PromptForeground).Bold(true),
		echo:   renderer.NewStyle().Foreground(theme.EchoForeground),
		result: renderer.NewStyle().Foreground(theme.ResultForeground),
		errMsg: renderer.NewStyle().Foreground(theme.ErrorForeground),
		faint:  renderer.NewStyle().Foreground(theme.FaintText),
		header: renderer.NewStyle().Foreground(theme.HeaderForeground).Bold(true),
	}
}
