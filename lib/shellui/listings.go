// Copyright 2026 The Convmag Authors
// SPDX-License-Identifier: Apache-2.0

package shellui

import (
	"fmt"
	"strings"

	"github.com/magtools/convmag/lib/magunit"
	"github.com/magtools/convmag/lib/material"
)

// momentPerFU is the pseudo-unit for moments per formula unit. It is
// not a conversion-table unit: requests involving it go through the
// cell dialog instead of the table.
const momentPerFU = "muB/fu"

// unitLines renders the "units" listing.
func unitLines() []string {
	lines := []string{
		"base units: " + strings.Join(magunit.Units(), ", ") + ", " + momentPerFU,
		"prefixes:",
	}
	for _, prefix := range magunit.Prefixes() {
		lines = append(lines, fmt.Sprintf("  %c = %g", prefix.Symbol, prefix.Scale))
	}
	return lines
}

// conversionLines renders the "conv" listing: every table entry with
// its factor expression, aligned on the longest unit names, plus the
// dialog-only muB/fu row and the constant values the expressions
// refer to.
func conversionLines() []string {
	conversions := magunit.Conversions()

	startWidth, endWidth := len(momentPerFU), 0
	for _, conversion := range conversions {
		startWidth = max(startWidth, len(conversion.Start))
		endWidth = max(endWidth, len(conversion.End))
	}

	lines := make([]string, 0, len(conversions)+4)
	for _, conversion := range conversions {
		lines = append(lines, fmt.Sprintf("  %-*s <-> %-*s : %s",
			startWidth, conversion.Start, endWidth, conversion.End, conversion.Expression))
	}
	lines = append(lines,
		fmt.Sprintf("  %-*s <-> %-*s : requires lattice input (a, b, c, γ, f.u.)",
			startWidth, momentPerFU, endWidth, "T"),
		"",
		fmt.Sprintf("  MU_0 = %s Vs/Am", magunit.FormatNumber(magunit.MuZero)),
		fmt.Sprintf("  MU_B = %s Am^2", magunit.FormatNumber(magunit.MuBohr)),
	)
	return lines
}

// materialLines renders the "mat" listing of catalogue presets.
func materialLines(catalogue *material.Catalogue) []string {
	all := catalogue.All()

	nameWidth := 0
	for _, m := range all {
		nameWidth = max(nameWidth, len(m.Name))
	}

	lines := make([]string, 0, len(all))
	for _, m := range all {
		if m.Gamma == 120 {
			lines = append(lines, fmt.Sprintf("  %-*s a=%g c=%g γ=%g f.u.=%d",
				nameWidth, m.Name, m.A, m.C, m.Gamma, m.FormulaUnits))
			continue
		}
		lines = append(lines, fmt.Sprintf("  %-*s a=%g b=%g c=%g γ=%g f.u.=%d",
			nameWidth, m.Name, m.A, m.B, m.C, m.Gamma, m.FormulaUnits))
	}
	return lines
}

// helpLines renders the "help" listing.
func helpLines() []string {
	return []string{
		"  <value> <start> <end>   convert, e.g. \"5 T G\" or \"1.2 kA/m Oe\"",
		"  <value> muB/fu T        moment → polarization (guided cell dialog)",
		"  <value> T muB/fu        polarization → moment (guided cell dialog)",
		"  units                   list base units and prefixes",
		"  conv                    list the conversion table",
		"  mat                     list material presets",
		"  q                       quit",
	}
}
