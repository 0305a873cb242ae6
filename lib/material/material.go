// Copyright 2026 The Convmag Authors
// SPDX-License-Identifier: Apache-2.0

package material

import (
	"fmt"
	"sort"
	"strings"

	"github.com/magtools/convmag/lib/unitcell"
)

// Material is one catalogue entry: a named crystal with the lattice
// data the moment↔polarization formulas need.
type Material struct {
	// Name is the chemical formula the material is looked up by
	// (e.g. "Nd2Fe14B"). Matching is case-insensitive.
	Name string `json:"name"`

	// A, B, C are the lattice parameters in Ångström. B may be
	// omitted for hexagonal cells.
	A float64 `json:"a"`
	B float64 `json:"b,omitempty"`
	C float64 `json:"c"`

	// Gamma is the cell angle in degrees (90 or 120).
	Gamma float64 `json:"gamma"`

	// FormulaUnits is the number of formula units per unit cell.
	FormulaUnits int `json:"formula_units"`
}

// Cell returns the material's unit cell.
func (m Material) Cell() unitcell.Cell {
	return unitcell.Cell{A: m.A, B: m.B, C: m.C, Gamma: m.Gamma}
}

// Validate checks that the entry carries a usable name, cell, and
// formula-unit count.
func (m Material) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("material has no name")
	}
	if err := m.Cell().Validate(); err != nil {
		return fmt.Errorf("material %s: %w", m.Name, err)
	}
	if m.FormulaUnits <= 0 {
		return fmt.Errorf("material %s: formula_units must be positive, got %d", m.Name, m.FormulaUnits)
	}
	return nil
}

// Catalogue is a set of materials addressable by name. Later
// additions shadow earlier entries with the same name, so a user file
// can override a built-in.
type Catalogue struct {
	materials []Material
}

// NewCatalogue returns a catalogue over the given materials.
func NewCatalogue(materials ...Material) *Catalogue {
	c := &Catalogue{}
	c.Add(materials...)
	return c
}

// Add appends materials to the catalogue.
func (c *Catalogue) Add(materials ...Material) {
	c.materials = append(c.materials, materials...)
}

// All returns the catalogue entries sorted by name, later duplicates
// winning. The returned slice is a copy.
func (c *Catalogue) All() []Material {
	byName := make(map[string]Material, len(c.materials))
	for _, m := range c.materials {
		byName[strings.ToLower(m.Name)] = m
	}
	all := make([]Material, 0, len(byName))
	for _, m := range byName {
		all = append(all, m)
	}
	sort.Slice(all, func(i, j int) bool {
		return strings.ToLower(all[i].Name) < strings.ToLower(all[j].Name)
	})
	return all
}

// NotFoundError reports a material name with no catalogue entry,
// carrying the closest existing name when one is within typo range.
type NotFoundError struct {
	// Name is the name as supplied by the caller.
	Name string
	// Suggestion is the closest catalogue entry, or "" when nothing
	// is close enough to be worth suggesting.
	Suggestion string
}

func (e *NotFoundError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("material: unknown material %q (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("material: unknown material %q", e.Name)
}

// Lookup finds a material by name, case-insensitively. On a miss the
// returned *NotFoundError carries the closest known name.
func (c *Catalogue) Lookup(name string) (Material, error) {
	lowered := strings.ToLower(name)
	found := false
	var match Material
	// Last match wins, mirroring All()'s shadowing order.
	for _, m := range c.materials {
		if strings.ToLower(m.Name) == lowered {
			match = m
			found = true
		}
	}
	if found {
		return match, nil
	}
	return Material{}, &NotFoundError{Name: name, Suggestion: c.closest(lowered)}
}

// closest returns the catalogue name nearest to the (lowercased)
// input, or "" if nothing is within edit distance 3.
func (c *Catalogue) closest(lowered string) string {
	bestName := ""
	bestDistance := 4
	for _, m := range c.All() {
		distance := levenshtein(lowered, strings.ToLower(m.Name))
		if distance < bestDistance {
			bestDistance = distance
			bestName = m.Name
		}
	}
	return bestName
}

// levenshtein computes the edit distance between two strings using a
// single rolling row of the distance matrix.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	previous := make([]int, len(a)+1)
	for i := range previous {
		previous[i] = i
	}

	for j := 1; j <= len(b); j++ {
		current := make([]int, len(a)+1)
		current[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			deletion := previous[i] + 1
			insertion := current[i-1] + 1
			substitution := previous[i-1] + cost

			current[i] = min(deletion, min(insertion, substitution))
		}

		previous = current
	}

	return previous[len(a)]
}
