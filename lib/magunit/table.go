// Copyright 2026 The Convmag Authors
// SPDX-License-Identifier: Apache-2.0

package magunit

import "sort"

// Conversion is one directed entry of the conversion table: multiply
// a value in Start units by Factor to obtain the value in End units.
type Conversion struct {
	// Start is the source base unit.
	Start string
	// End is the destination base unit.
	End string
	// Factor is the precomputed numeric conversion factor.
	Factor float64
	// Expression is the human-readable form of the factor, with the
	// physical constants spelled MU_0 and MU_B. Table listings show
	// this instead of the evaluated number so the provenance of each
	// factor stays visible.
	Expression string
}

// conversionTable holds the directed conversion factors between base
// units. Only one direction is stored per pair; the reverse is derived
// by inversion at lookup time. The factor values follow Coey,
// Magnetism and Magnetic Materials (conversion tables, p618); note
// that A/m→Oe is 1e4·MU_0 and erg/cm^3→GOe is 1e7·MU_0 — earlier
// published versions of this table carried both off by a factor of 10.
var conversionTable = []Conversion{
	// Field and induction.
	{Start: "T", End: "G", Factor: 1e4, Expression: "1e4"},
	{Start: "T", End: "Oe", Factor: 1e4, Expression: "1e4"},
	{Start: "A/m", End: "T", Factor: MuZero, Expression: "MU_0"},
	{Start: "A/m", End: "G", Factor: 1e4 * MuZero, Expression: "1e4 * MU_0"},
	{Start: "G", End: "Oe", Factor: 1, Expression: "1"},
	{Start: "A/m", End: "Oe", Factor: 1e4 * MuZero, Expression: "1e4 * MU_0"},

	// Magnetization and polarization.
	{Start: "emu/cm^3", End: "T", Factor: 1e3 * MuZero, Expression: "1e3 * MU_0"},
	{Start: "erg/Oecm^3", End: "A/m", Factor: 1e3, Expression: "1e3"},

	// Specific magnetization.
	{Start: "emu/g", End: "Am^2/kg", Factor: 1, Expression: "1"},

	// Energy products.
	{Start: "J/m^3", End: "GOe", Factor: 1e8 * MuZero, Expression: "1e8 * MU_0"},
	{Start: "J/m^3", End: "erg/cm^3", Factor: 1e1, Expression: "1e1"},
	{Start: "erg/cm^3", End: "GOe", Factor: 1e7 * MuZero, Expression: "1e7 * MU_0"},

	// Moments.
	{Start: "Am^2", End: "emu", Factor: 1e3, Expression: "1e3"},
	{Start: "Am^2", End: "erg/G", Factor: 1e3, Expression: "1e3"},
	{Start: "Am^2", End: "erg/Oe", Factor: 1e3, Expression: "1e3"},
	{Start: "emu", End: "erg/G", Factor: 1, Expression: "1"},
	{Start: "muB", End: "Am^2", Factor: MuBohr, Expression: "MU_B"},
	{Start: "muB", End: "emu", Factor: 1e3 * MuBohr, Expression: "1e3 * MU_B"},
}

// unitPair is the lookup key for a directed conversion.
type unitPair struct {
	start, end string
}

// Lookup structures built once from conversionTable. baseUnits is
// exactly the set of distinct endpoints appearing in the table — a
// string is a valid base unit iff it occurs as a Start or End.
var (
	directedFactors map[unitPair]float64
	baseUnits       map[string]bool
)

func init() {
	directedFactors = make(map[unitPair]float64, len(conversionTable))
	baseUnits = make(map[string]bool)
	for _, conversion := range conversionTable {
		directedFactors[unitPair{conversion.Start, conversion.End}] = conversion.Factor
		baseUnits[conversion.Start] = true
		baseUnits[conversion.End] = true
	}
}

// Units returns the sorted set of valid base unit names.
func Units() []string {
	units := make([]string, 0, len(baseUnits))
	for unit := range baseUnits {
		units = append(units, unit)
	}
	sort.Strings(units)
	return units
}

// Conversions returns the directed conversion table in its canonical
// order. The returned slice is a copy; mutating it does not affect
// the table.
func Conversions() []Conversion {
	table := make([]Conversion, len(conversionTable))
	copy(table, conversionTable)
	return table
}

// IsBaseUnit reports whether name is a valid base unit (no prefix).
func IsBaseUnit(name string) bool {
	return baseUnits[name]
}
