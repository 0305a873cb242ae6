// Copyright 2026 The Convmag Authors
// SPDX-License-Identifier: Apache-2.0

package magunit

// Prefix is a single-character metric multiplier that may precede any
// base unit in a unit string (for example "kA/m" or "mT").
type Prefix struct {
	// Symbol is the prefix character. The micro sign µ is a
	// multi-byte rune, so prefix handling is rune-based throughout.
	Symbol rune
	// Scale is the multiplicative factor the prefix applies.
	Scale float64
}

// prefixTable lists the recognized prefixes in display order.
var prefixTable = []Prefix{
	{Symbol: 'M', Scale: 1e6},
	{Symbol: 'k', Scale: 1e3},
	{Symbol: 'm', Scale: 1e-3},
	{Symbol: 'µ', Scale: 1e-6},
}

// Prefixes returns the recognized metric prefixes in display order.
// The returned slice is a copy.
func Prefixes() []Prefix {
	table := make([]Prefix, len(prefixTable))
	copy(table, prefixTable)
	return table
}

// prefixScale returns the scale factor for symbol, or (0, false) if
// symbol is not a recognized prefix.
func prefixScale(symbol rune) (float64, bool) {
	for _, prefix := range prefixTable {
		if prefix.Symbol == symbol {
			return prefix.Scale, true
		}
	}
	return 0, false
}
