// Copyright 2026 The Convmag Authors
// SPDX-License-Identifier: Apache-2.0

package magunit

import "unicode/utf8"

// Resolve splits a raw unit string into its base unit and prefix
// scale. A string that is itself a base unit resolves unscaled
// (scale 1); otherwise the first rune must be a known prefix and the
// remainder a base unit. Anything else fails with
// *UnrecognizedUnitError.
//
// Full-string membership is checked before prefix stripping, so a
// base unit whose first character happens to be a prefix (and any
// future single-character base unit) is never mis-split.
func Resolve(raw string) (base string, scale float64, err error) {
	if IsBaseUnit(raw) {
		return raw, 1, nil
	}

	first, size := utf8.DecodeRuneInString(raw)
	if first != utf8.RuneError {
		if prefix, ok := prefixScale(first); ok && IsBaseUnit(raw[size:]) {
			return raw[size:], prefix, nil
		}
	}

	return "", 1, &UnrecognizedUnitError{Unit: raw}
}
