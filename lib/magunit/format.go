// Copyright 2026 The Convmag Authors
// SPDX-License-Identifier: Apache-2.0

package magunit

import (
	"fmt"
	"math"
	"strconv"
)

// Display thresholds: results whose magnitude falls inside this range
// read naturally in fixed-point; outside it scientific notation keeps
// the significant digits visible.
const (
	fixedPointMin = 1e-3
	fixedPointMax = 1e3
)

// FormatResult renders a converted value for display: fixed-point
// with 5 decimals when 1e-3 ≤ |value| ≤ 1e3, otherwise scientific
// notation with a 5-decimal mantissa. Zero has magnitude below the
// fixed-point floor and therefore renders as 0.00000e+00.
func FormatResult(value float64) string {
	magnitude := math.Abs(value)
	if magnitude >= fixedPointMin && magnitude <= fixedPointMax {
		return fmt.Sprintf("%.5f", value)
	}
	return fmt.Sprintf("%.5e", value)
}

// Describe renders the full conversion line shown to users, for
// example "6 T = 6.00000e+04 G". The input value echoes back in its
// shortest form; the result goes through [FormatResult].
func Describe(value float64, startUnit, endUnit string, result float64) string {
	return fmt.Sprintf("%s %s = %s %s",
		FormatNumber(value), startUnit, FormatResult(result), endUnit)
}

// FormatNumber renders a number the way a user would have typed it:
// the shortest decimal representation that round-trips (6, 0.5,
// 1.25e-07).
func FormatNumber(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}
