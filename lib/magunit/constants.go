// Copyright 2026 The Convmag Authors
// SPDX-License-Identifier: Apache-2.0

package magunit

// Physical constants used as conversion factors. MuZero keeps the
// truncated-π literal (4 × 3.14159 × 1e-7) rather than math.Pi so
// that factors involving the permeability of free space reproduce the
// reference values exactly; switching to full π would shift every
// MU_0-derived conversion in the 7th significant digit.
const (
	// MuZero is the permeability of free space in V·s/(A·m).
	MuZero = 4 * 3.14159 * 1e-7

	// MuBohr is the Bohr magneton in A·m². Source: Coey, Magnetism
	// and Magnetic Materials, p617.
	MuBohr = 9.274015e-24
)
