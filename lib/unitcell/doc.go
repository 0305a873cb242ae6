// Copyright 2026 The Convmag Authors
// SPDX-License-Identifier: Apache-2.0

// Package unitcell computes crystal unit-cell volumes and links a
// material's magnetic moment per formula unit to its magnetic
// polarization.
//
// A [Cell] holds lattice parameters in Ångström and supports the two
// geometries that cover the common magnetic crystal systems:
// orthogonal cells (γ=90°, volume a·b·c) and hexagonal cells (γ=120°,
// volume 0.866·a²·c). Any other angle fails with
// [UnsupportedGeometryError] — there is deliberately no general
// triclinic formula here.
//
// [MomentToPolarization] and [PolarizationToMoment] are exact
// algebraic inverses connecting a moment in Bohr magnetons per
// formula unit to a polarization in Tesla, given the formula-unit
// count and cell volume in m³. They share the physical constants
// with lib/magunit so the two packages can never disagree on µ₀
// or µ_B.
package unitcell
