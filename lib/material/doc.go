// Copyright 2026 The Convmag Authors
// SPDX-License-Identifier: Apache-2.0

// Package material provides a catalogue of magnetic materials with
// their lattice parameters and formula-unit counts, so the
// moment↔polarization conversion path can be driven by a material
// name instead of hand-typed cell dimensions.
//
// A built-in catalogue covers the common permanent magnets, ferrites,
// and elemental ferromagnets. Users extend it with their own JSONC
// files (JSON plus // comments and trailing commas — the comments are
// where literature sources for the lattice data belong):
//
//	[
//	  // Herbst, Rev. Mod. Phys. 63, 819 (1991)
//	  {"name": "Nd2Fe14B", "a": 8.80, "b": 8.80, "c": 12.19,
//	   "gamma": 90, "formula_units": 4},
//	]
//
// [Catalogue.Lookup] matches names case-insensitively and suggests
// the closest catalogue entry on a miss, so "ndfeb" points the user
// at "Nd2Fe14B" instead of a bare not-found.
package material
