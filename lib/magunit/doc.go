// Copyright 2026 The Convmag Authors
// SPDX-License-Identifier: Apache-2.0

// Package magunit converts numeric values between magnetic units in
// the SI and Gaussian/CGS systems, covering field strength (T, G, Oe,
// A/m), magnetization (emu/cm^3), specific magnetization (emu/g,
// Am^2/kg), energy products (J/m^3, GOe, erg/cm^3), and magnetic
// moments (Am^2, emu, erg/G, erg/Oe, muB).
//
// The conversion table is a fixed, directed mapping from an ordered
// pair of base units to a scalar factor. Factors are precomputed
// numeric constants; the table deliberately stores only one direction
// per pair, and the engine derives the reverse by inversion at call
// time. Any base unit may carry a single metric prefix (M, k, m, µ),
// which scales the value linearly on either side of the conversion.
//
// [Convert] handles a single scalar, [ConvertSlice] applies the same
// conversion element-wise to a batch. Both return typed errors —
// [UnrecognizedUnitError] when a unit string matches neither a base
// unit nor a prefix+base form, [ConversionNotAvailableError] when two
// valid units belong to unrelated quantity families — and never panic,
// so callers can feed untrusted input straight through.
//
// [Units], [Conversions], and [Prefixes] expose the tables read-only
// for listings and introspection. [FormatResult] is the shared display
// rule for converted values (fixed-point inside 1e-3..1e3 magnitude,
// scientific outside), used by every CLI surface so output stays
// uniform.
//
// This package has no dependencies on other convmag packages.
package magunit
