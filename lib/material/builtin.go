// Copyright 2026 The Convmag Authors
// SPDX-License-Identifier: Apache-2.0

package material

// builtinMaterials is the shipped catalogue. Lattice parameters are
// room-temperature literature values (Coey, Magnetism and Magnetic
// Materials; Herbst, Rev. Mod. Phys. 63, 819 for Nd2Fe14B). The 2:17
// phase is listed in its rhombohedral setting indexed on hexagonal
// axes, hence three formula units per cell.
var builtinMaterials = []Material{
	{Name: "Fe", A: 2.866, B: 2.866, C: 2.866, Gamma: 90, FormulaUnits: 2},
	{Name: "Co", A: 2.507, C: 4.069, Gamma: 120, FormulaUnits: 2},
	{Name: "Ni", A: 3.524, B: 3.524, C: 3.524, Gamma: 90, FormulaUnits: 4},
	{Name: "Nd2Fe14B", A: 8.80, B: 8.80, C: 12.19, Gamma: 90, FormulaUnits: 4},
	{Name: "SmCo5", A: 5.002, C: 3.964, Gamma: 120, FormulaUnits: 1},
	{Name: "Sm2Co17", A: 8.395, C: 12.216, Gamma: 120, FormulaUnits: 3},
	{Name: "BaFe12O19", A: 5.893, C: 23.194, Gamma: 120, FormulaUnits: 2},
	{Name: "Fe3O4", A: 8.396, B: 8.396, C: 8.396, Gamma: 90, FormulaUnits: 8},
	{Name: "Y3Fe5O12", A: 12.376, B: 12.376, C: 12.376, Gamma: 90, FormulaUnits: 8},
}

// Builtin returns a catalogue holding the shipped materials.
func Builtin() *Catalogue {
	return NewCatalogue(builtinMaterials...)
}
