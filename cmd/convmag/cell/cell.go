// Copyright 2026 The Convmag Authors
// SPDX-License-Identifier: Apache-2.0

// Package cell implements the "convmag cell" command group: unit-cell
// volume and the moment↔polarization conversions that need lattice
// data.
package cell

import (
	"fmt"
	"strconv"

	"github.com/magtools/convmag/cmd/convmag/cli"
	"github.com/magtools/convmag/lib/config"
	"github.com/magtools/convmag/lib/material"
	"github.com/magtools/convmag/lib/unitcell"
)

// geometryParams are the lattice flags shared by every cell subcommand.
type geometryParams struct {
	A     float64 `json:"a"     flag:"a"     desc:"lattice parameter a in Å"`
	B     float64 `json:"b"     flag:"b"     desc:"lattice parameter b in Å (ignored for γ=120)"`
	C     float64 `json:"c"     flag:"c"     desc:"lattice parameter c in Å"`
	Gamma float64 `json:"gamma" flag:"gamma" desc:"cell angle in degrees (90 or 120)" default:"90"`
}

func (g *geometryParams) cell() unitcell.Cell {
	return unitcell.Cell{A: g.A, B: g.B, C: g.C, Gamma: g.Gamma}
}

// sourceParams select where lattice data comes from: explicit flags,
// a material preset, or extra catalogue files.
type sourceParams struct {
	geometryParams
	Material      string   `json:"material" flag:"material" desc:"material preset (replaces a/b/c/gamma/fu)"`
	FormulaUnits  int      `json:"fu"       flag:"fu"       desc:"formula units per cell" default:"1"`
	MaterialFiles []string `json:"-"        flag:"materials-file" desc:"extra JSONC material catalogue(s)"`
}

// resolve returns the unit cell and formula-unit count, either from
// the material preset or from the explicit geometry flags.
func (p *sourceParams) resolve() (unitcell.Cell, int, error) {
	if p.Material == "" {
		return p.cell(), p.FormulaUnits, nil
	}
	catalogue, err := loadCatalogue(p.MaterialFiles)
	if err != nil {
		return unitcell.Cell{}, 0, err
	}
	preset, err := catalogue.Lookup(p.Material)
	if err != nil {
		return unitcell.Cell{}, 0, err
	}
	return preset.Cell(), preset.FormulaUnits, nil
}

// loadCatalogue builds the material catalogue: built-ins, then the
// files named in the config, then any files given on the command
// line, later sources shadowing earlier names.
func loadCatalogue(extraFiles []string) (*material.Catalogue, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	catalogue := material.Builtin()
	for _, path := range append(append([]string{}, cfg.MaterialFiles...), extraFiles...) {
		materials, err := material.ReadFile(path)
		if err != nil {
			return nil, err
		}
		catalogue.Add(materials...)
	}
	return catalogue, nil
}

// parseValue extracts the single numeric argument of the moment and
// polarization subcommands.
func parseValue(name string, args []string) (float64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected exactly one value, e.g. \"convmag cell %s 1.61\"", name)
	}
	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", args[0])
	}
	return value, nil
}

// Command returns the cell command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "cell",
		Summary: "Unit-cell volume and moment/polarization conversions",
		Description: `Work with crystal unit cells: compute cell volumes and convert
between magnetic moment (in Bohr magnetons per formula unit) and
magnetic polarization (in Tesla), which requires lattice data that
the plain conversion table cannot supply.

Lattice data comes from --a/--b/--c/--gamma/--fu flags or from a
named --material preset (see "convmag cell materials").`,
		Usage: "convmag cell <command> [flags]",
		Subcommands: []*cli.Command{
			volumeCommand(),
			momentCommand(),
			polarizationCommand(),
			materialsCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Volume of a hexagonal cell",
				Command:     "convmag cell volume --a 4 --c 6 --gamma 120",
			},
			{
				Description: "Moment per formula unit for Nd2Fe14B at 1.61 T",
				Command:     "convmag cell moment 1.61 --material Nd2Fe14B",
			},
			{
				Description: "Polarization of a 2.2 muB/f.u. material with explicit lattice data",
				Command:     "convmag cell polarization 2.2 --a 8.8 --b 8.8 --c 12.19 --fu 4",
			},
		},
	}
}
