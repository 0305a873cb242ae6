// Copyright 2026 The Convmag Authors
// SPDX-License-Identifier: Apache-2.0

package cell

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/magtools/convmag/cmd/convmag/cli"
	"github.com/magtools/convmag/lib/magunit"
	"github.com/magtools/convmag/lib/unitcell"
)

// momentResult is the JSON shape of the moment and polarization
// command outputs.
type momentResult struct {
	Value        float64 `json:"value"`
	From         string  `json:"from"`
	To           string  `json:"to"`
	Result       float64 `json:"result"`
	VolumeA3     float64 `json:"volume_a3"`
	FormulaUnits int     `json:"fu"`
}

func momentCommand() *cli.Command {
	var params struct {
		cli.JSONOutput
		sourceParams
	}

	return &cli.Command{
		Name:    "moment",
		Summary: "Convert polarization (T) to moment (muB per formula unit)",
		Description: `Convert a magnetic polarization in Tesla to the magnetic moment in
Bohr magnetons per formula unit, using the unit-cell volume and the
formula-unit count.`,
		Usage: "convmag cell moment <tesla> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("moment", &params)
		},
		Examples: []cli.Example{
			{
				Description: "Moment of Nd2Fe14B at its saturation polarization",
				Command:     "convmag cell moment 1.61 --material Nd2Fe14B",
			},
			{
				Description: "Explicit hexagonal lattice data",
				Command:     "convmag cell moment 1.07 --a 5.002 --c 3.964 --gamma 120 --fu 1",
			},
		},
		Run: func(args []string) error {
			value, err := parseValue("moment", args)
			if err != nil {
				return err
			}
			return runMomentPolarization(&params.JSONOutput, &params.sourceParams, value, false)
		},
	}
}

func polarizationCommand() *cli.Command {
	var params struct {
		cli.JSONOutput
		sourceParams
	}

	return &cli.Command{
		Name:    "polarization",
		Summary: "Convert moment (muB per formula unit) to polarization (T)",
		Description: `Convert a magnetic moment in Bohr magnetons per formula unit to the
magnetic polarization in Tesla, using the unit-cell volume and the
formula-unit count.`,
		Usage: "convmag cell polarization <muB-per-fu> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("polarization", &params)
		},
		Examples: []cli.Example{
			{
				Description: "Polarization of SmCo5 at 7.8 muB per formula unit",
				Command:     "convmag cell polarization 7.8 --material SmCo5",
			},
		},
		Run: func(args []string) error {
			value, err := parseValue("polarization", args)
			if err != nil {
				return err
			}
			return runMomentPolarization(&params.JSONOutput, &params.sourceParams, value, true)
		},
	}
}

// runMomentPolarization is the shared body of the moment and
// polarization subcommands; momentToTesla selects the direction.
func runMomentPolarization(jsonOutput *cli.JSONOutput, source *sourceParams, value float64, momentToTesla bool) error {
	cell, numFU, err := source.resolve()
	if err != nil {
		return err
	}
	volumeA3, err := cell.Volume()
	if err != nil {
		return err
	}
	volumeM3, err := cell.VolumeCubicMeters()
	if err != nil {
		return err
	}

	result := momentResult{Value: value, VolumeA3: volumeA3, FormulaUnits: numFU}
	if momentToTesla {
		result.From, result.To = "muB/fu", "T"
		result.Result, err = unitcell.MomentToPolarization(value, numFU, volumeM3)
	} else {
		result.From, result.To = "T", "muB/fu"
		result.Result, err = unitcell.PolarizationToMoment(value, numFU, volumeM3)
	}
	if err != nil {
		return err
	}

	if done, err := jsonOutput.EmitJSON(result); done {
		return err
	}

	fmt.Printf("%s %s = %s %s (cell volume %s Å^3, %d f.u.)\n",
		magunit.FormatNumber(result.Value), result.From,
		magunit.FormatResult(result.Result), result.To,
		magunit.FormatResult(volumeA3), numFU)
	return nil
}
