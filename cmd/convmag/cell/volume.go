// Copyright 2026 The Convmag Authors
// SPDX-License-Identifier: Apache-2.0

package cell

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/magtools/convmag/cmd/convmag/cli"
	"github.com/magtools/convmag/lib/magunit"
)

// volumeResult is the JSON shape of the volume command output.
type volumeResult struct {
	geometryParams
	VolumeA3 float64 `json:"volume_a3"`
	VolumeM3 float64 `json:"volume_m3"`
}

func volumeCommand() *cli.Command {
	var params struct {
		cli.JSONOutput
		geometryParams
	}

	return &cli.Command{
		Name:    "volume",
		Summary: "Compute a unit-cell volume",
		Description: `Compute the unit-cell volume from lattice parameters: a·b·c for
orthogonal cells (γ=90), 0.866·a²·c for hexagonal cells (γ=120).`,
		Usage: "convmag cell volume --a <Å> [--b <Å>] --c <Å> [--gamma 90|120] [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("volume", &params)
		},
		Examples: []cli.Example{
			{
				Description: "Cubic cell, 5 Å on each side",
				Command:     "convmag cell volume --a 5 --b 5 --c 5",
			},
			{
				Description: "Hexagonal cell",
				Command:     "convmag cell volume --a 4 --c 6 --gamma 120",
			},
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			cell := params.cell()
			volumeA3, err := cell.Volume()
			if err != nil {
				return err
			}
			volumeM3, err := cell.VolumeCubicMeters()
			if err != nil {
				return err
			}

			result := volumeResult{
				geometryParams: params.geometryParams,
				VolumeA3:       volumeA3,
				VolumeM3:       volumeM3,
			}
			if done, err := params.EmitJSON(result); done {
				return err
			}

			fmt.Printf("volume: %s Å^3 = %s m^3\n",
				magunit.FormatResult(volumeA3), magunit.FormatResult(volumeM3))
			return nil
		},
	}
}
