// Copyright 2026 The Convmag Authors
// SPDX-License-Identifier: Apache-2.0

package cell

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/magtools/convmag/cmd/convmag/cli"
)

func materialsCommand() *cli.Command {
	var params struct {
		cli.JSONOutput
		MaterialFiles []string `json:"-" flag:"materials-file" desc:"extra JSONC material catalogue(s)"`
	}

	return &cli.Command{
		Name:    "materials",
		Summary: "List material presets",
		Description: `List the material presets usable with --material: the built-in
catalogue plus any files from the config and --materials-file flags.`,
		Usage: "convmag cell materials [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("materials", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			catalogue, err := loadCatalogue(params.MaterialFiles)
			if err != nil {
				return err
			}
			all := catalogue.All()

			if done, err := params.EmitJSON(all); done {
				return err
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintf(tw, "MATERIAL\tA\tB\tC\tGAMMA\tF.U.\n")
			for _, m := range all {
				b := fmt.Sprintf("%g", m.B)
				if m.Gamma == 120 {
					b = "-"
				}
				fmt.Fprintf(tw, "%s\t%g\t%s\t%g\t%g\t%d\n",
					m.Name, m.A, b, m.C, m.Gamma, m.FormulaUnits)
			}
			return tw.Flush()
		},
	}
}
