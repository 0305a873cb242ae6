// Copyright 2026 The Convmag Authors
// SPDX-License-Identifier: Apache-2.0

// Package convert implements the one-shot "convmag convert" command.
package convert

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/magtools/convmag/cmd/convmag/cli"
	"github.com/magtools/convmag/lib/magunit"
)

// convertParams holds the parameters for the convert command.
type convertParams struct {
	cli.JSONOutput
	Bare bool `json:"-" flag:"bare" desc:"print result numbers only, one per line"`
}

// result is the JSON shape of one converted value.
type result struct {
	Value   float64 `json:"value"`
	From    string  `json:"from"`
	To      string  `json:"to"`
	Result  float64 `json:"result"`
	Display string  `json:"display"`
}

// Command returns the convert command.
func Command() *cli.Command {
	var params convertParams

	return &cli.Command{
		Name:    "convert",
		Summary: "Convert values between magnetic units",
		Description: `Convert one or more numeric values from one magnetic unit to another.

All arguments before the final two are values; the last two are the
start and end unit. Units may carry a single metric prefix (M, k, m,
µ), e.g. "kA/m" or "mT". Passing several values converts them as one
batch with a single table lookup.`,
		Usage: "convmag convert <value>... <start-unit> <end-unit> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("convert", &params)
		},
		Examples: []cli.Example{
			{
				Description: "Convert 5 Tesla to Gauss",
				Command:     "convmag convert 5 T G",
			},
			{
				Description: "Convert a batch of field values at once",
				Command:     "convmag convert 1 2 10 T G",
			},
			{
				Description: "Prefixed units, result as a bare number",
				Command:     "convmag convert --bare 1.2 kA/m Oe",
			},
		},
		Run: func(args []string) error {
			values, startUnit, endUnit, err := parseArgs(args)
			if err != nil {
				return err
			}

			converted, err := magunit.ConvertSlice(values, startUnit, endUnit)
			if err != nil {
				return err
			}

			results := make([]result, len(values))
			for i, value := range values {
				results[i] = result{
					Value:   value,
					From:    startUnit,
					To:      endUnit,
					Result:  converted[i],
					Display: magunit.Describe(value, startUnit, endUnit, converted[i]),
				}
			}

			if done, err := params.EmitJSON(results); done {
				return err
			}

			for _, r := range results {
				if params.Bare {
					fmt.Println(magunit.FormatNumber(r.Result))
					continue
				}
				fmt.Println(r.Display)
			}
			return nil
		},
	}
}

// parseArgs splits the positional arguments into values and the two
// unit names.
func parseArgs(args []string) (values []float64, startUnit, endUnit string, err error) {
	if len(args) < 3 {
		return nil, "", "", fmt.Errorf("expected <value>... <start-unit> <end-unit>, got %d argument(s)", len(args))
	}

	startUnit = args[len(args)-2]
	endUnit = args[len(args)-1]

	values = make([]float64, len(args)-2)
	for i, arg := range args[:len(args)-2] {
		values[i], err = strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, "", "", fmt.Errorf("not a number: %q", arg)
		}
	}
	return values, startUnit, endUnit, nil
}
