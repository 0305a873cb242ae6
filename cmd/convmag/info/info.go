// Copyright 2026 The Convmag Authors
// SPDX-License-Identifier: Apache-2.0

// Package info implements the "convmag units" and "convmag conversions"
// listing commands.
package info

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/magtools/convmag/cmd/convmag/cli"
	"github.com/magtools/convmag/lib/magunit"
)

// prefixInfo is the JSON shape of one metric prefix.
type prefixInfo struct {
	Symbol string  `json:"symbol"`
	Scale  float64 `json:"scale"`
}

// unitListing is the JSON shape of the units command output.
type unitListing struct {
	Units    []string     `json:"units"`
	Prefixes []prefixInfo `json:"prefixes"`
}

// UnitsCommand returns the units listing command.
func UnitsCommand() *cli.Command {
	var params struct {
		cli.JSONOutput
	}

	return &cli.Command{
		Name:    "units",
		Summary: "List base units and metric prefixes",
		Description: `List every base unit the conversion table knows, and the metric
prefixes that may precede any of them in a unit string.`,
		Usage: "convmag units [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("units", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			listing := unitListing{Units: magunit.Units()}
			for _, prefix := range magunit.Prefixes() {
				listing.Prefixes = append(listing.Prefixes, prefixInfo{
					Symbol: string(prefix.Symbol),
					Scale:  prefix.Scale,
				})
			}

			if done, err := params.EmitJSON(listing); done {
				return err
			}

			fmt.Println("Base units:")
			for _, unit := range listing.Units {
				fmt.Printf("  %s\n", unit)
			}
			fmt.Println("\nPrefixes:")
			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			for _, prefix := range listing.Prefixes {
				fmt.Fprintf(tw, "  %s\t%g\n", prefix.Symbol, prefix.Scale)
			}
			return tw.Flush()
		},
	}
}

// conversionInfo is the JSON shape of one conversion table entry.
type conversionInfo struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	Factor     float64 `json:"factor"`
	Expression string  `json:"expression"`
}

// ConversionsCommand returns the conversion-table listing command.
func ConversionsCommand() *cli.Command {
	var params struct {
		cli.JSONOutput
	}

	return &cli.Command{
		Name:    "conversions",
		Summary: "List the conversion table",
		Description: `List every directed conversion the table stores, with its factor both
as the symbolic expression (in terms of MU_0 and MU_B) and as the
evaluated number. The reverse of each pair is derived by inversion at
conversion time and is deliberately not listed.`,
		Usage: "convmag conversions [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("conversions", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			entries := make([]conversionInfo, 0, len(magunit.Conversions()))
			for _, conversion := range magunit.Conversions() {
				entries = append(entries, conversionInfo{
					From:       conversion.Start,
					To:         conversion.End,
					Factor:     conversion.Factor,
					Expression: conversion.Expression,
				})
			}

			if done, err := params.EmitJSON(entries); done {
				return err
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintf(tw, "FROM\tTO\tEXPRESSION\tFACTOR\n")
			for _, entry := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
					entry.From, entry.To, entry.Expression, magunit.FormatNumber(entry.Factor))
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t\n", "muB/fu", "T", "requires lattice input")
			if err := tw.Flush(); err != nil {
				return err
			}

			fmt.Printf("\nMU_0 = %s Vs/Am\nMU_B = %s Am^2\n",
				magunit.FormatNumber(magunit.MuZero), magunit.FormatNumber(magunit.MuBohr))
			return nil
		},
	}
}
