// Copyright 2026 The Convmag Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete convmag CLI command tree.
//
// Invoked without a subcommand, convmag runs the interactive shell
// when stdin is a terminal and stdin-driven batch conversion when it
// is piped; both live in this package and call into lib/shellui and
// lib/magunit respectively.
package commands

import (
	"fmt"

	"github.com/spf13/pflag"

	cellcmd "github.com/magtools/convmag/cmd/convmag/cell"
	"github.com/magtools/convmag/cmd/convmag/cli"
	convertcmd "github.com/magtools/convmag/cmd/convmag/convert"
	infocmd "github.com/magtools/convmag/cmd/convmag/info"
	"github.com/magtools/convmag/lib/version"
)

// rootParams holds the flags accepted when convmag runs without a
// subcommand.
type rootParams struct {
	Config  string `json:"-" flag:"config" desc:"path to a convmag.yaml config file (overrides CONVMAG_CONFIG)"`
	Verbose bool   `json:"-" flag:"verbose,v" desc:"log debug detail to stderr"`
}

// Root builds and returns the complete convmag CLI command tree.
func Root() *cli.Command {
	var params rootParams

	return &cli.Command{
		Name: "convmag",
		Description: `convmag: conversion between magnetic units.

Convert values between SI and Gaussian/CGS magnetic units, list the
conversion table, and relate magnetic moment to polarization via
unit-cell volume. Without a subcommand, convmag opens an interactive
shell (or converts stdin lines when piped).`,
		Usage: "convmag [<command>] [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("convmag", &params)
		},
		Subcommands: []*cli.Command{
			convertcmd.Command(),
			infocmd.UnitsCommand(),
			infocmd.ConversionsCommand(),
			cellcmd.Command(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("convmag %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Open the interactive shell",
				Command:     "convmag",
			},
			{
				Description: "Convert 5 Tesla to Gauss",
				Command:     "convmag convert 5 T G",
			},
			{
				Description: "Convert a batch of values",
				Command:     "convmag convert 1 2 10 T G",
			},
			{
				Description: "List the conversion table",
				Command:     "convmag conversions",
			},
			{
				Description: "Moment per formula unit for a material preset",
				Command:     "convmag cell moment 1.61 --material Nd2Fe14B",
			},
			{
				Description: "Convert stdin lines of \"<value> <start> <end>\"",
				Command:     "echo '5 T G' | convmag",
			},
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			return runRoot(params.Config, params.Verbose)
		},
	}
}
