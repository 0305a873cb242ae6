// Copyright 2026 The Convmag Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the convmag CLI.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a [pflag.FlagSet] factory, and a
// Run function. Commands are assembled into a tree in
// cmd/convmag/commands and dispatched via [Command.Execute], which
// handles flag parsing, subcommand routing, and structured help output
// with examples.
//
// When a user types an unknown subcommand or flag, the framework computes
// Levenshtein edit distance against all known names and suggests the
// closest match (threshold: distance <= 3). This is implemented in
// suggest.go.
//
// [FlagsFromParams] binds a command's flags to a tagged params struct,
// [JSONOutput] adds a --json mode to listing commands, and [ExitError]
// lets a command exit non-zero without an extra error line.
package cli
