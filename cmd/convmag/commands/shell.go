// Copyright 2026 The Convmag Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/magtools/convmag/cmd/convmag/cli"
	"github.com/magtools/convmag/lib/config"
	"github.com/magtools/convmag/lib/material"
	"github.com/magtools/convmag/lib/shellui"
)

// runRoot is the no-subcommand entry point: the interactive shell on
// a terminal, batch conversion of stdin lines otherwise. verbose
// lowers the stderr log level to debug.
func runRoot(configPath string, verbose bool) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := cli.NewCommandLogger(level).With("command", "shell")

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		logger.Debug("stdin is not a terminal, converting in batch mode")
		return RunBatch(os.Stdin, os.Stdout, os.Stderr)
	}

	catalogue := material.Builtin()
	for _, path := range cfg.MaterialFiles {
		materials, err := material.ReadFile(path)
		if err != nil {
			return err
		}
		catalogue.Add(materials...)
	}

	logger.Debug("starting interactive shell",
		"color", string(cfg.Color),
		"materials", len(catalogue.All()))

	model := shellui.New(shellui.Options{
		Color:           cfg.Color,
		Catalogue:       catalogue,
		TranscriptLimit: cfg.TranscriptLimit,
	})
	_, err = tea.NewProgram(model).Run()
	return err
}

// loadConfig resolves the configuration from the --config flag or the
// CONVMAG_CONFIG environment variable.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load()
}
