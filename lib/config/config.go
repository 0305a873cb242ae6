// Copyright 2026 The Convmag Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ColorMode controls styled terminal output.
type ColorMode string

const (
	// ColorAuto enables color when stdout is a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways forces color even when piped.
	ColorAlways ColorMode = "always"
	// ColorNever disables color entirely.
	ColorNever ColorMode = "never"
)

// Config holds the presentation and shell settings for convmag.
type Config struct {
	// Color controls styled output (auto, always, never).
	Color ColorMode `yaml:"color"`

	// MaterialFiles are extra JSONC material catalogues merged over
	// the built-in one, in order; later files shadow earlier names.
	MaterialFiles []string `yaml:"material_files"`

	// TranscriptLimit bounds how many prior exchanges the shell
	// keeps on screen. Zero means the default.
	TranscriptLimit int `yaml:"transcript_limit"`
}

// defaultTranscriptLimit is how many shell exchanges are retained
// when the config does not say otherwise.
const defaultTranscriptLimit = 500

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Color:           ColorAuto,
		TranscriptLimit: defaultTranscriptLimit,
	}
}

// Load loads configuration from the file named by the CONVMAG_CONFIG
// environment variable. An unset variable is not an error: convmag is
// fully usable without a config file, so defaults are returned.
func Load() (*Config, error) {
	path := os.Getenv("CONVMAG_CONFIG")
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from an explicit path. The file is the
// single source of truth; environment variables do not override its
// values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration, reporting every problem at once.
func (c *Config) Validate() error {
	var errs []error

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, fmt.Errorf("color must be one of auto, always, never; got %q", c.Color))
	}

	if c.TranscriptLimit < 0 {
		errs = append(errs, fmt.Errorf("transcript_limit must not be negative, got %d", c.TranscriptLimit))
	}

	for _, path := range c.MaterialFiles {
		if path == "" {
			errs = append(errs, errors.New("material_files contains an empty path"))
		}
	}

	return errors.Join(errs...)
}
