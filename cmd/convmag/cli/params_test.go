// Copyright 2026 The Convmag Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestBindFlags_BasicTypes(t *testing.T) {
	type params struct {
		Material string   `flag:"material" desc:"material preset"`
		Gamma    float64  `flag:"gamma" desc:"cell angle" default:"90"`
		FU       int      `flag:"fu" desc:"formula units" default:"1"`
		Bare     bool     `flag:"bare" desc:"number only"`
		Files    []string `flag:"materials-file" desc:"extra catalogues"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	err := flagSet.Parse([]string{
		"--material", "SmCo5",
		"--fu", "4",
		"--bare",
		"--materials-file", "a.jsonc,b.jsonc",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Material != "SmCo5" {
		t.Errorf("Material = %q, want SmCo5", p.Material)
	}
	if p.Gamma != 90 {
		t.Errorf("Gamma = %v, want the default 90", p.Gamma)
	}
	if p.FU != 4 {
		t.Errorf("FU = %d, want 4", p.FU)
	}
	if !p.Bare {
		t.Error("Bare should be set")
	}
	if len(p.Files) != 2 || p.Files[0] != "a.jsonc" {
		t.Errorf("Files = %v", p.Files)
	}
}

func TestBindFlags_Shorthand(t *testing.T) {
	type params struct {
		Gamma float64 `flag:"gamma,g" desc:"cell angle" default:"90"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	if err := flagSet.Parse([]string{"-g", "120"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Gamma != 120 {
		t.Errorf("Gamma = %v, want 120", p.Gamma)
	}
}

func TestBindFlags_EmbeddedJSONOutput(t *testing.T) {
	type params struct {
		JSONOutput
		Material string `flag:"material" desc:"material preset"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	if err := flagSet.Parse([]string{"--json", "--material", "Fe"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !p.OutputJSON {
		t.Error("embedded --json flag should be bound")
	}
	if p.Material != "Fe" {
		t.Errorf("Material = %q, want Fe", p.Material)
	}
}

func TestBindFlags_FlagBinder(t *testing.T) {
	var p struct {
		Custom customBinder
	}

	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	if err := flagSet.Parse([]string{"--custom-value", "hello"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Custom.Value != "hello" {
		t.Errorf("Custom.Value = %q, want hello", p.Custom.Value)
	}
}

type customBinder struct {
	Value string
}

func (b *customBinder) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&b.Value, "custom-value", "", "custom flag")
}

func TestBindFlags_RejectsNonPointer(t *testing.T) {
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(struct{}{}, flagSet); err == nil {
		t.Error("expected error for non-pointer params")
	}
}

func TestBindFlags_RejectsUnsupportedType(t *testing.T) {
	type params struct {
		Bad map[string]string `flag:"bad"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	err := BindFlags(&p, flagSet)
	if err == nil {
		t.Fatal("expected error for unsupported field type")
	}
	if !strings.Contains(err.Error(), "unsupported type") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestBindFlags_BadDefault(t *testing.T) {
	type params struct {
		FU int `flag:"fu" default:"four"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err == nil {
		t.Error("expected error for unparseable default")
	}
}
