// Copyright 2026 The Convmag Authors
// SPDX-License-Identifier: Apache-2.0

package cell

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseValue(t *testing.T) {
	value, err := parseValue("moment", []string{"1.61"})
	if err != nil {
		t.Fatalf("parseValue: %v", err)
	}
	if value != 1.61 {
		t.Errorf("value = %v, want 1.61", value)
	}

	if _, err := parseValue("moment", nil); err == nil {
		t.Error("expected error for missing value")
	}
	if _, err := parseValue("moment", []string{"1", "2"}); err == nil {
		t.Error("expected error for extra values")
	}
	if _, err := parseValue("moment", []string{"x"}); err == nil {
		t.Error("expected error for non-numeric value")
	}
}

func TestSourceParamsResolveExplicit(t *testing.T) {
	source := &sourceParams{
		geometryParams: geometryParams{A: 4, B: 5, C: 6, Gamma: 90},
		FormulaUnits:   2,
	}

	cell, numFU, err := source.resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cell.A != 4 || cell.B != 5 || cell.C != 6 || cell.Gamma != 90 {
		t.Errorf("cell = %+v", cell)
	}
	if numFU != 2 {
		t.Errorf("numFU = %d, want 2", numFU)
	}
}

func TestSourceParamsResolveMaterial(t *testing.T) {
	t.Setenv("CONVMAG_CONFIG", "")
	source := &sourceParams{Material: "smco5"}

	cell, numFU, err := source.resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cell.Gamma != 120 || numFU != 1 {
		t.Errorf("SmCo5 resolved to cell=%+v fu=%d", cell, numFU)
	}
}

func TestSourceParamsResolveUnknownMaterial(t *testing.T) {
	t.Setenv("CONVMAG_CONFIG", "")
	source := &sourceParams{Material: "SmCo4"}

	_, _, err := source.resolve()
	if err == nil || !strings.Contains(err.Error(), `did you mean "SmCo5"`) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadCatalogueMergesFiles(t *testing.T) {
	t.Setenv("CONVMAG_CONFIG", "")
	path := filepath.Join(t.TempDir(), "extra.jsonc")
	content := `[
		// overrides the builtin entry
		{"name": "Fe", "a": 2.87, "b": 2.87, "c": 2.87, "gamma": 90, "formula_units": 2},
	]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	catalogue, err := loadCatalogue([]string{path})
	if err != nil {
		t.Fatalf("loadCatalogue: %v", err)
	}
	m, err := catalogue.Lookup("Fe")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if m.A != 2.87 {
		t.Errorf("user file should shadow the builtin: A = %v", m.A)
	}
}

func TestVolumeCommandRejectsBadGeometry(t *testing.T) {
	err := Command().Execute([]string{"volume", "--a", "4", "--b", "4", "--c", "6", "--gamma", "100"})
	if err == nil || !strings.Contains(err.Error(), "unsupported cell angle") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMomentCommandWithMaterial(t *testing.T) {
	t.Setenv("CONVMAG_CONFIG", "")
	err := Command().Execute([]string{"moment", "1.61", "--material", "Nd2Fe14B"})
	if err != nil {
		t.Errorf("moment: %v", err)
	}
}

func TestPolarizationCommandRejectsZeroFU(t *testing.T) {
	err := Command().Execute([]string{"polarization", "2.2", "--a", "4", "--b", "4", "--c", "6", "--fu", "0"})
	if err == nil || !strings.Contains(err.Error(), "formula units") {
		t.Errorf("unexpected error: %v", err)
	}
}
