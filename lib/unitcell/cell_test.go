// Copyright 2026 The Convmag Authors
// SPDX-License-Identifier: Apache-2.0

package unitcell

import (
	"math"
	"testing"
)

// approxEqual compares within a relative tolerance: the compiler
// evaluates constant expressions like 8.8*8.8*12.19 exactly, while
// Volume() rounds per operation at run time.
func approxEqual(a, b, tolerance float64) bool {
	if a == b {
		return true
	}
	scale := math.Max(math.Abs(a), math.Abs(b))
	return math.Abs(a-b) <= tolerance*scale
}

func TestVolumeOrthogonal(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
		want float64
	}{
		{"cubic", Cell{A: 5, B: 5, C: 5, Gamma: 90}, 125},
		{"tetragonal", Cell{A: 8.8, B: 8.8, C: 12.19, Gamma: 90}, 8.8 * 8.8 * 12.19},
		{"orthorhombic", Cell{A: 2.8, B: 8.3, C: 9.1, Gamma: 90}, 2.8 * 8.3 * 9.1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := test.cell.Volume()
			if err != nil {
				t.Fatalf("Volume(): %v", err)
			}
			if !approxEqual(got, test.want, 1e-12) {
				t.Errorf("Volume() = %v, want %v", got, test.want)
			}
		})
	}
}

func TestVolumeHexagonal(t *testing.T) {
	got, err := Cell{A: 4, B: 4, C: 6, Gamma: 120}.Volume()
	if err != nil {
		t.Fatalf("Volume(): %v", err)
	}
	want := 0.866 * 16 * 6 // 83.136
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Volume() = %v, want %v", got, want)
	}

	// b is irrelevant for hexagonal cells; a zero b must not reject.
	got2, err := Cell{A: 4, C: 6, Gamma: 120}.Volume()
	if err != nil {
		t.Fatalf("Volume() with zero b: %v", err)
	}
	if got2 != got {
		t.Errorf("hexagonal volume depends on b: %v vs %v", got2, got)
	}
}

func TestVolumeUnsupportedGeometry(t *testing.T) {
	for _, gamma := range []float64{0, 60, 89.9, 109.47, 180} {
		_, err := Cell{A: 4, B: 4, C: 6, Gamma: gamma}.Volume()
		if err == nil {
			t.Errorf("γ=%g: expected error, got nil", gamma)
			continue
		}
		if !IsUnsupportedGeometry(err) {
			t.Errorf("γ=%g: expected UnsupportedGeometryError, got %v", gamma, err)
		}
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	// Bad lengths and a bad angle must all appear in one error.
	err := Cell{A: -1, B: 0, C: -2, Gamma: 45}.Validate()
	if err == nil {
		t.Fatal("expected error for fully invalid cell")
	}
	if !IsUnsupportedGeometry(err) {
		t.Errorf("joined error should carry the geometry failure: %v", err)
	}
}

func TestVolumeCubicMeters(t *testing.T) {
	// Nd2Fe14B: a=b=8.8 Å, c=12.19 Å, tetragonal.
	got, err := Cell{A: 8.8, B: 8.8, C: 12.19, Gamma: 90}.VolumeCubicMeters()
	if err != nil {
		t.Fatalf("VolumeCubicMeters(): %v", err)
	}
	want := 8.8 * 8.8 * 12.19 * 1e-30
	if math.Abs(got-want) > want*1e-12 {
		t.Errorf("VolumeCubicMeters() = %v, want %v", got, want)
	}
}
