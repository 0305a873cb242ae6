// Copyright 2026 The Convmag Authors
// SPDX-License-Identifier: Apache-2.0

package unitcell

import (
	"errors"
	"fmt"
)

// Supported cell angles in degrees. Orthogonal covers cubic,
// tetragonal, and orthorhombic lattices; hexagonal covers hexagonal
// and (approximately) rhombohedral ones.
const (
	GammaOrthogonal = 90
	GammaHexagonal  = 120
)

// hexagonalBase is the basal-plane area factor sin(120°) ≈ √3/2,
// kept as the 0.866 literal the published conversion tables use so
// results match tabulated values digit for digit.
const hexagonalBase = 0.866

// angstromCubedToCubicMeters converts a volume in Å³ to m³
// ((1e-10 m)³ per Å³).
const angstromCubedToCubicMeters = 1e-30

// Cell is a crystal unit cell described by its lattice parameters.
type Cell struct {
	// A, B, C are the lattice parameters in Ångström. B is ignored
	// for hexagonal cells, where a = b by symmetry.
	A float64
	B float64
	C float64

	// Gamma is the angle between the a and b axes in degrees. Only
	// GammaOrthogonal and GammaHexagonal are supported.
	Gamma float64
}

// UnsupportedGeometryError reports a cell angle outside the two
// supported geometries. The volume formulas for general angles are
// out of scope, and returning a wrong orthogonal volume for, say,
// γ=60° would be far worse than refusing.
type UnsupportedGeometryError struct {
	// Gamma is the rejected angle in degrees.
	Gamma float64
}

func (e *UnsupportedGeometryError) Error() string {
	return fmt.Sprintf("unitcell: unsupported cell angle γ=%g° (supported: 90, 120)", e.Gamma)
}

// IsUnsupportedGeometry checks whether err is, or wraps, an
// *UnsupportedGeometryError.
func IsUnsupportedGeometry(err error) bool {
	var geomErr *UnsupportedGeometryError
	return errors.As(err, &geomErr)
}

// Validate checks the lattice parameters without computing anything.
// All problems are reported at once via errors.Join so a CLI can show
// the user every bad field in one pass.
func (c Cell) Validate() error {
	var errs []error
	if c.A <= 0 {
		errs = append(errs, fmt.Errorf("lattice parameter a must be positive, got %g", c.A))
	}
	if c.Gamma != GammaHexagonal && c.B <= 0 {
		errs = append(errs, fmt.Errorf("lattice parameter b must be positive, got %g", c.B))
	}
	if c.C <= 0 {
		errs = append(errs, fmt.Errorf("lattice parameter c must be positive, got %g", c.C))
	}
	if c.Gamma != GammaOrthogonal && c.Gamma != GammaHexagonal {
		errs = append(errs, &UnsupportedGeometryError{Gamma: c.Gamma})
	}
	return errors.Join(errs...)
}

// Volume returns the cell volume in Å³: a·b·c for orthogonal cells,
// 0.866·a²·c for hexagonal ones.
func (c Cell) Volume() (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	switch c.Gamma {
	case GammaOrthogonal:
		return c.A * c.B * c.C, nil
	case GammaHexagonal:
		return hexagonalBase * c.A * c.A * c.C, nil
	}
	// Validate already rejected every other angle.
	return 0, &UnsupportedGeometryError{Gamma: c.Gamma}
}

// VolumeCubicMeters returns the cell volume converted to m³, the form
// the moment/polarization formulas consume.
func (c Cell) VolumeCubicMeters() (float64, error) {
	volume, err := c.Volume()
	if err != nil {
		return 0, err
	}
	return volume * angstromCubedToCubicMeters, nil
}
