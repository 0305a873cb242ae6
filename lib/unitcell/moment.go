// Copyright 2026 The Convmag Authors
// SPDX-License-Identifier: Apache-2.0

package unitcell

import (
	"fmt"

	"github.com/magtools/convmag/lib/magunit"
)

// MomentToPolarization converts a magnetic moment in Bohr magnetons
// per formula unit to the magnetic polarization J = µ₀·M in Tesla.
// numFU is the number of formula units per unit cell; volumeM3 is the
// cell volume in m³. Both must be positive.
func MomentToPolarization(muBPerFU float64, numFU int, volumeM3 float64) (float64, error) {
	if err := validateMagneticState(numFU, volumeM3); err != nil {
		return 0, err
	}
	magnetization := muBPerFU * float64(numFU) * magunit.MuBohr / volumeM3
	return magnetization * magunit.MuZero, nil
}

// PolarizationToMoment converts a magnetic polarization in Tesla to
// the moment in Bohr magnetons per formula unit. Exact algebraic
// inverse of [MomentToPolarization], so the two compose to the
// identity up to floating-point rounding.
func PolarizationToMoment(polarizationTesla float64, numFU int, volumeM3 float64) (float64, error) {
	if err := validateMagneticState(numFU, volumeM3); err != nil {
		return 0, err
	}
	magnetization := polarizationTesla / magunit.MuZero
	return magnetization * volumeM3 / (float64(numFU) * magunit.MuBohr), nil
}

// validateMagneticState rejects the inputs both formulas would
// otherwise divide by or multiply into nonsense.
func validateMagneticState(numFU int, volumeM3 float64) error {
	if numFU <= 0 {
		return fmt.Errorf("formula units per cell must be positive, got %d", numFU)
	}
	if volumeM3 <= 0 {
		return fmt.Errorf("cell volume must be positive, got %g m^3", volumeM3)
	}
	return nil
}
