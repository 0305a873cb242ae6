// Copyright 2026 The Convmag Authors
// SPDX-License-Identifier: Apache-2.0

package magunit

import "errors"

// Convert converts value from startUnit to endUnit. Either unit may
// carry a metric prefix. The directed table is consulted first; when
// only the reverse direction is stored, its factor is inverted.
//
// Both unit strings are resolved before any lookup, and when both are
// bad the returned error carries both failures (via errors.Join), so
// a caller fixing its input sees every problem at once. A
// *ConversionNotAvailableError is only ever returned for two valid
// base units with no table relationship — resolution failures
// suppress it, since "not available" would be noise on top of a typo.
func Convert(value float64, startUnit, endUnit string) (float64, error) {
	startBase, preScale, startErr := Resolve(startUnit)
	endBase, postScale, endErr := Resolve(endUnit)
	if startErr != nil || endErr != nil {
		return 0, errors.Join(startErr, endErr)
	}

	factor, ok := tableFactor(startBase, endBase)
	if !ok {
		return 0, &ConversionNotAvailableError{Start: startUnit, End: endUnit}
	}

	return value * preScale * factor / postScale, nil
}

// ConvertSlice converts every element of values from startUnit to
// endUnit, returning a new slice of the same length. The units are
// resolved once; each element then scales by the identical factor, so
// the result is exactly element-wise Convert. A nil or empty input
// yields an empty slice and still validates the units.
func ConvertSlice(values []float64, startUnit, endUnit string) ([]float64, error) {
	startBase, preScale, startErr := Resolve(startUnit)
	endBase, postScale, endErr := Resolve(endUnit)
	if startErr != nil || endErr != nil {
		return nil, errors.Join(startErr, endErr)
	}

	factor, ok := tableFactor(startBase, endBase)
	if !ok {
		return nil, &ConversionNotAvailableError{Start: startUnit, End: endUnit}
	}

	converted := make([]float64, len(values))
	for i, value := range values {
		converted[i] = value * preScale * factor / postScale
	}
	return converted, nil
}

// tableFactor returns the factor converting startBase to endBase:
// the stored directed factor when present, otherwise the inverse of
// the reverse entry. Reports false when neither direction is stored.
func tableFactor(startBase, endBase string) (float64, bool) {
	if factor, ok := directedFactors[unitPair{startBase, endBase}]; ok {
		return factor, true
	}
	if reverse, ok := directedFactors[unitPair{endBase, startBase}]; ok {
		return 1 / reverse, true
	}
	return 0, false
}
