// Copyright 2026 The Convmag Authors
// SPDX-License-Identifier: Apache-2.0

package magunit

import (
	"errors"
	"fmt"
)

// UnrecognizedUnitError reports a unit string that is neither a base
// unit nor a known prefix followed by a base unit. Callers can use
// errors.As to extract the offending string:
//
//	var unitErr *magunit.UnrecognizedUnitError
//	if errors.As(err, &unitErr) {
//	    fmt.Println("bad unit:", unitErr.Unit)
//	}
type UnrecognizedUnitError struct {
	// Unit is the raw unit string as supplied by the caller.
	Unit string
}

func (e *UnrecognizedUnitError) Error() string {
	return fmt.Sprintf("magunit: unrecognized unit %q", e.Unit)
}

// ConversionNotAvailableError reports that both units resolved to
// valid base units but no directed or reverse table entry relates
// them. This means the two units measure unrelated quantities (for
// example a field in G and a moment in muB); no prefix or inversion
// can bridge them.
type ConversionNotAvailableError struct {
	// Start and End are the raw unit strings as supplied by the
	// caller, prefixes included.
	Start string
	End   string
}

func (e *ConversionNotAvailableError) Error() string {
	return fmt.Sprintf("magunit: conversion not available: %s to %s", e.Start, e.End)
}

// IsUnrecognizedUnit checks whether err is, or wraps, an
// *UnrecognizedUnitError.
func IsUnrecognizedUnit(err error) bool {
	var unitErr *UnrecognizedUnitError
	return errors.As(err, &unitErr)
}

// IsConversionNotAvailable checks whether err is, or wraps, a
// *ConversionNotAvailableError.
func IsConversionNotAvailable(err error) bool {
	var convErr *ConversionNotAvailableError
	return errors.As(err, &convErr)
}
