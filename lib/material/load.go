// Copyright 2026 The Convmag Authors
// SPDX-License-Identifier: Apache-2.0

package material

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// Parse strips JSONC comments and trailing commas from data, then
// unmarshals the result into a list of materials. Every entry is
// validated; a single bad entry fails the whole parse so a typo in a
// user catalogue never silently drops a material.
func Parse(data []byte) ([]Material, error) {
	stripped := jsonc.ToJSON(data)

	var materials []Material
	if err := json.Unmarshal(stripped, &materials); err != nil {
		return nil, fmt.Errorf("parsing material catalogue: %w", err)
	}

	for _, m := range materials {
		if err := m.Validate(); err != nil {
			return nil, err
		}
	}
	return materials, nil
}

// ReadFile reads a JSONC material catalogue from disk.
func ReadFile(path string) ([]Material, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	materials, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return materials, nil
}
