// Copyright 2026 The Convmag Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/magtools/convmag/cmd/convmag/cli"
	"github.com/magtools/convmag/lib/magunit"
)

// RunBatch converts stdin-style input line by line. Each non-blank
// line must read "<value> <start-unit> <end-unit>"; results go to
// stdout, per-line diagnostics to stderr. Lines are independent: a
// failed line never stops the remaining ones. When any line failed,
// the returned *cli.ExitError carries exit code 1 without an extra
// error message.
func RunBatch(input io.Reader, stdout, stderr io.Writer) error {
	scanner := bufio.NewScanner(input)
	lineNumber := 0
	failed := 0

	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		result, err := convertLine(line)
		if err != nil {
			fmt.Fprintf(stderr, "line %d: %v\n", lineNumber, err)
			failed++
			continue
		}
		fmt.Fprintln(stdout, result)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	if failed > 0 {
		return &cli.ExitError{Code: 1}
	}
	return nil
}

// convertLine parses and converts a single batch line.
func convertLine(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return "", fmt.Errorf("expected \"<value> <start-unit> <end-unit>\", got %q", line)
	}

	value, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return "", fmt.Errorf("not a number: %q", fields[0])
	}

	result, err := magunit.Convert(value, fields[1], fields[2])
	if err != nil {
		return "", err
	}
	return magunit.Describe(value, fields[1], fields[2], result), nil
}
