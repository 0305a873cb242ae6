// Copyright 2026 The Convmag Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"abc", "abd", 1}, // substitution
		{"abc", "ab", 1},  // deletion
		{"ab", "abc", 1},  // insertion
		{"abc", "bac", 2}, // transposition (counted as 2 edits)
		{"kitten", "sitting", 3},
		{"convert", "convrt", 1},
		{"units", "unist", 2},
		{"volume", "volme", 1},
	}

	for _, test := range tests {
		t.Run(test.a+"_"+test.b, func(t *testing.T) {
			got := levenshtein(test.a, test.b)
			if got != test.want {
				t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
			}
		})
	}
}

func TestLevenshtein_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"abc", "abd"},
		{"hello", "helo"},
		{"convert", "convrt"},
	}

	for _, pair := range pairs {
		forward := levenshtein(pair[0], pair[1])
		reverse := levenshtein(pair[1], pair[0])
		if forward != reverse {
			t.Errorf("levenshtein(%q, %q) = %d, but reverse = %d",
				pair[0], pair[1], forward, reverse)
		}
	}
}

func TestSuggestCommand(t *testing.T) {
	commands := []*Command{
		{Name: "convert"},
		{Name: "conversions"},
		{Name: "units"},
		{Name: "cell"},
		{Name: "version"},
	}

	tests := []struct {
		input string
		want  string
	}{
		{"convrt", "convert"},   // missing letter
		{"convertt", "convert"}, // extra letter
		{"unist", "units"},      // transposition
		{"cel", "cell"},         // missing letter
		{"vrsion", "version"},   // missing letter
		{"zzzzzzzzz", ""},       // nothing close
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got := suggestCommand(test.input, commands)
			if got != test.want {
				t.Errorf("suggestCommand(%q) = %q, want %q", test.input, got, test.want)
			}
		})
	}
}

func TestSuggestFlag(t *testing.T) {
	newFlagSet := func() *pflag.FlagSet {
		flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flagSet.Float64("gamma", 90, "cell angle")
		flagSet.String("material", "", "material preset")
		flagSet.Bool("json", false, "output as JSON")
		return flagSet
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"close miss", []string{"--gama", "120"}, "--gamma"},
		{"with equals", []string{"--materail=SmCo5"}, "--material"},
		{"defined flag skipped", []string{"--json", "--jsno"}, "--json"},
		{"nothing close", []string{"--zzzzzzz"}, ""},
		{"no flags in args", []string{"volume"}, ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := suggestFlag(test.args, newFlagSet())
			if got != test.want {
				t.Errorf("suggestFlag(%v) = %q, want %q", test.args, got, test.want)
			}
		})
	}
}
