// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"verify", "verify", 0},
		{"verfy", "verify", 1},
		{"genrate", "generate", 1},
		{"inspcet", "inspect", 2},
		{"kitten", "sitting", 3},
	}
	for _, test := range tests {
		if got := editDistance(test.a, test.b); got != test.want {
			t.Errorf("editDistance(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
		if got := editDistance(test.b, test.a); got != test.want {
			t.Errorf("editDistance(%q, %q) = %d, want %d (symmetry)", test.b, test.a, got, test.want)
		}
	}
}

func TestSuggestCommand(t *testing.T) {
	commands := []*Command{{Name: "generate"}, {Name: "verify"}, {Name: "inspect"}, {Name: "status"}}
	tests := []struct {
		input string
		want  string
	}{
		{"generat", "generate"},
		{"verfiy", "verify"},
		{"stats", "status"},
		{"insp", "inspect"},
		{"completely-different", ""},
	}
	for _, test := range tests {
		if got := suggestCommand(test.input, commands); got != test.want {
			t.Errorf("suggestCommand(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestSuggestFlag(t *testing.T) {
	flagSet := pflag.NewFlagSet("generate", pflag.ContinueOnError)
	flagSet.String("source", "", "")
	flagSet.BoolP("force", "f", false, "")
	flagSet.IntSlice("sizes", nil, "")

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--sorce", "solid"}, "--source"},
		{[]string{"-f", "--szes=16"}, "--sizes"},
		{[]string{"--force", "--xyzzy-plugh"}, ""},
		{[]string{"--", "--sorce"}, ""},
		{[]string{"--forc"}, "--force"},
		{[]string{"--siz=16"}, "--sizes"},
	}
	for _, test := range tests {
		if got := suggestFlag(test.args, flagSet); got != test.want {
			t.Errorf("suggestFlag(%v) = %q, want %q", test.args, got, test.want)
		}
	}
}
