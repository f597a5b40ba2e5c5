// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

package iconset

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		want    color.NRGBA
		wantErr bool
	}{
		{DefaultColor, color.NRGBA{R: 0x66, G: 0x7e, B: 0xea, A: 0xff}, false},
		{"667EEA", color.NRGBA{R: 0x66, G: 0x7e, B: 0xea, A: 0xff}, false},
		{" #0ea5e9 ", color.NRGBA{R: 0x0e, G: 0xa5, B: 0xe9, A: 0xff}, false},
		{"#fff", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, false},
		{"#zzzzzz", color.NRGBA{}, true},
		{"#12345", color.NRGBA{}, true},
		{"", color.NRGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatColor(t *testing.T) {
	fill, err := ParseColor("#6366F1")
	if err != nil {
		t.Fatal(err)
	}
	if got := FormatColor(fill); got != "#6366f1" {
		t.Errorf("FormatColor() = %q, want #6366f1", got)
	}
}
