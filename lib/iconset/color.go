// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

package iconset

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultColor is the placeholder fill, the extension's brand blue.
const DefaultColor = "#667eea"

// ParseColor parses a "#rrggbb" or "#rgb" hex colour. The leading '#'
// is optional. The result is opaque.
func ParseColor(hex string) (color.NRGBA, error) {
	normalized := strings.TrimSpace(hex)
	if !strings.HasPrefix(normalized, "#") {
		normalized = "#" + normalized
	}
	if digits := len(normalized) - 1; digits != 3 && digits != 6 {
		return color.NRGBA{}, fmt.Errorf("colour %q: want 3 or 6 hex digits", hex)
	}
	parsed, err := colorful.Hex(normalized)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("colour %q: %w", hex, err)
	}
	r, g, b := parsed.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// FormatColor returns c as lowercase "#rrggbb".
func FormatColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
