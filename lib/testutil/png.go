// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
)

// DecodePNG decodes data with image/png or fails the test.
func DecodePNG(t interface {
	Helper()
	Fatalf(format string, args ...any)
}, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding PNG (%d bytes): %v", len(data), err)
	}
	return img
}

// SizeName returns "NxN" for use as a subtest name.
func SizeName(size int) string {
	return fmt.Sprintf("%dx%d", size, size)
}
