// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

package iconblob

import (
	"errors"
	"slices"
	"testing"

	"github.com/ndt87864/tailieu-ehou/lib/pngchunk"
	"github.com/ndt87864/tailieu-ehou/lib/testutil"
)

func TestSizes(t *testing.T) {
	if got, want := Sizes(), []int{16, 48, 128}; !slices.Equal(got, want) {
		t.Errorf("Sizes() = %v, want %v", got, want)
	}
}

func TestDecode(t *testing.T) {
	for _, size := range Sizes() {
		t.Run(testutil.SizeName(size), func(t *testing.T) {
			data, err := Decode(size)
			if err != nil {
				t.Fatalf("Decode(%d) error: %v", size, err)
			}

			file, err := pngchunk.Parse(data)
			if err != nil {
				t.Fatalf("embedded icon is not a valid PNG container: %v", err)
			}
			if file.Header.Width != uint32(size) || file.Header.Height != uint32(size) {
				t.Errorf("IHDR declares %dx%d, want %dx%d",
					file.Header.Width, file.Header.Height, size, size)
			}

			img := testutil.DecodePNG(t, data)
			if img.Bounds().Dx() != size || img.Bounds().Dy() != size {
				t.Errorf("decoded bounds %v", img.Bounds())
			}
		})
	}
}

func TestDecode_UnknownSize(t *testing.T) {
	_, err := Decode(32)
	if !errors.Is(err, ErrUnknownSize) {
		t.Errorf("Decode(32) error = %v, want ErrUnknownSize", err)
	}
}

func TestStripSpace(t *testing.T) {
	if got := stripSpace("\n ab\tc\r\nd \n"); got != "abcd" {
		t.Errorf("stripSpace() = %q, want %q", got, "abcd")
	}
}
