// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

package iconblob

import (
	"encoding/base64"
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// ErrUnknownSize is returned by [Decode] for a size with no literal.
var ErrUnknownSize = errors.New("no embedded icon for size")

var literals = map[int]string{
	16:  icon16,
	48:  icon48,
	128: icon128,
}

// Sizes returns the embedded icon sizes in ascending order.
func Sizes() []int {
	sizes := make([]int, 0, len(literals))
	for size := range literals {
		sizes = append(sizes, size)
	}
	slices.Sort(sizes)
	return sizes
}

// Decode returns the PNG bytes of the embedded icon for size.
func Decode(size int) ([]byte, error) {
	literal, ok := literals[size]
	if !ok {
		return nil, fmt.Errorf("%dx%d (have %v): %w", size, size, Sizes(), ErrUnknownSize)
	}
	data, err := base64.StdEncoding.DecodeString(stripSpace(literal))
	if err != nil {
		return nil, fmt.Errorf("decoding embedded %dx%d icon: %w", size, size, err)
	}
	return data, nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
