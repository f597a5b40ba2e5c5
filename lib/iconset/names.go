// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

package iconset

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// DefaultSizes are the icon sizes a Chrome extension manifest lists:
// favicon and toolbar (16), extensions page (48), and install dialog
// and Web Store (128).
var DefaultSizes = []int{16, 48, 128}

// MaxSize bounds the icon edge length. Chrome never asks for more than
// 128; the cap only guards against typos like 16000.
const MaxSize = 1024

// FileName returns the file name of the icon for size.
func FileName(size int) string {
	return fmt.Sprintf("icon%d.png", size)
}

// ValidateSizes checks that sizes is non-empty, in range, and free of
// duplicates.
func ValidateSizes(sizes []int) error {
	if len(sizes) == 0 {
		return errors.New("no icon sizes given")
	}
	var errs []error
	seen := make(map[int]bool, len(sizes))
	for _, size := range sizes {
		if size < 1 || size > MaxSize {
			errs = append(errs, fmt.Errorf("icon size %d out of range 1..%d", size, MaxSize))
		}
		if seen[size] {
			errs = append(errs, fmt.Errorf("icon size %d listed twice", size))
		}
		seen[size] = true
	}
	return errors.Join(errs...)
}

// ParseSizes parses a comma-separated size list such as "16,48,128".
// The result is sorted ascending and validated.
func ParseSizes(list string) ([]int, error) {
	var sizes []int
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		size, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("icon size %q: not a number", field)
		}
		sizes = append(sizes, size)
	}
	slices.Sort(sizes)
	if err := ValidateSizes(sizes); err != nil {
		return nil, err
	}
	return sizes, nil
}
