// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

package pngchunk

import (
	"errors"
	"fmt"
)

var (
	// ErrBadSignature is returned when the first 8 bytes are not the
	// PNG signature.
	ErrBadSignature = errors.New("not a PNG: bad signature")

	// ErrTruncated is returned when the datastream ends inside a chunk
	// or before IEND.
	ErrTruncated = errors.New("truncated PNG datastream")

	// ErrChunkTooLarge is returned for a declared length above
	// [MaxLength] or above the reader's limit.
	ErrChunkTooLarge = errors.New("chunk length exceeds limit")

	// ErrChunkOrder is returned when IHDR, IDAT, and IEND do not
	// appear in the order PNG requires.
	ErrChunkOrder = errors.New("chunk order violation")

	// ErrCRCMismatch is the sentinel wrapped by [*CRCError].
	ErrCRCMismatch = errors.New("chunk CRC mismatch")
)

// CRCError describes a chunk whose stored CRC does not match the CRC
// computed over its type and data. It matches [ErrCRCMismatch] with
// errors.Is.
type CRCError struct {
	Type     Type
	Offset   int64
	Stored   uint32
	Computed uint32
}

func (e *CRCError) Error() string {
	return fmt.Sprintf("%s chunk at offset %d: stored CRC %08x, computed %08x",
		e.Type, e.Offset, e.Stored, e.Computed)
}

func (e *CRCError) Unwrap() error {
	return ErrCRCMismatch
}
