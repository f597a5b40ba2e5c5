// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

package pngchunk

import (
	"fmt"
	"io"
)

type writeState int

const (
	stateStart writeState = iota
	stateHeader
	stateData
	stateAfterData
	stateClosed
)

// Writer emits a PNG datastream chunk by chunk. It writes the
// signature together with IHDR, keeps IDAT chunks consecutive, and
// writes IEND on Close. The first error is sticky: every later call
// returns it.
type Writer struct {
	w       io.Writer
	state   writeState
	written int64
	err     error
}

// NewWriter returns a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteHeader writes the PNG signature followed by the IHDR chunk. It
// must be called exactly once, before any other chunk.
func (pw *Writer) WriteHeader(header Header) error {
	if pw.err != nil {
		return pw.err
	}
	if pw.state != stateStart {
		return pw.fail(fmt.Errorf("IHDR written twice: %w", ErrChunkOrder))
	}
	if err := header.Validate(); err != nil {
		return pw.fail(fmt.Errorf("invalid IHDR: %w", err))
	}

	written, err := pw.w.Write(Signature[:])
	pw.written += int64(written)
	if err != nil {
		return pw.fail(fmt.Errorf("writing signature: %w", err))
	}
	if err := pw.emit(header.Chunk()); err != nil {
		return err
	}
	pw.state = stateHeader
	return nil
}

// WriteChunk writes an IDAT or ancillary chunk. IHDR and IEND are
// rejected; use WriteHeader and Close. An IDAT after a non-IDAT chunk
// that itself followed IDAT data breaks the consecutive-IDAT rule and
// is rejected.
func (pw *Writer) WriteChunk(chunk Chunk) error {
	if pw.err != nil {
		return pw.err
	}
	if !chunk.Type.Valid() {
		return pw.fail(fmt.Errorf("chunk type %q: not ASCII letters", chunk.Type[:]))
	}

	switch {
	case pw.state == stateStart:
		return pw.fail(fmt.Errorf("%s before IHDR: %w", chunk.Type, ErrChunkOrder))
	case pw.state == stateClosed:
		return pw.fail(fmt.Errorf("%s after IEND: %w", chunk.Type, ErrChunkOrder))
	case chunk.Type == IHDR:
		return pw.fail(fmt.Errorf("IHDR written twice: %w", ErrChunkOrder))
	case chunk.Type == IEND:
		return pw.fail(fmt.Errorf("IEND must be written by Close: %w", ErrChunkOrder))
	case chunk.Type == IDAT && pw.state == stateAfterData:
		return pw.fail(fmt.Errorf("IDAT chunks not consecutive: %w", ErrChunkOrder))
	}

	if err := pw.emit(chunk); err != nil {
		return err
	}

	if chunk.Type == IDAT {
		pw.state = stateData
	} else if pw.state == stateData {
		pw.state = stateAfterData
	}
	return nil
}

// WriteImageData splits data into IDAT chunks of at most chunkSize
// bytes. A chunkSize of zero or less writes a single IDAT.
func (pw *Writer) WriteImageData(data []byte, chunkSize int) error {
	if chunkSize <= 0 || chunkSize > len(data) {
		return pw.WriteChunk(Chunk{Type: IDAT, Data: data})
	}
	for start := 0; start < len(data); start += chunkSize {
		end := min(start+chunkSize, len(data))
		if err := pw.WriteChunk(Chunk{Type: IDAT, Data: data[start:end]}); err != nil {
			return err
		}
	}
	return nil
}

// Close writes the IEND chunk. It fails if no IDAT chunk was written.
// Close does not close the underlying writer.
func (pw *Writer) Close() error {
	if pw.err != nil {
		return pw.err
	}
	switch pw.state {
	case stateClosed:
		return nil
	case stateStart, stateHeader:
		return pw.fail(fmt.Errorf("IEND without IDAT: %w", ErrChunkOrder))
	}
	if err := pw.emit(Chunk{Type: IEND}); err != nil {
		return err
	}
	pw.state = stateClosed
	return nil
}

// Written returns the number of bytes written so far.
func (pw *Writer) Written() int64 {
	return pw.written
}

func (pw *Writer) emit(chunk Chunk) error {
	written, err := chunk.WriteTo(pw.w)
	pw.written += written
	if err != nil {
		return pw.fail(err)
	}
	return nil
}

func (pw *Writer) fail(err error) error {
	pw.err = err
	return err
}
