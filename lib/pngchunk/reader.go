// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

package pngchunk

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// DefaultLimit caps the data length of a single chunk accepted by a
// Reader. Icons never come close; the cap keeps a corrupt length field
// from triggering a multi-gigabyte allocation.
const DefaultLimit = 64 << 20

// Frame is a chunk as read from a datastream, with the position and
// CRC it was stored with.
type Frame struct {
	Chunk
	Offset    int64
	StoredCRC uint32
}

// CRCValid reports whether the stored CRC matches the computed one.
func (f Frame) CRCValid() bool {
	return f.StoredCRC == f.CRC()
}

// Reader walks the chunks of a PNG datastream.
type Reader struct {
	r      io.Reader
	offset int64
	limit  uint32
	done   bool
}

// NewReader reads and checks the signature from r.
func NewReader(r io.Reader) (*Reader, error) {
	var signature [8]byte
	if _, err := io.ReadFull(r, signature[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("reading signature: %w", ErrBadSignature)
		}
		return nil, fmt.Errorf("reading signature: %w", err)
	}
	if signature != Signature {
		return nil, fmt.Errorf("got % x: %w", signature[:], ErrBadSignature)
	}
	return &Reader{r: r, offset: int64(len(signature)), limit: DefaultLimit}, nil
}

// SetLimit changes the largest chunk data length accepted.
func (pr *Reader) SetLimit(limit uint32) {
	pr.limit = limit
}

// Next returns the next chunk. After IEND has been returned, Next
// returns io.EOF. A stream that ends before IEND yields ErrTruncated.
//
// On a CRC mismatch the frame is still returned, together with a
// [*CRCError], so callers can report the chunk and keep walking.
func (pr *Reader) Next() (Frame, error) {
	if pr.done {
		return Frame{}, io.EOF
	}

	offset := pr.offset
	var header [8]byte
	if err := pr.readFull(header[:]); err != nil {
		return Frame{}, fmt.Errorf("chunk header at offset %d: %w", offset, err)
	}

	length := binary.BigEndian.Uint32(header[:4])
	var chunkType Type
	copy(chunkType[:], header[4:])

	if length > MaxLength || length > pr.limit {
		return Frame{}, fmt.Errorf("%s chunk at offset %d declares %d bytes: %w",
			chunkType, offset, length, ErrChunkTooLarge)
	}
	if !chunkType.Valid() {
		return Frame{}, fmt.Errorf("chunk at offset %d has invalid type % x", offset, chunkType[:])
	}

	data := make([]byte, length)
	if err := pr.readFull(data); err != nil {
		return Frame{}, fmt.Errorf("%s chunk data at offset %d: %w", chunkType, offset, err)
	}
	var trailer [4]byte
	if err := pr.readFull(trailer[:]); err != nil {
		return Frame{}, fmt.Errorf("%s chunk CRC at offset %d: %w", chunkType, offset, err)
	}

	frame := Frame{
		Chunk:     Chunk{Type: chunkType, Data: data},
		Offset:    offset,
		StoredCRC: binary.BigEndian.Uint32(trailer[:]),
	}
	if chunkType == IEND {
		pr.done = true
	}

	if computed := frame.CRC(); computed != frame.StoredCRC {
		return frame, &CRCError{
			Type:     chunkType,
			Offset:   offset,
			Stored:   frame.StoredCRC,
			Computed: computed,
		}
	}
	return frame, nil
}

// Offset returns the number of bytes consumed so far.
func (pr *Reader) Offset() int64 {
	return pr.offset
}

func (pr *Reader) readFull(buffer []byte) error {
	read, err := io.ReadFull(pr.r, buffer)
	pr.offset += int64(read)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return err
}

// File is a fully parsed PNG datastream.
type File struct {
	Header Header
	Frames []Frame
}

// ImageData returns the concatenated payload of every IDAT chunk, i.e.
// the zlib stream of filtered scanlines.
func (f *File) ImageData() []byte {
	var buffer bytes.Buffer
	for _, frame := range f.Frames {
		if frame.Type == IDAT {
			buffer.Write(frame.Data)
		}
	}
	return buffer.Bytes()
}

// Types returns the chunk types in file order.
func (f *File) Types() []Type {
	types := make([]Type, len(f.Frames))
	for i, frame := range f.Frames {
		types[i] = frame.Type
	}
	return types
}

// Parse reads a complete PNG datastream and checks the container
// invariants: valid signature, matching CRCs, no bytes after IEND, and
// the chunk layout rules of [CheckStructure]. Parse stops at the first
// violation.
func Parse(data []byte) (*File, error) {
	reader, err := NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var frames []Frame
	for {
		frame, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		frames = append(frames, frame)
	}

	if consumed := reader.Offset(); consumed != int64(len(data)) {
		return nil, fmt.Errorf("%d bytes after IEND: %w", int64(len(data))-consumed, ErrChunkOrder)
	}

	header, err := CheckStructure(frames)
	if err != nil {
		return nil, err
	}
	return &File{Header: header, Frames: frames}, nil
}

// CheckStructure enforces the chunk layout rules on an already-read
// sequence of frames and returns the decoded, validated IHDR:
//
//   - IHDR is the first chunk, appears once, and has a valid payload
//   - at least one IDAT, and all IDAT chunks are consecutive
//   - IEND is the last chunk and carries no data
//
// CRCs are not examined.
func CheckStructure(frames []Frame) (Header, error) {
	if len(frames) == 0 {
		return Header{}, fmt.Errorf("no chunks: %w", ErrChunkOrder)
	}
	if frames[0].Type != IHDR {
		return Header{}, fmt.Errorf("first chunk is %s, want IHDR: %w", frames[0].Type, ErrChunkOrder)
	}
	header, err := ParseHeader(frames[0].Data)
	if err != nil {
		return Header{}, err
	}
	if err := header.Validate(); err != nil {
		return Header{}, fmt.Errorf("invalid IHDR: %w", err)
	}

	var sawData, dataEnded bool
	for index, frame := range frames[1:] {
		last := index == len(frames)-2
		switch frame.Type {
		case IHDR:
			return Header{}, fmt.Errorf("IHDR repeated at offset %d: %w", frame.Offset, ErrChunkOrder)
		case IDAT:
			if dataEnded {
				return Header{}, fmt.Errorf("IDAT at offset %d is not consecutive: %w", frame.Offset, ErrChunkOrder)
			}
			sawData = true
		case IEND:
			if !sawData {
				return Header{}, fmt.Errorf("IEND before any IDAT: %w", ErrChunkOrder)
			}
			if !last {
				return Header{}, fmt.Errorf("chunks after IEND at offset %d: %w", frame.Offset, ErrChunkOrder)
			}
			if len(frame.Data) != 0 {
				return Header{}, fmt.Errorf("IEND carries %d bytes of data", len(frame.Data))
			}
		default:
			if sawData {
				dataEnded = true
			}
		}
	}

	if frames[len(frames)-1].Type != IEND {
		return Header{}, fmt.Errorf("last chunk is %s, want IEND: %w", frames[len(frames)-1].Type, ErrChunkOrder)
	}
	return header, nil
}
