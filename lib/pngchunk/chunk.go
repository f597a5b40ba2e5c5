// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

package pngchunk

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
)

// Signature is the 8-byte sequence every PNG datastream begins with:
// 137 'P' 'N' 'G' CR LF SUB LF.
var Signature = [8]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Type is a four-letter chunk type code.
type Type [4]byte

// Critical chunk types.
var (
	IHDR = Type{'I', 'H', 'D', 'R'}
	IDAT = Type{'I', 'D', 'A', 'T'}
	IEND = Type{'I', 'E', 'N', 'D'}
)

// MaxLength is the largest chunk data length PNG permits (2^31 - 1).
const MaxLength = 1<<31 - 1

// overhead is the number of framing bytes around chunk data: length,
// type, and CRC fields.
const overhead = 12

func (t Type) String() string {
	return string(t[:])
}

// Critical reports whether the chunk must be understood by a decoder
// (bit 5 of the first byte clear, i.e. an uppercase first letter).
func (t Type) Critical() bool {
	return t[0]&0x20 == 0
}

// Valid reports whether every byte is an ASCII letter.
func (t Type) Valid() bool {
	for _, b := range t {
		if !(b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z') {
			return false
		}
	}
	return true
}

// ParseType converts a four-character string into a Type.
func ParseType(name string) (Type, error) {
	var t Type
	if len(name) != 4 {
		return t, fmt.Errorf("chunk type %q: must be 4 characters", name)
	}
	copy(t[:], name)
	if !t.Valid() {
		return t, fmt.Errorf("chunk type %q: must be ASCII letters", name)
	}
	return t, nil
}

// Chunk is one PNG chunk. The length and CRC fields are derived from
// Type and Data when the chunk is written.
type Chunk struct {
	Type Type
	Data []byte
}

// CRC returns the CRC-32 of the chunk type followed by its data.
func (c Chunk) CRC() uint32 {
	crc := crc32.NewIEEE()
	crc.Write(c.Type[:])
	crc.Write(c.Data)
	return crc.Sum32()
}

// Len returns the encoded size of the chunk including framing.
func (c Chunk) Len() int {
	return overhead + len(c.Data)
}

// WriteTo writes the framed chunk to w.
func (c Chunk) WriteTo(w io.Writer) (int64, error) {
	if len(c.Data) > MaxLength {
		return 0, fmt.Errorf("%s chunk: %d bytes: %w", c.Type, len(c.Data), ErrChunkTooLarge)
	}

	var header [8]byte
	binary.BigEndian.PutUint32(header[:4], uint32(len(c.Data)))
	copy(header[4:], c.Type[:])

	var trailer [4]byte
	binary.BigEndian.PutUint32(trailer[:], c.CRC())

	var total int64
	for _, part := range [][]byte{header[:], c.Data, trailer[:]} {
		written, err := w.Write(part)
		total += int64(written)
		if err != nil {
			return total, fmt.Errorf("writing %s chunk: %w", c.Type, err)
		}
	}
	return total, nil
}

// AppendBinary appends the framed chunk to buffer.
func (c Chunk) AppendBinary(buffer []byte) []byte {
	buffer = binary.BigEndian.AppendUint32(buffer, uint32(len(c.Data)))
	buffer = append(buffer, c.Type[:]...)
	buffer = append(buffer, c.Data...)
	return binary.BigEndian.AppendUint32(buffer, c.CRC())
}
