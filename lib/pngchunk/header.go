// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

package pngchunk

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ColorType is the IHDR colour type field.
type ColorType uint8

const (
	Grayscale      ColorType = 0
	RGB            ColorType = 2
	Indexed        ColorType = 3
	GrayscaleAlpha ColorType = 4
	RGBA           ColorType = 6
)

func (c ColorType) String() string {
	switch c {
	case Grayscale:
		return "grayscale"
	case RGB:
		return "rgb"
	case Indexed:
		return "indexed"
	case GrayscaleAlpha:
		return "grayscale+alpha"
	case RGBA:
		return "rgba"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

// Channels returns the number of samples per pixel.
func (c ColorType) Channels() int {
	switch c {
	case Grayscale, Indexed:
		return 1
	case GrayscaleAlpha:
		return 2
	case RGB:
		return 3
	case RGBA:
		return 4
	default:
		return 0
	}
}

// allowedBitDepths lists the bit depths PNG permits per colour type.
var allowedBitDepths = map[ColorType][]uint8{
	Grayscale:      {1, 2, 4, 8, 16},
	RGB:            {8, 16},
	Indexed:        {1, 2, 4, 8},
	GrayscaleAlpha: {8, 16},
	RGBA:           {8, 16},
}

// HeaderLength is the fixed size of the IHDR payload.
const HeaderLength = 13

// Header is the decoded IHDR payload.
type Header struct {
	Width             uint32
	Height            uint32
	BitDepth          uint8
	ColorType         ColorType
	CompressionMethod uint8
	FilterMethod      uint8
	InterlaceMethod   uint8
}

// Marshal encodes the header as the 13-byte IHDR payload.
func (h Header) Marshal() []byte {
	data := make([]byte, HeaderLength)
	binary.BigEndian.PutUint32(data[0:4], h.Width)
	binary.BigEndian.PutUint32(data[4:8], h.Height)
	data[8] = h.BitDepth
	data[9] = uint8(h.ColorType)
	data[10] = h.CompressionMethod
	data[11] = h.FilterMethod
	data[12] = h.InterlaceMethod
	return data
}

// Chunk wraps the marshalled header in an IHDR chunk.
func (h Header) Chunk() Chunk {
	return Chunk{Type: IHDR, Data: h.Marshal()}
}

// ParseHeader decodes an IHDR payload. The result is not validated;
// call [Header.Validate] for that.
func ParseHeader(data []byte) (Header, error) {
	if len(data) != HeaderLength {
		return Header{}, fmt.Errorf("IHDR payload is %d bytes, want %d", len(data), HeaderLength)
	}
	return Header{
		Width:             binary.BigEndian.Uint32(data[0:4]),
		Height:            binary.BigEndian.Uint32(data[4:8]),
		BitDepth:          data[8],
		ColorType:         ColorType(data[9]),
		CompressionMethod: data[10],
		FilterMethod:      data[11],
		InterlaceMethod:   data[12],
	}, nil
}

// Validate checks the header against the field constraints of the PNG
// specification and returns every violation joined.
func (h Header) Validate() error {
	var errs []error

	if h.Width == 0 || h.Width > MaxLength {
		errs = append(errs, fmt.Errorf("width %d out of range 1..%d", h.Width, MaxLength))
	}
	if h.Height == 0 || h.Height > MaxLength {
		errs = append(errs, fmt.Errorf("height %d out of range 1..%d", h.Height, MaxLength))
	}

	depths, ok := allowedBitDepths[h.ColorType]
	if !ok {
		errs = append(errs, fmt.Errorf("colour type %d is not defined", uint8(h.ColorType)))
	} else if !containsDepth(depths, h.BitDepth) {
		errs = append(errs, fmt.Errorf("bit depth %d not allowed for colour type %s (allowed: %v)",
			h.BitDepth, h.ColorType, depths))
	}

	if h.CompressionMethod != 0 {
		errs = append(errs, fmt.Errorf("compression method %d, want 0", h.CompressionMethod))
	}
	if h.FilterMethod != 0 {
		errs = append(errs, fmt.Errorf("filter method %d, want 0", h.FilterMethod))
	}
	if h.InterlaceMethod > 1 {
		errs = append(errs, fmt.Errorf("interlace method %d, want 0 or 1", h.InterlaceMethod))
	}

	return errors.Join(errs...)
}

// RowBytes returns the number of bytes in one unfiltered scanline,
// excluding the leading filter-type byte.
func (h Header) RowBytes() int {
	bits := int(h.Width) * h.ColorType.Channels() * int(h.BitDepth)
	return (bits + 7) / 8
}

func containsDepth(depths []uint8, depth uint8) bool {
	for _, d := range depths {
		if d == depth {
			return true
		}
	}
	return false
}
