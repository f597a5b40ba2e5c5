// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

package pngbuild

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/klauspost/compress/zlib"

	"github.com/ndt87864/tailieu-ehou/lib/pngchunk"
)

// filterNone is the scanline filter-type byte for unfiltered rows.
const filterNone = 0

// Option configures encoding.
type Option func(*options)

type options struct {
	level     int
	chunkSize int
}

func defaultOptions() options {
	return options{level: zlib.BestCompression}
}

// WithCompressionLevel sets the zlib level, from 0 (store) to 9 (best).
// The default is 9; icons are tiny and written rarely.
func WithCompressionLevel(level int) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithChunkSize splits the compressed stream into IDAT chunks of at
// most size bytes. Zero, the default, writes a single IDAT.
func WithChunkSize(size int) Option {
	return func(o *options) {
		o.chunkSize = size
	}
}

// ValidateLevel reports whether level is an accepted compression level.
func ValidateLevel(level int) error {
	if level < zlib.NoCompression || level > zlib.BestCompression {
		return fmt.Errorf("compression level %d out of range %d..%d",
			level, zlib.NoCompression, zlib.BestCompression)
	}
	return nil
}

// Solid returns an 8-bit RGB PNG of the given size in which every
// pixel is fill. The alpha component of fill is ignored.
func Solid(width, height int, fill color.Color, opts ...Option) ([]byte, error) {
	header, err := newHeader(width, height, pngchunk.RGB)
	if err != nil {
		return nil, err
	}

	rgba := color.NRGBAModel.Convert(fill).(color.NRGBA)
	row := make([]byte, 1+header.RowBytes())
	row[0] = filterNone
	for x := 0; x < width; x++ {
		row[1+3*x] = rgba.R
		row[2+3*x] = rgba.G
		row[3+3*x] = rgba.B
	}

	return encode(header, func(emit func([]byte) error) error {
		for y := 0; y < height; y++ {
			if err := emit(row); err != nil {
				return err
			}
		}
		return nil
	}, opts)
}

// EncodeNRGBA returns img as an 8-bit RGBA PNG.
func EncodeNRGBA(img *image.NRGBA, opts ...Option) ([]byte, error) {
	bounds := img.Bounds()
	header, err := newHeader(bounds.Dx(), bounds.Dy(), pngchunk.RGBA)
	if err != nil {
		return nil, err
	}

	rowBytes := header.RowBytes()
	row := make([]byte, 1+rowBytes)
	row[0] = filterNone
	return encode(header, func(emit func([]byte) error) error {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			start := img.PixOffset(bounds.Min.X, y)
			copy(row[1:], img.Pix[start:start+rowBytes])
			if err := emit(row); err != nil {
				return err
			}
		}
		return nil
	}, opts)
}

func newHeader(width, height int, colorType pngchunk.ColorType) (pngchunk.Header, error) {
	if width <= 0 || height <= 0 || width > pngchunk.MaxLength || height > pngchunk.MaxLength {
		return pngchunk.Header{}, fmt.Errorf("image size %dx%d out of range 1..%d",
			width, height, pngchunk.MaxLength)
	}
	return pngchunk.Header{
		Width:     uint32(width),
		Height:    uint32(height),
		BitDepth:  8,
		ColorType: colorType,
	}, nil
}

// encode compresses the filtered scanlines produced by rows and frames
// them as a PNG datastream.
func encode(header pngchunk.Header, rows func(emit func([]byte) error) error, opts []Option) ([]byte, error) {
	settings := defaultOptions()
	for _, opt := range opts {
		opt(&settings)
	}
	if err := ValidateLevel(settings.level); err != nil {
		return nil, err
	}

	var compressed bytes.Buffer
	compressor, err := zlib.NewWriterLevel(&compressed, settings.level)
	if err != nil {
		return nil, fmt.Errorf("creating zlib writer: %w", err)
	}
	if err := rows(func(row []byte) error {
		_, err := compressor.Write(row)
		return err
	}); err != nil {
		return nil, fmt.Errorf("compressing scanlines: %w", err)
	}
	if err := compressor.Close(); err != nil {
		return nil, fmt.Errorf("finishing zlib stream: %w", err)
	}

	var output bytes.Buffer
	writer := pngchunk.NewWriter(&output)
	if err := writer.WriteHeader(header); err != nil {
		return nil, err
	}
	if err := writer.WriteImageData(compressed.Bytes(), settings.chunkSize); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}
	return output.Bytes(), nil
}
