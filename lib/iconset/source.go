// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

package iconset

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/ndt87864/tailieu-ehou/lib/iconblob"
	"github.com/ndt87864/tailieu-ehou/lib/pngbuild"
)

// Source names accepted by [NewSource].
const (
	SourceEmbedded = "embedded"
	SourceSolid    = "solid"
	SourceImage    = "image"
)

// SourceNames lists every source name.
var SourceNames = []string{SourceEmbedded, SourceSolid, SourceImage}

// Source renders the PNG bytes for one icon size.
type Source interface {
	Name() string
	Render(size int) ([]byte, error)
}

// EmbeddedSource serves the icons compiled into the binary. Only the
// sizes in iconblob.Sizes are available.
type EmbeddedSource struct{}

func (EmbeddedSource) Name() string { return SourceEmbedded }

func (EmbeddedSource) Render(size int) ([]byte, error) {
	return iconblob.Decode(size)
}

// SolidSource builds single-colour RGB icons.
type SolidSource struct {
	Color color.NRGBA
	Level int
}

func (s SolidSource) Name() string { return SourceSolid }

func (s SolidSource) Render(size int) ([]byte, error) {
	return pngbuild.Solid(size, size, s.Color, pngbuild.WithCompressionLevel(s.Level))
}

// ImageSource resamples a master image to each size with Catmull-Rom
// interpolation. A non-square master is scaled to fit and centred on a
// transparent canvas.
type ImageSource struct {
	Master image.Image
	Level  int
}

// LoadImageSource decodes the master image at path. PNG, JPEG, GIF,
// BMP, TIFF, and WebP are accepted.
func LoadImageSource(path string, level int) (*ImageSource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening master image: %w", err)
	}
	defer file.Close()

	master, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decoding master image %s: %w", path, err)
	}
	if master.Bounds().Empty() {
		return nil, fmt.Errorf("master image %s (%s) is empty", path, format)
	}
	return &ImageSource{Master: master, Level: level}, nil
}

func (s *ImageSource) Name() string { return SourceImage }

func (s *ImageSource) Render(size int) ([]byte, error) {
	return pngbuild.EncodeNRGBA(s.Resample(size), pngbuild.WithCompressionLevel(s.Level))
}

// Resample returns the master scaled into a size x size canvas,
// preserving aspect ratio.
func (s *ImageSource) Resample(size int) *image.NRGBA {
	canvas := image.NewNRGBA(image.Rect(0, 0, size, size))
	source := s.Master.Bounds()

	width, height := size, size
	if source.Dx() > source.Dy() {
		height = max(1, size*source.Dy()/source.Dx())
	} else if source.Dy() > source.Dx() {
		width = max(1, size*source.Dx()/source.Dy())
	}
	offsetX := (size - width) / 2
	offsetY := (size - height) / 2
	target := image.Rect(offsetX, offsetY, offsetX+width, offsetY+height)

	draw.CatmullRom.Scale(canvas, target, s.Master, source, draw.Src, nil)
	return canvas
}

// NewSource builds the named source. colorHex is used by the solid
// source and input by the image source; level is the zlib level for
// sources that encode.
func NewSource(name, colorHex, input string, level int) (Source, error) {
	if err := pngbuild.ValidateLevel(level); err != nil {
		return nil, err
	}
	switch name {
	case SourceEmbedded:
		return EmbeddedSource{}, nil
	case SourceSolid:
		fill, err := ParseColor(colorHex)
		if err != nil {
			return nil, err
		}
		return SolidSource{Color: fill, Level: level}, nil
	case SourceImage:
		if input == "" {
			return nil, fmt.Errorf("source %q needs an input image", SourceImage)
		}
		return LoadImageSource(input, level)
	default:
		return nil, fmt.Errorf("unknown source %q (want one of %v)", name, SourceNames)
	}
}
