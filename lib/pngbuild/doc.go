// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

// Package pngbuild constructs minimal PNG files from pixel data.
//
// Output always consists of exactly the critical chunks: the signature,
// one IHDR, one or more IDAT chunks, and IEND. Scanlines use filter
// type 0 (None), the image data stream is compressed with zlib
// (klauspost/compress), and no ancillary chunks (gAMA, sRGB, tEXt) are
// written.
//
// [Solid] is the fast path for placeholder icons: an 8-bit RGB image
// where every pixel has the same colour. [EncodeNRGBA] encodes an
// arbitrary non-premultiplied RGBA image as 8-bit RGBA.
package pngbuild
