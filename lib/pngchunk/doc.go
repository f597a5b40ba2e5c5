// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

// Package pngchunk encodes and decodes the PNG container format: the
// fixed 8-byte signature followed by length-prefixed, CRC-guarded
// chunks.
//
// A chunk on disk is:
//
//	length (uint32, big endian) | type (4 ASCII bytes) | data | crc (uint32, big endian)
//
// where crc is the CRC-32 (IEEE polynomial) of type followed by data.
// The length covers data only.
//
// The package knows the three critical chunks this repository emits
// (IHDR, IDAT, IEND) and the ordering rules between them. Ancillary
// chunks are passed through untouched.
//
// Key exports:
//
//   - [Chunk] -- a single chunk with [Chunk.CRC] and [Chunk.WriteTo]
//   - [Header] -- the IHDR payload, with [Header.Marshal] and [ParseHeader]
//   - [Writer] -- emits the signature and chunks, enforcing order
//   - [Reader] -- validates the signature and yields CRC-checked chunks
//   - [Parse] -- reads a whole file and enforces every ordering invariant
//
// Pixel data is not interpreted here; see lib/pngbuild for IDAT
// construction and lib/pngverify for decoding checks.
//
// This package has no dependencies on other tailieu packages.
package pngchunk
