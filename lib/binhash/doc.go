// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

// Package binhash provides BLAKE3 content hashing for generated files.
//
// The icon generator renders every icon on each run, but the bytes are
// usually identical to what is already on disk. Comparing digests of
// the rendered bytes and the existing file lets "generate" skip the
// write, which keeps file modification times stable for build tools
// and extension reloaders that watch the icons directory.
//
// Digests are BLAKE3 in keyed mode with a fixed domain key
// ("tailieu.icon", zero-padded to 32 bytes). The key only provides
// domain separation; it is not secret.
//
// The API surface:
//
//   - [Sum] -- digest of an in-memory byte slice
//   - [HashFile] -- streams a file through the hasher with constant memory
//   - [Digest.String] / [ParseDigest] -- canonical hex form, used in the
//     generation record, JSON output, and log lines
//
// This package has no dependencies on other tailieu packages.
package binhash
