// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

// Package iconset renders and writes the extension's icon set: one
// square PNG per size, named icon<size>.png, in a single directory.
//
// A [Source] turns a size into PNG bytes. Three sources exist:
//
//   - [EmbeddedSource] decodes the base64 literals in lib/iconblob
//   - [SolidSource] builds a single-colour RGB PNG with lib/pngbuild
//   - [ImageSource] resamples one master image to every size
//
// [Generator.Generate] renders each size, verifies the bytes with
// lib/pngverify, and writes them atomically. A file whose BLAKE3
// digest already matches the rendered bytes is left untouched.
//
// Every size is attempted even when an earlier one fails; failures are
// returned together via errors.Join alongside the results that did
// succeed.
package iconset
