// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

// Package record persists what `crxicon generate` produced.
//
// When enabled with `crxicon generate --record`, a [Record] is written
// next to the icons as [FileName] (".icons.cbor") in CBOR Core
// Deterministic Encoding via lib/codec. Struct fields use integer keys,
// so the file stays small and identical inputs produce identical bytes;
// a checked-in record only changes when the icons do.
//
// [Record.Drift] re-hashes the files on disk and reports each icon as
// [DriftOK], [DriftModified], or [DriftMissing]. `crxicon status` uses
// it to tell hand-edited icons from generated ones.
package record
