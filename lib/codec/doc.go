// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the repository's CBOR encoding configuration.
//
// Two serialization formats are used, with a clear boundary:
//
//   - JSON for anything a person or another tool reads: CLI --json
//     output and the extension's manifest.json.
//   - CBOR for state the tool writes for itself: the generation record
//     kept next to the icons (see lib/record).
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items. The
// same record always produces identical bytes, so regenerating an
// unchanged icon set leaves the record file byte-identical too.
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// Types implementing encoding.TextMarshaler (binhash.Digest) are
// encoded as CBOR text strings, which keeps [Diagnose] output readable.
package codec
