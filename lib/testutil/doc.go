// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for tailieu packages.
//
// [DecodePNG] runs bytes through the standard library PNG decoder, the
// "standard PNG reader" every generated icon must satisfy. Tests use it
// instead of calling image/png directly so that a decode failure always
// reports the same way.
//
// [WriteFile] and [ReadFile] wrap file setup and inspection inside
// t.TempDir() directories.
//
// [SizeName] formats an icon size as a subtest name ("16x16").
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no tailieu-internal dependencies.
package testutil
