// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

// Package iconblob holds the extension icons as base64 PNG literals
// compiled into the binary, so "generate --source embedded" works with
// no input files.
package iconblob
