// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

// Package version reports build information for the crxicon binary.
//
// Three variables are injected at build time via -ldflags -X:
//
//   - [GitCommit] -- short git SHA of the build
//   - [GitDirty] -- "true" if there were uncommitted changes
//   - [BuildTime] -- UTC timestamp of the build
//
// [Version] is set manually for releases. When the linker did not
// inject a commit, [Get] falls back to the VCS stamp the Go toolchain
// embeds in module builds, so `go install` binaries still report where
// they came from.
//
// The commit is also written into the generation record (see
// lib/record) so a checked-in icon set names the tool that produced it.
package version
