// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for crxicon.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a flag source, and a Run
// function. Commands are assembled into a tree in cmd/crxicon/commands
// and dispatched via [Command.Execute], which handles flag parsing,
// subcommand routing, and structured help output with examples.
//
// Flags are declared as tagged struct fields and bound with
// [FlagsFromParams]. Embeddable parameter groups carry the flags shared
// by most commands:
//
//   - [JSONOutput] adds --json and [JSONOutput.EmitJSON].
//   - [ConfigFlags] adds --config and --verbose and loads lib/config.
//   - [ColorFlags] adds --color for lipgloss-styled output.
//
// When a user types an unknown subcommand or flag, the framework computes
// Levenshtein edit distance against all known names and suggests the
// closest match (threshold: distance <= 3). This is implemented in
// suggest.go.
//
// Errors returned by Run are classified by main: [ExitError] carries a
// code for commands that already printed their own report, and
// [Validation] marks bad input, which exits 2 instead of 1.
package cli
