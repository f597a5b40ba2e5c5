// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for crxicon.
//
// Configuration comes from a single file named by either the
// TAILIEU_ICONS_CONFIG environment variable (via [Load]) or a --config
// flag (via [LoadFile]). There is no discovery and no search path.
// When neither is given, [Load] returns [Default], which reproduces the
// behaviour of generating the three Chrome icon sizes into ./icons.
//
// Variable expansion is performed on path fields after loading:
// ${HOME}, ${CONFIG_DIR} (the directory holding the config file), and
// ${VAR:-default} patterns are expanded. Other fields are taken
// literally.
//
// Unknown keys are rejected so a misspelled field fails loudly instead
// of silently falling back to its default.
//
// Key exports:
//
//   - [Config] -- Output, Source, Compression, Manifest sections
//   - [Default] -- the built-in configuration
//   - [Load] and [LoadFile] -- the two entry points for loading
package config
