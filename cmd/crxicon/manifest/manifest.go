// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

// Package manifest implements "crxicon manifest".
package manifest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/ndt87864/tailieu-ehou/cmd/crxicon/cli"
	"github.com/ndt87864/tailieu-ehou/lib/extmanifest"
	"github.com/ndt87864/tailieu-ehou/lib/iconset"
)

type manifestParams struct {
	cli.ConfigFlags
	cli.JSONOutput
	Manifest string `json:"manifest" flag:"manifest,m" desc:"path to manifest.json (default from config)"`
	Dir      string `json:"dir"      flag:"dir,d"      desc:"icon directory (default from config)"`
	Sizes    []int  `json:"sizes"    flag:"sizes"      desc:"icon sizes to reference (default from config)"`
}

// Output is the --json result.
type Output struct {
	Manifest string            `json:"manifest"`
	Icons    map[string]string `json:"icons"`
	Changed  bool              `json:"changed"`
	Missing  []string          `json:"missing,omitempty"`

	// Previous is the "icons" map the manifest held before the update.
	Previous map[string]string `json:"previous,omitempty"`
}

// Command returns the "manifest" command.
func Command() *cli.Command {
	var params manifestParams

	return &cli.Command{
		Name:    "manifest",
		Summary: "Point manifest.json at the icon set",
		Usage:   "crxicon manifest [flags]",
		Description: `Set the "icons" map of a Chrome extension manifest to the generated
icon files, and "action.default_icon" too when the manifest has an
"action". Paths are written relative to the manifest.

The manifest may contain comments and trailing commas; it is written
back as plain JSON with two-space indentation and sorted keys. An
up-to-date manifest is left untouched.`,
		Examples: []cli.Example{
			{
				Description: "Update ./manifest.json for ./icons",
				Command:     "crxicon manifest",
			},
			{
				Description: "Update a manifest elsewhere",
				Command:     "crxicon manifest --manifest extension/manifest.json --dir extension/icons",
			},
		},
		Params: func() any { return &params },
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument %q", args[0])
			}
			return run(&params, os.Stdout, logger)
		},
	}
}

func run(params *manifestParams, stdout io.Writer, logger *slog.Logger) error {
	cfg, err := params.LoadConfig()
	if err != nil {
		return err
	}
	manifestPath := cfg.Manifest.Path
	if params.Manifest != "" {
		manifestPath = params.Manifest
	}
	dir := cfg.Output.Dir
	if params.Dir != "" {
		dir = params.Dir
	}
	sizes := cfg.Output.Sizes
	if len(params.Sizes) > 0 {
		sizes = slices.Sorted(slices.Values(params.Sizes))
	}
	if err := iconset.ValidateSizes(sizes); err != nil {
		return cli.Validation("%w", err)
	}

	previous := previousIcons(manifestPath, logger)
	changed, err := extmanifest.Update(manifestPath, dir, sizes)
	if errors.Is(err, fs.ErrNotExist) {
		return cli.NotFound("%s: manifest does not exist", manifestPath)
	}
	if errors.Is(err, extmanifest.ErrNotObject) {
		return cli.Validation("%w", err)
	}
	if err != nil {
		return cli.Internal("%w", err)
	}

	relDir, err := extmanifest.RelativeDir(manifestPath, dir)
	if err != nil {
		return cli.Internal("%w", err)
	}
	output := Output{
		Manifest: manifestPath,
		Icons:    extmanifest.IconPaths(relDir, sizes),
		Changed:  changed,
		Previous: previous,
	}
	for _, size := range sizes {
		path := filepath.Join(dir, iconset.FileName(size))
		if _, err := os.Stat(path); err != nil {
			output.Missing = append(output.Missing, path)
			logger.Warn("manifest references a missing icon", "path", path)
		}
	}

	if done, err := params.EmitJSON(stdout, output); done {
		return err
	}

	if changed {
		fmt.Fprintf(stdout, "Updated %s: icons -> %s/\n", manifestPath, relDir)
		for _, key := range slices.Sorted(maps.Keys(previous)) {
			if previous[key] != output.Icons[key] {
				fmt.Fprintf(stdout, "  %s: %s (was %s)\n", key, displayPath(output.Icons[key]), previous[key])
			}
		}
	} else {
		fmt.Fprintf(stdout, "%s already references %s/\n", manifestPath, relDir)
	}
	for _, path := range output.Missing {
		fmt.Fprintf(stdout, "warning: %s does not exist; run \"crxicon generate\"\n", path)
	}
	return nil
}

// previousIcons returns the manifest's current "icons" map, or nil when
// the manifest is unreadable; Update reports that case itself.
func previousIcons(manifestPath string, logger *slog.Logger) map[string]string {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil
	}
	icons, err := extmanifest.Icons(data)
	if err != nil {
		logger.Debug("manifest has no readable icons map", "path", manifestPath, "error", err)
		return nil
	}
	return icons
}

func displayPath(path string) string {
	if path == "" {
		return "(removed)"
	}
	return path
}
