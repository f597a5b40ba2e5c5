// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/ndt87864/tailieu-ehou/lib/iconset"
	"github.com/ndt87864/tailieu-ehou/lib/pngbuild"
)

// EnvVar names the environment variable [Load] reads.
const EnvVar = "TAILIEU_ICONS_CONFIG"

// Config is the complete crxicon configuration.
type Config struct {
	// Output configures where icons go and which sizes are produced.
	Output OutputConfig `yaml:"output"`

	// Source selects how icon pixels are produced.
	Source SourceConfig `yaml:"source"`

	// Compression configures zlib for sources that encode PNGs.
	Compression CompressionConfig `yaml:"compression"`

	// Manifest locates the extension manifest updated by
	// `crxicon manifest`.
	Manifest ManifestConfig `yaml:"manifest"`
}

// OutputConfig configures the icon directory.
type OutputConfig struct {
	// Dir receives icon<size>.png files.
	// Default: icons
	Dir string `yaml:"dir"`

	// Sizes lists the edge lengths to generate.
	// Default: [16, 48, 128]
	Sizes []int `yaml:"sizes"`

	// Record writes the generation record (.icons.cbor) into Dir
	// after each generate run. Off by default so Dir holds only the
	// icons that ship with the extension.
	// Default: false
	Record bool `yaml:"record"`
}

// SourceConfig selects the icon source.
type SourceConfig struct {
	// Kind is one of embedded, solid, image.
	// Default: embedded
	Kind string `yaml:"kind"`

	// Color is the solid fill as "#rrggbb".
	// Default: #667eea
	Color string `yaml:"color"`

	// Input is the master image for the image source.
	Input string `yaml:"input"`
}

// CompressionConfig configures the zlib stream inside IDAT.
type CompressionConfig struct {
	// Level is 0 (store) through 9 (best).
	// Default: 9
	Level int `yaml:"level"`
}

// ManifestConfig locates the Chrome extension manifest.
type ManifestConfig struct {
	// Path is the manifest.json to update.
	// Default: manifest.json
	Path string `yaml:"path"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:   "icons",
			Sizes: slices.Clone(iconset.DefaultSizes),
		},
		Source: SourceConfig{
			Kind:  iconset.SourceEmbedded,
			Color: iconset.DefaultColor,
		},
		Compression: CompressionConfig{
			Level: 9,
		},
		Manifest: ManifestConfig{
			Path: "manifest.json",
		},
	}
}

// Load loads configuration from the file named by TAILIEU_ICONS_CONFIG.
// When the variable is unset the defaults are returned.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvVar)
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path. Values not
// present in the file keep their defaults. output.sizes is sorted
// ascending.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	slices.Sort(cfg.Output.Sizes)

	configDir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	cfg.expandVariables(configDir)

	return cfg, nil
}

// loadFile decodes a single file over the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables(configDir string) {
	vars := map[string]string{
		"CONFIG_DIR": configDir,
		"HOME":       os.Getenv("HOME"),
	}

	c.Output.Dir = expandVars(c.Output.Dir, vars)
	c.Source.Input = expandVars(c.Source.Input, vars)
	c.Manifest.Path = expandVars(c.Manifest.Path, vars)
}

// expandVars expands ${VAR} and ${VAR:-default} patterns.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors. Every problem is
// reported, not just the first.
func (c *Config) Validate() error {
	var errs []error

	if c.Output.Dir == "" {
		errs = append(errs, fmt.Errorf("output.dir is required"))
	}
	if err := iconset.ValidateSizes(c.Output.Sizes); err != nil {
		errs = append(errs, fmt.Errorf("output.sizes: %w", err))
	}

	if !slices.Contains(iconset.SourceNames, c.Source.Kind) {
		errs = append(errs, fmt.Errorf("source.kind must be one of: %v", iconset.SourceNames))
	}
	if c.Source.Kind == iconset.SourceSolid {
		if _, err := iconset.ParseColor(c.Source.Color); err != nil {
			errs = append(errs, fmt.Errorf("source.color: %w", err))
		}
	}
	if c.Source.Kind == iconset.SourceImage && c.Source.Input == "" {
		errs = append(errs, fmt.Errorf("source.input is required for source.kind %q", iconset.SourceImage))
	}

	if err := pngbuild.ValidateLevel(c.Compression.Level); err != nil {
		errs = append(errs, fmt.Errorf("compression.level: %w", err))
	}

	if c.Manifest.Path == "" {
		errs = append(errs, fmt.Errorf("manifest.path is required"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
