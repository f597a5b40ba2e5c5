// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Output.Dir != "icons" {
		t.Errorf("expected output.dir=icons, got %s", cfg.Output.Dir)
	}

	if !slices.Equal(cfg.Output.Sizes, []int{16, 48, 128}) {
		t.Errorf("expected output.sizes=[16 48 128], got %v", cfg.Output.Sizes)
	}

	if cfg.Source.Kind != "embedded" {
		t.Errorf("expected source.kind=embedded, got %s", cfg.Source.Kind)
	}

	if cfg.Source.Color != "#667eea" {
		t.Errorf("expected source.color=#667eea, got %s", cfg.Source.Color)
	}

	if cfg.Compression.Level != 9 {
		t.Errorf("expected compression.level=9, got %d", cfg.Compression.Level)
	}

	if cfg.Output.Record {
		t.Error("expected output.record=false by default")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestDefault_SizesAreACopy(t *testing.T) {
	cfg := Default()
	cfg.Output.Sizes[0] = 999
	if Default().Output.Sizes[0] != 16 {
		t.Error("mutating one Default() changed another")
	}
}

func TestLoad_WithoutEnvUsesDefaults(t *testing.T) {
	t.Setenv(EnvVar, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Output.Dir != "icons" || cfg.Source.Kind != "embedded" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_WithEnv(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "crxicon.yaml")

	configContent := `
source:
  kind: solid
  color: "#ff8800"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv(EnvVar, configPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Source.Kind != "solid" {
		t.Errorf("expected source.kind=solid, got %s", cfg.Source.Kind)
	}
	if cfg.Source.Color != "#ff8800" {
		t.Errorf("expected source.color=#ff8800, got %s", cfg.Source.Color)
	}
	// Unset sections keep their defaults.
	if cfg.Output.Dir != "icons" {
		t.Errorf("expected output.dir=icons, got %s", cfg.Output.Dir)
	}
}

func TestLoadFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "crxicon.yaml")

	configContent := `
output:
  dir: ${CONFIG_DIR}/extension/icons
  sizes: [32, 16]
  record: true

source:
  kind: image
  input: ${ICON_MASTER:-art/master.png}

compression:
  level: 0

manifest:
  path: ${CONFIG_DIR}/extension/manifest.json
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv("ICON_MASTER", "")

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if want := filepath.Join(tmpDir, "extension", "icons"); cfg.Output.Dir != want {
		t.Errorf("expected output.dir=%s, got %s", want, cfg.Output.Dir)
	}
	if !slices.Equal(cfg.Output.Sizes, []int{16, 32}) {
		t.Errorf("expected sizes sorted to [16 32], got %v", cfg.Output.Sizes)
	}
	if !cfg.Output.Record {
		t.Error("expected output.record=true")
	}
	if cfg.Source.Input != "art/master.png" {
		t.Errorf("expected source.input=art/master.png, got %s", cfg.Source.Input)
	}
	if cfg.Compression.Level != 0 {
		t.Errorf("expected compression.level=0, got %d", cfg.Compression.Level)
	}
	if want := filepath.Join(tmpDir, "extension", "manifest.json"); cfg.Manifest.Path != want {
		t.Errorf("expected manifest.path=%s, got %s", want, cfg.Manifest.Path)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadFile_Empty(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(configPath, nil, 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile of empty file: %v", err)
	}
	if cfg.Output.Dir != "icons" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadFile_UnknownField(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "typo.yaml")
	if err := os.WriteFile(configPath, []byte("output:\n  directory: icons\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFile(configPath)
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
	if !strings.Contains(err.Error(), "directory") {
		t.Errorf("error %q does not name the unknown field", err)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestExpandVars(t *testing.T) {
	tests := []struct {
		input    string
		vars     map[string]string
		expected string
	}{
		{
			input:    "${HOME}/icons",
			vars:     map[string]string{"HOME": "/home/user"},
			expected: "/home/user/icons",
		},
		{
			input:    "${CRXICON_TEST_MISSING:-fallback}",
			vars:     map[string]string{},
			expected: "fallback",
		},
		{
			input:    "${PRESENT:-fallback}",
			vars:     map[string]string{"PRESENT": "value"},
			expected: "value",
		},
		{
			input:    "${A}/${B}",
			vars:     map[string]string{"A": "first", "B": "second"},
			expected: "first/second",
		},
		{
			input:    "no variables here",
			vars:     map[string]string{},
			expected: "no variables here",
		},
	}

	for _, tt := range tests {
		result := expandVars(tt.input, tt.vars)
		if result != tt.expected {
			t.Errorf("expandVars(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:   "valid default config",
			modify: func(c *Config) {},
		},
		{
			name:    "empty output dir",
			modify:  func(c *Config) { c.Output.Dir = "" },
			wantErr: "output.dir",
		},
		{
			name:    "no sizes",
			modify:  func(c *Config) { c.Output.Sizes = nil },
			wantErr: "output.sizes",
		},
		{
			name:    "duplicate size",
			modify:  func(c *Config) { c.Output.Sizes = []int{16, 16} },
			wantErr: "listed twice",
		},
		{
			name:    "unknown source",
			modify:  func(c *Config) { c.Source.Kind = "svg" },
			wantErr: "source.kind",
		},
		{
			name: "bad colour for solid",
			modify: func(c *Config) {
				c.Source.Kind = "solid"
				c.Source.Color = "#12"
			},
			wantErr: "source.color",
		},
		{
			name:   "bad colour ignored for embedded",
			modify: func(c *Config) { c.Source.Color = "not a colour" },
		},
		{
			name:    "image without input",
			modify:  func(c *Config) { c.Source.Kind = "image" },
			wantErr: "source.input",
		},
		{
			name:    "level out of range",
			modify:  func(c *Config) { c.Compression.Level = 11 },
			wantErr: "compression.level",
		},
		{
			name:    "empty manifest path",
			modify:  func(c *Config) { c.Manifest.Path = "" },
			wantErr: "manifest.path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Output.Dir = ""
	cfg.Compression.Level = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"output.dir", "compression.level"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err, want)
		}
	}
}
