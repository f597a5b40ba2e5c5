// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"github.com/ndt87864/tailieu-ehou/lib/config"
)

// ConfigFlags is an embeddable parameter group adding --config and
// --verbose. Commands that read lib/config embed it and call
// [ConfigFlags.LoadConfig] before applying their own flag overrides.
type ConfigFlags struct {
	ConfigPath string `json:"-" flag:"config" desc:"config file (default: $TAILIEU_ICONS_CONFIG, else built-in defaults)"`
	Verbose    bool   `json:"-" flag:"verbose,v" desc:"log at debug level"`
}

// VerboseEnabled reports whether --verbose was given. [Command.Execute]
// checks for this method after parsing flags.
func (f *ConfigFlags) VerboseEnabled() bool {
	return f.Verbose
}

// LoadConfig loads the file named by --config, or falls back to
// [config.Load]. The result is not validated: callers apply flag
// overrides first and validate the merged configuration.
func (f *ConfigFlags) LoadConfig() (*config.Config, error) {
	if f.ConfigPath != "" {
		cfg, err := config.LoadFile(f.ConfigPath)
		if err != nil {
			return nil, Validation("loading config: %w", err)
		}
		return cfg, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, Validation("loading config from $%s: %w", config.EnvVar, err)
	}
	return cfg, nil
}
