// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the crxicon command tree.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ndt87864/tailieu-ehou/cmd/crxicon/cli"
	generatecmd "github.com/ndt87864/tailieu-ehou/cmd/crxicon/generate"
	inspectcmd "github.com/ndt87864/tailieu-ehou/cmd/crxicon/inspect"
	manifestcmd "github.com/ndt87864/tailieu-ehou/cmd/crxicon/manifest"
	statuscmd "github.com/ndt87864/tailieu-ehou/cmd/crxicon/status"
	verifycmd "github.com/ndt87864/tailieu-ehou/cmd/crxicon/verify"
	"github.com/ndt87864/tailieu-ehou/lib/version"
)

// Root builds and returns the complete crxicon command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "crxicon",
		Description: `crxicon: icon set generator for the Tai lieu EHOU Chrome extension.

Writes icons/icon16.png, icons/icon48.png and icons/icon128.png from
the embedded artwork, a solid colour, or a master image, checks them
against the PNG format, and keeps manifest.json pointing at them.`,
		Subcommands: []*cli.Command{
			generatecmd.Command(),
			verifycmd.Command(),
			inspectcmd.Command(),
			statuscmd.Command(),
			manifestcmd.Command(),
			versionCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Write the default icon set into ./icons",
				Command:     "crxicon generate",
			},
			{
				Description: "Write solid #667eea placeholders",
				Command:     "crxicon generate --source solid",
			},
			{
				Description: "Check the generated files",
				Command:     "crxicon verify",
			},
			{
				Description: "Reference the icons from manifest.json",
				Command:     "crxicon manifest",
			},
		},
	}
}

type versionParams struct {
	cli.JSONOutput
}

func versionCommand() *cli.Command {
	var params versionParams
	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Params:  func() any { return &params },
		Run: func(_ context.Context, _ []string, _ *slog.Logger) error {
			if done, err := params.EmitJSON(os.Stdout, version.Get()); done {
				return err
			}
			fmt.Printf("crxicon %s\n", version.Full())
			return nil
		},
	}
}
