// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

// Package verify implements "crxicon verify".
package verify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/ndt87864/tailieu-ehou/cmd/crxicon/cli"
	"github.com/ndt87864/tailieu-ehou/lib/iconset"
	"github.com/ndt87864/tailieu-ehou/lib/pngverify"
)

type verifyParams struct {
	cli.ConfigFlags
	cli.JSONOutput
	cli.ColorFlags
	Dir string `json:"dir" flag:"dir,d" desc:"icon directory to check when no files are given (default from config)"`
}

// Command returns the "verify" command.
func Command() *cli.Command {
	var params verifyParams

	return &cli.Command{
		Name:    "verify",
		Summary: "Check that icon files are valid PNGs of the right size",
		Usage:   "crxicon verify [file...] [flags]",
		Description: `Run the PNG conformance checks on icon files:

  signature   the 8-byte PNG signature
  chunks      every chunk is complete and nothing follows IEND
  crc         each chunk's CRC32 matches its type and data
  structure   IHDR first, IDAT present and consecutive, IEND last
  dimensions  IHDR width and height match the expected size
  decode      the standard PNG decoder reads the whole image

With no arguments, checks icon<size>.png for every configured size in
the icon directory. Named files are checked too; when a name looks like
icon<N>.png the dimensions must be NxN, otherwise any size is accepted.

Exits 1 if any file fails.`,
		Examples: []cli.Example{
			{
				Description: "Check the configured icon set",
				Command:     "crxicon verify",
			},
			{
				Description: "Check specific files",
				Command:     "crxicon verify build/icons/icon16.png logo.png",
			},
		},
		Params: func() any { return &params },
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			return run(&params, args, os.Stdout, logger)
		},
	}
}

// iconName matches the file names generate writes.
var iconName = regexp.MustCompile(`^icon([0-9]+)\.png$`)

// ExpectFor returns the dimensions implied by a file name: NxN for
// icon<N>.png, unconstrained otherwise.
func ExpectFor(path string) pngverify.Expect {
	match := iconName.FindStringSubmatch(filepath.Base(path))
	if match == nil {
		return pngverify.Expect{}
	}
	size, err := strconv.Atoi(match[1])
	if err != nil {
		return pngverify.Expect{}
	}
	return pngverify.Square(size)
}

func targets(params *verifyParams, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	cfg, err := params.LoadConfig()
	if err != nil {
		return nil, err
	}
	dir := cfg.Output.Dir
	if params.Dir != "" {
		dir = params.Dir
	}
	if err := iconset.ValidateSizes(cfg.Output.Sizes); err != nil {
		return nil, cli.Validation("output.sizes: %w", err)
	}
	paths := make([]string, 0, len(cfg.Output.Sizes))
	for _, size := range cfg.Output.Sizes {
		paths = append(paths, filepath.Join(dir, iconset.FileName(size)))
	}
	return paths, nil
}

func run(params *verifyParams, args []string, stdout io.Writer, logger *slog.Logger) error {
	theme, err := params.Theme(stdout)
	if err != nil {
		return err
	}
	paths, err := targets(params, args)
	if err != nil {
		return err
	}

	reports := make([]*pngverify.Report, 0, len(paths))
	failed := 0
	for _, path := range paths {
		report, err := pngverify.CheckFile(path, ExpectFor(path))
		if err != nil {
			detail := err.Error()
			if errors.Is(err, fs.ErrNotExist) {
				detail = "file does not exist"
			}
			report = &pngverify.Report{
				Path:    path,
				Results: []pngverify.Result{{Name: "read", Detail: detail}},
			}
		}
		if !report.OK() {
			failed++
			logger.Debug("icon failed verification", "path", path, "error", report.Err())
		}
		reports = append(reports, report)
	}

	if done, err := params.EmitJSON(stdout, reports); done {
		if err != nil {
			return err
		}
	} else {
		for _, report := range reports {
			printReport(stdout, theme, report)
		}
		if failed > 0 {
			fmt.Fprintf(stdout, "%s %d of %d files failed\n", theme.Fail.Render("FAIL"), failed, len(reports))
		} else {
			fmt.Fprintf(stdout, "%s %d files conform\n", theme.OK.Render("ok"), len(reports))
		}
	}

	if failed > 0 {
		return &cli.ExitError{Code: cli.ExitFailure}
	}
	return nil
}

func printReport(w io.Writer, theme *cli.Theme, report *pngverify.Report) {
	if report.OK() {
		size := ""
		if report.Header != nil {
			size = fmt.Sprintf("%dx%d", report.Header.Width, report.Header.Height)
		}
		fmt.Fprintf(w, "%s   %s  %s\n", theme.OK.Render("ok"), report.Path, theme.Faint.Render(size))
		return
	}

	fmt.Fprintf(w, "%s %s\n", theme.Fail.Render("FAIL"), report.Path)
	for _, result := range report.Results {
		if result.OK || result.Skipped {
			continue
		}
		fmt.Fprintf(w, "       %s: %s\n", theme.Label.Render(result.Name), result.Detail)
	}
}
