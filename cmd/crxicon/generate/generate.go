// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

// Package generate implements "crxicon generate".
package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/ndt87864/tailieu-ehou/cmd/crxicon/cli"
	"github.com/ndt87864/tailieu-ehou/lib/clock"
	"github.com/ndt87864/tailieu-ehou/lib/config"
	"github.com/ndt87864/tailieu-ehou/lib/iconset"
	"github.com/ndt87864/tailieu-ehou/lib/record"
	"github.com/ndt87864/tailieu-ehou/lib/version"
)

type generateParams struct {
	cli.ConfigFlags
	cli.JSONOutput
	Source   string `json:"source"    flag:"source,s"  desc:"icon source: embedded, solid, image (default from config)"`
	Out      string `json:"out"       flag:"out,o"     desc:"output directory (default from config)"`
	Sizes    []int  `json:"sizes"     flag:"sizes"     desc:"comma-separated icon sizes (default from config)"`
	Fill     string `json:"fill"      flag:"fill"      desc:"fill colour for the solid source (default from config)"`
	Input    string `json:"input"     flag:"input,i"   desc:"master image for the image source"`
	Level    int    `json:"level"     flag:"level"     desc:"zlib level 0-9; -1 uses the config value" default:"-1"`
	Force    bool   `json:"force"     flag:"force,f"   desc:"rewrite files even when unchanged"`
	Record   bool   `json:"record"    flag:"record"    desc:"also write the generation record read by status"`
}

// Output is the --json result.
type Output struct {
	Dir     string           `json:"dir"`
	Source  string           `json:"source"`
	Icons   []iconset.Result `json:"icons"`
	Failed  []string         `json:"failed,omitempty"`
	Record  string           `json:"record,omitempty"`
	Written int              `json:"written"`
}

// Command returns the "generate" command.
func Command() *cli.Command {
	var params generateParams

	return &cli.Command{
		Name:    "generate",
		Summary: "Write icon16.png, icon48.png and icon128.png",
		Usage:   "crxicon generate [flags]",
		Description: `Render the extension icon set and write it to the output directory.

Three sources are available:

  embedded  the artwork compiled into crxicon (default)
  solid     a flat square of one colour, #667eea unless --fill is given
  image     a master image (PNG, JPEG, GIF, BMP, TIFF or WebP) resampled
            to each size; aspect ratio is kept and the remainder is
            transparent

Every rendered icon is checked before it touches the disk: signature,
chunk CRCs, chunk order, IHDR dimensions, and a full decode. Files whose
content is already identical are left alone unless --force is given.
Writes are atomic.

Every size is attempted even if one fails; failures are listed and the
command exits 1.

With --record (or output.record: true in the config) a generation
record (.icons.cbor) is also written next to the icons for
"crxicon status". Without it the directory holds only the icon files.`,
		Examples: []cli.Example{
			{
				Description: "Write the embedded icons into ./icons",
				Command:     "crxicon generate",
			},
			{
				Description: "Write solid placeholder icons in the brand colour",
				Command:     "crxicon generate --source solid",
			},
			{
				Description: "Scale one master image to every size",
				Command:     "crxicon generate --source image --input art/logo.png --out extension/icons",
			},
			{
				Description: "Add a 32px icon and force a rewrite",
				Command:     "crxicon generate --sizes 16,32,48,128 --force",
			},
			{
				Description: "Keep a generation record for \"crxicon status\"",
				Command:     "crxicon generate --record",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument %q", args[0])
			}
			return run(ctx, &params, clock.Real(), os.Stdout, logger)
		},
	}
}

// resolve merges flag overrides into the loaded configuration.
func resolve(params *generateParams) (*config.Config, error) {
	cfg, err := params.LoadConfig()
	if err != nil {
		return nil, err
	}
	if params.Source != "" {
		cfg.Source.Kind = params.Source
	}
	if params.Out != "" {
		cfg.Output.Dir = params.Out
	}
	if len(params.Sizes) > 0 {
		cfg.Output.Sizes = params.Sizes
	}
	if params.Fill != "" {
		cfg.Source.Color = params.Fill
	}
	if params.Input != "" {
		cfg.Source.Input = params.Input
	}
	if params.Level >= 0 {
		cfg.Compression.Level = params.Level
	}
	if params.Record {
		cfg.Output.Record = true
	}
	cfg.Output.Sizes = slices.Sorted(slices.Values(cfg.Output.Sizes))
	if err := cfg.Validate(); err != nil {
		return nil, cli.Validation("%w", err)
	}
	return cfg, nil
}

func run(ctx context.Context, params *generateParams, clk clock.Clock, stdout io.Writer, logger *slog.Logger) error {
	cfg, err := resolve(params)
	if err != nil {
		return err
	}

	source, err := iconset.NewSource(cfg.Source.Kind, cfg.Source.Color, cfg.Source.Input, cfg.Compression.Level)
	if err != nil {
		return cli.Validation("%w", err)
	}
	logger = logger.With("dir", cfg.Output.Dir, "source", source.Name())
	logger.Debug("generating icons", "sizes", cfg.Output.Sizes, "level", cfg.Compression.Level)

	generator := &iconset.Generator{
		Dir:    cfg.Output.Dir,
		Sizes:  cfg.Output.Sizes,
		Source: source,
		Force:  params.Force,
		Logger: logger,
	}
	results, generateErr := generator.Generate(ctx)

	output := Output{
		Dir:    cfg.Output.Dir,
		Source: source.Name(),
		Icons:  append([]iconset.Result{}, results...),
	}
	for _, result := range results {
		if result.Status == iconset.StatusWritten {
			output.Written++
		}
	}
	for _, failure := range splitErrors(generateErr) {
		output.Failed = append(output.Failed, failure.Error())
	}

	if cfg.Output.Record && len(results) > 0 {
		if err := saveRecord(cfg, newRecord(cfg, source.Name(), results, clk.Now()), logger); err != nil {
			return err
		}
		output.Record = record.Path(cfg.Output.Dir)
	}

	if done, err := params.EmitJSON(stdout, output); done {
		if err != nil {
			return err
		}
		if generateErr != nil {
			return &cli.ExitError{Code: cli.ExitFailure}
		}
		return nil
	}

	printText(stdout, output)
	if generateErr != nil {
		return &cli.ExitError{Code: cli.ExitFailure}
	}
	return nil
}

// saveRecord writes the generation record unless the existing one
// already describes the same icons.
func saveRecord(cfg *config.Config, rec *record.Record, logger *slog.Logger) error {
	existing, err := record.Load(cfg.Output.Dir)
	if err == nil && existing.SameContent(rec) {
		logger.Debug("generation record unchanged")
		return nil
	}
	if err != nil && !errors.Is(err, record.ErrNoRecord) {
		logger.Warn("replacing unreadable generation record", "error", err)
	}
	if err := record.Save(cfg.Output.Dir, rec); err != nil {
		return cli.Internal("saving generation record: %w", err)
	}
	return nil
}

func newRecord(cfg *config.Config, sourceName string, results []iconset.Result, now time.Time) *record.Record {
	rec := &record.Record{
		Source: sourceName,
		Tool:   version.Info(),
	}
	switch sourceName {
	case iconset.SourceSolid:
		if fill, err := iconset.ParseColor(cfg.Source.Color); err == nil {
			rec.Color = iconset.FormatColor(fill)
		}
	case iconset.SourceImage:
		rec.Input = cfg.Source.Input
	}
	rec.Stamp(now)
	for _, result := range results {
		rec.Icons = append(rec.Icons, record.Icon{
			Size:   result.Size,
			File:   iconset.FileName(result.Size),
			Digest: result.Digest,
		})
	}
	return rec
}

func printText(w io.Writer, output Output) {
	for _, result := range output.Icons {
		fmt.Fprintf(w, "%-9s  %s  %dx%d  %s  %s\n",
			result.Status, result.Path, result.Size, result.Size,
			humanize.Bytes(uint64(result.Bytes)), result.Digest.Short())
	}
	for _, failure := range output.Failed {
		fmt.Fprintf(w, "failed     %s\n", failure)
	}

	switch {
	case len(output.Failed) > 0:
		fmt.Fprintf(w, "Failed to create %d of %d icons in %s\n",
			len(output.Failed), len(output.Failed)+len(output.Icons), output.Dir)
	case output.Written == 0:
		fmt.Fprintf(w, "Icons in %s are up to date\n", output.Dir)
	default:
		fmt.Fprintf(w, "Icons created successfully in %s (%d written, %d unchanged)\n",
			output.Dir, output.Written, len(output.Icons)-output.Written)
	}
}

// splitErrors flattens an errors.Join result into its parts.
func splitErrors(err error) []error {
	if err == nil {
		return nil
	}
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		return joined.Unwrap()
	}
	return []error{err}
}
