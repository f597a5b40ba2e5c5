// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

// Package status implements "crxicon status": compare the icons on
// disk with the generation record.
package status

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/ndt87864/tailieu-ehou/cmd/crxicon/cli"
	"github.com/ndt87864/tailieu-ehou/lib/codec"
	"github.com/ndt87864/tailieu-ehou/lib/record"
)

type statusParams struct {
	cli.ConfigFlags
	cli.JSONOutput
	cli.ColorFlags
	Dir        string `json:"dir"        flag:"dir,d"      desc:"icon directory (default from config)"`
	Diagnostic bool   `json:"diagnostic" flag:"diagnostic" desc:"also print the record in CBOR diagnostic notation"`
}

// Output is the --json result.
type Output struct {
	Dir    string         `json:"dir"`
	Record *record.Record `json:"record"`
	Icons  []record.Drift `json:"icons"`
	Clean  bool           `json:"clean"`

	// Diagnostic is the record file in CBOR diagnostic notation, set
	// with --diagnostic.
	Diagnostic string `json:"diagnostic,omitempty"`
}

// Command returns the "status" command.
func Command() *cli.Command {
	var params statusParams

	return &cli.Command{
		Name:    "status",
		Summary: "Show whether icons still match the last generate run",
		Usage:   "crxicon status [flags]",
		Description: `Compare each icon in the icon directory with the digest stored in
the generation record (.icons.cbor) by the last "crxicon generate".

Each icon is reported as:

  ok        unchanged since it was generated
  modified  the file was edited or replaced
  missing   the file was deleted

The record is only written by "crxicon generate --record" (or with
output.record: true in the config). Without one there is nothing to
compare against, and status says so and exits 1.

Exits 1 when any icon is modified or missing, or when there is no
record.`,
		Examples: []cli.Example{
			{
				Description: "Check the configured icon directory",
				Command:     "crxicon status",
			},
			{
				Description: "Check another directory, as JSON",
				Command:     "crxicon status --dir extension/icons --json",
			},
			{
				Description: "Dump the raw record",
				Command:     "crxicon status --diagnostic",
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

func run(params *statusParams, stdout io.Writer, logger *slog.Logger) error {
	theme, err := params.Theme(stdout)
	if err != nil {
		return err
	}
	dir := params.Dir
	if dir == "" {
		cfg, err := params.LoadConfig()
		if err != nil {
			return err
		}
		dir = cfg.Output.Dir
	}

	rec, err := record.Load(dir)
	if errors.Is(err, record.ErrNoRecord) {
		logger.Debug("no generation record", "path", record.Path(dir))
		if done, err := params.EmitJSON(stdout, Output{Dir: dir, Icons: []record.Drift{}}); done {
			if err != nil {
				return err
			}
		} else {
			fmt.Fprintf(stdout, "No generation record in %s.\n", dir)
			fmt.Fprintln(stdout, `Records are opt-in: run "crxicon generate --record" or set output.record: true in the config.`)
		}
		return &cli.ExitError{Code: cli.ExitFailure}
	}
	if err != nil {
		return cli.Internal("%w", err)
	}

	drifts, err := rec.Drift(dir)
	if err != nil {
		return cli.Internal("checking icons in %s: %w", dir, err)
	}
	output := Output{Dir: dir, Record: rec, Icons: drifts, Clean: record.Clean(drifts)}
	if params.Diagnostic {
		if output.Diagnostic, err = diagnose(dir); err != nil {
			return cli.Internal("%w", err)
		}
	}
	logger.Debug("compared icons with record", "dir", dir, "icons", len(drifts), "clean", output.Clean)

	if done, err := params.EmitJSON(stdout, output); done {
		if err != nil {
			return err
		}
	} else {
		render(stdout, theme, output)
	}

	if !output.Clean {
		return &cli.ExitError{Code: cli.ExitFailure}
	}
	return nil
}

func render(w io.Writer, theme *cli.Theme, output Output) {
	source := output.Record.Source
	switch {
	case output.Record.Color != "":
		source += " " + output.Record.Color
	case output.Record.Input != "":
		source += " " + output.Record.Input
	}
	fmt.Fprintf(w, "%s  %s\n", theme.Heading.Render(output.Dir), theme.Faint.Render(fmt.Sprintf(
		"%s, generated %s by crxicon %s", source, output.Record.GeneratedAt, output.Record.Tool)))

	rows := make([][]string, 0, len(output.Icons))
	for _, drift := range output.Icons {
		var state string
		switch drift.State {
		case record.DriftOK:
			state = theme.OK.Render(string(drift.State))
		case record.DriftModified:
			state = theme.Warn.Render(string(drift.State))
		default:
			state = theme.Fail.Render(string(drift.State))
		}
		rows = append(rows, []string{
			state,
			drift.File,
			strconv.Itoa(drift.Size) + "px",
			theme.Faint.Render(drift.Digest.Short()),
		})
	}
	fmt.Fprint(w, cli.Table(rows))

	if output.Diagnostic != "" {
		fmt.Fprintf(w, "\n%s\n%s\n", theme.Label.Render(record.FileName), output.Diagnostic)
	}
}

// diagnose renders the record file under dir in CBOR diagnostic
// notation.
func diagnose(dir string) (string, error) {
	path := record.Path(dir)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	diagnostic, err := codec.Diagnose(data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return diagnostic, nil
}
