// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

// Package inspect implements "crxicon inspect", a chunk-level dump of
// one PNG file.
package inspect

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/ndt87864/tailieu-ehou/cmd/crxicon/cli"
	"github.com/ndt87864/tailieu-ehou/lib/binhash"
	"github.com/ndt87864/tailieu-ehou/lib/iconset"
	"github.com/ndt87864/tailieu-ehou/lib/pngchunk"
	"github.com/ndt87864/tailieu-ehou/lib/pngverify"
)

type inspectParams struct {
	cli.JSONOutput
	cli.ColorFlags
}

// ChunkInfo describes one chunk as stored.
type ChunkInfo struct {
	Type     string `json:"type"`
	Offset   int64  `json:"offset"`
	Length   int    `json:"length"`
	CRC      string `json:"crc"`
	CRCOK    bool   `json:"crc_ok"`
	Critical bool   `json:"critical"`
}

// Inspection is everything inspect reports about a file.
type Inspection struct {
	Path   string            `json:"path"`
	Bytes  int               `json:"bytes"`
	Digest binhash.Digest    `json:"digest"`
	Chunks []ChunkInfo       `json:"chunks"`
	Error  string            `json:"error,omitempty"`
	Fill   string            `json:"fill,omitempty"`
	Report *pngverify.Report `json:"verification"`
}

// Command returns the "inspect" command.
func Command() *cli.Command {
	var params inspectParams

	return &cli.Command{
		Name:    "inspect",
		Summary: "List the chunks and header fields of a PNG file",
		Usage:   "crxicon inspect <file> [flags]",
		Description: `Dump a PNG file chunk by chunk: type, offset, length, stored CRC and
whether it matches. The IHDR fields are decoded, and when every pixel
has the same colour (as with solid icons) that colour is shown.

The conformance checks from "crxicon verify" are run as well; inspect
exits 1 when any of them fails.`,
		Examples: []cli.Example{
			{
				Description: "Inspect a generated icon",
				Command:     "crxicon inspect icons/icon16.png",
			},
			{
				Description: "Machine-readable dump",
				Command:     "crxicon inspect icons/icon128.png --json",
			},
		},
		Params: func() any { return &params },
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 1 {
				return cli.Validation("inspect takes exactly one file (got %d)", len(args))
			}
			return run(&params, args[0], os.Stdout, logger)
		},
	}
}

// Inspect reads the chunks of data. Walk errors stop the listing and
// are recorded in Error; CRC mismatches are listed, not fatal.
func Inspect(path string, data []byte) *Inspection {
	inspection := &Inspection{
		Path:   path,
		Bytes:  len(data),
		Digest: binhash.Sum(data),
		Report: pngverify.Check(data, pngverify.Expect{}),
	}
	inspection.Report.Path = path

	reader, err := pngchunk.NewReader(bytes.NewReader(data))
	if err != nil {
		inspection.Error = err.Error()
		return inspection
	}
	for {
		frame, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil && !errors.Is(err, pngchunk.ErrCRCMismatch) {
			inspection.Error = err.Error()
			break
		}
		inspection.Chunks = append(inspection.Chunks, ChunkInfo{
			Type:     frame.Type.String(),
			Offset:   frame.Offset,
			Length:   len(frame.Data),
			CRC:      fmt.Sprintf("%08x", frame.StoredCRC),
			CRCOK:    frame.CRCValid(),
			Critical: frame.Type.Critical(),
		})
	}

	if inspection.Report.OK() {
		if img, err := png.Decode(bytes.NewReader(data)); err == nil {
			if fill, ok := Uniform(img); ok {
				inspection.Fill = iconset.FormatColor(fill)
			}
		}
	}
	return inspection
}

// Uniform reports the single colour of img when every pixel is the
// same and fully opaque.
func Uniform(img image.Image) (color.NRGBA, bool) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return color.NRGBA{}, false
	}
	first := color.NRGBAModel.Convert(img.At(bounds.Min.X, bounds.Min.Y)).(color.NRGBA)
	if first.A != 0xff {
		return color.NRGBA{}, false
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA) != first {
				return color.NRGBA{}, false
			}
		}
	}
	return first, true
}

func run(params *inspectParams, path string, stdout io.Writer, logger *slog.Logger) error {
	theme, err := params.Theme(stdout)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cli.NotFound("%s: file does not exist", path)
	}
	if err != nil {
		return cli.Internal("reading %s: %w", path, err)
	}

	inspection := Inspect(path, data)
	logger.Debug("inspected", "path", path, "chunks", len(inspection.Chunks), "ok", inspection.Report.OK())

	if done, err := params.EmitJSON(stdout, inspection); done {
		if err != nil {
			return err
		}
	} else {
		render(stdout, theme, inspection)
	}

	if !inspection.Report.OK() {
		return &cli.ExitError{Code: cli.ExitFailure}
	}
	return nil
}

func render(w io.Writer, theme *cli.Theme, inspection *Inspection) {
	fmt.Fprintf(w, "%s  %s  %s\n\n",
		theme.Heading.Render(inspection.Path),
		humanize.Bytes(uint64(inspection.Bytes)),
		theme.Faint.Render(inspection.Digest.Short()))

	if header := inspection.Report.Header; header != nil {
		rows := [][]string{
			{theme.Label.Render("size"), theme.Value.Render(fmt.Sprintf("%dx%d", header.Width, header.Height))},
			{theme.Label.Render("bit depth"), fmt.Sprint(header.BitDepth)},
			{theme.Label.Render("colour type"), fmt.Sprintf("%d (%s)", header.ColorType, header.ColorType)},
			{theme.Label.Render("compression"), fmt.Sprint(header.CompressionMethod)},
			{theme.Label.Render("filter"), fmt.Sprint(header.FilterMethod)},
			{theme.Label.Render("interlace"), fmt.Sprint(header.InterlaceMethod)},
		}
		if inspection.Fill != "" {
			rows = append(rows, []string{theme.Label.Render("fill"), inspection.Fill})
		}
		fmt.Fprint(w, cli.Table(rows))
		fmt.Fprintln(w)
	}

	rows := [][]string{{
		theme.Label.Render("TYPE"),
		theme.Label.Render("OFFSET"),
		theme.Label.Render("LENGTH"),
		theme.Label.Render("CRC"),
		"",
	}}
	for _, chunk := range inspection.Chunks {
		state := theme.OK.Render("ok")
		if !chunk.CRCOK {
			state = theme.Fail.Render("mismatch")
		}
		rows = append(rows, []string{
			theme.Value.Render(chunk.Type),
			fmt.Sprint(chunk.Offset),
			fmt.Sprint(chunk.Length),
			chunk.CRC,
			state,
		})
	}
	fmt.Fprint(w, cli.Table(rows))

	if inspection.Error != "" {
		fmt.Fprintf(w, "\n%s %s\n", theme.Fail.Render("error:"), inspection.Error)
	}

	fmt.Fprintln(w)
	for _, result := range inspection.Report.Results {
		switch {
		case result.Skipped:
			fmt.Fprintf(w, "%s %s\n", theme.Faint.Render("skip"), result.Name)
		case result.OK:
			fmt.Fprintf(w, "%s   %s\n", theme.OK.Render("ok"), result.Name)
		default:
			fmt.Fprintf(w, "%s %s: %s\n", theme.Fail.Render("FAIL"), result.Name, result.Detail)
		}
	}
}
