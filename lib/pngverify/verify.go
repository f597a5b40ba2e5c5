// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

// Package pngverify checks that a byte slice is a conforming PNG of an
// expected size. It runs every check it can and reports each outcome,
// rather than stopping at the first failure, so "crxicon verify" can
// show the whole picture for a damaged file.
package pngverify

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"

	"github.com/ndt87864/tailieu-ehou/lib/pngchunk"
)

// Check names, in the order they run.
const (
	CheckSignature  = "signature"
	CheckChunks     = "chunks"
	CheckCRC        = "crc"
	CheckStructure  = "structure"
	CheckDimensions = "dimensions"
	CheckDecode     = "decode"
)

// Expect is the expected image size. Zero fields are not checked.
type Expect struct {
	Width  int
	Height int
}

// Square returns an Expect for a size x size icon.
func Square(size int) Expect {
	return Expect{Width: size, Height: size}
}

// Result is the outcome of a single check.
type Result struct {
	Name    string `json:"name"`
	OK      bool   `json:"ok"`
	Skipped bool   `json:"skipped,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Report collects the results of every check on one file.
type Report struct {
	Path    string           `json:"path,omitempty"`
	Header  *pngchunk.Header `json:"header,omitempty"`
	Results []Result         `json:"results"`
}

// OK reports whether no check failed. Skipped checks do not count as
// failures.
func (r *Report) OK() bool {
	for _, result := range r.Results {
		if !result.OK && !result.Skipped {
			return false
		}
	}
	return true
}

// Err joins every failed check into one error, or returns nil.
func (r *Report) Err() error {
	var errs []error
	for _, result := range r.Results {
		if !result.OK && !result.Skipped {
			errs = append(errs, fmt.Errorf("%s: %s", result.Name, result.Detail))
		}
	}
	err := errors.Join(errs...)
	if err != nil && r.Path != "" {
		return fmt.Errorf("%s: %w", r.Path, err)
	}
	return err
}

// Result returns the result of the named check.
func (r *Report) Result(name string) (Result, bool) {
	for _, result := range r.Results {
		if result.Name == name {
			return result, true
		}
	}
	return Result{}, false
}

func (r *Report) pass(name, detail string) {
	r.Results = append(r.Results, Result{Name: name, OK: true, Detail: detail})
}

func (r *Report) fail(name, detail string) {
	r.Results = append(r.Results, Result{Name: name, Detail: detail})
}

func (r *Report) skip(names ...string) {
	for _, name := range names {
		r.Results = append(r.Results, Result{Name: name, Skipped: true, Detail: "skipped after earlier failure"})
	}
}

// Check runs every conformance check on data.
func Check(data []byte, expect Expect) *Report {
	report := &Report{}

	reader, err := pngchunk.NewReader(bytes.NewReader(data))
	if err != nil {
		report.fail(CheckSignature, err.Error())
		report.skip(CheckChunks, CheckCRC, CheckStructure, CheckDimensions, CheckDecode)
		return report
	}
	report.pass(CheckSignature, "")

	frames, crcErrs, walkErr := walk(reader)
	trailing := int64(len(data)) - reader.Offset()
	switch {
	case walkErr != nil:
		report.fail(CheckChunks, walkErr.Error())
	case trailing > 0:
		report.fail(CheckChunks, fmt.Sprintf("%d bytes after IEND", trailing))
	default:
		report.pass(CheckChunks, fmt.Sprintf("%d chunks", len(frames)))
	}

	if len(crcErrs) > 0 {
		report.fail(CheckCRC, errors.Join(crcErrs...).Error())
	} else {
		report.pass(CheckCRC, "")
	}

	if walkErr != nil {
		report.skip(CheckStructure, CheckDimensions, CheckDecode)
		return report
	}

	header, err := pngchunk.CheckStructure(frames)
	if err != nil {
		report.fail(CheckStructure, err.Error())
		report.skip(CheckDimensions, CheckDecode)
		return report
	}
	report.Header = &header
	report.pass(CheckStructure, "")

	width, height := int(header.Width), int(header.Height)
	if (expect.Width != 0 && width != expect.Width) || (expect.Height != 0 && height != expect.Height) {
		report.fail(CheckDimensions, fmt.Sprintf("IHDR declares %dx%d, want %dx%d",
			width, height, expect.Width, expect.Height))
	} else {
		report.pass(CheckDimensions, fmt.Sprintf("%dx%d", width, height))
	}

	img, err := png.Decode(bytes.NewReader(data))
	switch {
	case err != nil:
		report.fail(CheckDecode, err.Error())
	case img.Bounds().Dx() != width || img.Bounds().Dy() != height:
		report.fail(CheckDecode, fmt.Sprintf("decoded %v, IHDR declares %dx%d", img.Bounds().Size(), width, height))
	default:
		report.pass(CheckDecode, fmt.Sprintf("%T", img))
	}

	return report
}

// CheckFile reads path and runs [Check] on its contents.
func CheckFile(path string, expect Expect) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	report := Check(data, expect)
	report.Path = path
	return report, nil
}

// walk reads every chunk, collecting CRC mismatches without stopping.
// Any other error ends the walk.
func walk(reader *pngchunk.Reader) ([]pngchunk.Frame, []error, error) {
	var frames []pngchunk.Frame
	var crcErrs []error
	for {
		frame, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return frames, crcErrs, nil
		}
		if errors.Is(err, pngchunk.ErrCRCMismatch) {
			crcErrs = append(crcErrs, err)
		} else if err != nil {
			return frames, crcErrs, err
		}
		frames = append(frames, frame)
	}
}
