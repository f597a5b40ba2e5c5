// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

package verify

import (
	"bytes"
	"encoding/json"
	"errors"
	"image/color"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/ndt87864/tailieu-ehou/cmd/crxicon/cli"
	"github.com/ndt87864/tailieu-ehou/lib/config"
	"github.com/ndt87864/tailieu-ehou/lib/iconblob"
	"github.com/ndt87864/tailieu-ehou/lib/pngbuild"
	"github.com/ndt87864/tailieu-ehou/lib/pngverify"
	"github.com/ndt87864/tailieu-ehou/lib/testutil"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

var testColor = color.NRGBA{R: 0x66, G: 0x7e, B: 0xea, A: 0xff}

func TestExpectFor(t *testing.T) {
	tests := []struct {
		path string
		want pngverify.Expect
	}{
		{"icons/icon16.png", pngverify.Square(16)},
		{"/abs/icon128.png", pngverify.Square(128)},
		{"logo.png", pngverify.Expect{}},
		{"icon16.png.bak", pngverify.Expect{}},
		{"myicon16.png", pngverify.Expect{}},
	}
	for _, test := range tests {
		if got := ExpectFor(test.path); got != test.want {
			t.Errorf("ExpectFor(%q) = %+v, want %+v", test.path, got, test.want)
		}
	}
}

func TestRun_DefaultSet(t *testing.T) {
	t.Setenv(config.EnvVar, "")
	dir := t.TempDir()
	for _, size := range []int{16, 48, 128} {
		data, err := iconblob.Decode(size)
		if err != nil {
			t.Fatal(err)
		}
		testutil.WriteFile(t, dir, "icon"+strconv.Itoa(size)+".png", data)
	}

	params := &verifyParams{Dir: dir}
	params.Color = cli.ColorNever
	var stdout bytes.Buffer
	if err := run(params, nil, &stdout, discardLogger()); err != nil {
		t.Fatalf("run: %v\n%s", err, stdout.String())
	}
	if !strings.Contains(stdout.String(), "3 files conform") {
		t.Errorf("output:\n%s", stdout.String())
	}
}

func TestRun_ReportsFailures(t *testing.T) {
	dir := t.TempDir()
	good, err := pngbuild.Solid(16, 16, testColor)
	if err != nil {
		t.Fatal(err)
	}
	wrongSize, err := pngbuild.Solid(20, 20, testColor)
	if err != nil {
		t.Fatal(err)
	}
	corrupt := bytes.Clone(good)
	corrupt[len(corrupt)-20] ^= 0xff

	paths := []string{
		testutil.WriteFile(t, dir, "icon16.png", good),
		testutil.WriteFile(t, dir, "icon48.png", wrongSize),
		testutil.WriteFile(t, dir, "other.png", corrupt),
		filepath.Join(dir, "icon128.png"),
	}

	params := &verifyParams{}
	params.Color = cli.ColorNever
	var stdout bytes.Buffer
	err = run(params, paths, &stdout, discardLogger())
	var exitError *cli.ExitError
	if !errors.As(err, &exitError) || exitError.Code != 1 {
		t.Fatalf("run error = %v, want exit code 1", err)
	}

	output := stdout.String()
	for _, want := range []string{
		"ok   " + paths[0],
		"FAIL " + paths[1],
		"dimensions: IHDR declares 20x20, want 48x48",
		"FAIL " + paths[2],
		"crc:",
		"FAIL " + paths[3],
		"read: file does not exist",
		"3 of 4 files failed",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestRun_JSON(t *testing.T) {
	dir := t.TempDir()
	good, err := pngbuild.Solid(48, 48, testColor)
	if err != nil {
		t.Fatal(err)
	}
	path := testutil.WriteFile(t, dir, "icon48.png", good)

	params := &verifyParams{}
	params.OutputJSON = true
	var stdout bytes.Buffer
	if err := run(params, []string{path}, &stdout, discardLogger()); err != nil {
		t.Fatalf("run: %v", err)
	}

	var reports []pngverify.Report
	if err := json.Unmarshal(stdout.Bytes(), &reports); err != nil {
		t.Fatalf("decoding JSON: %v\n%s", err, stdout.String())
	}
	if len(reports) != 1 || reports[0].Path != path || !reports[0].OK() {
		t.Errorf("reports = %+v", reports)
	}
	if reports[0].Header == nil || reports[0].Header.Width != 48 {
		t.Errorf("header = %+v", reports[0].Header)
	}
}
