// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "crxicon",
		Subcommands: []*Command{
			{
				Name: "generate",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					called = "generate"
					return nil
				},
			},
			{
				Name: "verify",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					called = "verify"
					return nil
				},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"verify"}, discardLogger()); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "verify" {
		t.Errorf("dispatched to %q, want %q", called, "verify")
	}
}

func TestCommand_Execute_PassesContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "marker")

	var got any
	root := &Command{
		Name: "crxicon",
		Subcommands: []*Command{{
			Name: "status",
			Run: func(ctx context.Context, _ []string, _ *slog.Logger) error {
				got = ctx.Value(key{})
				return nil
			},
		}},
	}
	if err := root.Execute(ctx, []string{"status"}, discardLogger()); err != nil {
		t.Fatal(err)
	}
	if got != "marker" {
		t.Errorf("context value = %v, want marker", got)
	}
}

func TestCommand_Execute_ParamsFlags(t *testing.T) {
	var params struct {
		Dir   string `flag:"dir" default:"icons"`
		Sizes []int  `flag:"sizes"`
		Force bool   `flag:"force,f"`
	}
	var receivedArgs []string

	command := &Command{
		Name:   "generate",
		Params: func() any { return &params },
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			receivedArgs = args
			return nil
		},
	}

	err := command.Execute(context.Background(), []string{"--sizes", "16,32", "-f", "extra"}, discardLogger())
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if params.Dir != "icons" {
		t.Errorf("Dir = %q, want default icons", params.Dir)
	}
	if len(params.Sizes) != 2 || params.Sizes[0] != 16 || params.Sizes[1] != 32 {
		t.Errorf("Sizes = %v, want [16 32]", params.Sizes)
	}
	if !params.Force {
		t.Error("Force not set by -f")
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "extra" {
		t.Errorf("args = %v, want [extra]", receivedArgs)
	}
}

func TestCommand_Execute_UnknownFlagSuggestion(t *testing.T) {
	command := &Command{
		Name: "generate",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("generate", pflag.ContinueOnError)
			flagSet.Bool("force", false, "rewrite unchanged files")
			flagSet.String("source", "embedded", "icon source")
			return flagSet
		},
		Run: func(context.Context, []string, *slog.Logger) error { return nil },
	}

	err := command.Execute(context.Background(), []string{"--sorce", "solid"}, discardLogger())
	if err == nil {
		t.Fatal("expected error for unknown flag")
	}
	if !strings.Contains(err.Error(), "did you mean --source?") {
		t.Errorf("error = %q, want suggestion for --source", err)
	}
	if ExitCodeFor(err) != ExitUsage {
		t.Errorf("exit code = %d, want %d", ExitCodeFor(err), ExitUsage)
	}
}

func TestCommand_Execute_UnknownSubcommandSuggestion(t *testing.T) {
	root := &Command{
		Name: "crxicon",
		Subcommands: []*Command{
			{Name: "generate", Run: func(context.Context, []string, *slog.Logger) error { return nil }},
			{Name: "verify", Run: func(context.Context, []string, *slog.Logger) error { return nil }},
		},
	}

	err := root.Execute(context.Background(), []string{"genrate"}, discardLogger())
	if err == nil {
		t.Fatal("expected error for unknown subcommand")
	}
	if !strings.Contains(err.Error(), `did you mean "generate"?`) {
		t.Errorf("error = %q, want suggestion", err)
	}

	err = root.Execute(context.Background(), []string{"zzzzzzzzzz"}, discardLogger())
	if err == nil || strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %v, want no suggestion for distant input", err)
	}
}

func TestCommand_Execute_SubcommandRequired(t *testing.T) {
	root := &Command{
		Name:        "crxicon",
		Subcommands: []*Command{{Name: "generate"}},
	}
	err := root.Execute(context.Background(), nil, discardLogger())
	var toolError *ToolError
	if !errors.As(err, &toolError) || toolError.Category != CategoryValidation {
		t.Errorf("error = %v, want validation error", err)
	}
}

func TestCommand_Execute_HelpFlag(t *testing.T) {
	ran := false
	command := &Command{
		Name:   "inspect",
		Params: func() any { return &struct{}{} },
		Run: func(context.Context, []string, *slog.Logger) error {
			ran = true
			return nil
		},
	}
	for _, args := range [][]string{{"--help"}, {"-h"}, {"help"}, {"file.png", "--help"}} {
		if err := command.Execute(context.Background(), args, discardLogger()); err != nil {
			t.Errorf("Execute(%v) error: %v", args, err)
		}
	}
	if ran {
		t.Error("Run invoked despite help request")
	}
}

func TestCommand_Execute_VerboseLowersLogLevel(t *testing.T) {
	t.Cleanup(func() { SetVerbose(false) })

	var params struct {
		ConfigFlags
	}
	var buffer bytes.Buffer
	logger := newLogger(&buffer, false)

	command := &Command{
		Name:   "status",
		Params: func() any { return &params },
		Run: func(_ context.Context, _ []string, logger *slog.Logger) error {
			logger.Debug("debug detail")
			return nil
		},
	}

	if err := command.Execute(context.Background(), nil, logger); err != nil {
		t.Fatal(err)
	}
	if buffer.Len() != 0 {
		t.Errorf("debug line logged without --verbose: %s", buffer.String())
	}

	if err := command.Execute(context.Background(), []string{"-v"}, logger); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buffer.String(), "debug detail") {
		t.Errorf("debug line missing with --verbose: %q", buffer.String())
	}
	if !strings.Contains(buffer.String(), `"command":"status"`) {
		t.Errorf("logger not scoped with command: %q", buffer.String())
	}
}

func TestCommand_PrintHelp(t *testing.T) {
	var params struct {
		Dir string `flag:"dir" desc:"icon directory" default:"icons"`
	}
	root := &Command{Name: "crxicon"}
	command := &Command{
		Name:        "verify",
		Summary:     "Check icons",
		Description: "Check every icon file.",
		Usage:       "crxicon verify [file...] [flags]",
		Params:      func() any { return &params },
		Examples: []Example{
			{Description: "Check the default set", Command: "crxicon verify"},
		},
		parent: root,
	}
	root.Subcommands = []*Command{command}

	var buffer bytes.Buffer
	command.PrintHelp(&buffer)
	output := buffer.String()
	for _, want := range []string{
		"Check every icon file.",
		"Usage:\n  crxicon verify [file...] [flags]",
		"--dir string",
		"icon directory",
		"# Check the default set",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("help missing %q:\n%s", want, output)
		}
	}

	buffer.Reset()
	root.PrintHelp(&buffer)
	if !strings.Contains(buffer.String(), "verify") || !strings.Contains(buffer.String(), "Check icons") {
		t.Errorf("root help missing subcommand listing:\n%s", buffer.String())
	}
}
