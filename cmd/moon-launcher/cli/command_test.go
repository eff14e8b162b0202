// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "moon-launcher",
		Subcommands: []*Command{
			{Name: "version", Run: func(ctx context.Context, args []string) error { called = "version"; return nil }},
			{Name: "login", Run: func(ctx context.Context, args []string) error { called = "login"; return nil }},
		},
	}

	if err := root.Execute(context.Background(), []string{"login"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "login" {
		t.Errorf("dispatched to %q, want %q", called, "login")
	}
}

func TestCommand_Execute_NestedSubcommands(t *testing.T) {
	var called string
	var receivedArgs []string

	root := &Command{
		Name: "moon-launcher",
		Subcommands: []*Command{{
			Name: "settings",
			Subcommands: []*Command{{
				Name: "game",
				Run: func(ctx context.Context, args []string) error {
					called = "settings game"
					receivedArgs = args
					return nil
				},
			}},
		}},
	}

	if err := root.Execute(context.Background(), []string{"settings", "game", "extra"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "settings game" {
		t.Errorf("dispatched to %q", called)
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "extra" {
		t.Errorf("args = %v, want [extra]", receivedArgs)
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	var memory int64
	var rest []string

	command := &Command{
		Name: "game",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("game", pflag.ContinueOnError)
			flagSet.Int64Var(&memory, "memory", 0, "heap size in MB")
			return flagSet
		},
		Run: func(ctx context.Context, args []string) error {
			rest = args
			return nil
		},
	}

	if err := command.Execute(context.Background(), []string{"--memory", "4096", "tail"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if memory != 4096 {
		t.Errorf("memory = %d, want 4096", memory)
	}
	if len(rest) != 1 || rest[0] != "tail" {
		t.Errorf("args = %v", rest)
	}
}

func TestCommand_Execute_GlobalFlagsBeforeSubcommand(t *testing.T) {
	var configPath string
	var subArgs []string

	root := &Command{
		Name: "moon-launcher",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("moon-launcher", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "config file")
			return flagSet
		},
		Subcommands: []*Command{{
			Name: "serial",
			Flags: func() *pflag.FlagSet {
				return pflag.NewFlagSet("serial", pflag.ContinueOnError)
			},
			Run: func(ctx context.Context, args []string) error {
				subArgs = args
				return nil
			},
		}},
	}

	if err := root.Execute(context.Background(), []string{"--config", "/etc/moon.yaml", "serial", "x"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if configPath != "/etc/moon.yaml" {
		t.Errorf("config = %q", configPath)
	}
	if len(subArgs) != 1 || subArgs[0] != "x" {
		t.Errorf("subcommand args = %v", subArgs)
	}
}

func TestCommand_Execute_UnknownCommandSuggests(t *testing.T) {
	root := &Command{
		Name: "moon-launcher",
		Subcommands: []*Command{
			{Name: "login", Run: func(ctx context.Context, args []string) error { return nil }},
			{Name: "download", Run: func(ctx context.Context, args []string) error { return nil }},
		},
	}

	err := root.Execute(context.Background(), []string{"logn"})
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if !strings.Contains(err.Error(), `did you mean "login"`) {
		t.Errorf("error = %q, want suggestion for login", err)
	}

	err = root.Execute(context.Background(), []string{"zzzzzzzz"})
	if err == nil || strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %v, want no suggestion", err)
	}
}

func TestCommand_Execute_UnknownFlagSuggests(t *testing.T) {
	command := &Command{
		Name: "login",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("login", pflag.ContinueOnError)
			flagSet.Bool("remember-me", true, "")
			return flagSet
		},
		Run: func(ctx context.Context, args []string) error { return nil },
	}

	err := command.Execute(context.Background(), []string{"--remember-mee"})
	if err == nil {
		t.Fatal("expected error for unknown flag")
	}
	if !strings.Contains(err.Error(), "did you mean --remember-me") {
		t.Errorf("error = %q", err)
	}
}

func TestCommand_Execute_Help(t *testing.T) {
	var output bytes.Buffer
	ran := false
	root := &Command{
		Name:        "moon-launcher",
		Description: "Moon launcher command line.",
		HelpOutput:  &output,
		Subcommands: []*Command{{
			Name:    "memory",
			Summary: "Show memory",
			Flags: func() *pflag.FlagSet {
				flagSet := pflag.NewFlagSet("memory", pflag.ContinueOnError)
				flagSet.Bool("json", false, "output as JSON")
				return flagSet
			},
			Examples: []Example{{Description: "Show memory", Command: "moon-launcher memory"}},
			Run:      func(ctx context.Context, args []string) error { ran = true; return nil },
		}},
	}

	if err := root.Execute(context.Background(), []string{"--help"}); err != nil {
		t.Fatalf("Execute(--help) error: %v", err)
	}
	help := output.String()
	for _, fragment := range []string{"Moon launcher command line.", "Commands:", "memory", "Show memory"} {
		if !strings.Contains(help, fragment) {
			t.Errorf("root help missing %q:\n%s", fragment, help)
		}
	}

	output.Reset()
	if err := root.Execute(context.Background(), []string{"memory", "--help"}); err != nil {
		t.Fatalf("Execute(memory --help) error: %v", err)
	}
	if ran {
		t.Error("Run executed for --help")
	}
	help = output.String()
	for _, fragment := range []string{"moon-launcher memory", "--json", "Examples:"} {
		if !strings.Contains(help, fragment) {
			t.Errorf("memory help missing %q:\n%s", fragment, help)
		}
	}
}

func TestCommand_Execute_SubcommandRequired(t *testing.T) {
	var output bytes.Buffer
	root := &Command{
		Name:        "moon-launcher",
		HelpOutput:  &output,
		Subcommands: []*Command{{Name: "version", Run: func(ctx context.Context, args []string) error { return nil }}},
	}
	if err := root.Execute(context.Background(), nil); err == nil {
		t.Fatal("expected error when no subcommand given")
	}
	if !strings.Contains(output.String(), "Commands:") {
		t.Errorf("help not printed: %q", output.String())
	}
}
