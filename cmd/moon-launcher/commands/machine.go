// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/moonclient/launcher/cmd/moon-launcher/cli"
)

func (a *App) serialCommand() *cli.Command {
	return &cli.Command{
		Name:    "serial",
		Summary: "Print this machine's serial",
		Description: `Print the machine serial the backend uses as your hardware identity.

Loads the native launcher library, downloading it first if needed.`,
		Run: func(ctx context.Context, _ []string) error {
			runtime, err := a.open()
			if err != nil {
				return a.fail(err)
			}
			identity, err := runtime.LoadIdentity(ctx)
			if err != nil {
				return a.fail(err)
			}
			fmt.Fprintln(a.stdout, identity)
			return nil
		},
	}
}

type memoryView struct {
	TotalMB      uint64 `json:"total_mb"`
	ConfiguredMB int64  `json:"configured_mb"`
}

func (a *App) memoryCommand() *cli.Command {
	var outputJSON bool
	return &cli.Command{
		Name:    "memory",
		Summary: "Show total memory and the configured game memory",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("memory", pflag.ContinueOnError)
			flagSet.BoolVar(&outputJSON, "json", false, "output as JSON")
			return flagSet
		},
		Run: func(_ context.Context, _ []string) error {
			runtime, err := a.open()
			if err != nil {
				return a.fail(err)
			}
			game, err := runtime.LoadGameSettings()
			if err != nil {
				return a.fail(err)
			}

			view := memoryView{TotalMB: runtime.MaxAvailableMemory(), ConfiguredMB: game.Memory}
			if outputJSON {
				return cli.WriteJSON(a.stdout, view)
			}
			total := "unknown"
			if view.TotalMB > 0 {
				total = fmt.Sprintf("%d MB", view.TotalMB)
			}
			fmt.Fprintf(a.stdout, "total: %s\ngame:  %d MB\n", total, view.ConfiguredMB)
			return nil
		},
	}
}

type pathsView struct {
	WorkingDir string `json:"working_dir"`
	GameDir    string `json:"game_dir"`
}

func (a *App) pathsCommand() *cli.Command {
	var outputJSON bool
	return &cli.Command{
		Name:    "paths",
		Summary: "Print the launcher and game directories",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("paths", pflag.ContinueOnError)
			flagSet.BoolVar(&outputJSON, "json", false, "output as JSON")
			return flagSet
		},
		Run: func(_ context.Context, _ []string) error {
			if _, err := a.open(); err != nil {
				return a.fail(err)
			}
			view := pathsView{WorkingDir: a.config.Paths.WorkingDir, GameDir: a.config.Paths.GameDir}
			if outputJSON {
				return cli.WriteJSON(a.stdout, view)
			}
			fmt.Fprintf(a.stdout, "settings: %s\ngame:     %s\n", view.WorkingDir, view.GameDir)
			return nil
		},
	}
}
