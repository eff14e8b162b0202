// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/moonclient/launcher/cmd/moon-launcher/cli"
	"github.com/moonclient/launcher/lib/storage"
)

type settingsView struct {
	Login storage.LoginSettings    `json:"login"`
	Game  storage.GameSettingsData `json:"game"`
}

func (a *App) settingsCommand() *cli.Command {
	return &cli.Command{
		Name:    "settings",
		Summary: "Show or change saved settings",
		Subcommands: []*cli.Command{
			a.settingsShowCommand(),
			a.settingsGameCommand(),
		},
	}
}

func (a *App) settingsShowCommand() *cli.Command {
	var outputJSON bool
	return &cli.Command{
		Name:    "show",
		Summary: "Show login and game settings",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("show", pflag.ContinueOnError)
			flagSet.BoolVar(&outputJSON, "json", false, "output as JSON")
			return flagSet
		},
		Run: func(_ context.Context, _ []string) error {
			runtime, err := a.open()
			if err != nil {
				return a.fail(err)
			}
			login, err := runtime.LoadLoginSettings()
			if err != nil {
				return a.fail(err)
			}
			game, err := runtime.LoadGameSettings()
			if err != nil {
				return a.fail(err)
			}

			view := settingsView{Login: login, Game: game}
			if outputJSON {
				return cli.WriteJSON(a.stdout, view)
			}

			render := a.renderer()
			uid := "not set"
			if login.UID >= 0 {
				uid = fmt.Sprint(login.UID)
			}
			fmt.Fprintf(a.stdout, "%s\n  uid: %s\n  remember me: %t\n", render.heading("Login"), uid, login.RememberMe)
			fmt.Fprintf(a.stdout, "%s\n  memory: %d MB\n", render.heading("Game"), game.Memory)
			return nil
		},
	}
}

func (a *App) settingsGameCommand() *cli.Command {
	var memory int64
	return &cli.Command{
		Name:    "game",
		Summary: "Set game settings",
		Usage:   "moon-launcher settings game --memory <MB>",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("game", pflag.ContinueOnError)
			flagSet.Int64Var(&memory, "memory", 0, "maximum game heap in MB")
			return flagSet
		},
		Run: func(_ context.Context, _ []string) error {
			if memory <= 0 {
				return errors.New("--memory must be a positive number of megabytes")
			}
			runtime, err := a.open()
			if err != nil {
				return a.fail(err)
			}

			if total := runtime.MaxAvailableMemory(); total > 0 && uint64(memory) > total {
				fmt.Fprintln(a.stderr, a.renderer().warning(
					fmt.Sprintf("warning: %d MB is more than this machine's %d MB of memory", memory, total)))
			}
			if err := runtime.SaveGameSettings(memory); err != nil {
				return a.fail(err)
			}
			fmt.Fprintf(a.stdout, "%s memory set to %d MB\n", a.renderer().success("Saved:"), memory)
			return nil
		},
	}
}
