// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/moonclient/launcher/cmd/moon-launcher/cli"
	"github.com/moonclient/launcher/lib/launcher"
	"github.com/moonclient/launcher/lib/moonapi"
)

type loginOptions struct {
	rememberMe bool
	json       bool
}

func (a *App) loginCommand() *cli.Command {
	var options loginOptions
	return &cli.Command{
		Name:    "login",
		Summary: "Authenticate with the backend",
		Description: `Authenticate with the backend using your UID and this machine's serial.

Without a UID argument, the UID saved by the last login is used.`,
		Usage: "moon-launcher login [uid] [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("login", pflag.ContinueOnError)
			flagSet.BoolVar(&options.rememberMe, "remember-me", true, "remember the UID for the next launch")
			flagSet.BoolVar(&options.json, "json", false, "output as JSON")
			return flagSet
		},
		Run: func(ctx context.Context, args []string) error {
			if len(args) > 1 {
				return fmt.Errorf("login takes at most one argument (got %d)", len(args))
			}
			runtime, err := a.open()
			if err != nil {
				return a.fail(err)
			}

			uid := ""
			if len(args) == 1 {
				uid = args[0]
			}
			response, err := a.login(ctx, runtime, uid, options.rememberMe)
			if err != nil {
				return a.fail(err)
			}

			if options.json {
				return cli.WriteJSON(a.stdout, response)
			}
			fmt.Fprint(a.stdout, a.renderer().session(response))
			return nil
		},
	}
}

// login authenticates with uid, or with the saved UID when uid is empty.
func (a *App) login(ctx context.Context, runtime *launcher.Runtime, uid string, rememberMe bool) (*moonapi.AuthResponse, error) {
	if uid == "" {
		saved, err := runtime.LoadLoginSettings()
		if err != nil {
			return nil, err
		}
		if saved.UID < 0 {
			return nil, fmt.Errorf("no saved UID, pass one: moon-launcher login <uid>")
		}
		uid = strconv.FormatInt(saved.UID, 10)
	}
	return runtime.Login(ctx, uid, rememberMe)
}
