// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/moonclient/launcher/cmd/moon-launcher/cli"
)

type downloadOptions struct {
	uid  string
	json bool
}

func (a *App) downloadCommand() *cli.Command {
	var options downloadOptions
	return &cli.Command{
		Name:    "download",
		Summary: "Request a download link for a channel version",
		Description: `Log in and request a download link for one version of a channel.

The backend rate-limits download requests to one per minute.`,
		Usage: "moon-launcher download <channel> <version> [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("download", pflag.ContinueOnError)
			flagSet.StringVar(&options.uid, "uid", "", "UID to log in with (default: the saved UID)")
			flagSet.BoolVar(&options.json, "json", false, "output as JSON")
			return flagSet
		},
		Run: func(ctx context.Context, args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("download requires <channel> and <version> (got %d arguments)", len(args))
			}
			runtime, err := a.open()
			if err != nil {
				return a.fail(err)
			}

			rememberMe := true
			if saved, err := runtime.LoadLoginSettings(); err == nil {
				rememberMe = saved.RememberMe
			}
			if _, err := a.login(ctx, runtime, options.uid, rememberMe); err != nil {
				return a.fail(err)
			}

			response, err := runtime.RequestDownload(ctx, args[0], args[1])
			if err != nil {
				return a.fail(err)
			}
			if options.json {
				return cli.WriteJSON(a.stdout, response)
			}
			fmt.Fprintln(a.stdout, response.DownloadLink)
			return nil
		},
	}
}
