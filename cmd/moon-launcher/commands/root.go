// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/moonclient/launcher/cmd/moon-launcher/cli"
	"github.com/moonclient/launcher/lib/version"
)

// Root builds the moon-launcher command tree bound to a.
func (a *App) Root() *cli.Command {
	return &cli.Command{
		Name: "moon-launcher",
		Description: `Moon launcher: authenticate with the Moon backend and request client builds.

The first command that needs the machine serial downloads the native
launcher library into the working directory and links it.`,
		HelpOutput: a.stderr,
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("moon-launcher", pflag.ContinueOnError)
			flagSet.StringVar(&a.configPath, "config", "", "path to a YAML config file (default $MOON_CONFIG)")
			flagSet.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, or error")
			return flagSet
		},
		Subcommands: []*cli.Command{
			a.loginCommand(),
			a.downloadCommand(),
			a.settingsCommand(),
			a.serialCommand(),
			a.memoryCommand(),
			a.pathsCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ context.Context, _ []string) error {
					fmt.Fprintf(a.stdout, "moon-launcher %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{Description: "Log in with your UID", Command: "moon-launcher login 42"},
			{Description: "Request a download link", Command: "moon-launcher download Release version_01"},
			{Description: "Give the game 4 GB of memory", Command: "moon-launcher settings game --memory 4096"},
		},
	}
}
