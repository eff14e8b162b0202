// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

// moon-launcher is the command-line front end of the Moon launcher.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/moonclient/launcher/cmd/moon-launcher/commands"
	"github.com/moonclient/launcher/lib/process"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := commands.NewApp(os.Stdout, os.Stderr).Root().Execute(ctx, os.Args[1:])
	stop()

	if err != nil {
		// Commands that already reported the failure return an ExitError.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		process.Fatal(err)
	}
}
