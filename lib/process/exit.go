// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// AbortExitCode is the exit status used by [Abort]. It differs from the
// generic failure code 1 so wrappers can tell an initialization abort
// from an ordinary command error.
const AbortExitCode = 70

// exit and stderr are swapped out by tests.
var (
	exit             = os.Exit
	stderr io.Writer = os.Stderr
)

// Fatal writes "error: err" to stderr and exits with code 1. Use it in
// main() for errors from run() where the structured logger may not be
// initialized.
func Fatal(err error) {
	fmt.Fprintf(stderr, "error: %v\n", err)
	exit(1)
}

// Abort logs message and err at error level, writes a one-line
// diagnostic to stderr, and exits with AbortExitCode. attrs are
// additional slog key/value pairs (for example "artifact", name). A nil
// logger falls back to slog.Default().
func Abort(logger *slog.Logger, message string, err error, attrs ...any) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Error(message, append(attrs, "error", err)...)
	fmt.Fprintf(stderr, "fatal: %s: %v\n", message, err)
	exit(AbortExitCode)
}
