// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

// captureExit replaces the exit and stderr hooks for the duration of
// the test and returns pointers to what was observed.
func captureExit(t *testing.T) (*int, *bytes.Buffer) {
	t.Helper()
	code := -1
	var output bytes.Buffer
	previousExit, previousStderr := exit, stderr
	exit = func(status int) { code = status }
	stderr = &output
	t.Cleanup(func() {
		exit, stderr = previousExit, previousStderr
	})
	return &code, &output
}

func TestFatal(t *testing.T) {
	code, output := captureExit(t)

	Fatal(errors.New("boom"))

	if *code != 1 {
		t.Errorf("exit code = %d, want 1", *code)
	}
	if got := output.String(); got != "error: boom\n" {
		t.Errorf("stderr = %q, want %q", got, "error: boom\n")
	}
}

func TestAbort(t *testing.T) {
	code, output := captureExit(t)

	var logOutput bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logOutput, nil))

	Abort(logger, "native module unavailable", errors.New("404"), "artifact", "liblauncher_lib.so")

	if *code != AbortExitCode {
		t.Errorf("exit code = %d, want %d", *code, AbortExitCode)
	}
	if got := output.String(); !strings.Contains(got, "native module unavailable: 404") {
		t.Errorf("stderr = %q, want diagnostic", got)
	}
	logged := logOutput.String()
	for _, want := range []string{"level=ERROR", "artifact=liblauncher_lib.so", "error=404"} {
		if !strings.Contains(logged, want) {
			t.Errorf("log output %q missing %q", logged, want)
		}
	}
}
