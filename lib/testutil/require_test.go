// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// recordingTB captures Fatalf instead of stopping the test. Fatalf
// panics so the helper's control flow ends as it would under testing.
type recordingTB struct {
	message string
}

type fatalPanic struct{}

func (tb *recordingTB) Helper() {}

func (tb *recordingTB) Fatalf(format string, args ...any) {
	tb.message = fmt.Sprintf(format, args...)
	panic(fatalPanic{})
}

func capture(run func(tb *recordingTB)) (message string) {
	tb := &recordingTB{}
	defer func() {
		if recovered := recover(); recovered != nil {
			if _, ok := recovered.(fatalPanic); !ok {
				panic(recovered)
			}
		}
		message = tb.message
	}()
	run(tb)
	return ""
}

func TestRequireReceive(t *testing.T) {
	ch := make(chan int, 1)
	ch <- 7
	if got := RequireReceive(t, ch, time.Second, "buffered value"); got != 7 {
		t.Errorf("RequireReceive = %d, want 7", got)
	}

	message := capture(func(tb *recordingTB) {
		RequireReceive(tb, make(chan int), 10*time.Millisecond, "waiting for %s", "handle")
	})
	if !strings.Contains(message, "timed out") || !strings.Contains(message, "waiting for handle") {
		t.Errorf("timeout message = %q", message)
	}

	closed := make(chan int)
	close(closed)
	message = capture(func(tb *recordingTB) {
		RequireReceive(tb, closed, time.Second, "closed")
	})
	if !strings.Contains(message, "channel closed") {
		t.Errorf("closed message = %q", message)
	}
}

func TestRequireClosed(t *testing.T) {
	done := make(chan struct{})
	close(done)
	RequireClosed(t, done, time.Second, "already closed")

	message := capture(func(tb *recordingTB) {
		RequireClosed(tb, make(chan struct{}), 10*time.Millisecond)
	})
	if !strings.Contains(message, "(no message)") {
		t.Errorf("message = %q", message)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "login.json")
	WriteFile(t, path, `{"uid":1}`)
	data, err := os.ReadFile(path)
	if err != nil || string(data) != `{"uid":1}` {
		t.Errorf("ReadFile = %q, %v", data, err)
	}

	message := capture(func(tb *recordingTB) {
		WriteFile(tb, filepath.Join(t.TempDir(), "missing", "x.json"), "")
	})
	if !strings.Contains(message, "writing fixture") {
		t.Errorf("message = %q", message)
	}
}
