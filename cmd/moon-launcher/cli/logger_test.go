// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, test := range tests {
		got, err := ParseLevel(test.input)
		if err != nil {
			t.Errorf("ParseLevel(%q): %v", test.input, err)
			continue
		}
		if got != test.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", test.input, got, test.want)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Error("ParseLevel(verbose) succeeded")
	}
}

func TestNewLogger_HandlerSelection(t *testing.T) {
	var jsonOutput bytes.Buffer
	newLogger(&jsonOutput, false, slog.LevelInfo).Info("hello", "artifact", "liblauncher_lib.so")
	var record map[string]any
	if err := json.Unmarshal(jsonOutput.Bytes(), &record); err != nil {
		t.Fatalf("non-terminal output is not JSON: %q", jsonOutput.String())
	}
	if record["artifact"] != "liblauncher_lib.so" {
		t.Errorf("record = %v", record)
	}

	var textOutput bytes.Buffer
	textLogger := newLogger(&textOutput, true, slog.LevelWarn)
	textLogger.Info("dropped")
	textLogger.Warn("kept")
	if strings.Contains(textOutput.String(), "dropped") {
		t.Error("info record written at warn level")
	}
	if !strings.Contains(textOutput.String(), "msg=kept") {
		t.Errorf("text output = %q", textOutput.String())
	}
}

func TestWriteJSON_NilSlice(t *testing.T) {
	var output bytes.Buffer
	var channels []string
	if err := WriteJSON(&output, channels); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if got := strings.TrimSpace(output.String()); got != "[]" {
		t.Errorf("WriteJSON(nil slice) = %q, want []", got)
	}
}
