// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

package binhash

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zeebo/blake3"
)

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestHashFile(t *testing.T) {
	content := []byte("hello, moon")
	path := writeFile(t, "liblauncher_lib.so", content)

	got, err := HashFile(path)
	if err != nil {
		t.Fatalf("HashFile: %v", err)
	}

	want := Digest(blake3.Sum256(content))
	if got != want {
		t.Errorf("HashFile = %s, want %s", got, want)
	}
	if got != HashBytes(content) {
		t.Errorf("HashFile and HashBytes disagree: %s vs %s", got, HashBytes(content))
	}
}

func TestHashFileLarge(t *testing.T) {
	content := make([]byte, 256*1024)
	for i := range content {
		content[i] = byte(i % 251)
	}
	path := writeFile(t, "large", content)

	got, err := HashFile(path)
	if err != nil {
		t.Fatalf("HashFile: %v", err)
	}
	if got != HashBytes(content) {
		t.Errorf("HashFile(large) = %s, want %s", got, HashBytes(content))
	}
}

func TestHashFileNonexistent(t *testing.T) {
	if _, err := HashFile(filepath.Join(t.TempDir(), "does-not-exist")); err == nil {
		t.Fatal("HashFile should fail for nonexistent file")
	}
}

func TestFormatParseDigest(t *testing.T) {
	original := HashBytes([]byte("format check"))
	formatted := FormatDigest(original)
	if len(formatted) != 64 {
		t.Fatalf("FormatDigest length = %d, want 64", len(formatted))
	}

	parsed, err := ParseDigest("  " + strings.ToUpper(formatted) + "\n")
	if err != nil {
		t.Fatalf("ParseDigest: %v", err)
	}
	if parsed != original {
		t.Errorf("round trip = %s, want %s", parsed, original)
	}
}

func TestParseDigestInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not hex", "zzzz"},
		{"too short", "abcd"},
		{"too long", strings.Repeat("ab", 33)},
		{"empty", ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := ParseDigest(test.input); err == nil {
				t.Errorf("ParseDigest(%q) should fail", test.input)
			}
		})
	}
}

func TestVerify(t *testing.T) {
	content := []byte("native module bytes")
	path := writeFile(t, "module", content)

	if err := Verify(path, HashBytes(content)); err != nil {
		t.Fatalf("Verify with matching digest: %v", err)
	}

	err := Verify(path, HashBytes([]byte("something else")))
	var mismatch *MismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("Verify with wrong digest = %v, want *MismatchError", err)
	}
	if mismatch.Actual != HashBytes(content) {
		t.Errorf("Actual = %s, want %s", mismatch.Actual, HashBytes(content))
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q should name the file", err)
	}
}
