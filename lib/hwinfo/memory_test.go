// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

package hwinfo

import (
	"errors"
	"runtime"
	"testing"
)

func TestBytesToMB(t *testing.T) {
	tests := []struct {
		bytes uint64
		want  uint64
	}{
		{0, 0},
		{1024*1024 - 1, 0},
		{1024 * 1024, 1},
		{16 << 30, 16384},
	}
	for _, test := range tests {
		if got := bytesToMB(test.bytes); got != test.want {
			t.Errorf("bytesToMB(%d) = %d, want %d", test.bytes, got, test.want)
		}
	}
}

func TestTotalMemoryMB(t *testing.T) {
	total, err := TotalMemoryMB()
	switch runtime.GOOS {
	case "linux", "darwin", "freebsd", "windows":
		if err != nil {
			t.Fatalf("TotalMemoryMB: %v", err)
		}
		if total == 0 {
			t.Error("TotalMemoryMB = 0 on a supported platform")
		}
	default:
		if !errors.Is(err, ErrUnsupported) {
			t.Errorf("TotalMemoryMB error = %v, want ErrUnsupported", err)
		}
	}
}
