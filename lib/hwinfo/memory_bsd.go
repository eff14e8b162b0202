// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

//go:build darwin || freebsd

package hwinfo

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

func totalMemoryBytes() (uint64, error) {
	name := "hw.physmem"
	if runtime.GOOS == "darwin" {
		name = "hw.memsize"
	}
	total, err := unix.SysctlUint64(name)
	if err != nil {
		return 0, fmt.Errorf("hwinfo: sysctl %s: %w", name, err)
	}
	return total, nil
}
