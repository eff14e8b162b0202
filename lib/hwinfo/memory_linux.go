// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

package hwinfo

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// totalMemoryBytes reads total RAM from sysinfo(2).
func totalMemoryBytes() (uint64, error) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0, fmt.Errorf("hwinfo: sysinfo: %w", err)
	}
	return uint64(info.Totalram) * uint64(info.Unit), nil
}
