// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

package hwinfo

import "errors"

// ErrUnsupported is returned on platforms without a memory probe.
var ErrUnsupported = errors.New("hwinfo: memory probe not supported on this platform")

// MemoryProbe reports total physical memory in megabytes.
type MemoryProbe func() (uint64, error)

// TotalMemoryMB returns the host's total physical memory in megabytes.
func TotalMemoryMB() (uint64, error) {
	totalBytes, err := totalMemoryBytes()
	if err != nil {
		return 0, err
	}
	return bytesToMB(totalBytes), nil
}

func bytesToMB(bytes uint64) uint64 {
	return bytes / (1024 * 1024)
}
