// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !linux && !darwin && !freebsd && !windows

package hwinfo

func totalMemoryBytes() (uint64, error) {
	return 0, ErrUnsupported
}
