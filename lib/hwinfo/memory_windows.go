// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

package hwinfo

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var procGlobalMemoryStatusEx = windows.NewLazySystemDLL("kernel32.dll").NewProc("GlobalMemoryStatusEx")

// memoryStatusEx mirrors MEMORYSTATUSEX.
type memoryStatusEx struct {
	length               uint32
	memoryLoad           uint32
	totalPhys            uint64
	availPhys            uint64
	totalPageFile        uint64
	availPageFile        uint64
	totalVirtual         uint64
	availVirtual         uint64
	availExtendedVirtual uint64
}

func totalMemoryBytes() (uint64, error) {
	status := memoryStatusEx{}
	status.length = uint32(unsafe.Sizeof(status))
	ok, _, err := procGlobalMemoryStatusEx.Call(uintptr(unsafe.Pointer(&status)))
	if ok == 0 {
		return 0, fmt.Errorf("hwinfo: GlobalMemoryStatusEx: %w", err)
	}
	return status.totalPhys, nil
}
