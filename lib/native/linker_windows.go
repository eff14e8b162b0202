// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

//go:build windows

package native

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

type dllLinker struct{}

func defaultLinker() Linker { return dllLinker{} }

// Link loads path with LoadLibrary and resolves symbol. The DLL stays
// loaded for the life of the process.
func (dllLinker) Link(path, symbol string) (Symbol, error) {
	dll, err := windows.LoadDLL(path)
	if err != nil {
		return nil, fmt.Errorf("LoadLibrary %s: %w", path, err)
	}

	proc, err := dll.FindProc(symbol)
	if err != nil {
		return nil, fmt.Errorf("GetProcAddress %s: %w", symbol, err)
	}

	return func() string {
		result, _, _ := proc.Call()
		if result == 0 {
			return ""
		}
		return windows.BytePtrToString((*byte)(unsafe.Pointer(result)))
	}, nil
}
