// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !darwin && !linux && !freebsd && !windows

package native

import (
	"fmt"
	"runtime"
)

type unsupportedLinker struct{}

func defaultLinker() Linker { return unsupportedLinker{} }

func (unsupportedLinker) Link(path, symbol string) (Symbol, error) {
	return nil, fmt.Errorf("dynamic linking is not supported on %s/%s", runtime.GOOS, runtime.GOARCH)
}
