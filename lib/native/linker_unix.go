// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

//go:build darwin || linux || freebsd

package native

import (
	"fmt"

	"github.com/ebitengine/purego"
)

type dlopenLinker struct{}

func defaultLinker() Linker { return dlopenLinker{} }

// Link opens path with RTLD_NOW so unresolved dependencies fail here
// rather than on first call. The library is never closed.
func (dlopenLinker) Link(path, symbol string) (Symbol, error) {
	library, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("dlopen %s: %w", path, err)
	}

	address, err := purego.Dlsym(library, symbol)
	if err != nil {
		return nil, fmt.Errorf("dlsym %s: %w", symbol, err)
	}

	var call func() string
	purego.RegisterFunc(&call, address)
	return call, nil
}
