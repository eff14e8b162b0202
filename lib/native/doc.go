// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

// Package native loads the launcher's platform-specific shared library
// and exposes the one function it provides: reading the machine serial
// that the backend uses as a hardware identity.
//
// The library is fetched on demand from the CDN into the working
// directory, linked at runtime, and kept for the life of the process.
// [Loader.EnsureLoaded] runs the download-and-link sequence at most once.
// The launcher cannot authenticate without the library, so any failure
// during that sequence is fatal: the loader hands it to its fatal
// handler, which by default logs and exits via [process.Abort].
//
// Per-call failures of the foreign function are not fatal. They surface
// from [Handle.FetchIdentity] as [*IdentityError] and are never cached.
//
// Linking goes through the [Linker] interface. On unix the default
// linker uses purego (dlopen/dlsym without cgo); on Windows it uses
// LoadLibrary/GetProcAddress via golang.org/x/sys/windows.
package native
