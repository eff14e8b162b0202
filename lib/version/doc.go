// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

// Package version provides build version information for the launcher
// binary.
//
// Three package-level variables are injected at build time via
// -ldflags -X:
//
//   - [GitCommit] -- short git SHA of the build
//   - [BuildTime] -- UTC timestamp of the build
//   - [Version] -- semantic version string (set manually for releases)
//
// They default to "unknown" / "0.1.0-dev" in development builds and
// test runs. [Info] formats them for --version output; [Full] adds the
// Go toolchain and GOOS/GOARCH, which is what the launcher logs at
// startup so that native-module load failures can be matched to a
// platform.
package version
