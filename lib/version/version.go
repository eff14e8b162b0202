// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"runtime"
)

// Set via -ldflags, for example:
//
//	go build -ldflags "-X github.com/moonclient/launcher/lib/version.GitCommit=$(git rev-parse --short HEAD)"
var (
	// GitCommit is the short git SHA of the build.
	GitCommit = "unknown"

	// BuildTime is the UTC timestamp of the build.
	BuildTime = "unknown"

	// Version is the semantic version of the launcher.
	Version = "0.1.0-dev"
)

// Info returns a formatted version string suitable for --version output.
func Info() string {
	return fmt.Sprintf("%s (%s, %s)", Version, GitCommit, BuildTime)
}

// Full returns Info plus the Go version and target platform.
func Full() string {
	return fmt.Sprintf("%s\n  Go: %s\n  Platform: %s", Info(), runtime.Version(), Platform())
}

// Platform returns the GOOS/GOARCH pair the binary was built for. The
// native capability module is published per platform, so this string
// appears in every diagnostic about it.
func Platform() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}
