// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

package native

// ArtifactName returns the platform file name of the shared library for
// a logical tag: lib<tag>.dylib on darwin, <tag>.dll on windows, and
// lib<tag>.so everywhere else.
func ArtifactName(tag, goos string) string {
	switch goos {
	case "darwin":
		return "lib" + tag + ".dylib"
	case "windows":
		return tag + ".dll"
	default:
		return "lib" + tag + ".so"
	}
}
