// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

// Package location resolves the launcher's on-disk directories.
//
// The working directory holds the native capability module and the JSON
// settings files; the game directory is the Minecraft installation the
// launcher manages. Both live under the platform's per-user data
// directory:
//
//   - Windows: %APPDATA% (Roaming)
//   - macOS: ~/Library/Application Support
//   - Linux and other unix: $XDG_DATA_HOME, else ~/.local/share
package location

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const (
	// WorkingDirectoryName is the launcher's directory under the data directory.
	WorkingDirectoryName = ".moon"

	// GameDirectoryName is the game's directory under the data directory.
	GameDirectoryName = ".minecraft"
)

// ErrNoDataDirectory is returned when neither the platform variables nor
// a home directory are available to anchor the data directory.
var ErrNoDataDirectory = errors.New("location: unable to determine the user data directory")

// DataDirectory returns the per-user data directory for the running
// platform.
func DataDirectory() (string, error) {
	return dataDirectory(runtime.GOOS, os.Getenv, os.UserHomeDir)
}

func dataDirectory(goos string, getenv func(string) string, home func() (string, error)) (string, error) {
	switch goos {
	case "windows":
		if appData := getenv("APPDATA"); appData != "" {
			return appData, nil
		}
		return "", ErrNoDataDirectory
	case "darwin":
		homeDir, err := home()
		if err != nil || homeDir == "" {
			return "", ErrNoDataDirectory
		}
		return filepath.Join(homeDir, "Library", "Application Support"), nil
	default:
		if xdg := getenv("XDG_DATA_HOME"); filepath.IsAbs(xdg) {
			return xdg, nil
		}
		homeDir, err := home()
		if err != nil || homeDir == "" {
			return "", ErrNoDataDirectory
		}
		return filepath.Join(homeDir, ".local", "share"), nil
	}
}

// WorkingDirectory returns the default launcher working directory
// without creating it.
func WorkingDirectory() (string, error) {
	base, err := DataDirectory()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, WorkingDirectoryName), nil
}

// GameDirectory returns the default game directory without creating it.
func GameDirectory() (string, error) {
	base, err := DataDirectory()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, GameDirectoryName), nil
}

// Ensure creates path (and parents) if it does not exist and returns it.
// The launcher cannot operate without its working directory, so callers
// treat an error here as fatal.
func Ensure(path string) (string, error) {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return "", fmt.Errorf("location: creating %s: %w", path, err)
	}
	return path, nil
}
