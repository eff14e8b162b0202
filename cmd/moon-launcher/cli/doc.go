// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the small command framework behind moon-launcher: a
// tree of [Command] values with pflag-based flags, typo suggestions for
// unknown commands and flags, generated help, the command logger, and
// the lipgloss theme used for terminal output.
package cli
