// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the moon-launcher command tree and wires the
// launcher runtime behind it: configuration, the shared HTTP
// dispatcher, the backend client, the native library loader, and the
// settings store. Each process builds exactly one of each.
package commands
