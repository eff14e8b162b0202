// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers.
//
// [RequireReceive] and [RequireClosed] wrap the select-with-timeout
// pattern so tests that coordinate goroutines fail instead of hanging.
// [WriteFile] creates a fixture file and fails the test on error.
//
// All helpers call t.Fatalf on failure rather than returning errors.
package testutil
