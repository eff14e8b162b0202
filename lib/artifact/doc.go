// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

// Package artifact downloads a single remote file to a local path when
// that path does not already exist.
//
// [Fetcher.Ensure] is pure I/O. It never decides whether a failure is
// fatal; callers such as the native loader make that decision.
package artifact
