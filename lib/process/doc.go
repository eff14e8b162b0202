// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

// Package process provides the launcher's process-exit helpers. These
// are the only places outside the command surface that write to stderr
// or terminate the process:
//
//   - [Fatal] reports an error from main() when the structured logger
//     may not be initialized yet.
//   - [Abort] is the deliberate fail-fast path for conditions the
//     launcher cannot operate without (the native capability module).
//     It logs through the structured logger, mirrors the diagnostic to
//     stderr, and exits with [AbortExitCode].
package process
