// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

// Package launcher holds the process-wide session state and the
// operations the user interface invokes against it: loading the machine
// identity, logging in, reading and writing settings, and requesting
// downloads.
//
// A [Runtime] serializes every operation behind one mutex, held across
// the network call and the state mutation that follows it. Two logins
// can therefore never interleave, and the session token always belongs
// to the most recent successful authentication.
package launcher
