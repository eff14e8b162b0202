// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

// Package endpoint turns an endpoint description into exactly one HTTP
// GET against the launcher backend.
//
// An [Endpoint] knows its fully qualified URL (query included) and its
// [Kind]. The [Dispatcher] owns the process's shared HTTP client, stamps
// the fixed User-Agent on every request, and attaches the machine
// identity header only to [IdentityBearing] endpoints. Response status
// codes are never interpreted here; that belongs to the caller.
package endpoint
