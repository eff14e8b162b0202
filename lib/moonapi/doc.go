// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

// Package moonapi is the client for the Moon launcher backend.
//
// It defines the two backend endpoints the launcher uses, authentication
// and download requests, and interprets their responses. The backend
// signals domain failures with a non-200 status and a bare one-digit body
// ("0" through "4"), whose meaning differs per endpoint. Those map to
// [AuthError] and [DownloadError] values whose Message is safe to show
// to the user verbatim. A 200 response carries a JSON payload.
//
// Callers can use errors.As, or the [IsAuthError] and [IsDownloadError]
// helpers:
//
//	if moonapi.IsAuthError(err, moonapi.AuthHwidMismatch) { ... }
package moonapi
