// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

// Package netutil provides bounded HTTP response reads for the launcher.
//
// Every response body the launcher consumes is read into memory: API
// responses are small JSON documents or single-character error codes,
// and the native capability module is a few megabytes at most. The
// helpers here cap those reads so a misbehaving server or a poisoned
// CDN cache cannot exhaust memory.
package netutil

import (
	"fmt"
	"io"
	"strings"
)

const (
	// MaxResponseSize bounds API response body reads: 16 MB. Real
	// responses (channel lists, download links) are a few kilobytes.
	MaxResponseSize int64 = 16 << 20

	// MaxArtifactSize bounds downloads of binary artifacts: 256 MB.
	MaxArtifactSize int64 = 256 << 20
)

// ReadResponse reads an API response body up to MaxResponseSize bytes.
// Use instead of io.ReadAll when reading HTTP response bodies.
func ReadResponse(body io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(body, MaxResponseSize))
}

// ReadText reads an API response body as UTF-8 text. Invalid byte
// sequences are replaced with U+FFFD rather than rejected, so an error
// code body is always available for matching and diagnostics.
func ReadText(body io.Reader) (string, error) {
	data, err := ReadResponse(body)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(data), "\uFFFD"), nil
}

// ReadArtifact reads a binary artifact body up to MaxArtifactSize. A
// body that reaches the limit is reported as an error instead of being
// silently truncated: a truncated shared library would fail much later
// and much less clearly, at link time.
func ReadArtifact(body io.Reader) ([]byte, error) {
	return readBounded(body, MaxArtifactSize)
}

func readBounded(body io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(body, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("artifact exceeds %d bytes", limit)
	}
	return data, nil
}

// ErrorBody reads an HTTP error response body and returns it as a
// string for diagnostic messages. Read errors are ignored; a partial or
// empty body is still useful in an error message.
func ErrorBody(body io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(body, 4<<10))
	return string(data)
}
