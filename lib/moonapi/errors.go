// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

package moonapi

import (
	"errors"
	"fmt"
)

// AuthErrorKind classifies an authentication failure.
type AuthErrorKind int

const (
	// AuthRequestFailed: no response, or the body could not be read.
	AuthRequestFailed AuthErrorKind = iota
	// AuthParseFailed: HTTP 200 with a body that is not a valid payload.
	AuthParseFailed
	AuthInvalidLoginRequest
	AuthInvalidUserAccount
	AuthHwidMismatch
	AuthNoUserFound
	AuthInternalServerError
	// AuthUnknown: non-200 with a body outside the code table.
	AuthUnknown
)

var authErrorKindNames = [...]string{
	AuthRequestFailed:       "RequestFailed",
	AuthParseFailed:         "JsonParseFailed",
	AuthInvalidLoginRequest: "InvalidLoginRequest",
	AuthInvalidUserAccount:  "InvalidUserAccount",
	AuthHwidMismatch:        "HwidMismatch",
	AuthNoUserFound:         "NoUserFound",
	AuthInternalServerError: "InternalServerError",
	AuthUnknown:             "Unknown",
}

func (k AuthErrorKind) String() string {
	if int(k) >= 0 && int(k) < len(authErrorKindNames) {
		return authErrorKindNames[k]
	}
	return fmt.Sprintf("AuthErrorKind(%d)", int(k))
}

// DownloadErrorKind classifies a download request failure.
type DownloadErrorKind int

const (
	DownloadRequestFailed DownloadErrorKind = iota
	DownloadParseFailed
	DownloadInvalidSession
	DownloadRateLimited
	DownloadInternalServerError
	DownloadInvalidUserAccount
	DownloadInsufficientPermissions
	DownloadUnknown
)

var downloadErrorKindNames = [...]string{
	DownloadRequestFailed:           "RequestFailed",
	DownloadParseFailed:             "JsonParseError",
	DownloadInvalidSession:          "InvalidSession",
	DownloadRateLimited:             "RateLimited",
	DownloadInternalServerError:     "InternalServerError",
	DownloadInvalidUserAccount:      "InvalidUserAccount",
	DownloadInsufficientPermissions: "InsufficientPermissions",
	DownloadUnknown:                 "UnknownError",
}

func (k DownloadErrorKind) String() string {
	if int(k) >= 0 && int(k) < len(downloadErrorKindNames) {
		return downloadErrorKindNames[k]
	}
	return fmt.Sprintf("DownloadErrorKind(%d)", int(k))
}

const (
	messageInvalidUserAccount  = "Please make sure you set both a HWID and a username through the discord bot"
	messageInternalServerError = "Internal server error, please create a ticket"
)

type authCode struct {
	kind    AuthErrorKind
	message string
}

var authCodes = map[string]authCode{
	"0": {AuthInvalidLoginRequest, "Invalid login request received, please open a GitHub issue"},
	"1": {AuthInvalidUserAccount, messageInvalidUserAccount},
	"2": {AuthHwidMismatch, "Your HWID does not match, please create a HWID reset"},
	"3": {AuthNoUserFound, "No user with the UID you entered could be found, please make sure you entered your UID correctly"},
	"4": {AuthInternalServerError, messageInternalServerError},
}

type downloadCode struct {
	kind    DownloadErrorKind
	message string
}

var downloadCodes = map[string]downloadCode{
	"0": {DownloadInvalidSession, "Your session expired, please restart the launcher"},
	"1": {DownloadRateLimited, "You are currently rate-limited, please wait one minute"},
	"2": {DownloadInternalServerError, messageInternalServerError},
	"3": {DownloadInvalidUserAccount, messageInvalidUserAccount},
	"4": {DownloadInsufficientPermissions, "You don't have enough permissions to download this channel"},
}

// AuthError is a failed authentication. For domain kinds Message holds
// the fixed user-facing text for the backend's code.
type AuthError struct {
	Kind AuthErrorKind
	// Message is empty for RequestFailed, ParseFailed and Unknown.
	Message string
	// StatusCode is 0 when no response was received.
	StatusCode int
	// Body is the response body as received.
	Body string
	// Err is the underlying transport or decode error, if any.
	Err error
}

// newAuthError maps a non-200 body to its kind. Unlisted bodies are
// AuthUnknown.
func newAuthError(statusCode int, body string) *AuthError {
	code, ok := authCodes[body]
	if !ok {
		return &AuthError{Kind: AuthUnknown, StatusCode: statusCode, Body: body}
	}
	return &AuthError{Kind: code.kind, Message: code.message, StatusCode: statusCode, Body: body}
}

func (e *AuthError) Error() string {
	switch {
	case e.Message != "":
		return fmt.Sprintf("moonapi: authentication: %s (%d): %s", e.Kind, e.StatusCode, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("moonapi: authentication: %s: %v", e.Kind, e.Err)
	default:
		return fmt.Sprintf("moonapi: authentication: %s (%d): %q", e.Kind, e.StatusCode, e.Body)
	}
}

func (e *AuthError) Unwrap() error { return e.Err }

// Displayable reports whether Message can be shown to the user as is.
func (e *AuthError) Displayable() bool { return e.Message != "" }

// DownloadError is a failed download request. Fields mean the same as
// in AuthError.
type DownloadError struct {
	Kind       DownloadErrorKind
	Message    string
	StatusCode int
	Body       string
	Err        error
}

func newDownloadError(statusCode int, body string) *DownloadError {
	code, ok := downloadCodes[body]
	if !ok {
		return &DownloadError{Kind: DownloadUnknown, StatusCode: statusCode, Body: body}
	}
	return &DownloadError{Kind: code.kind, Message: code.message, StatusCode: statusCode, Body: body}
}

func (e *DownloadError) Error() string {
	switch {
	case e.Message != "":
		return fmt.Sprintf("moonapi: download request: %s (%d): %s", e.Kind, e.StatusCode, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("moonapi: download request: %s: %v", e.Kind, e.Err)
	default:
		return fmt.Sprintf("moonapi: download request: %s (%d): %q", e.Kind, e.StatusCode, e.Body)
	}
}

func (e *DownloadError) Unwrap() error { return e.Err }

// Displayable reports whether Message can be shown to the user as is.
func (e *DownloadError) Displayable() bool { return e.Message != "" }

// IsAuthError checks whether err is an *AuthError of the given kind.
func IsAuthError(err error, kind AuthErrorKind) bool {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Kind == kind
	}
	return false
}

// IsDownloadError checks whether err is a *DownloadError of the given kind.
func IsDownloadError(err error, kind DownloadErrorKind) bool {
	var downloadErr *DownloadError
	if errors.As(err, &downloadErr) {
		return downloadErr.Kind == kind
	}
	return false
}
