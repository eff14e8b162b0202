// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

package native

import (
	"encoding/json"
	"fmt"
)

// Symbol is a resolved foreign function. It takes no arguments and
// returns the NUL-terminated string the function produced, copied into
// Go memory. A null return pointer yields "".
type Symbol func() string

// IdentityError is a failure reported by, or while decoding the result
// of, the foreign serial function.
type IdentityError struct {
	Message string
}

func (e *IdentityError) Error() string {
	return "native: fetching identity: " + e.Message
}

// Handle is a linked library with its serial function resolved.
type Handle struct {
	path  string
	fetch Symbol
}

// Path returns the file the library was linked from.
func (h *Handle) Path() string { return h.path }

// FetchIdentity calls the foreign serial function and returns the
// machine identity. The function returns a JSON document in one of two
// shapes:
//
//	{"Ok":"<serial>"}
//	{"Err":{"OsError":"<message>"}}
//
// Anything else, including a null pointer or a panic during the call,
// is reported as *IdentityError.
func (h *Handle) FetchIdentity() (identity string, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			identity = ""
			err = &IdentityError{Message: fmt.Sprintf("foreign call panicked: %v", recovered)}
		}
	}()

	return decodeResult(h.fetch())
}

type foreignResult struct {
	Ok  *string       `json:"Ok"`
	Err *foreignError `json:"Err"`
}

type foreignError struct {
	OsError *string `json:"OsError"`
}

func decodeResult(raw string) (string, error) {
	if raw == "" {
		return "", &IdentityError{Message: "foreign function returned no result"}
	}

	var result foreignResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return "", &IdentityError{Message: fmt.Sprintf("malformed result %q: %v", raw, err)}
	}

	switch {
	case result.Ok != nil && result.Err == nil:
		return *result.Ok, nil
	case result.Err != nil && result.Ok == nil && result.Err.OsError != nil:
		return "", &IdentityError{Message: *result.Err.OsError}
	default:
		return "", &IdentityError{Message: fmt.Sprintf("unexpected result shape %q", raw)}
	}
}
