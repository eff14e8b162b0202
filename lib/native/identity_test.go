// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

package native

import (
	"errors"
	"strings"
	"testing"
)

func TestFetchIdentity(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantIdentity string
		wantMessage  string // substring of IdentityError.Message; empty means success
	}{
		{name: "ok", raw: `{"Ok":"B2F1-77AC-0045"}`, wantIdentity: "B2F1-77AC-0045"},
		{name: "os error", raw: `{"Err":{"OsError":"wmic exited with status 1"}}`, wantMessage: "wmic exited with status 1"},
		{name: "null pointer", raw: "", wantMessage: "no result"},
		{name: "not json", raw: "B2F1-77AC-0045", wantMessage: "malformed result"},
		{name: "empty object", raw: `{}`, wantMessage: "unexpected result shape"},
		{name: "both variants", raw: `{"Ok":"a","Err":{"OsError":"b"}}`, wantMessage: "unexpected result shape"},
		{name: "unknown error variant", raw: `{"Err":{"Utf8Error":"bad bytes"}}`, wantMessage: "unexpected result shape"},
		{name: "wrong ok type", raw: `{"Ok":42}`, wantMessage: "malformed result"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			handle := &Handle{fetch: func() string { return test.raw }}
			identity, err := handle.FetchIdentity()

			if test.wantMessage == "" {
				if err != nil {
					t.Fatalf("FetchIdentity: %v", err)
				}
				if identity != test.wantIdentity {
					t.Errorf("identity = %q, want %q", identity, test.wantIdentity)
				}
				return
			}

			var identityErr *IdentityError
			if !errors.As(err, &identityErr) {
				t.Fatalf("FetchIdentity error = %v, want *IdentityError", err)
			}
			if !strings.Contains(identityErr.Message, test.wantMessage) {
				t.Errorf("Message = %q, want it to contain %q", identityErr.Message, test.wantMessage)
			}
			if identity != "" {
				t.Errorf("identity = %q on failure, want empty", identity)
			}
		})
	}
}

func TestFetchIdentity_RecoversPanic(t *testing.T) {
	handle := &Handle{fetch: func() string { panic("segfault in serial probe") }}

	_, err := handle.FetchIdentity()
	var identityErr *IdentityError
	if !errors.As(err, &identityErr) {
		t.Fatalf("FetchIdentity error = %v, want *IdentityError", err)
	}
	if !strings.Contains(identityErr.Message, "segfault in serial probe") {
		t.Errorf("Message = %q", identityErr.Message)
	}
}

func TestFetchIdentity_FailuresNotCached(t *testing.T) {
	calls := 0
	handle := &Handle{fetch: func() string {
		calls++
		if calls == 1 {
			return `{"Err":{"OsError":"busy"}}`
		}
		return `{"Ok":"serial"}`
	}}

	if _, err := handle.FetchIdentity(); err == nil {
		t.Fatal("first call succeeded, want error")
	}
	identity, err := handle.FetchIdentity()
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if identity != "serial" || calls != 2 {
		t.Errorf("identity = %q after %d calls", identity, calls)
	}
}
