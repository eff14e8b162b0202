// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	got := Info()
	if !strings.HasPrefix(got, Version+" (") {
		t.Errorf("Info() = %q, want prefix %q", got, Version+" (")
	}
	if !strings.Contains(got, GitCommit) {
		t.Errorf("Info() = %q, missing commit %q", got, GitCommit)
	}
}

func TestFullIncludesPlatform(t *testing.T) {
	got := Full()
	if !strings.Contains(got, runtime.GOOS+"/"+runtime.GOARCH) {
		t.Errorf("Full() = %q, missing platform", got)
	}
	if !strings.Contains(got, runtime.Version()) {
		t.Errorf("Full() = %q, missing Go version", got)
	}
}
