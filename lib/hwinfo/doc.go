// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

// Package hwinfo probes the host for the facts the launcher needs when
// sizing the game process. Today that is total physical memory, read
// from sysinfo(2) on Linux, the hw.memsize/hw.physmem sysctls on the
// BSDs and macOS, and GlobalMemoryStatusEx on Windows.
package hwinfo
