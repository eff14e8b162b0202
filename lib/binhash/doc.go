// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

// Package binhash provides BLAKE3 content hashing for the native
// capability module and other downloaded binaries.
//
// The launcher trusts the native module by file name alone unless a
// digest is pinned in configuration. When one is pinned, [Verify]
// compares the on-disk artifact against it before the loader links the
// file, so a stale or tampered library is rejected instead of being
// called into.
//
//   - [HashFile] -- streams a file through BLAKE3 with constant memory
//   - [FormatDigest] / [ParseDigest] -- canonical lowercase hex form
//   - [Verify] -- hash a file and compare, returning [*MismatchError]
//
// This package has no dependencies on other launcher packages.
package binhash
