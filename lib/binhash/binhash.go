// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

package binhash

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/zeebo/blake3"
)

// Digest is a 32-byte BLAKE3 digest.
type Digest [32]byte

// String returns the hex form of the digest.
func (d Digest) String() string {
	return FormatDigest(d)
}

// HashFile computes the BLAKE3 digest of the file at path, streaming
// its contents through the hasher.
func HashFile(path string) (Digest, error) {
	file, err := os.Open(path)
	if err != nil {
		return Digest{}, fmt.Errorf("opening %s for hashing: %w", path, err)
	}
	defer file.Close()

	hasher := blake3.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return Digest{}, fmt.Errorf("hashing %s: %w", path, err)
	}

	var digest Digest
	copy(digest[:], hasher.Sum(nil))
	return digest, nil
}

// HashBytes returns the BLAKE3 digest of data.
func HashBytes(data []byte) Digest {
	return Digest(blake3.Sum256(data))
}

// FormatDigest returns the lowercase hex encoding of digest. This is the
// form used in configuration files and log output.
func FormatDigest(digest Digest) string {
	return hex.EncodeToString(digest[:])
}

// ParseDigest parses a hex-encoded digest. Surrounding whitespace is
// ignored and upper-case hex is accepted.
func ParseDigest(hexString string) (Digest, error) {
	var digest Digest
	decoded, err := hex.DecodeString(strings.TrimSpace(hexString))
	if err != nil {
		return digest, fmt.Errorf("parsing hash digest: %w", err)
	}
	if len(decoded) != len(digest) {
		return digest, fmt.Errorf("hash digest is %d bytes, want %d", len(decoded), len(digest))
	}
	copy(digest[:], decoded)
	return digest, nil
}

// MismatchError reports that a file's content does not match the
// expected digest.
type MismatchError struct {
	Path     string
	Expected Digest
	Actual   Digest
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("digest mismatch for %s: expected %s, got %s", e.Path, e.Expected, e.Actual)
}

// Verify hashes the file at path and compares the result with expected.
func Verify(path string, expected Digest) error {
	actual, err := HashFile(path)
	if err != nil {
		return err
	}
	if actual != expected {
		return &MismatchError{Path: path, Expected: expected, Actual: actual}
	}
	return nil
}
