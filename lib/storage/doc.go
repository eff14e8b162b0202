// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

// Package storage persists the launcher's small preference blobs as JSON
// files in the working directory, one file per [Kind] (login.json,
// game.json, wine.json).
//
// [Store.Load] decodes into a caller-provided value that already holds
// the defaults. A missing file is not an error: the defaults are written
// out and left in place, so the next launch finds a file the user can
// edit. Files are read leniently (comments and trailing commas are
// accepted, since users do hand-edit them) and written atomically
// through a temporary file and rename.
package storage
