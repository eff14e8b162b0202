// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

// Kind identifies one settings file.
type Kind int

const (
	// Login holds the last UID and the remember-me choice.
	Login Kind = iota
	// GameSettings holds game launch preferences.
	GameSettings
	// WineSettings is reserved for the Wine runner on non-Windows hosts.
	WineSettings
)

var kindFileNames = [...]string{
	Login:        "login",
	GameSettings: "game",
	WineSettings: "wine",
}

// FileName returns the file name (without extension) for the kind.
func (k Kind) FileName() string {
	if int(k) >= 0 && int(k) < len(kindFileNames) {
		return kindFileNames[k]
	}
	return "unknown"
}

func (k Kind) String() string {
	return k.FileName()
}

// LoginSettings is the Login blob.
type LoginSettings struct {
	UID        int64 `json:"uid"`
	RememberMe bool  `json:"remember_me"`
}

// DefaultLoginSettings is used until the user logs in once.
var DefaultLoginSettings = LoginSettings{UID: -1, RememberMe: true}

// GameSettingsData is the GameSettings blob.
type GameSettingsData struct {
	// Memory is the maximum heap given to the game, in megabytes.
	Memory int64 `json:"memory"`
}

// DefaultGameSettings is used until the user changes a game setting.
var DefaultGameSettings = GameSettingsData{Memory: 2048}

// WineSettingsData is the WineSettings blob. No fields yet.
type WineSettingsData struct{}

// Op names the storage step that failed.
type Op string

const (
	OpOpen   Op = "open"
	OpDecode Op = "decode"
	OpEncode Op = "encode"
	OpWrite  Op = "write"
)

// Error describes a failed load or save.
type Error struct {
	Kind Kind
	Op   Op
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("storage: %s %s (%s): %v", e.Op, e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Store reads and writes settings files in one directory.
type Store struct {
	dir string
}

// NewStore returns a Store rooted at dir. The directory must exist.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the file path for kind.
func (s *Store) Path(kind Kind) string {
	return filepath.Join(s.dir, kind.FileName()+".json")
}

// Load decodes the file for kind into value, which must be a non-nil
// pointer already holding the defaults. If the file does not exist the
// defaults are saved and value is left unchanged.
func (s *Store) Load(kind Kind, value any) error {
	path := s.Path(kind)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s.Save(kind, value)
	}
	if err != nil {
		return &Error{Kind: kind, Op: OpOpen, Path: path, Err: err}
	}

	if err := json.Unmarshal(jsonc.ToJSON(data), value); err != nil {
		return &Error{Kind: kind, Op: OpDecode, Path: path, Err: err}
	}
	return nil
}

// Save writes value as indented JSON to the file for kind, replacing
// any previous content atomically.
func (s *Store) Save(kind Kind, value any) error {
	path := s.Path(kind)
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return &Error{Kind: kind, Op: OpEncode, Path: path, Err: err}
	}
	if err := writeFileAtomic(path, append(data, '\n')); err != nil {
		return &Error{Kind: kind, Op: OpWrite, Path: path, Err: err}
	}
	return nil
}

// writeFileAtomic writes data to a temporary file next to path and
// renames it into place.
func writeFileAtomic(path string, data []byte) error {
	temp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		temp.Close()
		os.Remove(tempPath)
		return err
	}
	if err := temp.Close(); err != nil {
		os.Remove(tempPath)
		return err
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return err
	}
	return nil
}
