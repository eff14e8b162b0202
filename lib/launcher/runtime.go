// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/moonclient/launcher/lib/hwinfo"
	"github.com/moonclient/launcher/lib/moonapi"
	"github.com/moonclient/launcher/lib/native"
	"github.com/moonclient/launcher/lib/storage"
)

// ErrNotAuthenticated is returned by operations that need a session
// token before Login has succeeded.
var ErrNotAuthenticated = errors.New("launcher: not logged in")

// ErrNativeUnavailable is returned when the native library handle could
// not be obtained and the fatal handler did not exit.
var ErrNativeUnavailable = errors.New("launcher: native library unavailable")

// NativeLoader provides the process-wide native library.
// *native.Loader satisfies it.
type NativeLoader interface {
	EnsureLoaded(ctx context.Context) *native.Handle
}

// API is the backend surface the runtime uses. *moonapi.Client
// satisfies it.
type API interface {
	Authenticate(ctx context.Context, identity string, uid int64) (*moonapi.AuthResponse, error)
	RequestDownload(ctx context.Context, sessionToken, channel, version string) (*moonapi.DownloadResponse, error)
}

// Settings persists settings blobs. *storage.Store satisfies it.
type Settings interface {
	Load(kind storage.Kind, value any) error
	Save(kind storage.Kind, value any) error
}

// State is the session state. The zero value is the state at startup.
type State struct {
	// Identity is the machine serial; empty until loaded.
	Identity string
	// SessionToken is empty until a login succeeds.
	SessionToken string
	// CachedLogin and CachedGame are nil until first loaded or saved.
	CachedLogin *storage.LoginSettings
	CachedGame  *storage.GameSettingsData
}

// Config holds a Runtime's collaborators.
type Config struct {
	Native   NativeLoader
	API      API
	Settings Settings

	// Memory probes total physical memory. Nil uses
	// hwinfo.TotalMemoryMB.
	Memory hwinfo.MemoryProbe

	// Logger receives operation diagnostics. Nil uses slog.Default().
	Logger *slog.Logger
}

// Runtime owns the session state.
type Runtime struct {
	native   NativeLoader
	api      API
	settings Settings
	memory   hwinfo.MemoryProbe
	logger   *slog.Logger

	mu    sync.Mutex
	state State
}

// New returns a Runtime in the startup state.
func New(config Config) (*Runtime, error) {
	if config.Native == nil {
		return nil, errors.New("launcher: native loader is required")
	}
	if config.API == nil {
		return nil, errors.New("launcher: API client is required")
	}
	if config.Settings == nil {
		return nil, errors.New("launcher: settings store is required")
	}
	memory := config.Memory
	if memory == nil {
		memory = hwinfo.TotalMemoryMB
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Runtime{
		native:   config.Native,
		api:      config.API,
		settings: config.Settings,
		memory:   memory,
		logger:   logger,
	}, nil
}

// Snapshot returns a copy of the current state.
func (r *Runtime) Snapshot() State {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := r.state
	if r.state.CachedLogin != nil {
		login := *r.state.CachedLogin
		snapshot.CachedLogin = &login
	}
	if r.state.CachedGame != nil {
		game := *r.state.CachedGame
		snapshot.CachedGame = &game
	}
	return snapshot
}

// LoadIdentity returns the machine identity, loading the native library
// and calling it on first use. Only a successful result is cached.
func (r *Runtime) LoadIdentity(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadIdentityLocked(ctx)
}

func (r *Runtime) loadIdentityLocked(ctx context.Context) (string, error) {
	if r.state.Identity != "" {
		return r.state.Identity, nil
	}

	handle := r.native.EnsureLoaded(ctx)
	if handle == nil {
		return "", ErrNativeUnavailable
	}
	identity, err := handle.FetchIdentity()
	if err != nil {
		r.logger.Warn("fetching machine identity failed", "error", err)
		return "", err
	}
	r.state.Identity = identity
	return identity, nil
}

// ParseUID converts user input to a UID. Input that is not a base-10
// int64 becomes 0, which the backend rejects as an unknown user.
func ParseUID(uid string) int64 {
	parsed, err := strconv.ParseInt(uid, 10, 64)
	if err != nil {
		return 0
	}
	return parsed
}

// Login authenticates uid with the machine identity. On success the
// session token is replaced by the returned session key. Whatever the
// outcome, the login preferences are cached and saved; a save failure
// is logged and does not affect the result.
func (r *Runtime) Login(ctx context.Context, uid string, rememberMe bool) (*moonapi.AuthResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	parsedUID := ParseUID(uid)

	identity, err := r.loadIdentityLocked(ctx)
	if err != nil {
		return nil, fmt.Errorf("launcher: loading identity: %w", err)
	}

	response, authErr := r.api.Authenticate(ctx, identity, parsedUID)
	if authErr == nil {
		r.state.SessionToken = response.SessionKey
		r.logger.Info("logged in", "uid", parsedUID, "username", response.Username, "rank", string(response.Rank))
	}

	login := storage.LoginSettings{UID: parsedUID, RememberMe: rememberMe}
	r.state.CachedLogin = &login
	if err := r.settings.Save(storage.Login, login); err != nil {
		r.logger.Warn("saving login settings failed", "error", err)
	}

	if authErr != nil {
		return nil, authErr
	}
	return response, nil
}

// LoadLoginSettings returns the cached login settings, loading them
// from disk on first use.
func (r *Runtime) LoadLoginSettings() (storage.LoginSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state.CachedLogin != nil {
		return *r.state.CachedLogin, nil
	}
	login := storage.DefaultLoginSettings
	if err := r.settings.Load(storage.Login, &login); err != nil {
		return storage.LoginSettings{}, err
	}
	r.state.CachedLogin = &login
	return login, nil
}

// LoadGameSettings returns the cached game settings, loading them from
// disk on first use.
func (r *Runtime) LoadGameSettings() (storage.GameSettingsData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state.CachedGame != nil {
		return *r.state.CachedGame, nil
	}
	game := storage.DefaultGameSettings
	if err := r.settings.Load(storage.GameSettings, &game); err != nil {
		return storage.GameSettingsData{}, err
	}
	r.state.CachedGame = &game
	return game, nil
}

// SaveGameSettings writes the game settings and, once written, caches
// them.
func (r *Runtime) SaveGameSettings(memory int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	game := storage.GameSettingsData{Memory: memory}
	if err := r.settings.Save(storage.GameSettings, game); err != nil {
		return err
	}
	r.state.CachedGame = &game
	return nil
}

// RequestDownload asks the backend for a download link using the
// current session token.
func (r *Runtime) RequestDownload(ctx context.Context, channel, version string) (*moonapi.DownloadResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state.SessionToken == "" {
		return nil, ErrNotAuthenticated
	}
	return r.api.RequestDownload(ctx, r.state.SessionToken, channel, version)
}

// MaxAvailableMemory returns total physical memory in megabytes, or 0 if
// it cannot be determined.
func (r *Runtime) MaxAvailableMemory() uint64 {
	total, err := r.memory()
	if err != nil {
		r.logger.Debug("memory probe failed", "error", err)
		return 0
	}
	return total
}
