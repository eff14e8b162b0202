// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/moonclient/launcher/cmd/moon-launcher/cli"
	"github.com/moonclient/launcher/lib/artifact"
	"github.com/moonclient/launcher/lib/config"
	"github.com/moonclient/launcher/lib/endpoint"
	"github.com/moonclient/launcher/lib/launcher"
	"github.com/moonclient/launcher/lib/location"
	"github.com/moonclient/launcher/lib/moonapi"
	"github.com/moonclient/launcher/lib/native"
	"github.com/moonclient/launcher/lib/storage"
)

// App holds the process-wide launcher runtime and output streams.
type App struct {
	stdout io.Writer
	stderr io.Writer
	theme  cli.Theme

	// Global flags.
	configPath string
	logLevel   string

	// Set by tests; nil means the production default.
	httpClient *http.Client
	linker     native.Linker
	fatal      native.FatalFunc
	logger     *slog.Logger

	config  *config.Config
	runtime *launcher.Runtime
}

// NewApp returns an App writing command output to stdout and
// diagnostics to stderr.
func NewApp(stdout, stderr io.Writer) *App {
	return &App{stdout: stdout, stderr: stderr, theme: cli.DefaultTheme}
}

// open builds the runtime on first use. Commands that need no backend
// (version, help) never call it.
func (a *App) open() (*launcher.Runtime, error) {
	if a.runtime != nil {
		return a.runtime, nil
	}

	if a.logger == nil {
		level, err := cli.ParseLevel(a.logLevel)
		if err != nil {
			return nil, err
		}
		a.logger = cli.NewCommandLogger(level)
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}

	workingDir, err := location.Ensure(cfg.Paths.WorkingDir)
	if err != nil {
		return nil, err
	}
	if cfg.Paths.GameDir != "" {
		if _, err := location.Ensure(cfg.Paths.GameDir); err != nil {
			return nil, err
		}
	}

	httpClient := a.httpClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	dispatcher := endpoint.NewDispatcher(endpoint.Config{
		HTTPClient: httpClient,
		Logger:     a.logger,
	})
	api, err := moonapi.NewClient(moonapi.Config{
		Dispatcher: dispatcher,
		BaseURL:    cfg.API.BaseURL,
		Logger:     a.logger,
	})
	if err != nil {
		return nil, err
	}

	loader, err := native.NewLoader(native.Config{
		Directory: workingDir,
		BaseURL:   cfg.Native.CDNBaseURL,
		Tag:       cfg.Native.Tag,
		Symbol:    config.DefaultNativeSymbol,
		Digest:    cfg.Native.Digest,
		Fetcher: artifact.NewFetcher(artifact.Config{
			HTTPClient: httpClient,
			Logger:     a.logger,
		}),
		Linker: a.linker,
		Fatal:  a.fatal,
		Logger: a.logger,
	})
	if err != nil {
		return nil, err
	}

	runtime, err := launcher.New(launcher.Config{
		Native:   loader,
		API:      api,
		Settings: storage.NewStore(workingDir),
		Logger:   a.logger,
	})
	if err != nil {
		return nil, err
	}

	a.config = cfg
	a.runtime = runtime
	return runtime, nil
}

func (a *App) loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if a.configPath != "" {
		cfg, err = config.LoadFile(a.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// fail reports err to the user and returns an ExitError so main does
// not print it again.
func (a *App) fail(err error) error {
	fmt.Fprintln(a.stderr, a.renderer().failure(err))
	return &cli.ExitError{Code: 1}
}

func (a *App) renderer() renderer {
	return renderer{theme: a.theme}
}
