// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

package native

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/moonclient/launcher/lib/binhash"
	"github.com/moonclient/launcher/lib/process"
)

// Fetcher makes sure a remote artifact exists at a local path.
// *artifact.Fetcher satisfies it.
type Fetcher interface {
	Ensure(ctx context.Context, url, path string) (fetched bool, err error)
}

// Linker links a shared library and resolves one function from it.
type Linker interface {
	Link(path, symbol string) (Symbol, error)
}

// FatalFunc handles an unrecoverable load failure. The default is
// [process.Abort], which does not return.
type FatalFunc func(logger *slog.Logger, message string, err error, attrs ...any)

// Config configures a Loader.
type Config struct {
	// Directory is where the library is stored. Required.
	Directory string

	// BaseURL is the CDN prefix the library is downloaded from. The
	// artifact name is appended verbatim, so it should end in "/".
	// Required.
	BaseURL string

	// Tag is the logical library name (for example "launcher_lib").
	// Required.
	Tag string

	// Symbol is the foreign function to resolve. Required.
	Symbol string

	// Digest, if non-empty, is the expected BLAKE3 digest of the
	// library in hex. A mismatch is fatal.
	Digest string

	// GOOS selects the artifact naming scheme. Empty uses runtime.GOOS.
	GOOS string

	// Fetcher downloads the library when it is absent. Required.
	Fetcher Fetcher

	// Linker links the library. Nil uses the platform default.
	Linker Linker

	// Fatal is called when loading fails. Nil uses process.Abort.
	Fatal FatalFunc

	// Logger receives load progress. Nil uses slog.Default().
	Logger *slog.Logger
}

// Loader owns the process-wide native library.
type Loader struct {
	directory string
	baseURL   string
	symbol    string
	name      string
	digest    *binhash.Digest
	fetcher   Fetcher
	linker    Linker
	fatal     FatalFunc
	logger    *slog.Logger

	once   sync.Once
	handle *Handle
}

// NewLoader validates config and returns a Loader. Nothing is downloaded
// or linked until the first EnsureLoaded call.
func NewLoader(config Config) (*Loader, error) {
	var problems []error
	if config.Directory == "" {
		problems = append(problems, errors.New("directory is required"))
	}
	if config.BaseURL == "" {
		problems = append(problems, errors.New("base URL is required"))
	}
	if config.Tag == "" {
		problems = append(problems, errors.New("tag is required"))
	} else if strings.ContainsAny(config.Tag, `/\`) {
		problems = append(problems, fmt.Errorf("tag %q must not contain path separators", config.Tag))
	}
	if config.Symbol == "" {
		problems = append(problems, errors.New("symbol is required"))
	}
	if config.Fetcher == nil {
		problems = append(problems, errors.New("fetcher is required"))
	}

	var digest *binhash.Digest
	if config.Digest != "" {
		parsed, err := binhash.ParseDigest(config.Digest)
		if err != nil {
			problems = append(problems, fmt.Errorf("digest: %w", err))
		} else {
			digest = &parsed
		}
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("native: invalid loader config: %w", errors.Join(problems...))
	}

	goos := config.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	linker := config.Linker
	if linker == nil {
		linker = defaultLinker()
	}
	fatal := config.Fatal
	if fatal == nil {
		fatal = process.Abort
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Loader{
		directory: config.Directory,
		baseURL:   config.BaseURL,
		symbol:    config.Symbol,
		name:      ArtifactName(config.Tag, goos),
		digest:    digest,
		fetcher:   config.Fetcher,
		linker:    linker,
		fatal:     fatal,
		logger:    logger,
	}, nil
}

// ArtifactName returns the file name of the library this loader manages.
func (l *Loader) ArtifactName() string { return l.name }

// ArtifactPath returns where the library is stored on disk.
func (l *Loader) ArtifactPath() string { return filepath.Join(l.directory, l.name) }

// EnsureLoaded returns the process-wide handle, downloading and linking
// the library on the first call. Concurrent first callers block until
// the single load attempt finishes and then share its handle.
//
// A load failure is passed to the fatal handler. EnsureLoaded returns
// nil only when that handler returns instead of exiting.
func (l *Loader) EnsureLoaded(ctx context.Context) *Handle {
	l.once.Do(func() {
		handle, err := l.load(ctx)
		if err != nil {
			l.fatal(l.logger, "loading native library", err,
				"artifact", l.name, "path", l.ArtifactPath())
			return
		}
		l.handle = handle
	})
	return l.handle
}

func (l *Loader) load(ctx context.Context) (*Handle, error) {
	path := l.ArtifactPath()
	url := l.baseURL + l.name

	fetched, err := l.fetcher.Ensure(ctx, url, path)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", l.name, err)
	}
	if !fetched {
		l.logger.Debug("native library already present", "path", path)
	}

	if l.digest != nil {
		if err := binhash.Verify(path, *l.digest); err != nil {
			return nil, fmt.Errorf("verifying %s: %w", l.name, err)
		}
	}

	fetch, err := l.linker.Link(path, l.symbol)
	if err != nil {
		return nil, fmt.Errorf("linking %s: %w", l.name, err)
	}

	l.logger.Info("native library loaded", "artifact", l.name, "symbol", l.symbol)
	return &Handle{path: path, fetch: fetch}, nil
}
