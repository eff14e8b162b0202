// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

package artifact

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/moonclient/launcher/lib/netutil"
)

// DownloadError reports a non-2xx response from the artifact server.
type DownloadError struct {
	URL        string
	StatusCode int
	// Body is a bounded excerpt of the response body, for diagnostics.
	Body string
}

func (e *DownloadError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("artifact: GET %s: HTTP %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("artifact: GET %s: HTTP %d: %s", e.URL, e.StatusCode, e.Body)
}

// Config configures a Fetcher.
type Config struct {
	// HTTPClient performs the download. Nil uses http.DefaultClient.
	HTTPClient *http.Client

	// Logger receives download progress. Nil uses slog.Default().
	Logger *slog.Logger
}

// Fetcher ensures that artifacts exist on disk.
type Fetcher struct {
	client *http.Client
	logger *slog.Logger
}

// NewFetcher returns a Fetcher built from config.
func NewFetcher(config Config) *Fetcher {
	client := config.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{client: client, logger: logger}
}

// Ensure makes sure path exists. If it already does, Ensure performs no
// network I/O and returns fetched=false. Otherwise it issues exactly one
// GET for url and writes the body to path, returning fetched=true.
//
// The body is written to a temporary file in the destination directory
// and renamed into place, so path never holds a partial download.
func (f *Fetcher) Ensure(ctx context.Context, url, path string) (fetched bool, err error) {
	_, err = os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("artifact: checking %s: %w", path, err)
	}

	f.logger.Info("downloading artifact", "url", url, "path", path)

	data, err := f.download(ctx, url)
	if err != nil {
		return false, err
	}
	if err := writeFileAtomic(path, data); err != nil {
		return false, fmt.Errorf("artifact: writing %s: %w", path, err)
	}

	f.logger.Info("artifact downloaded", "path", path, "bytes", len(data))
	return true, nil
}

func (f *Fetcher) download(ctx context.Context, url string) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("artifact: building request for %s: %w", url, err)
	}

	response, err := f.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("artifact: GET %s: %w", url, err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, &DownloadError{
			URL:        url,
			StatusCode: response.StatusCode,
			Body:       netutil.ErrorBody(response.Body),
		}
	}

	data, err := netutil.ReadArtifact(response.Body)
	if err != nil {
		return nil, fmt.Errorf("artifact: reading %s: %w", url, err)
	}
	return data, nil
}

func writeFileAtomic(path string, data []byte) error {
	temp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.part")
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
	// Shared libraries need to be readable (and on some systems
	// executable) by the dynamic linker.
	if err := os.Chmod(tempPath, 0o755); err != nil {
		os.Remove(tempPath)
		return err
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return err
	}
	return nil
}
