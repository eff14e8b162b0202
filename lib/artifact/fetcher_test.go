// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

package artifact

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
)

func TestEnsure_Downloads(t *testing.T) {
	t.Parallel()

	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		requests.Add(1)
		if request.URL.Path != "/native/liblauncher_lib.so" {
			t.Errorf("path = %q", request.URL.Path)
		}
		writer.Write([]byte("\x7fELF-shared-object"))
	}))
	defer server.Close()

	fetcher := NewFetcher(Config{HTTPClient: server.Client()})
	path := filepath.Join(t.TempDir(), "liblauncher_lib.so")

	fetched, err := fetcher.Ensure(context.Background(), server.URL+"/native/liblauncher_lib.so", path)
	if err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if !fetched {
		t.Error("fetched = false, want true")
	}
	if got := requests.Load(); got != 1 {
		t.Errorf("server saw %d requests, want 1", got)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "\x7fELF-shared-object" {
		t.Errorf("content = %q", data)
	}
}

func TestEnsure_ExistingFileSkipsNetwork(t *testing.T) {
	t.Parallel()

	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		requests.Add(1)
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "launcher_lib.dll")
	if err := os.WriteFile(path, []byte("existing"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	fetcher := NewFetcher(Config{HTTPClient: server.Client()})
	fetched, err := fetcher.Ensure(context.Background(), server.URL+"/launcher_lib.dll", path)
	if err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if fetched {
		t.Error("fetched = true, want false")
	}
	if got := requests.Load(); got != 0 {
		t.Errorf("server saw %d requests, want 0", got)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "existing" {
		t.Errorf("existing file was modified: %q", data)
	}
}

func TestEnsure_HTTPError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		http.Error(writer, "no such object", http.StatusNotFound)
	}))
	defer server.Close()

	dir := t.TempDir()
	path := filepath.Join(dir, "liblauncher_lib.dylib")
	fetcher := NewFetcher(Config{HTTPClient: server.Client()})

	_, err := fetcher.Ensure(context.Background(), server.URL+"/liblauncher_lib.dylib", path)
	var downloadErr *DownloadError
	if !errors.As(err, &downloadErr) {
		t.Fatalf("Ensure = %v, want *DownloadError", err)
	}
	if downloadErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", downloadErr.StatusCode)
	}

	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("artifact exists after failed download: %v", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("directory has %d leftover entries", len(entries))
	}
}

func TestEnsure_TransportError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL + "/liblauncher_lib.so"
	server.Close()

	fetcher := NewFetcher(Config{})
	_, err := fetcher.Ensure(context.Background(), url, filepath.Join(t.TempDir(), "liblauncher_lib.so"))
	if err == nil {
		t.Fatal("Ensure succeeded against a closed server")
	}
	var downloadErr *DownloadError
	if errors.As(err, &downloadErr) {
		t.Errorf("transport failure reported as %v", downloadErr)
	}
}

func TestEnsure_UnwritableDirectory(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Write([]byte("payload"))
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "missing", "liblauncher_lib.so")
	fetcher := NewFetcher(Config{HTTPClient: server.Client()})
	if _, err := fetcher.Ensure(context.Background(), server.URL, path); err == nil {
		t.Fatal("Ensure succeeded writing into a missing directory")
	}
}
