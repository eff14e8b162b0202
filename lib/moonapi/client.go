// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

package moonapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/moonclient/launcher/lib/endpoint"
	"github.com/moonclient/launcher/lib/netutil"
)

// Dispatcher sends an endpoint request. *endpoint.Dispatcher satisfies it.
type Dispatcher interface {
	Do(ctx context.Context, identity string, e endpoint.Endpoint) (*http.Response, error)
}

// Config configures a Client.
type Config struct {
	// Dispatcher sends requests. Required.
	Dispatcher Dispatcher

	// BaseURL is the API prefix, ending in "/". Required.
	BaseURL string

	// Logger receives failure diagnostics. Nil uses slog.Default().
	Logger *slog.Logger
}

// Client calls the launcher backend.
type Client struct {
	dispatcher Dispatcher
	baseURL    string
	logger     *slog.Logger
}

// NewClient returns a Client built from config.
func NewClient(config Config) (*Client, error) {
	if config.Dispatcher == nil {
		return nil, errors.New("moonapi: dispatcher is required")
	}
	if config.BaseURL == "" {
		return nil, errors.New("moonapi: base URL is required")
	}
	if !strings.HasSuffix(config.BaseURL, "/") {
		return nil, fmt.Errorf("moonapi: base URL %q must end with /", config.BaseURL)
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{dispatcher: config.Dispatcher, baseURL: config.BaseURL, logger: logger}, nil
}

// BaseURL returns the API prefix requests are built from.
func (c *Client) BaseURL() string { return c.baseURL }

// Authenticate exchanges uid and the machine identity for a session.
// All failures are returned as *AuthError.
func (c *Client) Authenticate(ctx context.Context, identity string, uid int64) (*AuthResponse, error) {
	e := AuthEndpoint{BaseURL: c.baseURL, UID: uid}

	status, body, err := c.fetch(ctx, identity, e)
	if err != nil {
		return nil, &AuthError{Kind: AuthRequestFailed, Err: err}
	}

	if status != http.StatusOK {
		authErr := newAuthError(status, body)
		c.logger.Info("authentication rejected",
			"uid", uid, "status", status, "kind", authErr.Kind.String())
		return nil, authErr
	}

	var response AuthResponse
	err = json.Unmarshal([]byte(body), &response)
	if err == nil && response.SessionKey == "" {
		err = errors.New("session_key is missing or empty")
	}
	if err != nil {
		c.logger.Error("authentication response does not match the expected payload",
			"status", status, "error", err)
		return nil, &AuthError{Kind: AuthParseFailed, StatusCode: status, Body: body, Err: err}
	}
	return &response, nil
}

// RequestDownload asks for a download link for version of channel.
// All failures are returned as *DownloadError.
func (c *Client) RequestDownload(ctx context.Context, sessionToken, channel, version string) (*DownloadResponse, error) {
	e := DownloadRequestEndpoint{
		BaseURL:        c.baseURL,
		SessionToken:   sessionToken,
		ChannelName:    channel,
		ChannelVersion: version,
	}

	status, body, err := c.fetch(ctx, "", e)
	if err != nil {
		return nil, &DownloadError{Kind: DownloadRequestFailed, Err: err}
	}

	if status != http.StatusOK {
		downloadErr := newDownloadError(status, body)
		c.logger.Info("download request rejected",
			"channel", channel, "version", version, "status", status, "kind", downloadErr.Kind.String())
		return nil, downloadErr
	}

	var response DownloadResponse
	err = json.Unmarshal([]byte(body), &response)
	if err == nil && response.DownloadLink == "" {
		err = errors.New("download_link is missing or empty")
	}
	if err != nil {
		c.logger.Error("download response does not match the expected payload",
			"status", status, "error", err)
		return nil, &DownloadError{Kind: DownloadParseFailed, StatusCode: status, Body: body, Err: err}
	}
	return &response, nil
}

// fetch sends e and reads the whole body as text.
func (c *Client) fetch(ctx context.Context, identity string, e endpoint.Endpoint) (int, string, error) {
	response, err := c.dispatcher.Do(ctx, identity, e)
	if err != nil {
		return 0, "", err
	}
	defer response.Body.Close()

	body, err := netutil.ReadText(response.Body)
	if err != nil {
		return response.StatusCode, "", fmt.Errorf("reading response body: %w", err)
	}
	return response.StatusCode, body, nil
}
