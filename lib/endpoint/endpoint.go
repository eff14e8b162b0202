// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

package endpoint

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/net/http/httpguts"
)

const (
	// UserAgent is sent on every request.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:109.0) Gecko/20100101 Firefox/113.0"

	// IdentityHeader carries the machine identity on identity-bearing
	// requests.
	IdentityHeader = "Launcher-User-Serial"

	// InvalidIdentity replaces an identity that cannot be sent as a
	// header value.
	InvalidIdentity = "INVALID"
)

// Kind says whether a request carries the machine identity.
type Kind int

const (
	Plain Kind = iota
	IdentityBearing
)

func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case IdentityBearing:
		return "identity-bearing"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Endpoint describes one backend request.
type Endpoint interface {
	// URL is the fully qualified request URL, query included. It is
	// used exactly as returned.
	URL() string

	// Kind reports whether the identity header is attached.
	Kind() Kind

	// Headers are extra request headers. May be nil.
	Headers() http.Header
}

// RequestError is a transport-level failure: the request could not be
// built or no response was received.
type RequestError struct {
	URL string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed: GET %s: %v", e.URL, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// Config configures a Dispatcher.
type Config struct {
	// HTTPClient sends requests. Nil uses a new client with default
	// transport settings.
	HTTPClient *http.Client

	// Logger receives request traces at debug level. Nil uses
	// slog.Default().
	Logger *slog.Logger
}

// Dispatcher sends endpoint requests over one shared HTTP client.
type Dispatcher struct {
	client *http.Client
	logger *slog.Logger
}

// NewDispatcher returns a Dispatcher. A process normally builds one and
// shares it.
func NewDispatcher(config Config) *Dispatcher {
	client := config.HTTPClient
	if client == nil {
		client = &http.Client{}
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{client: client, logger: logger}
}

// NewRequest builds the GET request for e without sending it. Extra
// headers are copied first, then the User-Agent is set. Identity-bearing
// requests get the identity header (or InvalidIdentity if identity is
// not a legal header value); plain requests never carry it.
func NewRequest(ctx context.Context, identity string, e Endpoint) (*http.Request, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, e.URL(), nil)
	if err != nil {
		return nil, err
	}

	for name, values := range e.Headers() {
		for _, value := range values {
			request.Header.Add(name, value)
		}
	}
	request.Header.Set("User-Agent", UserAgent)

	if e.Kind() == IdentityBearing {
		request.Header.Set(IdentityHeader, HeaderSafeIdentity(identity))
	} else {
		request.Header.Del(IdentityHeader)
	}
	return request, nil
}

// HeaderSafeIdentity returns identity if it is a valid HTTP header
// value, and InvalidIdentity otherwise.
func HeaderSafeIdentity(identity string) string {
	if !httpguts.ValidHeaderFieldValue(identity) {
		return InvalidIdentity
	}
	return identity
}

// Do sends one GET for e and returns the response whatever its status.
// The caller closes the response body. Failures to build or send the
// request are returned as *RequestError.
func (d *Dispatcher) Do(ctx context.Context, identity string, e Endpoint) (*http.Response, error) {
	url := e.URL()
	request, err := NewRequest(ctx, identity, e)
	if err != nil {
		return nil, &RequestError{URL: url, Err: err}
	}

	// The query can hold a session token, so only host and path are logged.
	d.logger.Debug("dispatching request",
		"host", request.URL.Host, "path", request.URL.Path, "kind", e.Kind())

	response, err := d.client.Do(request)
	if err != nil {
		return nil, &RequestError{URL: url, Err: err}
	}

	d.logger.Debug("response received", "path", request.URL.Path, "status", response.StatusCode)
	return response, nil
}
