// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

package moonapi

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/moonclient/launcher/lib/endpoint"
)

// AuthEndpoint exchanges a UID and the machine identity for a session
// token. The backend keeps one session per user; issuing a new one
// invalidates the previous token.
type AuthEndpoint struct {
	BaseURL string
	UID     int64
}

func (e AuthEndpoint) URL() string {
	return e.BaseURL + "auth?uid=" + strconv.FormatInt(e.UID, 10)
}

func (AuthEndpoint) Kind() endpoint.Kind { return endpoint.IdentityBearing }

func (AuthEndpoint) Headers() http.Header { return nil }

// DownloadRequestEndpoint asks for a download link for one version of a
// channel. The session token travels in the query, so no identity
// header is needed.
//
// Each query value is escaped with url.QueryEscape, so channel names
// containing spaces or reserved characters reach the backend intact.
type DownloadRequestEndpoint struct {
	BaseURL        string
	SessionToken   string
	ChannelName    string
	ChannelVersion string
}

func (e DownloadRequestEndpoint) URL() string {
	return e.BaseURL + "download/request?session_token=" + url.QueryEscape(e.SessionToken) +
		"&channel_name=" + url.QueryEscape(e.ChannelName) +
		"&channel_version=" + url.QueryEscape(e.ChannelVersion)
}

func (DownloadRequestEndpoint) Kind() endpoint.Kind { return endpoint.Plain }

func (DownloadRequestEndpoint) Headers() http.Header { return nil }
