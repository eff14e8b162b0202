// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

package moonapi

import (
	"encoding/json"
	"fmt"
)

// UserRank is an account rank as the backend spells it.
type UserRank string

const (
	RankUser  UserRank = "USER"
	RankBeta  UserRank = "BETA"
	RankStaff UserRank = "STAFF"
	RankAdmin UserRank = "ADMIN"
)

// UnmarshalJSON rejects ranks the launcher does not know about.
func (r *UserRank) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch rank := UserRank(raw); rank {
	case RankUser, RankBeta, RankStaff, RankAdmin:
		*r = rank
		return nil
	default:
		return fmt.Errorf("unknown user rank %q", raw)
	}
}

// AuthResponse is the payload of a successful authentication.
type AuthResponse struct {
	Username          string    `json:"username"`
	Rank              UserRank  `json:"rank"`
	SessionKey        string    `json:"session_key"`
	AvailableChannels []Channel `json:"available_channels"`
}

// Channel is a release channel the user may download. The backend only
// lists channels the user has access to; RankRequired is informational.
type Channel struct {
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	RankRequired      UserRank  `json:"rankRequired"`
	LatestVersion     string    `json:"latestVersion"`
	LastUpdated       int64     `json:"lastUpdated"`
	AvailableVersions []Version `json:"availableVersions"`
}

// Version is one downloadable build of a channel.
type Version struct {
	Name       string `json:"name"`
	ID         string `json:"_id"`
	Changelog  string `json:"changelog"`
	ReleasedAt int64  `json:"releasedAt"`
}

// DownloadResponse is the payload of a successful download request.
type DownloadResponse struct {
	DownloadLink string `json:"download_link"`
}
