// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/moonclient/launcher/cmd/moon-launcher/cli"
	"github.com/moonclient/launcher/lib/launcher"
	"github.com/moonclient/launcher/lib/moonapi"
	"github.com/moonclient/launcher/lib/native"
)

const retryHint = "Please retry, or file a report if this keeps happening."

type renderer struct {
	theme cli.Theme
}

// describe returns the user-facing text for err. Backend codes carry
// their own message; everything else gets the retry hint.
func describe(err error) string {
	var authErr *moonapi.AuthError
	if errors.As(err, &authErr) && authErr.Displayable() {
		return authErr.Message
	}
	var downloadErr *moonapi.DownloadError
	if errors.As(err, &downloadErr) && downloadErr.Displayable() {
		return downloadErr.Message
	}
	if errors.Is(err, launcher.ErrNotAuthenticated) {
		return "You are not logged in, run 'moon-launcher login <uid>' first"
	}
	var identityErr *native.IdentityError
	if errors.As(err, &identityErr) {
		return fmt.Sprintf("Unable to read this machine's serial (%s). %s", identityErr.Message, retryHint)
	}
	return fmt.Sprintf("%v\n%s", err, retryHint)
}

func (r renderer) failure(err error) string {
	label := lipgloss.NewStyle().Foreground(r.theme.Error).Bold(true).Render("error:")
	return label + " " + describe(err)
}

func (r renderer) heading(text string) string {
	return lipgloss.NewStyle().Foreground(r.theme.Heading).Bold(true).Render(text)
}

func (r renderer) faint(text string) string {
	return lipgloss.NewStyle().Foreground(r.theme.FaintText).Render(text)
}

func (r renderer) success(text string) string {
	return lipgloss.NewStyle().Foreground(r.theme.Success).Render(text)
}

func (r renderer) warning(text string) string {
	return lipgloss.NewStyle().Foreground(r.theme.Warning).Render(text)
}

func (r renderer) rank(rank moonapi.UserRank) string {
	return lipgloss.NewStyle().Foreground(r.theme.RankColor(string(rank))).Bold(true).Render(string(rank))
}

// session renders a login result: the greeting followed by one block
// per available channel.
func (r renderer) session(response *moonapi.AuthResponse) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "%s %s %s\n", r.success("Logged in as"), r.heading(response.Username), r.rank(response.Rank))

	if len(response.AvailableChannels) == 0 {
		builder.WriteString(r.faint("No channels available for this account.") + "\n")
		return builder.String()
	}

	block := lipgloss.NewStyle().PaddingLeft(2)
	for _, channel := range response.AvailableChannels {
		builder.WriteString("\n")
		builder.WriteString(r.channel(channel, block))
	}
	return builder.String()
}

func (r renderer) channel(channel moonapi.Channel, block lipgloss.Style) string {
	var lines []string
	header := r.heading(channel.Name)
	if channel.LatestVersion != "" {
		header += " " + r.faint("latest "+channel.LatestVersion)
	}
	lines = append(lines, header)
	if channel.Description != "" {
		lines = append(lines, block.Render(channel.Description))
	}
	for _, version := range channel.AvailableVersions {
		line := "- " + version.Name
		if version.Changelog != "" {
			line += r.faint(": " + firstLine(version.Changelog))
		}
		lines = append(lines, block.Render(line))
	}
	return strings.Join(lines, "\n") + "\n"
}

func firstLine(text string) string {
	if index := strings.IndexByte(text, '\n'); index >= 0 {
		return text[:index]
	}
	return text
}
