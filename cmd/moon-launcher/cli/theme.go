// Copyright 2026 The Moon Launcher Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "github.com/charmbracelet/lipgloss"

// Theme is the palette for terminal output, in ANSI 256-color codes.
type Theme struct {
	NormalText lipgloss.Color
	FaintText  lipgloss.Color
	Heading    lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color

	// Rank colors, indexed USER, BETA, STAFF, ADMIN.
	RankColors [4]lipgloss.Color
}

// DefaultTheme is used for all terminal output.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("243"),
	Heading:    lipgloss.Color("141"),
	Success:    lipgloss.Color("114"),
	Warning:    lipgloss.Color("214"),
	Error:      lipgloss.Color("203"),
	RankColors: [4]lipgloss.Color{"252", "81", "214", "203"},
}

// RankColor returns the color for a rank name. Unknown ranks use
// NormalText.
func (theme Theme) RankColor(rank string) lipgloss.Color {
	switch rank {
	case "USER":
		return theme.RankColors[0]
	case "BETA":
		return theme.RankColors[1]
	case "STAFF":
		return theme.RankColors[2]
	case "ADMIN":
		return theme.RankColors[3]
	default:
		return theme.NormalText
	}
}
