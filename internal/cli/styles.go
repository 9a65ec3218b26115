// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Styles for the non-interactive commands.
package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/swebuddy-tui/internal/ui/styles"
)

// init configures lipgloss for the terminal we are writing to.
func init() {
	lipgloss.SetColorProfile(GetColorProfile())
}

var (
	// HeadingStyle is used for result headings.
	HeadingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Purple)

	// CategoryStyle is used for topic group labels.
	CategoryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Cyan)

	// LabelStyle is used for "Challenge:" style labels.
	LabelStyle = lipgloss.NewStyle().
			Bold(true)

	// IndexStyle is used for topic numbers.
	IndexStyle = lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Width(4).
			Align(lipgloss.Right)
)
