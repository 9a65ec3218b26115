// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the swebuddy console.

All colors use Lip Gloss AdaptiveColor for automatic light/dark terminal
detection.

# Color System (colors.go)

  - Purple - Headings and the focused panel
  - Cyan - Brand color, key hints, the active mode
  - Emerald - Success states ("Copied!")
  - Amber - Warnings, the loading spinner
  - Rose - The failure line

# Theme (theme.go)

NewTheme detects the terminal color profile with termenv and builds every
lipgloss.Style the console needs. GlamourStyle maps the detected background to
the glamour standard style name used for markdown.

# Usage

	theme := styles.NewTheme()
	header := theme.Title.Render("SWE AI Buddy")
	fail := theme.FailureLine.Render(model.FailureMessage)
*/
package styles
