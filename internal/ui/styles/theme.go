// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the console.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// ==========================================================================
	// FORM STYLES
	// ==========================================================================

	Panel        lipgloss.Style
	PanelFocused lipgloss.Style
	Label        lipgloss.Style
	GroupLabel   lipgloss.Style
	Option       lipgloss.Style
	OptionActive lipgloss.Style
	ModeOn       lipgloss.Style
	ModeOff      lipgloss.Style

	// ==========================================================================
	// BUTTON STYLES
	// ==========================================================================

	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style

	// ==========================================================================
	// RESULT STYLES
	// ==========================================================================

	ResultHeading lipgloss.Style
	ChallengeLine lipgloss.Style
	CopyHint      lipgloss.Style
	Copied        lipgloss.Style
	FailureLine   lipgloss.Style

	// ==========================================================================
	// STATUS STYLES
	// ==========================================================================

	Spinner     lipgloss.Style
	LoadingText lipgloss.Style
	Notice      lipgloss.Style
	Help        lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	colorProfile := termenv.ColorProfile()

	t := &Theme{
		IsDark:       termenv.HasDarkBackground(),
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// GlamourStyle returns the glamour standard style matching the terminal.
func (t *Theme) GlamourStyle() string {
	if t.ColorProfile == termenv.Ascii {
		return "notty"
	}
	if t.IsDark {
		return "dark"
	}
	return "light"
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// Header
	t.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple).
		Padding(0, 1)

	t.Subtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true).
		Padding(0, 1)

	// Form
	t.Panel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(OverlayDim).
		Padding(0, 1)

	t.PanelFocused = t.Panel.
		BorderForeground(Purple)

	t.Label = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.GroupLabel = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Underline(true)

	t.Option = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.OptionActive = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(SelectionBg).
		Bold(true)

	t.ModeOn = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ModeOff = lipgloss.NewStyle().
		Foreground(TextSecondary)

	// Buttons
	t.Button = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Purple).
		Bold(true).
		Padding(0, 2)

	t.ButtonDisabled = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(Overlay).
		Padding(0, 2)

	// Result
	t.ResultHeading = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.ChallengeLine = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.CopyHint = lipgloss.NewStyle().
		Foreground(Cyan)

	t.Copied = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.FailureLine = lipgloss.NewStyle().
		Foreground(Rose).
		Background(RoseDeep).
		Bold(true).
		Padding(0, 1)

	// Status
	t.Spinner = lipgloss.NewStyle().
		Foreground(Amber)

	t.LoadingText = lipgloss.NewStyle().
		Foreground(Amber).
		Italic(true)

	t.Notice = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	t.Help = lipgloss.NewStyle().
		Foreground(TextMuted).
		Padding(0, 1)
}
