// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// =============================================================================
// THEME CREATION TESTS
// =============================================================================

func TestNewTheme(t *testing.T) {
	theme := NewTheme()

	if theme == nil {
		t.Fatal("NewTheme() returned nil")
	}

	styles := []struct {
		name  string
		style lipgloss.Style
	}{
		{"Title", theme.Title},
		{"Panel", theme.Panel},
		{"PanelFocused", theme.PanelFocused},
		{"Button", theme.Button},
		{"ButtonDisabled", theme.ButtonDisabled},
		{"ResultHeading", theme.ResultHeading},
		{"FailureLine", theme.FailureLine},
		{"Copied", theme.Copied},
		{"Help", theme.Help},
	}

	for _, s := range styles {
		rendered := s.style.Render("test")
		if !strings.Contains(rendered, "test") {
			t.Errorf("%s style lost its content: %q", s.name, rendered)
		}
	}
}

func TestGlamourStyle(t *testing.T) {
	tests := []struct {
		profile termenv.Profile
		dark    bool
		want    string
	}{
		{termenv.Ascii, true, "notty"},
		{termenv.Ascii, false, "notty"},
		{termenv.TrueColor, true, "dark"},
		{termenv.ANSI256, false, "light"},
	}

	for _, tt := range tests {
		theme := &Theme{ColorProfile: tt.profile, IsDark: tt.dark}
		if got := theme.GlamourStyle(); got != tt.want {
			t.Errorf("GlamourStyle(profile=%v, dark=%v) = %q, want %q", tt.profile, tt.dark, got, tt.want)
		}
	}
}

// =============================================================================
// ACCESSIBILITY TESTS
// =============================================================================

func TestRenderErrorIncludesIndicator(t *testing.T) {
	if got := RenderError("boom"); !strings.Contains(got, StatusIndicators.Error) || !strings.Contains(got, "boom") {
		t.Errorf("RenderError() = %q, missing indicator or message", got)
	}
}
