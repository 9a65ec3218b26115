// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/swebuddy-tui/internal/model"
	"github.com/jeranaias/swebuddy-tui/internal/ui/components"
	"github.com/jeranaias/swebuddy-tui/internal/ui/styles"
)

// Labels shown in the result panel.
const (
	CopyLabel      = "Copy (C-y)"
	CopiedLabel    = "Copied!"
	ChallengeLabel = "Challenge:"
)

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (m Model) View() string {
	sections := []string{
		m.renderHeader(),
		m.renderPanel("Challenge", m.picker.View(), m.focus == FocusChallenge),
		m.renderPanel("Context", m.editor.View(), m.focus == FocusContext),
		m.renderMode(),
		m.renderButton(),
		m.renderStatus(),
	}

	if m.phase.HasResult() {
		sections = append(sections, m.renderPanel("", m.viewport.View(), m.focus == FocusResult))
	}

	sections = append(sections, m.theme.Help.Render(m.help.View(m.keys)))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	return m.theme.Title.Render(Title) + "\n" + m.theme.Subtitle.Render(Tagline)
}

func (m Model) renderPanel(label, body string, focused bool) string {
	style := m.theme.Panel
	if focused {
		style = m.theme.PanelFocused
	}
	if label != "" {
		body = m.theme.Label.Render(label) + "\n" + body
	}
	return style.Render(body)
}

func (m Model) renderMode() string {
	mode := m.selection.Mode()
	option := func(candidate model.Mode) string {
		if candidate == mode {
			return m.theme.ModeOn.Render(styles.StatusIndicators.RadioOn + " " + candidate.DisplayName())
		}
		return m.theme.ModeOff.Render(styles.StatusIndicators.Radio + " " + candidate.DisplayName())
	}

	prefix := "  "
	if m.focus == FocusMode {
		prefix = styles.StatusIndicators.Selected + " "
	}
	return prefix + m.theme.Label.Render("Mode: ") + option(model.ModePlan) + "  " + option(model.ModePrompt)
}

// SubmitLabel is the text on the submit button.
func (m Model) SubmitLabel() string {
	if m.phase.Loading() {
		return components.GeneratingLabel
	}
	return m.selection.Mode().SubmitLabel()
}

func (m Model) renderButton() string {
	label := "[ " + m.SubmitLabel() + " ]"
	if m.CanSubmit() {
		return "  " + m.theme.Button.Render(label)
	}
	return "  " + m.theme.ButtonDisabled.Render(label)
}

func (m Model) renderStatus() string {
	switch {
	case m.spinner.IsActive():
		return "  " + m.spinner.View()
	case m.notice != "":
		return "  " + m.theme.Notice.Render(m.notice)
	default:
		return ""
	}
}

// ResultView renders the result panel body: nothing before a result, a single
// failure line, or the heading, challenge and rendered analysis.
func (m Model) ResultView() string {
	switch m.phase.Kind {
	case model.PhaseFailed:
		return m.theme.FailureLine.Render(m.phase.Message)

	case model.PhaseSucceeded:
		indicator := m.theme.CopyHint.Render(CopyLabel)
		if m.copied {
			indicator = m.theme.Copied.Render(CopiedLabel)
		}

		var b strings.Builder
		b.WriteString(m.theme.ResultHeading.Render(m.phase.Request.Mode.Heading()))
		b.WriteString("  ")
		b.WriteString(indicator)
		b.WriteString("\n")
		b.WriteString(m.theme.Label.Render(ChallengeLabel))
		b.WriteString(" ")
		b.WriteString(m.theme.ChallengeLine.Render(m.phase.Response.Challenge))
		b.WriteString("\n\n")
		b.WriteString(m.rendered)
		return b.String()

	default:
		return ""
	}
}
