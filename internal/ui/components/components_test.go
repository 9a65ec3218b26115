// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/swebuddy-tui/internal/catalog"
	"github.com/jeranaias/swebuddy-tui/internal/ui/styles"
)

// =============================================================================
// CHALLENGE PICKER TESTS
// =============================================================================

func testCatalog() *catalog.Catalog {
	return catalog.New(
		[]string{"Debugging", "Performance"},
		[]string{"Feedback"},
	)
}

func TestChallengePicker_Navigation(t *testing.T) {
	p := NewChallengePicker(testCatalog(), styles.NewTheme())

	assert.Equal(t, "Debugging", p.Highlighted())
	assert.Empty(t, p.Selected())

	p.MoveDown()
	assert.Equal(t, "Performance", p.Highlighted())
	p.MoveDown()
	assert.Equal(t, "Feedback", p.Highlighted(), "cursor crosses the category boundary")
	p.MoveDown()
	assert.Equal(t, "Debugging", p.Highlighted(), "wraps to the top")
	p.MoveUp()
	assert.Equal(t, "Feedback", p.Highlighted(), "wraps to the bottom")
}

func TestChallengePicker_SetSelected(t *testing.T) {
	p := NewChallengePicker(testCatalog(), styles.NewTheme())

	p.SetSelected("Performance")
	assert.Equal(t, "Performance", p.Selected())
	assert.Equal(t, 1, p.Cursor())

	p.SetSelected("not in catalog")
	assert.Equal(t, "not in catalog", p.Selected())
	assert.Equal(t, 1, p.Cursor(), "cursor stays put for unknown topics")

	p.SetSelected("")
	assert.Empty(t, p.Selected())
}

func TestChallengePicker_ViewShowsGroups(t *testing.T) {
	p := NewChallengePicker(testCatalog(), styles.NewTheme())
	p.SetSelected("Feedback")

	view := p.View()
	assert.Contains(t, view, "Technical Challenges")
	assert.Contains(t, view, "Non-Technical Challenges")
	assert.Contains(t, view, "Debugging")
	assert.Contains(t, view, styles.StatusIndicators.RadioOn+" Feedback")
}

func TestChallengePicker_Scrolls(t *testing.T) {
	p := NewChallengePicker(catalog.Default(), styles.NewTheme())
	p.SetSize(80, 3)

	assert.Equal(t, 3, len(strings.Split(p.View(), "\n")))

	for i := 0; i < catalog.Default().Len()-1; i++ {
		p.MoveDown()
	}
	view := p.View()
	assert.Equal(t, 3, len(strings.Split(view, "\n")))
	assert.Contains(t, view, "Managing Stakeholder Expectations")
	assert.NotContains(t, view, "Navigating Legacy")

	p.MoveDown()
	assert.Contains(t, p.View(), "Technical Challenges", "wrapping to the top shows the first label")
}

func TestChallengePicker_TruncatesLongTopics(t *testing.T) {
	p := NewChallengePicker(catalog.Default(), styles.NewTheme())
	p.SetSize(30, 20)

	assert.Contains(t, p.View(), "...")
}

// =============================================================================
// MARKDOWN TESTS
// =============================================================================

type failingRenderer struct{}

func (failingRenderer) Render(string) (string, error) {
	return "", errors.New("render failed")
}

func TestRenderOrRaw(t *testing.T) {
	md := "## Plan\n\n- step one"

	assert.Equal(t, md, RenderOrRaw(PlainRenderer{}, md))
	assert.Equal(t, md, RenderOrRaw(failingRenderer{}, md), "raw text on error")
	assert.Equal(t, md, RenderOrRaw(nil, md))
}

func TestGlamourRenderer(t *testing.T) {
	r, err := NewGlamourRenderer("notty", 40)
	require.NoError(t, err)
	assert.Equal(t, 40, r.Width())
	assert.Equal(t, "notty", r.Style())

	out, err := r.Render("# Action Plan\n\nFirst **inspect** the logs.")
	require.NoError(t, err)
	assert.Contains(t, out, "Action Plan")
	assert.Contains(t, out, "inspect")

	require.NoError(t, r.SetWidth(100))
	assert.Equal(t, 100, r.Width())
	require.NoError(t, r.SetWidth(0))
	assert.Equal(t, 100, r.Width(), "non-positive widths are ignored")

	require.NoError(t, r.SetStyle("ascii"))
	assert.Equal(t, "ascii", r.Style())
}

func TestGlamourRenderer_StyleIsCaseInsensitive(t *testing.T) {
	r, err := NewGlamourRenderer(" Dark ", 40)
	require.NoError(t, err)
	assert.Equal(t, "dark", r.Style())

	require.NoError(t, r.SetStyle("NOTTY"))
	assert.Equal(t, "notty", r.Style())

	_, err = NewGlamourRenderer("no-such-style", 40)
	assert.Error(t, err)
}

func TestGlamourRenderer_Defaults(t *testing.T) {
	r, err := NewGlamourRenderer("", 0)
	require.NoError(t, err)
	assert.Equal(t, "auto", r.Style())
	assert.Equal(t, DefaultWordWrap, r.Width())
}

// =============================================================================
// SPINNER TESTS
// =============================================================================

func TestSpinner_Lifecycle(t *testing.T) {
	s := NewSpinner(styles.NewTheme())
	assert.False(t, s.IsActive())
	assert.Empty(t, s.View())
	assert.Equal(t, time.Duration(0), s.Elapsed())

	cmd := s.Start()
	require.NotNil(t, cmd)
	assert.True(t, s.IsActive())
	assert.Contains(t, s.View(), GeneratingLabel)

	s.Stop()
	assert.False(t, s.IsActive())
	assert.Empty(t, s.View())

	_, cmd = s.Update(cmd())
	assert.Nil(t, cmd, "ticks after Stop end the animation")
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "0s", formatElapsed(0))
	assert.Equal(t, "59s", formatElapsed(59*time.Second))
	assert.Equal(t, "1m05s", formatElapsed(65*time.Second))
}
