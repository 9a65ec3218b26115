// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"log"
	"strings"

	"github.com/charmbracelet/glamour"
)

// DefaultWordWrap is used until the terminal reports its width.
const DefaultWordWrap = 80

// MarkdownRenderer turns markdown into terminal output.
type MarkdownRenderer interface {
	Render(markdown string) (string, error)
}

// =============================================================================
// GLAMOUR RENDERER
// =============================================================================

// GlamourRenderer renders markdown with glamour. The underlying renderer is
// rebuilt whenever the style or wrap width changes.
type GlamourRenderer struct {
	style string
	width int
	tr    *glamour.TermRenderer
}

// NewGlamourRenderer creates a renderer. style is "auto" or a glamour standard
// style name; width <= 0 uses DefaultWordWrap.
func NewGlamourRenderer(style string, width int) (*GlamourRenderer, error) {
	r := &GlamourRenderer{}
	if err := r.configure(style, width); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *GlamourRenderer) configure(style string, width int) error {
	style = strings.ToLower(strings.TrimSpace(style))
	if style == "" {
		style = "auto"
	}
	if width <= 0 {
		width = DefaultWordWrap
	}

	styleOpt := glamour.WithAutoStyle()
	if style != "auto" {
		styleOpt = glamour.WithStandardStyle(style)
	}

	tr, err := glamour.NewTermRenderer(
		styleOpt,
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return err
	}

	r.style = style
	r.width = width
	r.tr = tr
	return nil
}

// Render renders markdown. The input is passed to glamour unmodified.
func (r *GlamourRenderer) Render(markdown string) (string, error) {
	out, err := r.tr.Render(markdown)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}

// SetWidth changes the wrap width.
func (r *GlamourRenderer) SetWidth(width int) error {
	if width <= 0 || width == r.width {
		return nil
	}
	return r.configure(r.style, width)
}

// SetStyle changes the glamour style.
func (r *GlamourRenderer) SetStyle(style string) error {
	if style == r.style {
		return nil
	}
	return r.configure(style, r.width)
}

// Width returns the current wrap width.
func (r *GlamourRenderer) Width() int {
	return r.width
}

// Style returns the current style name.
func (r *GlamourRenderer) Style() string {
	return r.style
}

// =============================================================================
// PLAIN RENDERER
// =============================================================================

// PlainRenderer returns markdown as-is. Used when stdout is not a terminal.
type PlainRenderer struct{}

// Render returns markdown unchanged.
func (PlainRenderer) Render(markdown string) (string, error) {
	return markdown, nil
}

// RenderOrRaw renders markdown and falls back to the raw text on error.
// Failures are logged.
func RenderOrRaw(r MarkdownRenderer, markdown string) string {
	if r == nil {
		return markdown
	}
	out, err := r.Render(markdown)
	if err != nil {
		log.Printf("markdown render failed, showing raw text: %v", err)
		return markdown
	}
	return out
}
