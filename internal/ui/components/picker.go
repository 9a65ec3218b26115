// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/swebuddy-tui/internal/catalog"
	"github.com/jeranaias/swebuddy-tui/internal/ui/styles"
	"github.com/jeranaias/swebuddy-tui/internal/util"
)

// =============================================================================
// CHALLENGE PICKER
// =============================================================================

// ChallengePicker lists catalog topics under their category labels. The
// cursor moves over topics only; Selected is the topic last confirmed.
type ChallengePicker struct {
	theme   *styles.Theme
	options []catalog.Option

	cursor   int
	selected string
	offset   int

	width  int
	height int
}

// NewChallengePicker creates a picker over every topic in cat.
func NewChallengePicker(cat *catalog.Catalog, theme *styles.Theme) ChallengePicker {
	return ChallengePicker{
		theme:   theme,
		options: cat.Options(),
		width:   60,
		height:  cat.Len() + 2,
	}
}

// SetSize sets the visible area. Rows beyond height scroll.
func (p *ChallengePicker) SetSize(width, height int) {
	if width > 0 {
		p.width = width
	}
	if height > 0 {
		p.height = height
	}
	p.scrollToCursor()
}

// MoveUp moves the cursor to the previous topic, wrapping at the top.
func (p *ChallengePicker) MoveUp() {
	if len(p.options) == 0 {
		return
	}
	p.cursor = (p.cursor - 1 + len(p.options)) % len(p.options)
	p.scrollToCursor()
}

// MoveDown moves the cursor to the next topic, wrapping at the bottom.
func (p *ChallengePicker) MoveDown() {
	if len(p.options) == 0 {
		return
	}
	p.cursor = (p.cursor + 1) % len(p.options)
	p.scrollToCursor()
}

// Cursor returns the index of the highlighted topic.
func (p ChallengePicker) Cursor() int {
	return p.cursor
}

// Highlighted returns the topic under the cursor.
func (p ChallengePicker) Highlighted() string {
	if len(p.options) == 0 {
		return ""
	}
	return p.options[p.cursor].Topic
}

// Selected returns the confirmed topic, or "" when none.
func (p ChallengePicker) Selected() string {
	return p.selected
}

// SetSelected marks topic as chosen and moves the cursor onto it when it is
// in the list. Any string is accepted, including "".
func (p *ChallengePicker) SetSelected(topic string) {
	p.selected = topic
	for i, opt := range p.options {
		if opt.Topic == topic {
			p.cursor = i
			p.scrollToCursor()
			return
		}
	}
}

// =============================================================================
// LAYOUT
// =============================================================================

// row is one rendered line: a group label (option < 0) or a topic.
type row struct {
	label  string
	option int
}

func (p ChallengePicker) rows() []row {
	var rows []row
	var last catalog.Category = -1
	for i, opt := range p.options {
		if opt.Category != last {
			rows = append(rows, row{label: opt.Category.Label(), option: -1})
			last = opt.Category
		}
		rows = append(rows, row{option: i})
	}
	return rows
}

func (p *ChallengePicker) scrollToCursor() {
	rows := p.rows()
	cursorRow := 0
	for i, r := range rows {
		if r.option == p.cursor {
			cursorRow = i
			break
		}
	}
	// Keep the group label visible when the first topic of a group is highlighted.
	top := cursorRow
	if top > 0 && rows[top-1].option < 0 {
		top--
	}

	if top < p.offset {
		p.offset = top
	}
	if cursorRow >= p.offset+p.height {
		p.offset = cursorRow - p.height + 1
	}
	if maxOffset := len(rows) - p.height; p.offset > maxOffset {
		p.offset = max(maxOffset, 0)
	}
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the visible rows.
func (p ChallengePicker) View() string {
	rows := p.rows()
	end := min(p.offset+p.height, len(rows))

	// marker + space + radio + space
	textWidth := p.width - 6

	var b strings.Builder
	for i := p.offset; i < end; i++ {
		r := rows[i]
		if r.option < 0 {
			b.WriteString(p.theme.GroupLabel.Render(util.TruncateWidth(r.label, p.width)))
		} else {
			b.WriteString(p.renderOption(r.option, textWidth))
		}
		if i < end-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (p ChallengePicker) renderOption(i, textWidth int) string {
	opt := p.options[i]

	marker := " "
	if i == p.cursor {
		marker = styles.StatusIndicators.Selected
	}
	radio := styles.StatusIndicators.Radio
	if opt.Topic == p.selected {
		radio = styles.StatusIndicators.RadioOn
	}

	line := marker + " " + radio + " " + util.TruncateWidth(opt.Topic, textWidth)
	if i == p.cursor {
		return p.theme.OptionActive.Render(line)
	}
	return p.theme.Option.Render(line)
}
