// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package console

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/swebuddy-tui/internal/model"
	"github.com/jeranaias/swebuddy-tui/internal/ui/components"
)

// CopyResetDelay is how long the "Copied!" confirmation stays visible.
const CopyResetDelay = 2 * time.Second

// DiscardingLabel replaces the spinner text while a cleared request finishes.
const DiscardingLabel = "Discarding previous request..."

// =============================================================================
// BUBBLE TEA UPDATE
// =============================================================================

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case SolveResultMsg:
		return m.handleSolveResult(msg), nil

	case CopyResultMsg:
		return m.handleCopyResult(msg)

	case CopyResetMsg:
		return m.handleCopyReset(msg), nil

	case ConfigReloadedMsg:
		return m.handleConfigReloaded(msg), nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Cursor blink and similar widget-internal messages
	if m.focus == FocusContext {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

// =============================================================================
// SELECTION
// =============================================================================

// SetChallenge sets the selected topic. Any string is accepted.
func (m Model) SetChallenge(challenge string) Model {
	m.selection = m.selection.WithChallenge(challenge)
	m.picker.SetSelected(challenge)
	m.refreshKeys()
	return m
}

// SetContext sets the free-text context. Any string is accepted.
func (m Model) SetContext(text string) Model {
	m.selection = m.selection.WithContext(text)
	if m.editor.Value() != text {
		m.editor.SetValue(text)
	}
	m.refreshKeys()
	return m
}

// SetMode sets the output mode. Invalid modes are ignored.
func (m Model) SetMode(mode model.Mode) Model {
	m.selection = m.selection.WithMode(mode)
	m.refreshKeys()
	return m
}

// =============================================================================
// SUBMISSION
// =============================================================================

// Submit sends the current selection when the guard allows it. The phase
// moves to Submitting in the same step, which also drops any previous result.
func (m Model) Submit() (Model, tea.Cmd) {
	if !m.CanSubmit() {
		return m, nil
	}

	m.seq++
	req := m.selection.Request(m.llm)
	m.phase = model.Submitting(m.seq, req)
	m.copied = false
	m.copyGen++

	log.Printf("console: submitting request %d (mode=%s)", m.seq, req.Mode)

	m.spinner.SetMessage(components.GeneratingLabel)
	spinCmd := m.spinner.Start()
	m.refresh()

	return m, tea.Batch(SolveCmd(m.solver, m.seq, req), spinCmd)
}

// Clear empties challenge and context and drops the result. The mode is
// kept. An in-flight request is detached so its reply is never shown.
func (m Model) Clear() Model {
	m.selection = m.selection.Cleared()
	m.picker.SetSelected("")
	m.editor.Reset()
	m.copied = false
	m.copyGen++

	if m.phase.Loading() {
		m.phase = m.phase.Detach()
		m.spinner.SetMessage(DiscardingLabel)
		log.Printf("console: cleared while request %d in flight", m.phase.Seq)
	} else {
		m.phase = model.Idle()
	}

	if m.focus == FocusResult {
		m = m.setFocus(FocusChallenge)
	}
	m.refresh()
	return m
}

func (m Model) handleSolveResult(msg SolveResultMsg) Model {
	if !m.phase.Loading() || m.phase.Seq != msg.Seq {
		log.Printf("console: dropping stale result for request %d", msg.Seq)
		return m
	}

	m.spinner.Stop()

	if !m.phase.Accepts(msg.Seq) {
		log.Printf("console: request %d finished after clear, discarding", msg.Seq)
		m.phase = model.Idle()
		m.refresh()
		return m
	}

	switch {
	case msg.Err != nil:
		log.Printf("console: request %d failed: %v", msg.Seq, msg.Err)
		m.phase = model.Failed()
	case msg.Response == nil:
		log.Printf("console: request %d returned no response", msg.Seq)
		m.phase = model.Failed()
	default:
		log.Printf("console: request %d succeeded (%d bytes)", msg.Seq, len(msg.Response.Analysis))
		m.phase = model.Succeeded(m.phase.Request, *msg.Response)
	}

	m.refresh()
	m.viewport.GotoTop()
	return m
}

// SolveCmd performs one backend call and always yields a SolveResultMsg.
func SolveCmd(s Solver, seq uint64, req model.SolveRequest) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = SolveResultMsg{Seq: seq, Err: fmt.Errorf("solver panic: %v", r)}
			}
		}()

		resp, err := s.Solve(context.Background(), req)
		return SolveResultMsg{Seq: seq, Response: resp, Err: err}
	}
}

// =============================================================================
// CLIPBOARD
// =============================================================================

// Copy writes the raw analysis of the current result to the clipboard.
func (m Model) Copy() (Model, tea.Cmd) {
	if !m.CanCopy() {
		return m, nil
	}
	return m, CopyCmd(m.clipboard, m.seq, m.phase.Response.Analysis)
}

// CopyCmd writes text to the clipboard and reports the outcome.
func CopyCmd(c Clipboard, seq uint64, text string) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = CopyResultMsg{Seq: seq, Err: fmt.Errorf("clipboard panic: %v", r)}
			}
		}()
		return CopyResultMsg{Seq: seq, Err: c.WriteAll(text)}
	}
}

func (m Model) handleCopyResult(msg CopyResultMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		log.Printf("console: clipboard write failed: %v", msg.Err)
		return m, nil
	}
	if m.phase.Kind != model.PhaseSucceeded || msg.Seq != m.seq {
		return m, nil
	}

	m.copied = true
	m.copyGen++
	m.refreshView()
	return m, copyResetCmd(m.copyGen)
}

func copyResetCmd(gen uint64) tea.Cmd {
	return tea.Tick(CopyResetDelay, func(time.Time) tea.Msg {
		return CopyResetMsg{Gen: gen}
	})
}

func (m Model) handleCopyReset(msg CopyResetMsg) Model {
	if msg.Gen != m.copyGen || !m.copied {
		return m
	}
	m.copied = false
	m.refreshView()
	return m
}

// =============================================================================
// CONFIG RELOAD
// =============================================================================

type styleSetter interface {
	SetStyle(style string) error
}

type widthSetter interface {
	SetWidth(width int) error
}

func (m Model) handleConfigReloaded(msg ConfigReloadedMsg) Model {
	if msg.Err != nil || msg.Config == nil {
		m.notice = "Config reload failed; keeping current settings"
		return m
	}

	cfg := msg.Config
	m.llm = cfg.Backend.Model
	m.wordWrap = cfg.UI.WordWrap
	if m.newSolver != nil {
		if s := m.newSolver(cfg); s != nil {
			m.solver = s
		}
	}
	if r, ok := m.renderer.(styleSetter); ok {
		// "auto" would make glamour query the terminal mid-program
		style := cfg.UI.GlamourStyle
		if style == "" || style == "auto" {
			style = m.theme.GlamourStyle()
		}
		if err := r.SetStyle(style); err != nil {
			log.Printf("console: glamour style %q: %v", style, err)
		}
	}

	m.notice = "Config reloaded"
	m.applyRenderWidth()
	m.refresh()
	return m
}

// =============================================================================
// KEYS AND FOCUS
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		return m.Submit()
	case key.Matches(msg, m.keys.Clear):
		return m.Clear(), nil
	case key.Matches(msg, m.keys.Copy):
		return m.Copy()
	case key.Matches(msg, m.keys.ToggleMode):
		return m.SetMode(m.selection.Mode().Toggle()), nil
	case key.Matches(msg, m.keys.NextField):
		return m.cycleFocus(1)
	case key.Matches(msg, m.keys.PrevField):
		return m.cycleFocus(-1)
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.ViewUp()
		return m, nil
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.ViewDown()
		return m, nil
	}

	switch m.focus {
	case FocusChallenge:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.picker.MoveUp()
		case key.Matches(msg, m.keys.Down):
			m.picker.MoveDown()
		case key.Matches(msg, m.keys.Select):
			m = m.SetChallenge(m.picker.Highlighted())
		}
		return m, nil

	case FocusContext:
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		if v := m.editor.Value(); v != m.selection.Context() {
			m.selection = m.selection.WithContext(v)
			m.refreshKeys()
		}
		return m, cmd

	case FocusMode:
		switch {
		case key.Matches(msg, m.keys.ModeLeft):
			m = m.SetMode(model.ModePlan)
		case key.Matches(msg, m.keys.ModeRight):
			m = m.SetMode(model.ModePrompt)
		case key.Matches(msg, m.keys.Select):
			m = m.SetMode(m.selection.Mode().Toggle())
		}
		return m, nil

	case FocusResult:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// focusOrder lists the panels reachable with Tab in the current state.
func (m Model) focusOrder() []Focus {
	order := []Focus{FocusChallenge, FocusContext, FocusMode}
	if m.phase.HasResult() {
		order = append(order, FocusResult)
	}
	return order
}

func (m Model) cycleFocus(step int) (Model, tea.Cmd) {
	order := m.focusOrder()
	idx := 0
	for i, f := range order {
		if f == m.focus {
			idx = i
			break
		}
	}
	next := order[(idx+step+len(order))%len(order)]
	m = m.setFocus(next)
	if next == FocusContext {
		cmd := m.editor.Focus()
		return m, cmd
	}
	return m, nil
}

func (m Model) setFocus(f Focus) Model {
	if m.focus == FocusContext && f != FocusContext {
		m.editor.Blur()
	}
	m.focus = f
	return m
}

// =============================================================================
// LAYOUT
// =============================================================================

// Rows used by everything except the picker list and the result viewport:
// header (2), picker border and label (3), context panel (7), mode (1),
// button (1), status (1), help (1), result border (2).
const fixedRows = 18

func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height

	inner := max(m.width-4, 20)
	avail := max(m.height-fixedRows, 6)

	pickerRows := min(m.catalog.Len()+2, max(3, avail/2))
	m.picker.SetSize(inner, pickerRows)
	m.editor.SetWidth(inner)

	m.viewport.Width = inner
	m.viewport.Height = max(avail-pickerRows, 3)

	m.applyRenderWidth()
	m.refresh()
	return m
}

// applyRenderWidth sizes the markdown renderer to the result panel.
func (m *Model) applyRenderWidth() {
	ws, ok := m.renderer.(widthSetter)
	if !ok || m.viewport.Width <= 0 {
		return
	}
	width := m.viewport.Width
	if m.wordWrap > 0 && m.wordWrap < width {
		width = m.wordWrap
	}
	if err := ws.SetWidth(width); err != nil {
		log.Printf("console: resize renderer: %v", err)
	}
}

// refresh re-derives everything that depends on selection and phase.
func (m *Model) refresh() {
	m.refreshKeys()
	m.rendered = ""
	if m.phase.Kind == model.PhaseSucceeded {
		m.rendered = components.RenderOrRaw(m.renderer, m.phase.Response.Analysis)
	}
	if !m.phase.HasResult() && m.focus == FocusResult {
		m.focus = FocusChallenge
	}
	m.refreshView()
}

// refreshView updates the viewport with the current result panel.
func (m *Model) refreshView() {
	m.viewport.SetContent(m.ResultView())
}
