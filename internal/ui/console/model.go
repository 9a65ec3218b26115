// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package console

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/swebuddy-tui/internal/catalog"
	"github.com/jeranaias/swebuddy-tui/internal/config"
	"github.com/jeranaias/swebuddy-tui/internal/model"
	"github.com/jeranaias/swebuddy-tui/internal/ui/components"
	"github.com/jeranaias/swebuddy-tui/internal/ui/styles"
)

// Title is the application name shown in the header.
const Title = "SWE AI Buddy"

// Tagline is shown under the title.
const Tagline = "Turn real engineering challenges into action plans and reusable prompts"

// ContextPlaceholder is shown in the empty context editor.
const ContextPlaceholder = "Describe your situation: team, system, constraints, what you've tried..."

// =============================================================================
// DEPENDENCIES
// =============================================================================

// Solver sends one request to the generation backend.
type Solver interface {
	Solve(ctx context.Context, req model.SolveRequest) (*model.SolveResponse, error)
}

// SolverFactory builds a Solver from a reloaded config.
type SolverFactory func(cfg *config.Config) Solver

// Focus identifies the panel receiving keys.
type Focus int

const (
	FocusChallenge Focus = iota
	FocusContext
	FocusMode
	FocusResult
)

// String returns the panel name.
func (f Focus) String() string {
	switch f {
	case FocusChallenge:
		return "challenge"
	case FocusContext:
		return "context"
	case FocusMode:
		return "mode"
	case FocusResult:
		return "result"
	default:
		return "unknown"
	}
}

// Options configures a console.
type Options struct {
	Catalog   *catalog.Catalog
	Solver    Solver
	Clipboard Clipboard
	Renderer  components.MarkdownRenderer
	Theme     *styles.Theme

	// NewSolver rebuilds the solver when the config file changes. Nil keeps
	// the original solver.
	NewSolver SolverFactory

	// Mode is the initially selected mode. Invalid values fall back to plan.
	Mode model.Mode

	// LLM is forwarded as the request's model field.
	LLM string

	// WordWrap caps the markdown width. 0 follows the terminal.
	WordWrap int
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the challenge console.
type Model struct {
	theme *styles.Theme
	keys  KeyMap
	help  help.Model

	catalog   *catalog.Catalog
	solver    Solver
	newSolver SolverFactory
	clipboard Clipboard
	renderer  components.MarkdownRenderer
	llm       string
	wordWrap  int

	// Domain state
	selection model.Selection
	phase     model.Phase
	seq       uint64
	copied    bool
	copyGen   uint64

	// Widgets
	picker   components.ChallengePicker
	editor   textarea.Model
	spinner  components.Spinner
	viewport viewport.Model

	// Rendered analysis for the current result; rebuilt on width or style change
	rendered string

	focus    Focus
	showHelp bool
	notice   string
	width    int
	height   int
}

// New creates a console in the Idle phase with an empty selection.
func New(opts Options) Model {
	theme := opts.Theme
	if theme == nil {
		theme = styles.NewTheme()
	}
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = components.PlainRenderer{}
	}

	ta := textarea.New()
	ta.Placeholder = ContextPlaceholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(4)
	ta.SetWidth(60)

	m := Model{
		theme:     theme,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		catalog:   cat,
		solver:    opts.Solver,
		newSolver: opts.NewSolver,
		clipboard: opts.Clipboard,
		renderer:  renderer,
		llm:       opts.LLM,
		wordWrap:  opts.WordWrap,
		selection: model.NewSelection().WithMode(opts.Mode),
		phase:     model.Idle(),
		picker:    components.NewChallengePicker(cat, theme),
		editor:    ta,
		spinner:   components.NewSpinner(theme),
		viewport:  viewport.New(60, 10),
		focus:     FocusChallenge,
	}
	m.refreshKeys()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(Title)
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Selection returns the current selection.
func (m Model) Selection() model.Selection {
	return m.selection
}

// Phase returns the current submission phase.
func (m Model) Phase() model.Phase {
	return m.phase
}

// Loading reports whether a request is in flight.
func (m Model) Loading() bool {
	return m.phase.Loading()
}

// Copied reports whether the "Copied!" confirmation is showing.
func (m Model) Copied() bool {
	return m.copied
}

// Focus returns the focused panel.
func (m Model) Focus() Focus {
	return m.focus
}

// Notice returns the transient status line, if any.
func (m Model) Notice() string {
	return m.notice
}

// Keys returns the key map with its current enabled state.
func (m Model) Keys() KeyMap {
	return m.keys
}

// LLM returns the backend model name sent with requests.
func (m Model) LLM() string {
	return m.llm
}

// CanSubmit reports whether a submission is currently allowed.
func (m Model) CanSubmit() bool {
	return m.solver != nil && m.selection.Ready() && !m.phase.Loading()
}

// CanCopy reports whether a result is available to copy.
func (m Model) CanCopy() bool {
	return m.clipboard != nil && m.phase.Kind == model.PhaseSucceeded
}

// refreshKeys enables exactly the actions the current state allows.
func (m *Model) refreshKeys() {
	m.keys.Submit.SetEnabled(m.CanSubmit())
	m.keys.Submit.SetHelp("C-s", m.selection.Mode().SubmitLabel())
	m.keys.Copy.SetEnabled(m.CanCopy())
	hasResult := m.phase.HasResult()
	m.keys.PageUp.SetEnabled(hasResult)
	m.keys.PageDown.SetEnabled(hasResult)
}
