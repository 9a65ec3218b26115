// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package console provides the interactive challenge console.
//
// The console is a single Bubble Tea model. The user picks a topic from the
// catalog, describes their situation, chooses between an action plan and a
// reusable prompt, and submits. One request is sent to the backend per
// submission and the markdown reply is rendered in a scrollable panel that
// can be copied to the system clipboard.
//
// # Submission Lifecycle
//
// State is an explicit model.Phase:
//
//	Idle -> Submitting -> Succeeded | Failed
//
// Submitting carries a sequence number. Completions whose number does not
// match the current phase are dropped. Clearing the form while a request is in
// flight detaches that request: its completion returns the console to Idle
// and nothing it carries is displayed.
//
// # Key Bindings
//
// Actions that are not currently allowed have their key.Binding disabled, so
// they neither match nor appear in the help bar.
//
// # Usage
//
//	m := console.New(console.Options{
//	    Catalog:   catalog.Default(),
//	    Solver:    backend.NewClientFromConfig(cfg),
//	    Clipboard: console.SystemClipboard{},
//	    Renderer:  renderer,
//	    Theme:     styles.NewTheme(),
//	})
//	p := tea.NewProgram(m, tea.WithAltScreen())
package console
