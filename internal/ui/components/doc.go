// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides reusable UI components for the swebuddy console.

# Components

ChallengePicker (picker.go) - Grouped, scrollable list of catalog topics.
Spinner (spinner.go) - ASCII spinner shown while a request is in flight.
MarkdownRenderer (markdown.go) - Terminal markdown rendering backed by glamour.

# Theme Integration

Components accept a *styles.Theme for consistent styling:

	theme := styles.NewTheme()
	picker := components.NewChallengePicker(catalog.Default(), theme)
	picker.SetSize(60, 12)
	view := picker.View()

# Bubble Tea Integration

Stateful components follow the Bubble Tea value-receiver pattern:

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
*/
package components
