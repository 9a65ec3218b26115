// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// =============================================================================
// SELECTION
// =============================================================================

// Selection is the user's current choice of topic, context and mode.
// It is an immutable value: setters return an updated copy.
type Selection struct {
	challenge string
	context   string
	mode      Mode
}

// NewSelection returns an empty selection in the default mode.
func NewSelection() Selection {
	return Selection{mode: DefaultMode}
}

// Challenge returns the selected topic, possibly empty.
func (s Selection) Challenge() string { return s.challenge }

// Context returns the free-text context, possibly empty.
func (s Selection) Context() string { return s.context }

// Mode returns the selected mode. The zero Selection reports DefaultMode.
func (s Selection) Mode() Mode {
	if !s.mode.Valid() {
		return DefaultMode
	}
	return s.mode
}

// WithChallenge returns a copy with the topic replaced. Any string is accepted.
func (s Selection) WithChallenge(challenge string) Selection {
	s.challenge = challenge
	return s
}

// WithContext returns a copy with the context replaced. Any string is accepted.
func (s Selection) WithContext(context string) Selection {
	s.context = context
	return s
}

// WithMode returns a copy with the mode replaced. Unknown modes keep the
// current one so the selection always holds a valid mode.
func (s Selection) WithMode(mode Mode) Selection {
	if mode.Valid() {
		s.mode = mode
	}
	return s
}

// Cleared returns a copy with topic and context emptied. Mode is kept.
func (s Selection) Cleared() Selection {
	return NewSelection().WithMode(s.Mode())
}

// Ready reports whether both topic and context are present.
func (s Selection) Ready() bool {
	return s.challenge != "" && s.context != ""
}

// Request snapshots the selection into a backend request.
func (s Selection) Request(llm string) SolveRequest {
	return SolveRequest{
		Challenge: s.challenge,
		Context:   s.context,
		Mode:      s.Mode(),
		Model:     llm,
	}
}
