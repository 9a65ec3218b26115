// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMode is returned when a string is not a known output mode.
var ErrInvalidMode = errors.New("invalid mode")

// =============================================================================
// MODE TYPE
// =============================================================================

// Mode is the output flavor requested from the backend.
type Mode string

const (
	// ModePlan asks for a full analysis and action plan.
	ModePlan Mode = "plan"
	// ModePrompt asks for reusable prompts the user can run elsewhere.
	ModePrompt Mode = "prompt"
)

// DefaultMode is used for new selections.
const DefaultMode = ModePlan

// ParseMode converts a wire or config value into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(ModePlan):
		return ModePlan, nil
	case string(ModePrompt):
		return ModePrompt, nil
	default:
		return "", fmt.Errorf("%w %q, must be one of: plan, prompt", ErrInvalidMode, s)
	}
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	return m == ModePlan || m == ModePrompt
}

// String returns the wire value.
func (m Mode) String() string {
	return string(m)
}

// DisplayName returns the label used on the mode selector.
func (m Mode) DisplayName() string {
	switch m {
	case ModePrompt:
		return "Prompt"
	default:
		return "Action Plan"
	}
}

// Heading returns the result panel heading for this mode.
func (m Mode) Heading() string {
	if m == ModePrompt {
		return "Prompt"
	}
	return "Analysis & Action Plan"
}

// SubmitLabel returns the label of the submit trigger.
func (m Mode) SubmitLabel() string {
	if m == ModePrompt {
		return "Get Prompt"
	}
	return "Get Action Plan"
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModePrompt {
		return ModePlan
	}
	return ModePrompt
}

// MarshalJSON encodes the mode as its wire string.
func (m Mode) MarshalJSON() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w %q", ErrInvalidMode, string(m))
	}
	return json.Marshal(string(m))
}

// UnmarshalJSON decodes a wire string, rejecting unknown values.
func (m *Mode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
