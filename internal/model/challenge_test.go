// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// MODE TESTS
// =============================================================================

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"plan", ModePlan, false},
		{"prompt", ModePrompt, false},
		{" PROMPT ", ModePrompt, false},
		{"", "", true},
		{"summary", "", true},
	}

	for _, tc := range tests {
		got, err := ParseMode(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidMode) {
				t.Errorf("ParseMode(%q) error = %v, want ErrInvalidMode", tc.in, err)
			}
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestModeLabels(t *testing.T) {
	assert.Equal(t, "Analysis & Action Plan", ModePlan.Heading())
	assert.Equal(t, "Prompt", ModePrompt.Heading())
	assert.Equal(t, "Get Action Plan", ModePlan.SubmitLabel())
	assert.Equal(t, "Get Prompt", ModePrompt.SubmitLabel())
	assert.Equal(t, ModePrompt, ModePlan.Toggle())
	assert.Equal(t, ModePlan, ModePrompt.Toggle())
}

func TestModeJSON(t *testing.T) {
	data, err := json.Marshal(ModePrompt)
	require.NoError(t, err)
	assert.Equal(t, `"prompt"`, string(data))

	var m Mode
	require.NoError(t, json.Unmarshal([]byte(`"plan"`), &m))
	assert.Equal(t, ModePlan, m)

	assert.Error(t, json.Unmarshal([]byte(`"other"`), &m))
	_, err = json.Marshal(Mode("other"))
	assert.Error(t, err)
}

// =============================================================================
// SELECTION TESTS
// =============================================================================

func TestNewSelection(t *testing.T) {
	s := NewSelection()
	assert.Empty(t, s.Challenge())
	assert.Empty(t, s.Context())
	assert.Equal(t, ModePlan, s.Mode())
	assert.False(t, s.Ready())

	var zero Selection
	assert.Equal(t, ModePlan, zero.Mode())
}

func TestSelection_Immutable(t *testing.T) {
	base := NewSelection()
	next := base.WithChallenge("c").WithContext("ctx").WithMode(ModePrompt)

	assert.Empty(t, base.Challenge())
	assert.Equal(t, ModePlan, base.Mode())
	assert.Equal(t, "c", next.Challenge())
	assert.Equal(t, "ctx", next.Context())
	assert.Equal(t, ModePrompt, next.Mode())
}

func TestSelection_WithModeRejectsUnknown(t *testing.T) {
	s := NewSelection().WithMode(ModePrompt).WithMode(Mode("bogus"))
	assert.Equal(t, ModePrompt, s.Mode())
}

func TestSelection_Ready(t *testing.T) {
	tests := []struct {
		challenge, context string
		want               bool
	}{
		{"", "", false},
		{"c", "", false},
		{"", "x", false},
		{"c", "x", true},
	}
	for _, tc := range tests {
		s := NewSelection().WithChallenge(tc.challenge).WithContext(tc.context)
		assert.Equal(t, tc.want, s.Ready(), "challenge=%q context=%q", tc.challenge, tc.context)
	}
}

func TestSelection_ClearedKeepsMode(t *testing.T) {
	s := NewSelection().WithChallenge("c").WithContext("x").WithMode(ModePrompt).Cleared()
	assert.Empty(t, s.Challenge())
	assert.Empty(t, s.Context())
	assert.Equal(t, ModePrompt, s.Mode())
}

func TestSelection_RequestSnapshot(t *testing.T) {
	s := NewSelection().WithChallenge("c").WithContext("x").WithMode(ModePrompt)
	req := s.Request("")

	s = s.WithChallenge("changed")

	assert.Equal(t, "c", req.Challenge)
	assert.Equal(t, "x", req.Context)
	assert.Equal(t, ModePrompt, req.Mode)
}

func TestSolveRequest_JSON(t *testing.T) {
	req := NewSelection().WithChallenge("c").WithContext("x").Request("")
	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"challenge":"c","context":"x","mode":"plan"}`, string(data))

	req.Model = "gemini_flash"
	data, err = json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"challenge":"c","context":"x","mode":"plan","model":"gemini_flash"}`, string(data))
}

// =============================================================================
// PHASE TESTS
// =============================================================================

func TestPhase(t *testing.T) {
	assert.False(t, Idle().Loading())
	assert.False(t, Idle().HasResult())

	sub := Submitting(3, SolveRequest{Challenge: "c", Mode: ModePrompt})
	assert.Equal(t, ModePrompt, sub.Request.Mode)
	assert.True(t, sub.Loading())
	assert.False(t, sub.HasResult())
	assert.True(t, sub.Accepts(3))
	assert.False(t, sub.Accepts(2))
	assert.False(t, sub.Detach().Accepts(3))
	assert.True(t, sub.Detach().Loading())

	ok := Succeeded(SolveRequest{Challenge: "c"}, SolveResponse{Challenge: "c", Analysis: "a"})
	assert.True(t, ok.HasResult())
	assert.False(t, ok.Loading())
	assert.False(t, ok.Accepts(3))
	assert.Equal(t, ok, ok.Detach())

	fail := Failed()
	assert.Equal(t, "Failed to get response from the server.", fail.Message)
	assert.Equal(t, "failed", fail.Kind.String())
}
