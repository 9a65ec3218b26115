// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// =============================================================================
// WIRE TYPES
// =============================================================================

// SolveRequest is the body sent to the generation backend.
type SolveRequest struct {
	Challenge string `json:"challenge"`
	Context   string `json:"context"`
	Mode      Mode   `json:"mode"`

	// Model selects the backend's LLM provider (e.g. "gemini_flash").
	// Omitted when empty so the body matches the minimal contract.
	Model string `json:"model,omitempty"`
}

// SolveResponse is the successful backend reply.
type SolveResponse struct {
	Challenge string `json:"challenge"`
	Analysis  string `json:"analysis"`
}
