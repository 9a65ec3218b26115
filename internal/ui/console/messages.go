// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package console

import (
	"github.com/jeranaias/swebuddy-tui/internal/config"
	"github.com/jeranaias/swebuddy-tui/internal/model"
)

// =============================================================================
// SUBMISSION MESSAGES
// =============================================================================

// SolveResultMsg delivers the outcome of request Seq. Exactly one is produced
// per submission.
type SolveResultMsg struct {
	Seq      uint64
	Response *model.SolveResponse
	Err      error
}

// =============================================================================
// CLIPBOARD MESSAGES
// =============================================================================

// CopyResultMsg reports a clipboard write for the result of request Seq.
type CopyResultMsg struct {
	Seq uint64
	Err error
}

// CopyResetMsg ends the "Copied!" window started by copy generation Gen.
type CopyResetMsg struct {
	Gen uint64
}

// =============================================================================
// CONFIG MESSAGES
// =============================================================================

// ConfigReloadedMsg carries a config file change picked up by the watcher.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}
