// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the domain types shared by the console, the CLI and
// the backend client.
//
// # Key Types
//
//   - Mode: output flavor (plan or prompt) with its display labels
//   - Selection: immutable topic/context/mode value updated through setters
//   - SolveRequest, SolveResponse: the backend wire contract
//   - Phase: tagged submission state (idle, submitting, succeeded, failed)
//
// # Usage
//
//	sel := model.NewSelection().
//	    WithChallenge("Navigating Ambiguity and Unclear Requirements").
//	    WithContext("New team, no PM").
//	    WithMode(model.ModePrompt)
//	if sel.Ready() {
//	    req := sel.Request("")
//	    _ = req
//	}
package model
