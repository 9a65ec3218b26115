// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package backend provides the HTTP client for the challenge generation API.
//
// The backend is an opaque service: one POST to /api/solve carrying the
// selected challenge, the user's context and the output mode, answered with
// the echoed challenge and a markdown analysis.
//
// # Key Types
//
//   - Client: single-attempt JSON client, safe for concurrent use
//   - StatusError: non-2xx reply with the status code and a body excerpt
//
// # Usage
//
//	client := backend.NewClient("http://localhost:8000")
//	resp, err := client.Solve(ctx, model.SolveRequest{
//	    Challenge: "Navigating Ambiguity and Unclear Requirements",
//	    Context:   "Half the requirements are TBD",
//	    Mode:      model.ModePlan,
//	})
//
// There are no retries and no authentication; callers treat every error the
// same way.
package backend
