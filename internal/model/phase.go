// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// FailureMessage is the only failure text ever shown to the user.
const FailureMessage = "Failed to get response from the server."

// =============================================================================
// SUBMISSION PHASE
// =============================================================================

// PhaseKind enumerates the submission lifecycle states.
type PhaseKind int

const (
	PhaseIdle PhaseKind = iota
	PhaseSubmitting
	PhaseSucceeded
	PhaseFailed
)

// String returns a short name for logs.
func (k PhaseKind) String() string {
	switch k {
	case PhaseIdle:
		return "idle"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Phase is the tagged submission state. Only the fields belonging to Kind
// are meaningful; construct it through the helpers below.
type Phase struct {
	Kind PhaseKind

	// Submitting
	Seq      uint64
	Detached bool

	// Submitting and Succeeded
	Request SolveRequest

	// Succeeded
	Response SolveResponse

	// Failed
	Message string
}

// Idle is the phase before any submission and after a clear.
func Idle() Phase {
	return Phase{Kind: PhaseIdle}
}

// Submitting is the phase while request seq is in flight.
func Submitting(seq uint64, req SolveRequest) Phase {
	return Phase{Kind: PhaseSubmitting, Seq: seq, Request: req}
}

// Succeeded holds the request that was sent and the backend reply.
func Succeeded(req SolveRequest, resp SolveResponse) Phase {
	return Phase{Kind: PhaseSucceeded, Request: req, Response: resp}
}

// Failed holds the generic failure message.
func Failed() Phase {
	return Phase{Kind: PhaseFailed, Message: FailureMessage}
}

// Loading reports whether a request is in flight.
func (p Phase) Loading() bool {
	return p.Kind == PhaseSubmitting
}

// HasResult reports whether a success or failure result is present.
func (p Phase) HasResult() bool {
	return p.Kind == PhaseSucceeded || p.Kind == PhaseFailed
}

// Detach marks an in-flight request as abandoned; its completion will be
// discarded. It has no effect in other phases.
func (p Phase) Detach() Phase {
	if p.Kind == PhaseSubmitting {
		p.Detached = true
	}
	return p
}

// Accepts reports whether a completion for seq should be applied.
func (p Phase) Accepts(seq uint64) bool {
	return p.Kind == PhaseSubmitting && p.Seq == seq && !p.Detached
}
