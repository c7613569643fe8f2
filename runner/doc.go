// Package runner implements the orchestration layer between transports and
// agents.
//
// The Runner manages the complete lifecycle of an agent run: it resolves the
// session, persists the incoming user message, executes the agent against a
// fresh RunContext and streams resulting events to the caller while applying
// side effects (session state deltas, history persistence).
//
// # Responsibilities (abridged)
//   - Run orchestration (async streaming via channels)
//   - Event processing & side-effect application (session state, artifacts)
//   - Session history persistence (non-partial events only)
//   - Run lifecycle management & cancellation
//
// See runner.go for the operational implementation details.
package runner
