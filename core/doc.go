// Package core provides the foundational domain types, interfaces and
// execution contexts used by the agent runtime. It defines the core
// abstractions for:
//
//   - Agents (model-driven units of work)
//   - Sessions (stateful conversational containers with event history)
//   - Events (immutable communication records)
//   - RunContext / ToolContext (scoped execution & tool sandboxing)
//   - Pluggable stores for session state, artifacts and memory recall/search
//
// The package intentionally keeps implementation concerns (persistence,
// transports, concrete agents) out of scope, exposing small interfaces to
// enable custom backends and extensions.
package core
