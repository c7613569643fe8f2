package core

// Agent defines the interface all agents in the runtime implement.
//
// Agents receive input through a RunContext, process it asynchronously, and
// emit events to communicate results and state changes back to the Runner.
//
// Implementations must:
//   - Respect context cancellation for graceful shutdown
//   - Emit events through the provided RunContext
//   - Manage their lifecycle through Start/Stop
type Agent interface {
	Name() string
	Description() string
	Start(runCtx *RunContext) error
	Stop(runCtx *RunContext) error
	Run(runCtx *RunContext) error
}

// AgentInfo carries identifying details about an agent used in contexts &
// events. Name is the external identifier; Type categorizes the
// implementation (e.g. "model", "proxy").
type AgentInfo struct{ Name, Type string }
