// Package agent contains the model-centric agent implementation and its
// supporting utilities. The package focuses on two concerns:
//
//  1. Base lifecycle plumbing (BaseAgent)
//  2. Model-centric conversational / tool-calling agent (ModelAgent)
//
// Design principles:
//   - Minimal hidden global state: explicit wiring via Runner/RunContext
//   - Observability: clear logging hooks at start/stop and each model turn
//   - Extensibility: embed BaseAgent; only implement Run plus any custom API
//
// Execution Model:
//   - An agent's Run receives a *core.RunContext
//   - ModelAgent drives a generate -> tool execution -> generate loop until the
//     model produces a final response without pending function calls
//
// The package intentionally keeps persistence, model specifics and tool
// registry abstractions in their respective packages to avoid cyclic deps.
package agent
