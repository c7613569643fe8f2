// Package server exposes an agent over the A2A protocol with the A2UI
// extension.
//
// Executor implements a2asrv.AgentExecutor: it decodes the interaction
// (free text and/or an A2UI userAction), drives the task state machine
// (submitted, working, then exactly one of completed/failed), runs the
// agent through the runner, and writes the recovered A2UI parts back on
// the event queue. Extension negotiation travels through HTTP middleware
// that records the client's requested extension URIs in the request
// context so the executor can acknowledge them.
package server
