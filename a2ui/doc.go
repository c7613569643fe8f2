// Package a2ui implements the agent-side surface of the A2UI extension to
// the A2A protocol.
//
// It covers three concerns:
//   - decoding client-to-server userAction payloads from incoming message
//     parts into a typed representation the model can be prompted with
//   - recovering server-to-client UI description messages from raw model
//     output, tolerating conversational filler around the JSON
//   - building the A2A parts that carry recovered messages back to clients
//
// The package is transport-free: it depends only on the a2a types and never
// touches the event queue or HTTP layer.
package a2ui
