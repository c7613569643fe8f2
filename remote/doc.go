// Package remote implements a proxy agent that forwards interactions to
// another A2A agent and relays its responses.
//
// The proxy resolves the target's agent card, requests the A2UI extension
// on every HTTP call, streams the interaction via the A2A client, and
// converts incoming protocol events into runtime events. A2UI DataParts
// pass through opaquely so a downstream client can render them.
package remote
