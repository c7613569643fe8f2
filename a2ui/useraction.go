package a2ui

import (
	"encoding/json"
	"fmt"

	"github.com/a2aproject/a2a-go/a2a"
)

// Value is one case of the tagged union a userAction context entry carries.
// The concrete types cover the A2UI v0.8 value vocabulary; use a type switch
// rather than key inspection to branch on them.
type Value interface {
	// display returns the representation injected into the model prompt.
	display() any
}

// LiteralString is an inline string value.
type LiteralString struct{ Value string }

// LiteralNumber is an inline numeric value.
type LiteralNumber struct{ Value float64 }

// LiteralBool is an inline boolean value.
type LiteralBool struct{ Value bool }

// Path references a location in the client's data model instead of carrying
// the value inline. The agent cannot resolve it, so it surfaces as a
// placeholder in the prompt.
type Path struct{ Ref string }

func (v LiteralString) display() any { return v.Value }
func (v LiteralNumber) display() any { return v.Value }
func (v LiteralBool) display() any   { return v.Value }
func (v Path) display() any          { return fmt.Sprintf("{path: %s}", v.Ref) }

// ContextEntry is a single key/value pair of a userAction context.
type ContextEntry struct {
	Key   string
	Value Value
}

// UserAction is a decoded client-to-server userAction payload.
type UserAction struct {
	Name    string
	Context []ContextEntry
}

// ExtractUserAction scans message parts in order and decodes the first
// DataPart carrying a userAction payload. Remaining parts are ignored.
// Returns false when no part carries one.
func ExtractUserAction(parts []a2a.Part) (*UserAction, bool) {
	for _, part := range parts {
		dp, ok := part.(a2a.DataPart)
		if !ok {
			continue
		}
		payload, ok := dp.Data["userAction"].(map[string]any)
		if !ok {
			continue
		}
		return decodeUserAction(payload), true
	}
	return nil, false
}

func decodeUserAction(payload map[string]any) *UserAction {
	action := &UserAction{}
	if name, ok := payload["name"].(string); ok {
		action.Name = name
	}
	entries, _ := payload["context"].([]any)
	for _, raw := range entries {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		key, _ := entry["key"].(string)
		value, ok := decodeValue(entry["value"])
		if !ok {
			continue
		}
		action.Context = append(action.Context, ContextEntry{Key: key, Value: value})
	}
	return action
}

func decodeValue(raw any) (Value, bool) {
	tagged, ok := raw.(map[string]any)
	if !ok {
		return nil, false
	}
	if s, ok := tagged["literalString"].(string); ok {
		return LiteralString{Value: s}, true
	}
	if n, ok := tagged["literalNumber"].(float64); ok {
		return LiteralNumber{Value: n}, true
	}
	if b, ok := tagged["literalBoolean"].(bool); ok {
		return LiteralBool{Value: b}, true
	}
	if p, ok := tagged["path"].(string); ok {
		return Path{Ref: p}, true
	}
	return nil, false
}

// Directive renders the action as a natural language instruction for the
// model. Literal values appear verbatim; path references appear as display
// placeholders since the agent cannot resolve the client's data model.
func (a *UserAction) Directive() string {
	ctx := make(map[string]any, len(a.Context))
	for _, entry := range a.Context {
		ctx[entry.Key] = entry.Value.display()
	}
	encoded, _ := json.Marshal(ctx)
	return fmt.Sprintf(
		"User initiated action: '%s'. Action context data: %s. Please use the appropriate tool to handle this.",
		a.Name, encoded,
	)
}
