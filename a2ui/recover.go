package a2ui

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Message is one recovered A2UI message: either a structured record destined
// for a DataPart, or free text preserved verbatim when the output cannot be
// interpreted as JSON.
type Message struct {
	Data map[string]any
	Text string
}

// IsText reports whether the message is a plain-text fallback.
func (m Message) IsText() bool { return m.Data == nil }

// TextMessage wraps raw text as a fallback message.
func TextMessage(text string) Message { return Message{Text: text} }

// RecoverMessages extracts A2UI messages from raw model output. Models wrap
// their JSON in markdown fences or conversational filler often enough that a
// strict parse is useless, so recovery proceeds through a fallback chain:
//
//  1. empty output yields nothing
//  2. output with no JSON start character becomes a single text message
//  3. a prefix-tolerant parse from the first '{' or '[' takes the longest
//     valid leading value and ignores trailing commentary
//  4. failing that, the text is trimmed to the last '}' or ']' and parsed
//     strictly
//  5. if both parses fail the trimmed output is returned verbatim as text
//
// The parsed value is then flattened: an array contributes its elements in
// order, an object with a "messages" array contributes those elements, any
// other object is a single message, and anything else degrades to text.
// RecoverMessages never fails; malformed output is always representable.
func RecoverMessages(raw string) []Message {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	start := strings.IndexAny(trimmed, "{[")
	if start < 0 {
		return []Message{TextMessage(trimmed)}
	}

	candidate := trimmed[start:]
	value, err := parseLeadingValue(candidate)
	if err != nil {
		value, err = parseToLastBracket(candidate)
	}
	if err != nil {
		return []Message{TextMessage(trimmed)}
	}

	return flatten(value)
}

// parseLeadingValue decodes the first complete JSON value and ignores
// whatever follows it.
func parseLeadingValue(s string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}
	return value, nil
}

// parseToLastBracket cuts the input at the last closing bracket and parses
// the remainder strictly. Recovers outputs where the leading value itself is
// interrupted mid-stream but a complete value ends earlier in the text.
func parseToLastBracket(s string) (any, error) {
	end := max(strings.LastIndexByte(s, '}'), strings.LastIndexByte(s, ']'))
	if end < 0 {
		return nil, errors.New("no closing bracket")
	}
	var value any
	if err := json.Unmarshal([]byte(s[:end+1]), &value); err != nil {
		return nil, err
	}
	return value, nil
}

func flatten(value any) []Message {
	switch v := value.(type) {
	case []any:
		messages := make([]Message, 0, len(v))
		for _, el := range v {
			messages = append(messages, asMessage(el))
		}
		return messages
	case map[string]any:
		if list, ok := v["messages"].([]any); ok {
			messages := make([]Message, 0, len(list))
			for _, el := range list {
				messages = append(messages, asMessage(el))
			}
			return messages
		}
		return []Message{{Data: v}}
	default:
		return []Message{TextMessage(stringify(v))}
	}
}

func asMessage(el any) Message {
	if record, ok := el.(map[string]any); ok {
		return Message{Data: record}
	}
	return TextMessage(stringify(el))
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
