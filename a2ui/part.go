package a2ui

import (
	"github.com/a2aproject/a2a-go/a2a"
)

// NewMessagePart builds the A2A part carrying one recovered message.
// Structured records travel as DataParts tagged with the A2UI MIME type;
// text fallbacks travel as plain TextParts.
func NewMessagePart(msg Message) a2a.Part {
	if msg.IsText() {
		return a2a.TextPart{Text: msg.Text}
	}
	return a2a.DataPart{
		Data:     msg.Data,
		Metadata: map[string]any{"mimeType": MIMEType},
	}
}

// PartsForOutput recovers messages from raw model output and converts them
// to A2A parts. An empty result is valid: the model may legitimately decide
// to render nothing.
func PartsForOutput(raw string) []a2a.Part {
	messages := RecoverMessages(raw)
	parts := make([]a2a.Part, 0, len(messages))
	for _, msg := range messages {
		parts = append(parts, NewMessagePart(msg))
	}
	return parts
}
