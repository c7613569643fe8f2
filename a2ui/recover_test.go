package a2ui

import (
	"testing"

	"github.com/a2aproject/a2a-go/a2a"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoverMessages_Empty(t *testing.T) {
	assert.Nil(t, RecoverMessages(""))
	assert.Nil(t, RecoverMessages("   \n\t  "))
}

func TestRecoverMessages_NoJSONFallsBackToText(t *testing.T) {
	messages := RecoverMessages("no json here")
	require.Len(t, messages, 1)
	assert.True(t, messages[0].IsText())
	assert.Equal(t, "no json here", messages[0].Text)
}

func TestRecoverMessages_ProseWrappedArray(t *testing.T) {
	raw := `Sure! Here you go: [{"beginRendering":{"surfaceId":"main"}},{"surfaceUpdate":{"components":[]}}] hope that helps`

	messages := RecoverMessages(raw)
	require.Len(t, messages, 2)
	assert.Contains(t, messages[0].Data, "beginRendering")
	assert.Contains(t, messages[1].Data, "surfaceUpdate")
}

func TestRecoverMessages_MessagesEnvelope(t *testing.T) {
	messages := RecoverMessages(`Sure! {"messages":[{"a":1}]}`)
	require.Len(t, messages, 1)
	assert.Equal(t, map[string]any{"a": float64(1)}, messages[0].Data)
}

func TestRecoverMessages_SingleObject(t *testing.T) {
	messages := RecoverMessages(`{"beginRendering":{"surfaceId":"main"}}`)
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0].Data, "beginRendering")
}

func TestRecoverMessages_MarkdownFence(t *testing.T) {
	raw := "```json\n[{\"divider\":{}}]\n```"
	messages := RecoverMessages(raw)
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0].Data, "divider")
}

func TestRecoverMessages_TrailingGarbageIgnored(t *testing.T) {
	raw := `{"text":{"usageHint":"body"}}trailing garbage`
	messages := RecoverMessages(raw)
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0].Data, "text")
}

func TestRecoverMessages_UnparseableFallsBackVerbatim(t *testing.T) {
	raw := `{"broken": [unclosed`
	messages := RecoverMessages(raw)
	require.Len(t, messages, 1)
	assert.True(t, messages[0].IsText())
	assert.Equal(t, raw, messages[0].Text)
}

func TestRecoverMessages_NonContainerElements(t *testing.T) {
	messages := RecoverMessages(`["plain string", {"row":{}}]`)
	require.Len(t, messages, 2)
	assert.Equal(t, "plain string", messages[0].Text)
	assert.Contains(t, messages[1].Data, "row")
}

func TestNewMessagePart_Structured(t *testing.T) {
	part := NewMessagePart(Message{Data: map[string]any{"text": map[string]any{"text": "hi"}}})
	dp, ok := part.(a2a.DataPart)
	require.True(t, ok)
	assert.Equal(t, MIMEType, dp.Metadata["mimeType"])
	assert.Contains(t, dp.Data, "text")
}

func TestNewMessagePart_Text(t *testing.T) {
	part := NewMessagePart(TextMessage("fallback"))
	tp, ok := part.(a2a.TextPart)
	require.True(t, ok)
	assert.Equal(t, "fallback", tp.Text)
}

func TestPartsForOutput_Composition(t *testing.T) {
	parts := PartsForOutput(`Here: [{"divider":{}}, "note"]`)
	require.Len(t, parts, 2)

	_, isData := parts[0].(a2a.DataPart)
	assert.True(t, isData)
	_, isText := parts[1].(a2a.TextPart)
	assert.True(t, isText)
}

func TestPartsForOutput_EmptyOutput(t *testing.T) {
	assert.Empty(t, PartsForOutput(""))
}
