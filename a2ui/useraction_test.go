package a2ui

import (
	"testing"

	"github.com/a2aproject/a2a-go/a2a"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func actionPart(name string, context []any) a2a.DataPart {
	return a2a.DataPart{Data: map[string]any{
		"userAction": map[string]any{
			"name":    name,
			"context": context,
		},
	}}
}

func TestExtractUserAction_FirstDataPartWins(t *testing.T) {
	parts := []a2a.Part{
		a2a.TextPart{Text: "please select"},
		actionPart("select_item", nil),
		actionPart("ignored_second", nil),
	}

	action, ok := ExtractUserAction(parts)
	require.True(t, ok)
	assert.Equal(t, "select_item", action.Name)
}

func TestExtractUserAction_NoAction(t *testing.T) {
	parts := []a2a.Part{
		a2a.TextPart{Text: "just text"},
		a2a.DataPart{Data: map[string]any{"something": "else"}},
	}

	_, ok := ExtractUserAction(parts)
	assert.False(t, ok)
}

func TestExtractUserAction_DecodesTaggedValues(t *testing.T) {
	parts := []a2a.Part{actionPart("select_item", []any{
		map[string]any{"key": "color", "value": map[string]any{"literalString": "red"}},
		map[string]any{"key": "count", "value": map[string]any{"literalNumber": float64(3)}},
		map[string]any{"key": "confirmed", "value": map[string]any{"literalBoolean": true}},
		map[string]any{"key": "item", "value": map[string]any{"path": "/items/0"}},
		map[string]any{"key": "dropped", "value": map[string]any{"unknownTag": "x"}},
	})}

	action, ok := ExtractUserAction(parts)
	require.True(t, ok)
	require.Len(t, action.Context, 4)

	assert.Equal(t, ContextEntry{Key: "color", Value: LiteralString{Value: "red"}}, action.Context[0])
	assert.Equal(t, ContextEntry{Key: "count", Value: LiteralNumber{Value: 3}}, action.Context[1])
	assert.Equal(t, ContextEntry{Key: "confirmed", Value: LiteralBool{Value: true}}, action.Context[2])
	assert.Equal(t, ContextEntry{Key: "item", Value: Path{Ref: "/items/0"}}, action.Context[3])
}

func TestDirective_ContainsNameAndContext(t *testing.T) {
	action := &UserAction{
		Name: "select_item",
		Context: []ContextEntry{
			{Key: "color", Value: LiteralString{Value: "red"}},
		},
	}

	directive := action.Directive()
	assert.Contains(t, directive, "User initiated action: 'select_item'")
	assert.Contains(t, directive, `{"color":"red"}`)
	assert.Contains(t, directive, "Please use the appropriate tool to handle this.")
}

func TestDirective_PathRendersAsPlaceholder(t *testing.T) {
	action := &UserAction{
		Name: "inspect",
		Context: []ContextEntry{
			{Key: "item", Value: Path{Ref: "/items/2"}},
		},
	}

	assert.Contains(t, action.Directive(), `{"item":"{path: /items/2}"}`)
}

func TestDirective_EmptyContext(t *testing.T) {
	action := &UserAction{Name: "refresh"}
	assert.Contains(t, action.Directive(), "Action context data: {}.")
}
