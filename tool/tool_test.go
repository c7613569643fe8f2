package tool

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/laxmi-genai/adk-a2ui-samples/artifact"
	"github.com/laxmi-genai/adk-a2ui-samples/core"
	"github.com/laxmi-genai/adk-a2ui-samples/internal/util"
	"github.com/laxmi-genai/adk-a2ui-samples/logging"
	"github.com/laxmi-genai/adk-a2ui-samples/memory"
	"github.com/laxmi-genai/adk-a2ui-samples/session"
)

// -------------------- Schema & Validation Tests --------------------

type sampleSchema struct {
	A string `json:"a" description:"Field A"`
	B *int   `json:"b" description:"Optional pointer field"`
	C int    `json:"c,omitempty" description:"Omit empty field"`
}

func TestCreateSchema(t *testing.T) {
	schema := util.CreateSchema(sampleSchema{})
	props, ok := schema["properties"].(map[string]any)
	assert.True(t, ok)
	assert.Contains(t, props, "a")
	assert.Contains(t, props, "b")
	assert.Contains(t, props, "c")
	// Required only includes non-pointer, non-omitempty exported fields
	req, _ := schema["required"].([]string)
	if req == nil { // reflection may produce []any
		ifaceReq, _ := schema["required"].([]any)
		for _, v := range ifaceReq {
			req = append(req, v.(string))
		}
	}
	assert.ElementsMatch(t, []string{"a"}, req)
}

func TestValidateParameters(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"x": map[string]any{"type": "integer"},
		},
		// Use []any to mirror possible JSON decoded schema shape
		"required": []any{"x"},
	}

	// Success
	err := util.ValidateParameters(map[string]any{"x": 5}, schema)
	assert.NoError(t, err)

	// Missing required
	err = util.ValidateParameters(map[string]any{}, schema)
	assert.Error(t, err)
	if vErr, ok := err.(*ValidationError); ok {
		assert.Equal(t, "x", vErr.Field)
	} else {
		t.Fatalf("expected ValidationError, got %T", err)
	}

	// Wrong type
	err = util.ValidateParameters(map[string]any{"x": "not-int"}, schema)
	assert.Error(t, err)
	if vErr, ok := err.(*ValidationError); ok {
		assert.Contains(t, vErr.Message, "expected type integer")
	} else {
		t.Fatalf("expected ValidationError, got %T", err)
	}
}

// -------------------- FunctionTool Tests --------------------

func dummyRunContext() *core.RunContext {
	sessStore := session.NewInMemoryStore()
	artStore := artifact.NewInMemoryStore()
	memStore := memory.NewInMemoryStore()

	sessionID := "sess-1"
	sess, err := sessStore.Create(sessionID)
	if err != nil {
		panic(err)
	}

	emit := make(chan core.Event, 10)

	return core.NewRunContext(
		context.Background(),
		sessionID,
		"run-1",
		core.AgentInfo{Name: "Agent", Type: "test"},
		core.Content{},
		0,
		emit,
		sess,
		sessStore,
		artStore,
		memStore,
		logging.NoOpLogger{},
	)
}

func TestFunctionTool_Success(t *testing.T) {
	params := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"a": map[string]any{"type": "number"},
			"b": map[string]any{"type": "number"},
		},
		"required": []string{"a", "b"},
	}

	sumTool := NewFunctionTool("sum", "Add numbers", params, func(_ *core.ToolContext, args map[string]any) (any, error) {
		a := args["a"].(float64)
		b := args["b"].(float64)
		return a + b, nil
	})

	tc := core.NewToolContext(dummyRunContext(), "fc1")
	result, err := sumTool.Call(tc, map[string]any{"a": 2.0, "b": 3.0})
	assert.NoError(t, err)
	assert.Equal(t, 5.0, result)
}

func TestFunctionTool_ValidationError(t *testing.T) {
	params := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"a": map[string]any{"type": "number"},
		},
		"required": []any{"a"},
	}
	tTool := NewFunctionTool("test", "Test", params, func(_ *core.ToolContext, _ map[string]any) (any, error) {
		return 0, nil
	})
	tc := core.NewToolContext(dummyRunContext(), "fc2")
	_, err := tTool.Call(tc, map[string]any{})
	assert.Error(t, err)
	toolErr, ok := err.(*ToolError)
	assert.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", toolErr.Code)
}

func TestFunctionTool_ExecutionError(t *testing.T) {
	params := map[string]any{"type": "object", "properties": map[string]any{}}
	execTool := NewFunctionTool("fail", "Fails", params, func(_ *core.ToolContext, _ map[string]any) (any, error) {
		return nil, errors.New("boom")
	})
	tc := core.NewToolContext(dummyRunContext(), "fc3")
	_, err := execTool.Call(tc, map[string]any{})
	assert.Error(t, err)
	toolErr, ok := err.(*ToolError)
	assert.True(t, ok)
	assert.Equal(t, "EXECUTION_ERROR", toolErr.Code)
}

func TestFunctionTool_CustomToolErrorForwarded(t *testing.T) {
	params := map[string]any{"type": "object", "properties": map[string]any{}}
	custom := NewToolError("custom", "rate limited", "RATE_LIMITED")
	tTool := NewFunctionTool("custom", "Custom error", params, func(_ *core.ToolContext, _ map[string]any) (any, error) {
		return nil, custom
	})
	tc := core.NewToolContext(dummyRunContext(), "fc4")
	_, err := tTool.Call(tc, map[string]any{})
	assert.Same(t, custom, err)
}

func TestFunctionTool_StateDeltaAccumulated(t *testing.T) {
	params := map[string]any{"type": "object", "properties": map[string]any{}}
	stateTool := NewFunctionTool("set_flag", "Set a session flag", params, func(tc *core.ToolContext, _ map[string]any) (any, error) {
		tc.SetState("flag", true)
		return "ok", nil
	})
	tc := core.NewToolContext(dummyRunContext(), "fc5")
	_, err := stateTool.Call(tc, map[string]any{})
	assert.NoError(t, err)
	assert.Equal(t, true, tc.Actions().StateDelta["flag"])

	ev := core.Event{}
	tc.InternalApplyActions(&ev)
	assert.Equal(t, true, ev.Actions.StateDelta["flag"])
}

func TestFunctionToolFromStruct(t *testing.T) {
	type echoArgs struct {
		Text string `json:"text" description:"Text to echo"`
	}
	echoTool := NewFunctionToolFromStruct("echo", "Echo the input", echoArgs{}, func(_ *core.ToolContext, args map[string]any) (any, error) {
		return args["text"], nil
	})

	props, ok := echoTool.Parameters()["properties"].(map[string]any)
	assert.True(t, ok)
	assert.Contains(t, props, "text")

	tc := core.NewToolContext(dummyRunContext(), "fc6")
	res, err := echoTool.Call(tc, map[string]any{"text": "hello"})
	assert.NoError(t, err)
	assert.Equal(t, "hello", res)
}

// -------------------- ToolError Formatting --------------------

func TestToolErrorFormatting(t *testing.T) {
	err := NewToolError("demo", "something failed", "E123")
	assert.Contains(t, err.Error(), "E123")
	assert.Contains(t, err.Error(), "demo")
}
