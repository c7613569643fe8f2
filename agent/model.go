package agent

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/laxmi-genai/adk-a2ui-samples/core"
	"github.com/laxmi-genai/adk-a2ui-samples/internal/util"
	"github.com/laxmi-genai/adk-a2ui-samples/model"
	"github.com/laxmi-genai/adk-a2ui-samples/tool"
)

// boolPtr creates a pointer to a boolean value.
// This is useful for optional fields in structs where nil indicates "not set".
func boolPtr(b bool) *bool {
	return &b
}

// ModelAgentOptions configures a ModelAgent instance.
//
// Use functional options with NewModelAgent to override defaults.
type ModelAgentOptions struct {
	Instruction           Instruction
	EnableStreaming       bool
	EnableFunctionCalling bool
	OutputKey             string
	MaxHistoryMessages    int
	Tools                 map[string]tool.Tool
}

// ModelAgent integrates with language models to provide intelligent text
// processing capabilities.
//
// This agent implementation supports:
//   - Natural language conversation through system prompts
//   - Function calling with registered tools
//   - Streaming responses for real-time interactions
//   - Session state management with output keys
//   - Template-based prompt customization
//
// ModelAgent embeds BaseAgent to inherit standard agent lifecycle management.
// Each Run drives a generate -> tool execution -> generate loop until the
// model produces a final response with no pending function calls.
type ModelAgent struct {
	BaseAgent
	llm                   model.Model
	instruction           Instruction
	tools                 map[string]tool.Tool
	enableFunctionCalling bool
	enableStreaming       bool
	outputKey             string
	maxHistoryMessages    int
}

// NewModelAgent creates a new model-based agent with sensible defaults.
//
// The agent is initialized with:
//   - Standard agent lifecycle inherited from BaseAgent
//   - Empty tool registry for function calling
//   - Streaming enabled for real-time responses
//   - Function calling enabled for tool usage
//   - 20-message conversation history limit
//
// Parameters:
//   - name: Human-readable name used in system prompt
//   - llm: Language model implementation for text generation
//
// Returns a fully configured ModelAgent ready for conversation.
func NewModelAgent(name string, llm model.Model, optFns ...func(o *ModelAgentOptions)) *ModelAgent {
	opts := ModelAgentOptions{
		Instruction:           NewInstructionFromText(fmt.Sprintf("You are %s, a helpful AI assistant.", name)),
		EnableStreaming:       true,
		EnableFunctionCalling: true,
		MaxHistoryMessages:    20,
		Tools:                 make(map[string]tool.Tool),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &ModelAgent{
		BaseAgent:             NewBaseAgent(name),
		llm:                   llm,
		instruction:           opts.Instruction,
		enableStreaming:       opts.EnableStreaming,
		enableFunctionCalling: opts.EnableFunctionCalling,
		outputKey:             opts.OutputKey,
		maxHistoryMessages:    opts.MaxHistoryMessages,
		tools:                 opts.Tools,
	}
}

// RegisterTool adds a function tool to the agent's capability set.
//
// Registered tools become available for the language model to call during
// conversations when function calling is enabled. Tools should implement
// the tool.Tool interface with proper JSON schema definitions.
//
// Example:
//
//	weatherTool := NewFunctionTool("get_weather", "Get weather for a location", schema, weatherFunc)
//	agent.RegisterTool(weatherTool)
func (a *ModelAgent) RegisterTool(t tool.Tool) {
	a.tools[t.Name()] = t
}

// RegisterTools adds multiple tools to the agent's capability set.
func (a *ModelAgent) RegisterTools(tools ...tool.Tool) {
	for _, t := range tools {
		a.RegisterTool(t)
	}
}

// UnregisterTool removes a tool from the agent's capability set.
//
// Returns true if the tool was found and removed, false if it wasn't registered.
func (a *ModelAgent) UnregisterTool(name string) bool {
	if _, exists := a.tools[name]; exists {
		delete(a.tools, name)
		return true
	}
	return false
}

// HasTool checks if a tool is registered with the agent.
func (a *ModelAgent) HasTool(name string) bool {
	_, exists := a.tools[name]
	return exists
}

// ListTools returns the names of all registered tools.
func (a *ModelAgent) ListTools() []string {
	names := make([]string, 0, len(a.tools))
	for name := range a.tools {
		names = append(names, name)
	}
	return names
}

// GetTool retrieves a specific tool by name.
//
// Returns the tool and true if found, nil and false if not registered.
func (a *ModelAgent) GetTool(name string) (tool.Tool, bool) {
	t, exists := a.tools[name]
	return t, exists
}

// ClearTools removes all registered tools from the agent.
func (a *ModelAgent) ClearTools() {
	a.tools = make(map[string]tool.Tool)
}

// GetLLM returns the language model instance.
func (a *ModelAgent) GetLLM() model.Model {
	return a.llm
}

// ResolveInstructions produces the final instruction string (system prompt) by
// resolving static or dynamic instruction sources and applying session-state
// template substitution.
func (a *ModelAgent) ResolveInstructions(runCtx *core.RunContext) (string, error) {
	instructions, err := a.instruction.Resolve(runCtx)
	if err != nil {
		return "", fmt.Errorf("failed to resolve instruction: %w", err)
	}

	if runCtx.Session != nil && runCtx.Session.State != nil {
		rendered, err := util.RenderTemplate(instructions, runCtx.Session.State)
		if err != nil {
			return "", fmt.Errorf("failed to render template: %w", err)
		}
		return rendered, nil
	}

	return instructions, nil
}

// ExecuteTool deserializes JSON arguments and invokes the named tool returning
// its result or an error if the tool is unknown or validation fails.
func (a *ModelAgent) ExecuteTool(toolCtx *core.ToolContext, toolName string, args string) (interface{}, error) {
	t, exists := a.tools[toolName]
	if !exists {
		return nil, fmt.Errorf("tool %s not found", toolName)
	}

	argsMap := make(map[string]interface{})
	if args != "" {
		if err := json.Unmarshal([]byte(args), &argsMap); err != nil {
			return nil, fmt.Errorf("failed to unmarshal args: %w", err)
		}
	}

	return t.Call(toolCtx, argsMap)
}

// Run implements core.Agent. It loops model turns until a final response is
// produced: each turn resolves instructions, assembles conversation contents,
// invokes the model and executes any requested tool calls, feeding their
// responses back into the next turn.
func (a *ModelAgent) Run(runCtx *core.RunContext) error {
	runCtx.LogDebug("agent.run.start", "agent", a.Name(), "run", runCtx.RunID)

	instructions, err := a.ResolveInstructions(runCtx)
	if err != nil {
		return err
	}

	history := a.historyContents(runCtx)

	// Contents produced during this run (assistant turns + tool responses).
	// Kept locally so tool results are visible to the next model turn without
	// waiting on session persistence.
	var transcript []core.Content

	for {
		if err := runCtx.Limiter.Increment(); err != nil {
			a.emitError(runCtx, err)
			return err
		}

		req := model.Request{
			Instructions: instructions,
			Contents:     append(append([]core.Content{}, history...), transcript...),
			Stream:       a.enableStreaming,
		}
		if a.enableFunctionCalling {
			req.Tools = a.toolDefinitions()
		}

		assistant, calls, err := a.generateOnce(runCtx, req)
		if err != nil {
			a.emitError(runCtx, err)
			return err
		}
		if assistant != nil {
			transcript = append(transcript, *assistant)
		}

		if len(calls) == 0 {
			runCtx.LogDebug("agent.run.complete", "agent", a.Name(), "model_calls", runCtx.Limiter.Count())
			return nil
		}

		responses, err := a.executeToolCalls(runCtx, calls)
		if err != nil {
			return err
		}
		transcript = append(transcript, responses...)
	}
}

// historyContents converts persisted conversation history into model contents,
// trimmed to the configured window.
func (a *ModelAgent) historyContents(runCtx *core.RunContext) []core.Content {
	if runCtx.Session == nil {
		return nil
	}

	events := runCtx.Session.GetConversationHistory()
	if a.maxHistoryMessages > 0 && len(events) > a.maxHistoryMessages {
		events = events[len(events)-a.maxHistoryMessages:]
	}

	contents := make([]core.Content, 0, len(events))
	for _, ev := range events {
		if ev.Content != nil && len(ev.Content.Parts) > 0 {
			contents = append(contents, *ev.Content)
		}
	}
	return contents
}

// toolDefinitions builds the declarative tool list handed to the model.
func (a *ModelAgent) toolDefinitions() []model.ToolDefinition {
	if len(a.tools) == 0 {
		return nil
	}
	defs := make([]model.ToolDefinition, 0, len(a.tools))
	for _, t := range a.tools {
		defs = append(defs, model.ToolDefinition{
			Type: "function",
			Function: model.FunctionDefinition{
				Name:        t.Name(),
				Description: t.Description(),
				Parameters:  t.Parameters(),
			},
		})
	}
	return defs
}

// generateOnce performs a single model turn, emitting partial and final events
// and returning the final assistant content plus any requested function calls.
func (a *ModelAgent) generateOnce(runCtx *core.RunContext, req model.Request) (*core.Content, []core.FunctionCall, error) {
	respCh, errCh := a.llm.Generate(runCtx.Context, req)

	var final *core.Content
	var calls []core.FunctionCall

	for {
		select {
		case <-runCtx.Context.Done():
			return nil, nil, runCtx.Context.Err()
		case resp, ok := <-respCh:
			if !ok {
				return final, calls, nil
			}

			ev := core.NewEvent(runCtx.RunID, a.Name())
			content := resp.Content
			ev.Content = &content
			ev.Partial = boolPtr(resp.Partial)

			if !resp.Partial {
				final = &content
				calls = ev.GetFunctionCalls()
				if len(calls) == 0 {
					ev.TurnComplete = boolPtr(true)
					if a.outputKey != "" {
						runCtx.SetState(a.outputKey, content.Text())
					}
				}
			}

			if err := runCtx.EmitEvent(ev); err != nil {
				return nil, nil, err
			}
		case err, ok := <-errCh:
			if !ok {
				errCh = nil // closed, stop selecting on it
				continue
			}
			if err != nil {
				return nil, nil, err
			}
		}
	}
}

// executeToolCalls runs each requested function call, emitting a function
// response event per call and returning the tool-role contents to append to
// the working transcript.
func (a *ModelAgent) executeToolCalls(runCtx *core.RunContext, calls []core.FunctionCall) ([]core.Content, error) {
	responses := make([]core.Content, 0, len(calls))

	for _, fnCall := range calls {
		toolCtx := core.NewToolContext(runCtx, fnCall.ID)

		start := time.Now()
		result, err := a.ExecuteTool(toolCtx, fnCall.Name, fnCall.Arguments)
		runCtx.LogInfo(
			"agent.tool.executed",
			"agent", a.Name(),
			"tool", fnCall.Name,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err != nil,
		)

		respEv := core.NewFunctionResponseEvent(a.Name(), fnCall.ID, fnCall.Name, result, err)
		respEv.RunID = runCtx.RunID
		toolCtx.InternalApplyActions(&respEv)

		if emitErr := runCtx.EmitEvent(respEv); emitErr != nil {
			return nil, emitErr
		}

		responses = append(responses, *respEv.Content)
	}

	return responses, nil
}

// emitError forwards an unrecoverable error as a terminal event so consumers
// observing the event stream see the failure in-band.
func (a *ModelAgent) emitError(runCtx *core.RunContext, err error) {
	ev := core.NewEvent(runCtx.RunID, a.Name())
	msg := err.Error()
	ev.ErrorMessage = &msg
	ev.TurnComplete = boolPtr(true)
	if emitErr := runCtx.EmitEvent(ev); emitErr != nil {
		runCtx.LogWarn("agent.error.emit_failed", "agent", a.Name(), "error", emitErr.Error())
	}
}
