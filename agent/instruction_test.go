package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/laxmi-genai/adk-a2ui-samples/core"
	"github.com/laxmi-genai/adk-a2ui-samples/logging"
)

type mockProvider struct {
	text string
	err  error
}

func (m mockProvider) Instruction(*core.RunContext) (string, error) { return m.text, m.err }

func newTestRunContext() (*core.RunContext, chan core.Event) {
	sess := core.NewSession("test-session")
	baseContent := core.Content{Role: "user", Parts: []core.Part{core.TextPart{Text: "hello"}}}
	emit := make(chan core.Event, 64)
	runCtx := core.NewRunContext(
		context.Background(),
		sess.ID,
		"run-id",
		core.AgentInfo{Name: "TestAgent", Type: "test"},
		baseContent,
		0,
		emit,
		sess,
		nil,
		nil,
		nil,
		logging.NoOpLogger{},
	)
	return runCtx, emit
}

// testRunCtx is a shorthand for tests that do not inspect emitted events.
func testRunCtx() *core.RunContext {
	runCtx, _ := newTestRunContext()
	return runCtx
}

func TestInstruction_Static(t *testing.T) {
	inst := NewInstructionFromText("static instruction")
	if !inst.IsStatic() {
		t.Fatalf("expected static instruction")
	}
	got, err := inst.Resolve(testRunCtx())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "static instruction" {
		t.Fatalf("expected 'static instruction', got %q", got)
	}
}

func TestInstruction_NewInstructionFromFunc(t *testing.T) {
	inst := NewInstructionFromFunc(func(_ *core.RunContext) (string, error) { return "dynamic via func", nil })
	if inst.IsStatic() {
		t.Fatalf("expected dynamic instruction")
	}
	got, err := inst.Resolve(testRunCtx())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "dynamic via func" {
		t.Fatalf("expected 'dynamic via func', got %q", got)
	}
}

func TestInstruction_NewInstructionFromProvider(t *testing.T) {
	inst := NewInstructionFromProvider(mockProvider{text: "provider text"})
	if inst.IsStatic() {
		t.Fatalf("expected dynamic instruction")
	}
	got, err := inst.Resolve(testRunCtx())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "provider text" {
		t.Fatalf("expected 'provider text', got %q", got)
	}
}

func TestInstruction_ErrorPropagation(t *testing.T) {
	expectedErr := errors.New("boom")
	inst := NewInstructionFromProvider(mockProvider{err: expectedErr})
	_, err := inst.Resolve(testRunCtx())
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !errors.Is(err, expectedErr) {
		t.Fatalf("expected error %v, got %v", expectedErr, err)
	}
}

func TestResolveInstructions_TemplateSubstitution(t *testing.T) {
	runCtx := testRunCtx()
	runCtx.Session.SetState("name", "World")

	a := NewModelAgent("Templater", nil, func(o *ModelAgentOptions) {
		o.Instruction = NewInstructionFromText("Hello {{.name}}")
	})

	got, err := a.ResolveInstructions(runCtx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Hello World" {
		t.Fatalf("expected 'Hello World', got %q", got)
	}
}
