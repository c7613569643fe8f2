package runner

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laxmi-genai/adk-a2ui-samples/agent"
	"github.com/laxmi-genai/adk-a2ui-samples/core"
	"github.com/laxmi-genai/adk-a2ui-samples/model"
	"github.com/laxmi-genai/adk-a2ui-samples/session"
)

func collectEvents(t *testing.T, eventsCh <-chan core.Event, errorsCh <-chan error) []core.Event {
	t.Helper()

	var events []core.Event
	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-eventsCh:
			if !ok {
				return events
			}
			events = append(events, ev)
		case err, ok := <-errorsCh:
			if ok && err != nil {
				t.Fatalf("unexpected run error: %v", err)
			}
		case <-timeout:
			t.Fatal("timed out waiting for events")
		}
	}
}

func TestRunner_RunStreamsEvents(t *testing.T) {
	llm := model.NewMockModel("mock", "test")
	llm.AddResponse("hello", "hi from mock")
	a := agent.NewModelAgent("Echo", llm, func(o *agent.ModelAgentOptions) {
		o.EnableStreaming = false
	})

	sessionStore := session.NewInMemoryStore()
	r := New(a, func(o *Options) {
		o.SessionStore = sessionStore
	})

	runID, eventsCh, errorsCh, err := r.Run(context.Background(), "sess-1", core.NewUserText("hello"))
	require.NoError(t, err)
	require.NotEmpty(t, runID)

	events := collectEvents(t, eventsCh, errorsCh)
	require.Len(t, events, 1)
	assert.Equal(t, "hi from mock", events[0].Content.Text())
	assert.Equal(t, runID, events[0].RunID)

	// Session history now contains the user event plus the assistant reply.
	sess, err := sessionStore.Get("sess-1")
	require.NoError(t, err)
	history := sess.GetConversationHistory()
	require.Len(t, history, 2)
	assert.Equal(t, "user", history[0].Content.Role)
	assert.Equal(t, "assistant", history[1].Content.Role)
}

func TestRunner_PartialEventsNotPersisted(t *testing.T) {
	llm := model.NewMockModel("mock", "test")
	llm.AddResponse("hi", "ok")
	a := agent.NewModelAgent("Streamer", llm) // streaming enabled by default

	sessionStore := session.NewInMemoryStore()
	r := New(a, func(o *Options) {
		o.SessionStore = sessionStore
	})

	_, eventsCh, errorsCh, err := r.Run(context.Background(), "sess-2", core.NewUserText("hi"))
	require.NoError(t, err)

	events := collectEvents(t, eventsCh, errorsCh)
	// MockModel streams one partial per rune plus the final response.
	require.Greater(t, len(events), 1)

	partials := 0
	for _, ev := range events {
		if ev.IsPartial() {
			partials++
		}
	}
	assert.Equal(t, len(events)-1, partials)

	sess, err := sessionStore.Get("sess-2")
	require.NoError(t, err)
	// Only user event + final assistant event persisted, no partials.
	assert.Len(t, sess.GetEvents(), 2)
}

func TestRunner_StateDeltaApplied(t *testing.T) {
	llm := model.NewMockModel("mock", "test")
	llm.AddResponse("save", "done")
	a := agent.NewModelAgent("Saver", llm, func(o *agent.ModelAgentOptions) {
		o.EnableStreaming = false
		o.OutputKey = "answer"
	})

	sessionStore := session.NewInMemoryStore()
	r := New(a, func(o *Options) {
		o.SessionStore = sessionStore
	})

	_, eventsCh, errorsCh, err := r.Run(context.Background(), "sess-3", core.NewUserText("save"))
	require.NoError(t, err)
	collectEvents(t, eventsCh, errorsCh)

	sess, err := sessionStore.Get("sess-3")
	require.NoError(t, err)
	v, ok := sess.GetState("answer")
	require.True(t, ok)
	assert.Equal(t, "done", v)
}

func TestRunner_CancelUnknownRun(t *testing.T) {
	r := New(agent.NewModelAgent("Idle", model.NewMockModel("mock", "test")))
	assert.Error(t, r.Cancel("no-such-run"))
}
