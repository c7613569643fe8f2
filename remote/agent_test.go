package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a2aproject/a2a-go/a2a"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laxmi-genai/adk-a2ui-samples/a2ui"
	"github.com/laxmi-genai/adk-a2ui-samples/core"
	"github.com/laxmi-genai/adk-a2ui-samples/logging"
)

func proxyRunCtx() *core.RunContext {
	sess := core.NewSession("proxy-session")
	emit := make(chan core.Event, 16)
	return core.NewRunContext(
		context.Background(),
		sess.ID,
		"run-1",
		core.AgentInfo{Name: "Proxy", Type: "proxy"},
		core.NewUserText("hello"),
		0,
		emit,
		sess,
		nil,
		nil,
		nil,
		logging.NoOpLogger{},
	)
}

func TestConvertEvent_StatusWithMessage(t *testing.T) {
	a := New("Proxy", "http://localhost:10001")
	runCtx := proxyRunCtx()

	ev, ok := a.convertEvent(runCtx, &a2a.TaskStatusUpdateEvent{
		Status: a2a.TaskStatus{
			State: a2a.TaskStateCompleted,
			Message: &a2a.Message{Parts: []a2a.Part{
				a2a.DataPart{Data: map[string]any{"beginRendering": map[string]any{}}},
				a2a.TextPart{Text: "done"},
			}},
		},
		Final: true,
	})

	require.True(t, ok)
	require.NotNil(t, ev.Content)
	require.Len(t, ev.Content.Parts, 2)

	dp, isData := ev.Content.Parts[0].(core.DataPart)
	require.True(t, isData)
	assert.Contains(t, dp.Data, "beginRendering")
	assert.Equal(t, "Proxy", ev.Author)
	require.NotNil(t, ev.TurnComplete)
	assert.True(t, *ev.TurnComplete)
}

func TestConvertEvent_NonFinalStatusWithoutContentDropped(t *testing.T) {
	a := New("Proxy", "http://localhost:10001")

	_, ok := a.convertEvent(proxyRunCtx(), &a2a.TaskStatusUpdateEvent{
		Status: a2a.TaskStatus{State: a2a.TaskStateWorking},
	})
	assert.False(t, ok)
}

func TestConvertEvent_ArtifactParts(t *testing.T) {
	a := New("Proxy", "http://localhost:10001")

	ev, ok := a.convertEvent(proxyRunCtx(), &a2a.TaskArtifactUpdateEvent{
		Artifact: &a2a.Artifact{Parts: []a2a.Part{a2a.TextPart{Text: "chunk"}}},
	})
	require.True(t, ok)
	assert.Equal(t, "chunk", ev.Content.Text())
}

func TestConvertEvent_NilArtifactDropped(t *testing.T) {
	a := New("Proxy", "http://localhost:10001")

	_, ok := a.convertEvent(proxyRunCtx(), &a2a.TaskArtifactUpdateEvent{})
	assert.False(t, ok)
}

func TestToA2AParts_DropsNonTransferableParts(t *testing.T) {
	parts := toA2AParts([]core.Part{
		core.TextPart{Text: "hi"},
		core.FunctionCallPart{FunctionCall: core.FunctionCall{Name: "f"}},
		core.DataPart{Data: map[string]any{"k": "v"}},
	})
	require.Len(t, parts, 2)
	_, isText := parts[0].(a2a.TextPart)
	assert.True(t, isText)
	_, isData := parts[1].(a2a.DataPart)
	assert.True(t, isData)
}

func TestRun_SendCarriesExtensionHeader(t *testing.T) {
	var sendHeader string
	sendSeen := false

	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/.well-known/agent-card.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"Target","description":"d","url":"` + srv.URL + `/","version":"1.0","preferredTransport":"JSONRPC","capabilities":{"streaming":true}}`))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		sendSeen = true
		sendHeader = r.Header.Get(a2ui.ExtensionHeader)
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	})

	a := New("Proxy", srv.URL)
	err := a.Run(proxyRunCtx())
	require.Error(t, err)

	require.True(t, sendSeen)
	assert.Equal(t, a2ui.ExtensionURI, sendHeader)
}

func TestResolveCard_InjectsExtensionHeader(t *testing.T) {
	var gotHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get(a2ui.ExtensionHeader)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"Target","description":"d","url":"` + "http://example" + `","version":"1.0"}`))
	}))
	defer srv.Close()

	a := New("Proxy", srv.URL)
	card, err := a.resolveCard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Target", card.Name)
	assert.Equal(t, a2ui.ExtensionURI, gotHeader)

	// Cached on second call.
	again, err := a.resolveCard(context.Background())
	require.NoError(t, err)
	assert.Same(t, card, again)
}
