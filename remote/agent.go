package remote

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/a2aproject/a2a-go/a2a"
	"github.com/a2aproject/a2a-go/a2aclient"
	"github.com/a2aproject/a2a-go/a2aclient/agentcard"

	"github.com/laxmi-genai/adk-a2ui-samples/a2ui"
	"github.com/laxmi-genai/adk-a2ui-samples/agent"
	"github.com/laxmi-genai/adk-a2ui-samples/core"
	"github.com/laxmi-genai/adk-a2ui-samples/logging"
)

// Options holds configuration overrides passed to New.
type Options struct {
	// Description is the local description of the proxied agent.
	Description string
	// Timeout bounds every HTTP call to the target. UI generation behind a
	// model can be slow, hence the generous default of 300s.
	Timeout time.Duration
	// Logger receives proxy diagnostics.
	Logger logging.Logger
}

// Agent proxies interactions to a remote A2A agent. The target's card is
// resolved lazily on first use and cached for the agent's lifetime.
type Agent struct {
	agent.BaseAgent

	targetURL  string
	httpClient *http.Client
	logger     logging.Logger

	mu   sync.Mutex
	card *a2a.AgentCard
}

// New creates a proxy agent targeting the A2A server at targetURL.
func New(name, targetURL string, optFns ...func(o *Options)) *Agent {
	opts := Options{
		Timeout: 300 * time.Second,
		Logger:  logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	a := &Agent{
		BaseAgent: agent.NewBaseAgent(name),
		targetURL: targetURL,
		httpClient: &http.Client{
			Timeout:   opts.Timeout,
			Transport: extensionTransport{},
		},
		logger: opts.Logger,
	}
	if opts.Description != "" {
		a.SetDescription(opts.Description)
	}
	return a
}

// Run implements core.Agent. It forwards the run's user content to the
// target and re-emits the returned protocol events as runtime events.
func (a *Agent) Run(runCtx *core.RunContext) error {
	ctx := runCtx.Context

	card, err := a.resolveCard(ctx)
	if err != nil {
		return fmt.Errorf("agent card resolution failed: %w", err)
	}

	// The shared client carries the extension header and timeout on the
	// message sends, not just the card fetch.
	client, err := a2aclient.NewFromCard(ctx, card, a2aclient.WithJSONRPCTransport(a.httpClient))
	if err != nil {
		return fmt.Errorf("client creation failed: %w", err)
	}
	defer func() { _ = client.Destroy() }()

	msg := a2a.NewMessage(a2a.MessageRoleUser, toA2AParts(runCtx.UserContent.Parts)...)
	if len(msg.Parts) == 0 {
		a.logger.Debug("remote.run.empty_input", "agent", a.Name())
		return nil
	}

	params := &a2a.MessageSendParams{Message: msg}
	for a2aEvent, err := range client.SendStreamingMessage(ctx, params) {
		if err != nil {
			return fmt.Errorf("remote stream failed: %w", err)
		}
		ev, ok := a.convertEvent(runCtx, a2aEvent)
		if !ok {
			continue
		}
		if err := runCtx.EmitEvent(ev); err != nil {
			return err
		}
	}
	return nil
}

func (a *Agent) resolveCard(ctx context.Context) (*a2a.AgentCard, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.card != nil {
		return a.card, nil
	}

	resolver := agentcard.NewResolver(a.httpClient)
	card, err := resolver.Resolve(ctx, a.targetURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch agent card from %s: %w", a.targetURL, err)
	}
	a.logger.Info("remote.card.resolved", "agent", card.Name, "url", a.targetURL)
	a.card = card
	return card, nil
}

// convertEvent maps one protocol event to a runtime event. Events without
// renderable content are dropped.
func (a *Agent) convertEvent(runCtx *core.RunContext, a2aEvent a2a.Event) (core.Event, bool) {
	var parts []a2a.Part
	var terminal bool

	switch e := a2aEvent.(type) {
	case *a2a.TaskStatusUpdateEvent:
		if e.Status.Message != nil {
			parts = e.Status.Message.Parts
		}
		terminal = e.Final
	case *a2a.TaskArtifactUpdateEvent:
		if e.Artifact != nil {
			parts = e.Artifact.Parts
		}
	case *a2a.Message:
		parts = e.Parts
		terminal = true
	default:
		return core.Event{}, false
	}

	converted := toCoreParts(parts)
	if len(converted) == 0 && !terminal {
		return core.Event{}, false
	}

	ev := core.NewEvent(runCtx.RunID, a.Name())
	ev.Content = &core.Content{Role: "assistant", Parts: converted}
	if terminal {
		ev.TurnComplete = boolPtr(true)
	}
	return ev, true
}

// toA2AParts converts outgoing runtime parts. Only text and structured data
// cross the proxy boundary.
func toA2AParts(parts []core.Part) []a2a.Part {
	out := make([]a2a.Part, 0, len(parts))
	for _, p := range parts {
		switch part := p.(type) {
		case core.TextPart:
			out = append(out, a2a.TextPart{Text: part.Text, Metadata: part.Metadata})
		case core.DataPart:
			out = append(out, a2a.DataPart{Data: part.Data, Metadata: part.Metadata})
		}
	}
	return out
}

// toCoreParts converts incoming protocol parts, keeping A2UI DataParts
// opaque so downstream clients can render them.
func toCoreParts(parts []a2a.Part) []core.Part {
	out := make([]core.Part, 0, len(parts))
	for _, p := range parts {
		switch part := p.(type) {
		case a2a.TextPart:
			out = append(out, core.TextPart{Text: part.Text, Metadata: part.Metadata})
		case a2a.DataPart:
			out = append(out, core.DataPart{Data: part.Data, Metadata: part.Metadata})
		}
	}
	return out
}

// extensionTransport requests A2UI activation on every call to the target.
type extensionTransport struct {
	base http.RoundTripper
}

func (t extensionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set(a2ui.ExtensionHeader, a2ui.ExtensionURI)
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(clone)
}

func boolPtr(b bool) *bool { return &b }

var _ core.Agent = (*Agent)(nil)
