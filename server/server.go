package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/a2aproject/a2a-go/a2a"
	"github.com/a2aproject/a2a-go/a2asrv"

	"github.com/laxmi-genai/adk-a2ui-samples/a2ui"
)

// Config describes one A2A agent endpoint.
type Config struct {
	// Name and Description appear on the agent card.
	Name        string
	Description string
	Version     string

	// Host and Port form the listen address and the advertised card URL.
	Host string
	Port int

	// Skills advertised on the agent card.
	Skills []a2a.AgentSkill

	// Executor handles incoming interactions.
	Executor a2asrv.AgentExecutor
}

// NewCard builds the agent card: streaming on, A2UI declared as an optional
// extension, JSON-RPC as the single transport.
func NewCard(cfg Config) *a2a.AgentCard {
	version := cfg.Version
	if version == "" {
		version = "0.1.0"
	}
	return &a2a.AgentCard{
		Name:               cfg.Name,
		Description:        cfg.Description,
		URL:                fmt.Sprintf("http://%s:%d/", cfg.Host, cfg.Port),
		Version:            version,
		PreferredTransport: a2a.TransportProtocolJSONRPC,
		DefaultInputModes:  []string{"text/plain"},
		DefaultOutputModes: []string{"text/plain", a2ui.MIMEType},
		Capabilities: a2a.AgentCapabilities{
			Streaming:  true,
			Extensions: []a2a.AgentExtension{a2ui.CardExtension()},
		},
		Skills: cfg.Skills,
	}
}

// NewHTTPServer wires the JSON-RPC handler at the root path and the agent
// card at the well-known path, with extension negotiation middleware around
// both.
func NewHTTPServer(cfg Config) *http.Server {
	card := NewCard(cfg)
	requestHandler := a2asrv.NewHandler(cfg.Executor)

	mux := http.NewServeMux()
	mux.Handle(a2asrv.WellKnownAgentCardPath, a2asrv.NewStaticAgentCardHandler(card))
	mux.Handle("/", a2asrv.NewJSONRPCHandler(requestHandler))

	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:           ExtensionMiddleware(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}
}
