// Command a2ui-agent serves the landmark selector demo agent: an LLM agent
// that answers over the A2A protocol with A2UI UI description messages.
//
// Usage:
//
//	a2ui-agent --provider gemini
//	a2ui-agent --provider anthropic --model claude-sonnet-4-20250514 --port 10001
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/a2aproject/a2a-go/a2a"
	"github.com/alecthomas/kong"
	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	"golang.org/x/sync/errgroup"

	"github.com/laxmi-genai/adk-a2ui-samples/agent"
	"github.com/laxmi-genai/adk-a2ui-samples/config"
	"github.com/laxmi-genai/adk-a2ui-samples/logging"
	"github.com/laxmi-genai/adk-a2ui-samples/model"
	"github.com/laxmi-genai/adk-a2ui-samples/model/anthropic"
	"github.com/laxmi-genai/adk-a2ui-samples/model/gemini"
	"github.com/laxmi-genai/adk-a2ui-samples/model/openai"
	"github.com/laxmi-genai/adk-a2ui-samples/runner"
	"github.com/laxmi-genai/adk-a2ui-samples/server"
)

// CLI defines the command-line interface.
type CLI struct {
	Host     string `help:"Host to listen on." default:"localhost"`
	Port     int    `help:"Port to listen on." default:"10001"`
	Provider string `help:"LLM provider (gemini, openai, anthropic)." default:"gemini"`
	Model    string `help:"Model name override (provider default when empty)."`
	LogLevel string `name:"log-level" help:"Log level (debug, info, warn, error)." default:"info"`
}

func main() {
	cli := CLI{}
	kctx := kong.Parse(&cli,
		kong.Name("a2ui-agent"),
		kong.Description("Landmark selector agent serving A2UI over A2A."),
		kong.UsageOnError(),
	)
	kctx.FatalIfErrorf(run(&cli))
}

func run(cli *CLI) error {
	_ = config.LoadDotEnv()
	logger := logging.NewSlogLogger(logging.ParseLogLevel(cli.LogLevel), "text", false)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	llm, err := buildModel(ctx, cli)
	if err != nil {
		return fmt.Errorf("failed to build model: %w", err)
	}

	a := agent.NewModelAgent("item_selector_agent", llm, func(o *agent.ModelAgentOptions) {
		o.Instruction = agent.NewInstructionFromText(itemSelectorInstruction)
	})
	a.SetDescription("An agent to handle item selection from a list.")
	a.RegisterTool(getItemsTool())
	a.RegisterTool(selectItemTool())

	r := runner.New(a, func(o *runner.Options) {
		o.Logger = logger
	})

	executor := server.NewExecutor(r, func(o *server.ExecutorOptions) {
		o.Logger = logger
	})

	srv := server.NewHTTPServer(server.Config{
		Name:        "Item Selector Agent",
		Description: "An agent to handle item selection from a list.",
		Host:        cli.Host,
		Port:        cli.Port,
		Executor:    executor,
		Skills: []a2a.AgentSkill{
			{
				ID:          "item_selection",
				Name:        "Item selection",
				Description: "Presents a list of landmarks as a rich UI and processes selections.",
				Tags:        []string{"a2ui", "selection"},
				Examples:    []string{"Show me the options"},
			},
		},
	})

	return serve(ctx, srv, logger)
}

func buildModel(ctx context.Context, cli *CLI) (model.Model, error) {
	switch cli.Provider {
	case "gemini":
		return gemini.NewModel(ctx, func(o *gemini.Options) {
			if cli.Model != "" {
				o.Model = cli.Model
			}
		})
	case "openai":
		return openai.NewModel(func(o *openai.Options) {
			if cli.Model != "" {
				o.Model = cli.Model
			}
		}), nil
	case "anthropic":
		return anthropic.NewModel(func(o *anthropic.Options) {
			if cli.Model != "" {
				o.Model = anthropicsdk.Model(cli.Model)
			}
		}), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cli.Provider)
	}
}

func serve(ctx context.Context, srv *http.Server, logger logging.Logger) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server.listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info("server.shutting_down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
