// Command a2ui-proxy serves an agent that forwards every interaction to
// another A2A agent and relays its A2UI responses. It demonstrates chaining
// agents over the protocol without the upstream agent knowing.
//
// Usage:
//
//	a2ui-proxy --target http://localhost:10001
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/a2aproject/a2a-go/a2a"
	"github.com/alecthomas/kong"
	"golang.org/x/sync/errgroup"

	"github.com/laxmi-genai/adk-a2ui-samples/config"
	"github.com/laxmi-genai/adk-a2ui-samples/logging"
	"github.com/laxmi-genai/adk-a2ui-samples/remote"
	"github.com/laxmi-genai/adk-a2ui-samples/runner"
	"github.com/laxmi-genai/adk-a2ui-samples/server"
)

// CLI defines the command-line interface.
type CLI struct {
	Host     string `help:"Host to listen on." default:"localhost"`
	Port     int    `help:"Port to listen on." default:"10002"`
	Target   string `help:"Base URL of the A2A agent to proxy." default:"http://localhost:10001"`
	LogLevel string `name:"log-level" help:"Log level (debug, info, warn, error)." default:"info"`
}

func main() {
	cli := CLI{}
	kctx := kong.Parse(&cli,
		kong.Name("a2ui-proxy"),
		kong.Description("Proxy agent relaying A2UI interactions to another A2A agent."),
		kong.UsageOnError(),
	)
	kctx.FatalIfErrorf(run(&cli))
}

func run(cli *CLI) error {
	_ = config.LoadDotEnv()
	logger := logging.NewSlogLogger(logging.ParseLogLevel(cli.LogLevel), "text", false)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a := remote.New("a2a_proxy_agent", cli.Target, func(o *remote.Options) {
		o.Description = "Proxies interactions to the item selector agent."
		o.Logger = logger
	})

	r := runner.New(a, func(o *runner.Options) {
		o.Logger = logger
	})

	executor := server.NewExecutor(r, func(o *server.ExecutorOptions) {
		o.Logger = logger
	})

	srv := server.NewHTTPServer(server.Config{
		Name:        "A2UI Proxy Agent",
		Description: "Relays interactions to the item selector agent and forwards its rich UI responses.",
		Host:        cli.Host,
		Port:        cli.Port,
		Executor:    executor,
		Skills: []a2a.AgentSkill{
			{
				ID:          "proxy",
				Name:        "Proxied item selection",
				Description: "Forwards requests to the item selector agent.",
				Tags:        []string{"a2ui", "proxy"},
			},
		},
	})

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server.listening", "addr", srv.Addr, "target", cli.Target)
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
