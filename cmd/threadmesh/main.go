// Command threadmesh runs the chat orchestration server. It wires the
// configured completion backends into a fallback chain, sets up topic-summary
// context assembly and the background agent executor, and serves the HTTP API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/hupe1980/threadmesh"
	"github.com/hupe1980/threadmesh/agent"
	"github.com/hupe1980/threadmesh/config"
	"github.com/hupe1980/threadmesh/logging"
	"github.com/hupe1980/threadmesh/memory"
	"github.com/hupe1980/threadmesh/persona"
	"github.com/hupe1980/threadmesh/provider"
	anthropicprovider "github.com/hupe1980/threadmesh/provider/anthropic"
	"github.com/hupe1980/threadmesh/provider/router"
	"github.com/hupe1980/threadmesh/server"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "threadmesh: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := logging.New(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat, os.Stderr)

	providers := make(map[string]provider.Provider)
	backends := server.Backends{}

	var chain []provider.Provider

	if cfg.Router.BaseURL != "" {
		routerProvider := router.New(func(o *router.Options) {
			o.BaseURL = cfg.Router.BaseURL
			o.APIKey = cfg.Router.APIKey
			o.Name = cfg.Router.Name
		})
		chain = append(chain, routerProvider)
		providers[cfg.Router.Name] = routerProvider
		backends.Router = true
	}

	if cfg.Anthropic.APIKey != "" {
		anthropicProvider := anthropicprovider.New(func(o *anthropicprovider.Options) {
			o.APIKey = cfg.Anthropic.APIKey
			o.Model = anthropic.Model(cfg.Anthropic.Model)
		})
		chain = append(chain, anthropicProvider)
		providers[anthropicprovider.Name] = anthropicProvider
		backends.Anthropic = true
	}

	if !backends.Any() {
		logger.Warn("no completion backend configured, chat requests will fail")
	}

	primary := provider.NewChain(chain, func(o *provider.ChainOptions) {
		o.Logger = logger
	})

	summarizer := memory.NewSummarizer(primary, func(o *memory.SummarizerOptions) {
		o.Model = cfg.Summary.Model
		o.Temperature = cfg.Summary.Temperature
		o.MaxTokens = cfg.Summary.MaxTokens
		o.Logger = logger
	})

	assembler := memory.NewAssembler(summarizer)

	registry := agent.NewRegistry()

	brainstormDef := agent.BrainstormDefinition()
	if err := registry.Register(brainstormDef, agent.NewBrainstorm(brainstormDef, primary)); err != nil {
		return fmt.Errorf("register agents: %w", err)
	}

	executor := agent.NewExecutor(registry, func(o *agent.ExecutorOptions) {
		o.PoolSize = cfg.Agents.PoolSize
		o.Timeout = time.Duration(cfg.Agents.TimeoutSec) * time.Second
		o.Logger = logger
	})
	defer executor.Close()

	chat := threadmesh.New(primary, func(o *threadmesh.Options) {
		o.Assembler = assembler
		o.Executor = executor
		o.Providers = providers
		o.Logger = logger
	})

	srv := server.New(cfg.Listen.Address, cfg.Listen.Port, chat, persona.DefaultCatalog(), backends, func(o *server.Options) {
		o.Logger = logger
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	logger.Info("threadmesh listening", "address", cfg.Listen.Address, "port", cfg.Listen.Port)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
