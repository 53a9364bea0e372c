// Package threadmesh provides the chat orchestration core: it assembles a
// composite prompt from long-term and working memory, dispatches it to the
// primary completion backend, independently runs the registered analysis
// agents and merges everything into one result. Most applications interact
// with this package by:
//  1. Creating a Chat via New() with a provider (usually a provider.Chain)
//  2. Optionally supplying a persona catalog, an agent executor and named
//     provider overrides
//  3. Calling Send for each inbound turn
//
// The façade holds no conversation state; all context arrives fully
// materialized in each ChatRequest and anything worth keeping (the freshly
// created topic summary) is handed back for the caller to persist.
package threadmesh

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hupe1980/threadmesh/agent"
	"github.com/hupe1980/threadmesh/core"
	"github.com/hupe1980/threadmesh/internal/util"
	"github.com/hupe1980/threadmesh/logging"
	"github.com/hupe1980/threadmesh/memory"
	"github.com/hupe1980/threadmesh/persona"
	"github.com/hupe1980/threadmesh/provider"
)

// ErrEmptyMessage is returned when a request carries no message text.
// It maps to a client error at the HTTP surface; no backend call is made.
var ErrEmptyMessage = fmt.Errorf("no message provided")

// Options configures a Chat instance.
type Options struct {
	// Personas is the conversational catalog; defaults to the built-in set.
	Personas *persona.Catalog
	// Assembler blends context packs into prompts; defaults to an
	// assembler without a summarizer (topic summaries are then never
	// generated, only reused).
	Assembler *memory.Assembler
	// Executor runs the background analysis agents. Nil disables them.
	Executor *agent.Executor
	// Providers maps request-selectable provider names to instances,
	// resolved once at startup. Unknown names fall back to the default.
	Providers map[string]provider.Provider
	Logger    logging.Logger
}

// Chat is the high-level façade aggregating context assembly, the primary
// completion call, agent execution and response aggregation.
type Chat struct {
	defaultProvider provider.Provider
	providers       map[string]provider.Provider
	personas        *persona.Catalog
	assembler       *memory.Assembler
	executor        *agent.Executor
	logger          logging.Logger
}

// New creates a Chat with optional overrides. The given provider serves
// every request that does not name an override.
func New(p provider.Provider, optFns ...func(o *Options)) *Chat {
	opts := Options{
		Personas: persona.DefaultCatalog(),
		Logger:   logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Assembler == nil {
		opts.Assembler = memory.NewAssembler(nil)
	}

	return &Chat{
		defaultProvider: p,
		providers:       opts.Providers,
		personas:        opts.Personas,
		assembler:       opts.Assembler,
		executor:        opts.Executor,
		logger:          opts.Logger,
	}
}

// ChatRequest is one inbound turn plus its fully materialized context.
type ChatRequest struct {
	// Message is the raw user message. Required.
	Message string
	// Persona selects the conversational persona; empty uses the default.
	Persona string
	// Provider optionally names a configured provider override.
	Provider string
	// ContextPack carries topic-thread context, if any.
	ContextPack *core.ContextPack
	// History is the conversation so far, used only by analysis agents.
	History []core.Message
	// EnabledAgents restricts which agents run. Nil runs all enabled
	// agents; an explicit empty slice runs none.
	EnabledAgents []string
}

// ChatResult is the merged outcome of one turn.
type ChatResult struct {
	// Response is the primary completion text.
	Response string
	// Model is the model identifier the backend actually used.
	Model string
	// Backend names the provider that produced the response.
	Backend string
	// Persona is the id of the persona that served the turn.
	Persona string
	// TopicSummary is set only when a summary was generated during this
	// request; the caller must persist it for reuse.
	TopicSummary string
	// AgentResults is present only when at least one agent ran.
	AgentResults map[string]agent.Result
}

// Send processes one turn: assemble the prompt, call the primary backend,
// run the analysis agents when history is present and merge the outputs.
// Summary and agent failures degrade the result; only validation failures
// and primary completion failures surface as errors.
func (c *Chat) Send(ctx context.Context, req ChatRequest) (*ChatResult, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, ErrEmptyMessage
	}

	requestID := util.NewID()
	p := c.personas.Get(req.Persona)
	logger := c.logger

	prompt := c.assembler.Assemble(ctx, p.SystemPrompt, req.ContextPack, req.Message)

	prov := c.resolveProvider(req.Provider)
	if prov == nil {
		return nil, provider.ErrNoProvider
	}

	start := time.Now()
	resp, err := prov.Complete(ctx, provider.Request{
		Model:       p.Model,
		System:      prompt.System,
		Messages:    []core.Message{{Sender: core.SenderUser, Text: prompt.UserMessage}},
		Temperature: p.Temperature,
		MaxTokens:   p.MaxTokens,
	})
	if err != nil {
		logger.Error("primary completion failed", "request_id", requestID, "persona", p.ID, "error", err)
		return nil, fmt.Errorf("primary completion: %w", err)
	}
	logger.Info("primary completion succeeded",
		"request_id", requestID,
		"persona", p.ID,
		"model", resp.Model,
		"backend", resp.Backend,
		"duration", time.Since(start),
	)

	result := &ChatResult{
		Response:     resp.Text,
		Model:        resp.Model,
		Backend:      resp.Backend,
		Persona:      p.ID,
		TopicSummary: prompt.FreshSummary,
	}

	if c.executor != nil && len(req.History) > 0 {
		results := c.executor.Run(ctx, req.History, req.ContextPack, req.EnabledAgents)
		if len(results) > 0 {
			result.AgentResults = results
		}
	}

	return result, nil
}

// resolveProvider maps a request-supplied provider name to an instance.
// Unknown or empty names use the default.
func (c *Chat) resolveProvider(name string) provider.Provider {
	if name != "" {
		if p, ok := c.providers[name]; ok {
			return p
		}
		c.logger.Warn("unknown provider requested, using default", "provider", name)
	}
	return c.defaultProvider
}
