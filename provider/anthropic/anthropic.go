// Package anthropic provides a completion provider backed by the Anthropic
// Messages API. It is the direct-vendor fallback behind the router backend.
package anthropic

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/hupe1980/threadmesh/core"
	"github.com/hupe1980/threadmesh/provider"
)

// Name is the backend identifier reported in responses and health output.
const Name = "anthropic-direct"

// Options configures the Anthropic provider adapter.
type Options struct {
	// Model is used when a request does not name one.
	Model anthropic.Model
	// MaxTokens is used when a request does not set a token budget.
	MaxTokens int64
	// APIKey overrides the ANTHROPIC_API_KEY environment variable.
	APIKey string
}

// Provider wraps the Anthropic Messages API behind the generic
// provider.Provider interface.
type Provider struct {
	client *anthropic.Client
	opts   Options
}

// New creates an Anthropic provider using the official client.
func New(optFns ...func(o *Options)) *Provider {
	opts := Options{
		Model:     anthropic.ModelClaude3_5Haiku20241022,
		MaxTokens: 2048,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}

	client := anthropic.NewClient(clientOpts...)

	return &Provider{client: &client, opts: opts}
}

// NewFromClient creates an Anthropic provider from an existing client.
func NewFromClient(client *anthropic.Client, optFns ...func(o *Options)) *Provider {
	opts := Options{
		Model:     anthropic.ModelClaude3_5Haiku20241022,
		MaxTokens: 2048,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Provider{client: client, opts: opts}
}

// Complete implements provider.Provider using a non-streaming Messages call.
func (p *Provider) Complete(ctx context.Context, req provider.Request) (*provider.Response, error) {
	model := anthropic.Model(req.Model)
	if req.Model == "" {
		model = p.opts.Model
	}

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = p.opts.MaxTokens
	}

	params := anthropic.MessageNewParams{
		Model:       model,
		Messages:    buildMessages(req.Messages),
		MaxTokens:   maxTokens,
		Temperature: anthropic.Float(req.Temperature),
	}

	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	resp, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic api error: %w", err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.AsText().Text)
		}
	}

	return &provider.Response{
		Text:    text.String(),
		Model:   string(resp.Model),
		Backend: Name,
	}, nil
}

// buildMessages converts conversation messages to the Anthropic message format.
// Unknown senders are treated as user input.
func buildMessages(messages []core.Message) []anthropic.MessageParam {
	out := make([]anthropic.MessageParam, 0, len(messages))
	for _, m := range messages {
		if m.Text == "" {
			continue
		}
		block := anthropic.NewTextBlock(m.Text)
		if m.Sender == core.SenderAssistant {
			out = append(out, anthropic.NewAssistantMessage(block))
		} else {
			out = append(out, anthropic.NewUserMessage(block))
		}
	}
	return out
}

// Info returns metadata describing this Anthropic provider.
func (p *Provider) Info() provider.Info {
	return provider.Info{Name: Name, DefaultModel: string(p.opts.Model)}
}
