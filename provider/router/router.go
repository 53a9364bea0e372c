// Package router provides a completion provider for any OpenAI-compatible
// endpoint. It is used both for a LiteLLM router in front of local and cloud
// models and for vendors exposing OpenAI-compatible surfaces (e.g. Gemini).
package router

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/hupe1980/threadmesh/core"
	"github.com/hupe1980/threadmesh/provider"
)

// Options configures the router provider adapter.
type Options struct {
	// BaseURL points at the OpenAI-compatible endpoint. Empty uses the
	// client's default (api.openai.com).
	BaseURL string
	// APIKey authenticates against the endpoint. Routers such as LiteLLM
	// typically accept any non-empty key.
	APIKey string
	// Name labels the backend in responses; defaults to "litellm".
	Name string
	// Model is used when a request does not name one.
	Model string
	// MaxTokens is used when a request does not set a token budget.
	MaxTokens int64
}

// Provider wraps the OpenAI Chat Completions API behind the generic
// provider.Provider interface.
type Provider struct {
	client *openai.Client
	opts   Options
}

// New creates a router provider using the official OpenAI client.
func New(optFns ...func(o *Options)) *Provider {
	opts := Options{
		Name:      "litellm",
		Model:     openai.ChatModelGPT4oMini,
		MaxTokens: 2048,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(opts.BaseURL))
	}

	client := openai.NewClient(clientOpts...)

	return &Provider{client: &client, opts: opts}
}

// NewFromClient creates a router provider from an existing client.
func NewFromClient(client *openai.Client, optFns ...func(o *Options)) *Provider {
	opts := Options{
		Name:      "litellm",
		Model:     openai.ChatModelGPT4oMini,
		MaxTokens: 2048,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Provider{client: client, opts: opts}
}

// Complete implements provider.Provider using a non-streaming chat completion.
func (p *Provider) Complete(ctx context.Context, req provider.Request) (*provider.Response, error) {
	model := req.Model
	if model == "" {
		model = p.opts.Model
	}

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = p.opts.MaxTokens
	}

	params := openai.ChatCompletionNewParams{
		Model:               openai.ChatModel(model),
		Messages:            buildMessages(req),
		Temperature:         openai.Float(req.Temperature),
		MaxCompletionTokens: openai.Int(maxTokens),
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%s api error: %w", p.opts.Name, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%s returned no choices", p.opts.Name)
	}

	respModel := resp.Model
	if respModel == "" {
		respModel = model
	}

	return &provider.Response{
		Text:    resp.Choices[0].Message.Content,
		Model:   respModel,
		Backend: p.opts.Name,
	}, nil
}

// buildMessages converts the request into OpenAI chat messages, placing the
// system prompt first when present.
func buildMessages(req provider.Request) []openai.ChatCompletionMessageParamUnion {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages)+1)
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	for _, m := range req.Messages {
		if m.Text == "" {
			continue
		}
		if m.Sender == core.SenderAssistant {
			messages = append(messages, openai.AssistantMessage(m.Text))
		} else {
			messages = append(messages, openai.UserMessage(m.Text))
		}
	}
	return messages
}

// Info returns metadata describing this router provider.
func (p *Provider) Info() provider.Info {
	return provider.Info{Name: p.opts.Name, DefaultModel: p.opts.Model}
}
