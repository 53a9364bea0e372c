package provider

import (
	"context"

	"github.com/hupe1980/threadmesh/core"
)

// Request captures the normalized completion input sent to a backend.
// Model may be empty, in which case the adapter's configured default is used.
type Request struct {
	Model       string         `json:"model"`
	System      string         `json:"system,omitempty"`
	Messages    []core.Message `json:"messages"`
	Temperature float64        `json:"temperature"`
	MaxTokens   int64          `json:"max_tokens"`
}

// Response is the result of a successful completion call.
type Response struct {
	// Text is the generated completion.
	Text string `json:"text"`
	// Model is the model identifier the backend actually used.
	Model string `json:"model"`
	// Backend names the provider that produced the response.
	Backend string `json:"backend"`
}

// Info contains metadata about a provider implementation.
type Info struct {
	// Name identifies the backend ("anthropic", "router", ...).
	Name string `json:"name"`
	// DefaultModel is the model used when a request leaves Model empty.
	DefaultModel string `json:"default_model"`
}

// Provider is the minimal interface required to drive text generation.
// Implementations must be safe for concurrent use; they are shared between
// the primary chat path, the topic summarizer and the analysis agents.
type Provider interface {
	Complete(ctx context.Context, req Request) (*Response, error)

	// Info returns information about the provider implementation.
	Info() Info
}
