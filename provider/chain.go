package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/hupe1980/threadmesh/logging"
)

// ErrNoProvider is returned when a completion is attempted but no backend
// has been configured.
var ErrNoProvider = errors.New("no completion provider configured")

// ChainOptions configures a Chain instance.
type ChainOptions struct {
	// Logger receives a warning for every backend that fails before a
	// fallback is attempted. Defaults to NoOpLogger.
	Logger logging.Logger
}

// Chain tries a fixed sequence of providers in order and returns the first
// successful response. Every provider receives an equivalent request; when
// all fail, the last failure is surfaced. An empty chain fails immediately
// with ErrNoProvider.
type Chain struct {
	providers []Provider
	logger    logging.Logger
}

// NewChain constructs a Chain over the given providers in fallback order.
func NewChain(providers []Provider, optFns ...func(o *ChainOptions)) *Chain {
	opts := ChainOptions{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Chain{providers: providers, logger: opts.Logger}
}

// Complete implements Provider. It walks the configured backends in order,
// returning the first success and surfacing only the last failure.
func (c *Chain) Complete(ctx context.Context, req Request) (*Response, error) {
	if len(c.providers) == 0 {
		return nil, ErrNoProvider
	}

	var lastErr error
	for _, p := range c.providers {
		resp, err := p.Complete(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		c.logger.Warn("provider failed, trying next", "backend", p.Info().Name, "error", err)
	}

	return nil, fmt.Errorf("all providers failed: %w", lastErr)
}

// Info implements Provider. The chain reports the identity of its first
// (preferred) backend.
func (c *Chain) Info() Info {
	if len(c.providers) == 0 {
		return Info{Name: "chain"}
	}
	return c.providers[0].Info()
}

// Len returns the number of configured backends.
func (c *Chain) Len() int { return len(c.providers) }
