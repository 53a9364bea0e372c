package agent

import (
	"context"

	"github.com/hupe1980/threadmesh/core"
)

// Agent is a background task that consumes conversation context and produces
// a supplementary, independently-reported list of strings. Implementations
// must be safe for concurrent use and must honor context cancellation.
type Agent interface {
	// ID returns the agent's catalog identifier.
	ID() string

	// Run analyzes the conversation and returns the agent's payload.
	// The history and pack are shared across agents and must not be mutated.
	Run(ctx context.Context, history []core.Message, pack *core.ContextPack) ([]string, error)
}

// Result is the outcome of a single agent run. It is never partially
// populated: an agent either fully succeeds with its ideas or fully fails
// with an error string.
type Result struct {
	AgentID string   `json:"agent"`
	Success bool     `json:"success"`
	Ideas   []string `json:"ideas,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// successResult builds the Result for a completed run.
func successResult(id string, ideas []string) Result {
	return Result{AgentID: id, Success: true, Ideas: ideas}
}

// failureResult builds the Result for a failed or abandoned run.
func failureResult(id, reason string) Result {
	return Result{AgentID: id, Success: false, Error: reason}
}
