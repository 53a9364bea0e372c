package agent

import (
	"fmt"
)

// Mode selects how an agent is scheduled relative to its peers.
type Mode string

const (
	// ModeParallel submits the agent to the shared worker pool.
	ModeParallel Mode = "parallel"
	// ModeSequential runs the agent in registry order after all parallel
	// agents have been dispatched.
	ModeSequential Mode = "sequential"
)

// Definition is the immutable catalog entry for one agent kind. Definitions
// are validated when registered; invalid catalogs fail at construction time,
// not at call time.
type Definition struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int64   `json:"max_tokens"`
	Mode        Mode    `json:"mode"`
	Enabled     bool    `json:"enabled"`
}

func (d Definition) validate() error {
	if d.ID == "" {
		return fmt.Errorf("agent definition has empty id")
	}
	if d.MaxTokens <= 0 {
		return fmt.Errorf("agent %q: max tokens must be positive, got %d", d.ID, d.MaxTokens)
	}
	if d.Mode != ModeParallel && d.Mode != ModeSequential {
		return fmt.Errorf("agent %q: unknown execution mode %q", d.ID, d.Mode)
	}
	return nil
}

// Registry is the static catalog of agent definitions and their executable
// implementations. It performs pure lookups with no I/O; iteration order is
// registration order.
type Registry struct {
	defs  map[string]Definition
	impls map[string]Agent
	order []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		defs:  make(map[string]Definition),
		impls: make(map[string]Agent),
	}
}

// Register adds a definition together with its implementation. Registration
// fails for invalid definitions, duplicate ids and mismatched ids between
// definition and implementation.
func (r *Registry) Register(def Definition, impl Agent) error {
	if err := def.validate(); err != nil {
		return err
	}
	if _, exists := r.defs[def.ID]; exists {
		return fmt.Errorf("agent %q already registered", def.ID)
	}
	if impl == nil {
		return fmt.Errorf("agent %q: nil implementation", def.ID)
	}
	if impl.ID() != def.ID {
		return fmt.Errorf("agent %q: implementation reports id %q", def.ID, impl.ID())
	}

	r.defs[def.ID] = def
	r.impls[def.ID] = impl
	r.order = append(r.order, def.ID)
	return nil
}

// Get returns the definition for id.
func (r *Registry) Get(id string) (Definition, bool) {
	def, ok := r.defs[id]
	return def, ok
}

// Implementation returns the executable for id.
func (r *Registry) Implementation(id string) (Agent, bool) {
	impl, ok := r.impls[id]
	return impl, ok
}

// Enabled returns the ids of all enabled agents in registration order.
func (r *Registry) Enabled() []string {
	var ids []string
	for _, id := range r.order {
		if r.defs[id].Enabled {
			ids = append(ids, id)
		}
	}
	return ids
}
