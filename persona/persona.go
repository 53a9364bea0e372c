// Package persona defines the user-facing conversational personas: the
// model, system prompt and sampling parameters the primary chat completion
// runs with. Personas are deliberately a separate catalog from the background
// analysis agents in package agent; the two share a name in casual usage but
// nothing in behavior.
package persona

import "fmt"

// Persona is one entry of the conversational catalog.
type Persona struct {
	ID           string  `yaml:"id" json:"type"`
	Name         string  `yaml:"name" json:"name"`
	Model        string  `yaml:"model" json:"model"`
	SystemPrompt string  `yaml:"system_prompt" json:"-"`
	Temperature  float64 `yaml:"temperature" json:"-"`
	MaxTokens    int64   `yaml:"max_tokens" json:"-"`
	Description  string  `yaml:"description" json:"description"`
}

// Catalog is an ordered, immutable set of personas with a designated default.
type Catalog struct {
	personas  map[string]Persona
	order     []string
	defaultID string
}

// NewCatalog builds a catalog from the given personas. The default id must
// name one of them; ids must be unique and non-empty.
func NewCatalog(defaultID string, personas ...Persona) (*Catalog, error) {
	c := &Catalog{
		personas:  make(map[string]Persona, len(personas)),
		defaultID: defaultID,
	}

	for _, p := range personas {
		if p.ID == "" {
			return nil, fmt.Errorf("persona has empty id")
		}
		if _, exists := c.personas[p.ID]; exists {
			return nil, fmt.Errorf("persona %q defined twice", p.ID)
		}
		c.personas[p.ID] = p
		c.order = append(c.order, p.ID)
	}

	if _, ok := c.personas[defaultID]; !ok {
		return nil, fmt.Errorf("default persona %q is not in the catalog", defaultID)
	}

	return c, nil
}

// Get returns the persona for id, falling back to the default persona for
// unknown or empty ids. A chat request therefore always resolves to a usable
// persona.
func (c *Catalog) Get(id string) Persona {
	if p, ok := c.personas[id]; ok {
		return p
	}
	return c.personas[c.defaultID]
}

// Lookup returns the persona for id without default fallback.
func (c *Catalog) Lookup(id string) (Persona, bool) {
	p, ok := c.personas[id]
	return p, ok
}

// List returns all personas in catalog order.
func (c *Catalog) List() []Persona {
	out := make([]Persona, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.personas[id])
	}
	return out
}

// DefaultID returns the id of the default persona.
func (c *Catalog) DefaultID() string { return c.defaultID }
