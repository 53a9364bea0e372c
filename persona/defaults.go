package persona

// DefaultCatalog returns the built-in persona set. Model identifiers are
// router aliases resolved by the LiteLLM configuration; the "cloud-" personas
// map to vendor models reachable through the fallback chain.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog("general",
		Persona{
			ID:           "general",
			Name:         "General Assistant",
			Model:        "agent-balanced",
			SystemPrompt: "You are a helpful AI assistant.",
			Temperature:  0.7,
			MaxTokens:    2048,
			Description:  "Balanced model for general conversation",
		},
		Persona{
			ID:           "fast",
			Name:         "Quick Response Agent",
			Model:        "agent-fast",
			SystemPrompt: "You are a quick and efficient assistant. Provide concise, helpful answers.",
			Temperature:  0.7,
			MaxTokens:    1024,
			Description:  "Fast responses for simple queries",
		},
		Persona{
			ID:           "researcher",
			Name:         "Research Agent",
			Model:        "agent-powerful",
			SystemPrompt: "You are an expert research assistant. Provide detailed, well-researched answers with citations when possible.",
			Temperature:  0.5,
			MaxTokens:    4096,
			Description:  "Deep research and analysis",
		},
		Persona{
			ID:           "coder",
			Name:         "Code Assistant",
			Model:        "agent-coder",
			SystemPrompt: "You are an expert programming assistant. Provide clear, well-documented code with explanations.",
			Temperature:  0.3,
			MaxTokens:    4096,
			Description:  "Specialized in coding tasks",
		},
		Persona{
			ID:           "cloud-fast",
			Name:         "Cloud Quick Agent",
			Model:        "agent-cloud-fast",
			SystemPrompt: "You are a helpful AI assistant.",
			Temperature:  0.7,
			MaxTokens:    2048,
			Description:  "Fast cloud-based responses",
		},
		Persona{
			ID:           "cloud-expert",
			Name:         "Cloud Expert Agent",
			Model:        "agent-cloud-balanced",
			SystemPrompt: "You are an expert AI assistant with deep knowledge across many domains.",
			Temperature:  0.7,
			MaxTokens:    4096,
			Description:  "Best quality cloud-based responses",
		},
		Persona{
			ID:           "creative",
			Name:         "Creative Writer",
			Model:        "agent-balanced",
			SystemPrompt: "You are a creative writing assistant. Help users with stories, poems, and creative content.",
			Temperature:  0.9,
			MaxTokens:    4096,
			Description:  "Creative and imaginative responses",
		},
		Persona{
			ID:           "teacher",
			Name:         "Teaching Assistant",
			Model:        "agent-cloud-balanced",
			SystemPrompt: "You are a patient teaching assistant. Explain concepts clearly with examples and analogies.",
			Temperature:  0.6,
			MaxTokens:    3072,
			Description:  "Educational and explanatory",
		},
	)
	if err != nil {
		// The built-in catalog is statically valid.
		panic(err)
	}
	return c
}
