// Package provider defines the generic completion-provider interface through
// which all language-model backends are reached, plus a fallback Chain that
// tries configured backends in order. Concrete adapters live in the
// subpackages anthropic (direct vendor API) and router (any OpenAI-compatible
// endpoint such as a LiteLLM router).
package provider
