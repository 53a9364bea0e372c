package provider

import (
	"context"
	"fmt"
	"sync"
)

// MockProvider is a lightweight in-memory Provider useful for tests and
// examples. It replays canned completions keyed by the last user message and
// records every request it receives.
type MockProvider struct {
	mu        sync.Mutex
	info      Info
	responses map[string]string
	err       error
	requests  []Request
}

// NewMockProvider constructs a MockProvider with the given backend name.
func NewMockProvider(name string) *MockProvider {
	return &MockProvider{
		info:      Info{Name: name, DefaultModel: "mock-model"},
		responses: make(map[string]string),
	}
}

// AddResponse registers a deterministic canned completion for an input prompt.
func (m *MockProvider) AddResponse(prompt, response string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[prompt] = response
}

// Fail makes every subsequent Complete call return err. Passing nil restores
// normal operation.
func (m *MockProvider) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Requests returns a copy of all requests received so far.
func (m *MockProvider) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.requests))
	copy(out, m.requests)
	return out
}

// Complete implements Provider.
func (m *MockProvider) Complete(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.requests = append(m.requests, req)

	if m.err != nil {
		return nil, m.err
	}
	if len(req.Messages) == 0 {
		return nil, fmt.Errorf("no messages provided")
	}

	last := req.Messages[len(req.Messages)-1].Text
	text := m.responses[last]
	if text == "" {
		text = fmt.Sprintf("Mock response to: %s", last)
	}

	model := req.Model
	if model == "" {
		model = m.info.DefaultModel
	}

	return &Response{Text: text, Model: model, Backend: m.info.Name}, nil
}

// Info implements Provider.
func (m *MockProvider) Info() Info { return m.info }
