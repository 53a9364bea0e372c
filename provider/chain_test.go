package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/threadmesh/core"
)

func userRequest(text string) Request {
	return Request{
		Model:       "test-model",
		Messages:    []core.Message{{Sender: core.SenderUser, Text: text}},
		Temperature: 0.7,
		MaxTokens:   256,
	}
}

func TestChain_FirstProviderWins(t *testing.T) {
	primary := NewMockProvider("router")
	secondary := NewMockProvider("anthropic")
	primary.AddResponse("hi", "hello from router")

	chain := NewChain([]Provider{primary, secondary})

	resp, err := chain.Complete(context.Background(), userRequest("hi"))
	require.NoError(t, err)
	assert.Equal(t, "hello from router", resp.Text)
	assert.Equal(t, "router", resp.Backend)
	assert.Len(t, primary.Requests(), 1)
	assert.Empty(t, secondary.Requests(), "secondary must not be called when primary succeeds")
}

func TestChain_FallbackReceivesEquivalentRequest(t *testing.T) {
	primary := NewMockProvider("router")
	secondary := NewMockProvider("anthropic")
	primary.Fail(errors.New("router down"))
	secondary.AddResponse("hi", "hello from anthropic")

	chain := NewChain([]Provider{primary, secondary})

	req := userRequest("hi")
	resp, err := chain.Complete(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "anthropic", resp.Backend)

	require.Len(t, secondary.Requests(), 1)
	assert.Equal(t, req, secondary.Requests()[0])
}

func TestChain_SurfacesLastFailure(t *testing.T) {
	primary := NewMockProvider("router")
	secondary := NewMockProvider("anthropic")
	primary.Fail(errors.New("router down"))
	secondary.Fail(errors.New("anthropic down"))

	chain := NewChain([]Provider{primary, secondary})

	_, err := chain.Complete(context.Background(), userRequest("hi"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "anthropic down")
	assert.NotContains(t, err.Error(), "router down")
}

func TestChain_Empty(t *testing.T) {
	chain := NewChain(nil)

	_, err := chain.Complete(context.Background(), userRequest("hi"))
	assert.ErrorIs(t, err, ErrNoProvider)
	assert.Equal(t, 0, chain.Len())
}

func TestMockProvider_Defaults(t *testing.T) {
	m := NewMockProvider("mock")

	resp, err := m.Complete(context.Background(), Request{
		Messages: []core.Message{{Sender: core.SenderUser, Text: "anything"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Mock response to: anything", resp.Text)
	assert.Equal(t, "mock-model", resp.Model)
}
