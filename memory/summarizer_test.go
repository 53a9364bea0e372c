package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/threadmesh/core"
	"github.com/hupe1980/threadmesh/provider"
)

func parentConversation() []core.Message {
	return []core.Message{
		{Sender: core.SenderUser, Text: "Tell me about black holes."},
		{Sender: core.SenderAssistant, Text: "They are regions of extreme gravity."},
	}
}

func TestSummarizer_Summarize(t *testing.T) {
	mock := provider.NewMockProvider("mock")
	s := NewSummarizer(mock, func(o *SummarizerOptions) {
		o.Model = "summary-model"
	})

	summary, ok := s.Summarize(context.Background(), parentConversation(), "extreme gravity")
	require.True(t, ok)
	assert.NotEmpty(t, summary)

	reqs := mock.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "summary-model", reqs[0].Model)
	assert.InDelta(t, 0.5, reqs[0].Temperature, 0.001)
	assert.EqualValues(t, 200, reqs[0].MaxTokens)

	prompt := reqs[0].Messages[0].Text
	assert.Contains(t, prompt, `"extreme gravity"`)
	assert.Contains(t, prompt, "User: Tell me about black holes.")
	assert.Contains(t, prompt, "Assistant: They are regions of extreme gravity.")
}

func TestSummarizer_EmptyHistory(t *testing.T) {
	mock := provider.NewMockProvider("mock")
	s := NewSummarizer(mock)

	_, ok := s.Summarize(context.Background(), nil, "anything")
	assert.False(t, ok)
	assert.Empty(t, mock.Requests(), "no provider call for empty history")
}

func TestSummarizer_ProviderFailureIsNotAnError(t *testing.T) {
	mock := provider.NewMockProvider("mock")
	mock.Fail(errors.New("backend down"))
	s := NewSummarizer(mock)

	summary, ok := s.Summarize(context.Background(), parentConversation(), "gravity")
	assert.False(t, ok)
	assert.Empty(t, summary)
}

func TestSummarizer_TrimsWhitespace(t *testing.T) {
	mock := provider.NewMockProvider("mock")
	s := NewSummarizer(mock)

	// The mock keys canned responses by the full prompt, so capture it first.
	_, ok := s.Summarize(context.Background(), parentConversation(), "gravity")
	require.True(t, ok)
	prompt := mock.Requests()[0].Messages[0].Text
	mock.AddResponse(prompt, "  a tidy summary \n")

	summary, ok := s.Summarize(context.Background(), parentConversation(), "gravity")
	require.True(t, ok)
	assert.Equal(t, "a tidy summary", summary)
}
