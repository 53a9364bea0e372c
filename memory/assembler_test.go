package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/threadmesh/core"
	"github.com/hupe1980/threadmesh/provider"
)

const basePrompt = "You are a helpful AI assistant."

func newTestAssembler(mock *provider.MockProvider) *Assembler {
	return NewAssembler(NewSummarizer(mock))
}

func TestAssemble_NoContextPackPassesThrough(t *testing.T) {
	mock := provider.NewMockProvider("mock")
	a := newTestAssembler(mock)

	got := a.Assemble(context.Background(), basePrompt, nil, "hi")
	assert.Equal(t, basePrompt, got.System)
	assert.Equal(t, "hi", got.UserMessage)
	assert.Empty(t, got.FreshSummary)
	assert.Empty(t, mock.Requests())
}

func TestAssemble_NonThreadPackPassesThrough(t *testing.T) {
	mock := provider.NewMockProvider("mock")
	a := newTestAssembler(mock)

	pack := &core.ContextPack{IsTopicThread: false, SelectedText: "ignored"}
	got := a.Assemble(context.Background(), basePrompt, pack, "hi")
	assert.Equal(t, basePrompt, got.System)
	assert.Equal(t, "hi", got.UserMessage)
	assert.Empty(t, mock.Requests())
}

func TestAssemble_ExistingSummaryIsReusedVerbatim(t *testing.T) {
	mock := provider.NewMockProvider("mock")
	a := newTestAssembler(mock)

	pack := &core.ContextPack{
		IsTopicThread: true,
		SelectedText:  "quantum entanglement",
		TopicSummary:  "The thread explores entanglement basics.",
		ParentMessages: []core.Message{
			{Sender: core.SenderUser, Text: "what is entanglement?"},
		},
	}

	// Repeated assembly never calls the summary service and reuses the
	// given summary verbatim.
	for i := 0; i < 3; i++ {
		got := a.Assemble(context.Background(), basePrompt, pack, "go on")
		assert.Contains(t, got.System, "Topic Context (Long-term Memory):\nThe thread explores entanglement basics.")
		assert.Empty(t, got.FreshSummary, "reused summaries are never returned as fresh")
	}
	assert.Empty(t, mock.Requests())
}

func TestAssemble_MissingSummaryGeneratedExactlyOnce(t *testing.T) {
	mock := provider.NewMockProvider("mock")
	a := newTestAssembler(mock)

	pack := &core.ContextPack{
		IsTopicThread: true,
		SelectedText:  "dark matter",
		ParentMessages: []core.Message{
			{Sender: core.SenderUser, Text: "m1"},
			{Sender: core.SenderAssistant, Text: "m2"},
			{Sender: core.SenderUser, Text: "m3"},
			{Sender: core.SenderAssistant, Text: "m4"},
		},
	}

	got := a.Assemble(context.Background(), basePrompt, pack, "next question")
	require.Len(t, mock.Requests(), 1, "exactly one summary call")
	assert.NotEmpty(t, got.FreshSummary)

	// The long-term memory section precedes the selection-origin section.
	memIdx := indexOf(t, got.System, "Topic Context (Long-term Memory):")
	selIdx := indexOf(t, got.System, "This topic thread was created from this selection:")
	assert.Less(t, memIdx, selIdx)
	assert.Contains(t, got.System, "\"dark matter\"")
}

func TestAssemble_SummaryFailureDoesNotAbort(t *testing.T) {
	mock := provider.NewMockProvider("mock")
	mock.Fail(errors.New("summary backend down"))
	a := newTestAssembler(mock)

	pack := &core.ContextPack{
		IsTopicThread:  true,
		SelectedText:   "origins",
		ParentMessages: []core.Message{{Sender: core.SenderUser, Text: "hello"}},
	}

	got := a.Assemble(context.Background(), basePrompt, pack, "hi")
	assert.Empty(t, got.FreshSummary)
	assert.NotContains(t, got.System, "Topic Context (Long-term Memory):")
	// The selection block is still present.
	assert.Contains(t, got.System, "\"origins\"")
	assert.Equal(t, "hi", got.UserMessage)
}

func TestAssemble_WorkingMemoryRendering(t *testing.T) {
	a := NewAssembler(nil)

	pack := &core.ContextPack{
		IsTopicThread: true,
		TopicSummary:  "summary",
		RecentTurns: []core.Turn{
			{User: "first question", Assistant: "first answer"},
			{User: "second question", Assistant: "second answer"},
		},
	}

	got := a.Assemble(context.Background(), basePrompt, pack, "current question")

	for i, turn := range pack.RecentTurns {
		assert.Contains(t, got.UserMessage, fmt.Sprintf("Turn %d:\nUser: %s\nAssistant: %s", i+1, turn.User, turn.Assistant))
	}
	assert.NotContains(t, got.UserMessage, "Turn 3:")

	// Turns come first, then the current-message marker, then the original text.
	turn1 := indexOf(t, got.UserMessage, "Turn 1:")
	turn2 := indexOf(t, got.UserMessage, "Turn 2:")
	marker := indexOf(t, got.UserMessage, "Current message:")
	original := indexOf(t, got.UserMessage, "current question")
	assert.Less(t, turn1, turn2)
	assert.Less(t, turn2, marker)
	assert.Less(t, marker, original)
}

func TestAssemble_NilSummarizerSkipsGeneration(t *testing.T) {
	a := NewAssembler(nil)

	pack := &core.ContextPack{
		IsTopicThread:  true,
		ParentMessages: []core.Message{{Sender: core.SenderUser, Text: "hello"}},
	}

	got := a.Assemble(context.Background(), basePrompt, pack, "hi")
	assert.Empty(t, got.FreshSummary)
	assert.Equal(t, basePrompt, got.System)
}

func indexOf(t *testing.T, haystack, needle string) int {
	t.Helper()
	idx := strings.Index(haystack, needle)
	require.GreaterOrEqual(t, idx, 0, "expected %q to contain %q", haystack, needle)
	return idx
}
