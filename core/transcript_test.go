package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTranscript(t *testing.T) {
	messages := []Message{
		{Sender: SenderUser, Text: "What is entropy?"},
		{Sender: SenderAssistant, Text: "A measure of disorder."},
		{Sender: SenderUser, Text: "Give an example."},
	}

	got := RenderTranscript(messages)
	assert.Equal(t, "User: What is entropy?\nAssistant: A measure of disorder.\nUser: Give an example.", got)
}

func TestRenderTranscript_Empty(t *testing.T) {
	assert.Equal(t, "", RenderTranscript(nil))
}

func TestRenderTranscript_UnknownSenderRendersAsAssistant(t *testing.T) {
	got := RenderTranscript([]Message{{Sender: "system", Text: "hi"}})
	assert.Equal(t, "Assistant: hi", got)
}

func TestTail(t *testing.T) {
	messages := []Message{
		{Sender: SenderUser, Text: "1"},
		{Sender: SenderAssistant, Text: "2"},
		{Sender: SenderUser, Text: "3"},
	}

	assert.Len(t, Tail(messages, 2), 2)
	assert.Equal(t, "2", Tail(messages, 2)[0].Text)
	assert.Len(t, Tail(messages, 10), 3)
	assert.Len(t, Tail(messages, 0), 3)
}
