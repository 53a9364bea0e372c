package core

// Sender identifies the author of a conversation message.
type Sender string

const (
	// SenderUser marks a message written by the human participant.
	SenderUser Sender = "user"
	// SenderAssistant marks a message produced by the model.
	SenderAssistant Sender = "assistant"
)

// Label returns the display name used when rendering transcripts.
// Anything that is not the user is rendered as the assistant.
func (s Sender) Label() string {
	if s == SenderUser {
		return "User"
	}
	return "Assistant"
}

// Message is a single conversation message supplied by the caller.
// Ordering within a slice of messages is conversation order and is significant.
type Message struct {
	Sender Sender `json:"sender"`
	Text   string `json:"text"`
}

// Turn pairs a user message with the assistant reply that answered it.
// Turns form the working memory window re-injected into each request.
type Turn struct {
	User      string `json:"user"`
	Assistant string `json:"assistant"`
}

// ContextPack describes a topic thread branched from a selected excerpt of a
// parent conversation. TopicSummary, once created, is treated as immutable
// long-term memory: the caller persists it and echoes it back on subsequent
// requests so it is reused, never regenerated.
type ContextPack struct {
	IsTopicThread  bool      `json:"isTopicThread"`
	SelectedText   string    `json:"selectedText,omitempty"`
	ParentMessages []Message `json:"parentMessages,omitempty"`
	TopicSummary   string    `json:"topicSummary,omitempty"`
	RecentTurns    []Turn    `json:"recentTurns,omitempty"`
}
