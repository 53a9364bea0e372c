package core

import "strings"

// RenderTranscript renders messages as alternating "User:"/"Assistant:" lines
// in conversation order. The format is shared by the topic summarizer and the
// analysis agents so both see the same view of the conversation.
func RenderTranscript(messages []Message) string {
	var b strings.Builder
	for i, m := range messages {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(m.Sender.Label())
		b.WriteString(": ")
		b.WriteString(m.Text)
	}
	return b.String()
}

// Tail returns the last n messages, or all of them if fewer exist.
// The returned slice aliases the input; callers must not mutate it.
func Tail(messages []Message, n int) []Message {
	if n <= 0 || len(messages) <= n {
		return messages
	}
	return messages[len(messages)-n:]
}
