package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/hupe1980/threadmesh/core"
	"github.com/hupe1980/threadmesh/logging"
	"github.com/hupe1980/threadmesh/provider"
)

// summaryPrompt instructs the backend to produce the stable topic summary.
// The wording is part of the thread contract: summaries created from it are
// persisted by callers and reused for the life of the thread.
const summaryPrompt = `You are creating a stable summary of a conversation context for a topic thread.

The user selected this text from the parent conversation:
"%s"

Parent conversation context:
%s

Create a concise summary (2-3 sentences) that captures the essential context relevant to the selected topic. This summary will serve as "long-term memory" for the topic thread.`

// SummarizerOptions configures a Summarizer instance.
type SummarizerOptions struct {
	// Model is a fast, cheap model dedicated to summarization, distinct
	// from the primary chat model.
	Model string
	// Temperature is deliberately conservative.
	Temperature float64
	// MaxTokens bounds the summary size.
	MaxTokens int64
	Logger    logging.Logger
}

// Summarizer produces topic summaries through a completion provider.
// Summarization is best-effort: any provider failure degrades to "no summary"
// and must never fail the enclosing request.
type Summarizer struct {
	provider    provider.Provider
	model       string
	temperature float64
	maxTokens   int64
	logger      logging.Logger
}

// NewSummarizer constructs a Summarizer with conservative sampling defaults.
func NewSummarizer(p provider.Provider, optFns ...func(o *SummarizerOptions)) *Summarizer {
	opts := SummarizerOptions{
		Model:       "claude-3-haiku-20240307",
		Temperature: 0.5,
		MaxTokens:   200,
		Logger:      logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Summarizer{
		provider:    p,
		model:       opts.Model,
		temperature: opts.Temperature,
		maxTokens:   opts.MaxTokens,
		logger:      opts.Logger,
	}
}

// Summarize produces a 2-3 sentence summary of parentMessages anchored to
// selectedText. The second return value reports whether a summary was
// produced; it is false for empty history and for any provider failure.
func (s *Summarizer) Summarize(ctx context.Context, parentMessages []core.Message, selectedText string) (string, bool) {
	if len(parentMessages) == 0 {
		return "", false
	}

	prompt := fmt.Sprintf(summaryPrompt, selectedText, core.RenderTranscript(parentMessages))

	resp, err := s.provider.Complete(ctx, provider.Request{
		Model:       s.model,
		Messages:    []core.Message{{Sender: core.SenderUser, Text: prompt}},
		Temperature: s.temperature,
		MaxTokens:   s.maxTokens,
	})
	if err != nil {
		s.logger.Warn("topic summary generation failed", "error", err)
		return "", false
	}

	summary := strings.TrimSpace(resp.Text)
	if summary == "" {
		return "", false
	}
	return summary, true
}
