package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/hupe1980/threadmesh/core"
	"github.com/hupe1980/threadmesh/logging"
)

// AssembledPrompt is the result of blending a context pack into a request.
type AssembledPrompt struct {
	// System is the effective system prompt including any memory blocks.
	System string
	// UserMessage is the effective user message including working memory.
	UserMessage string
	// FreshSummary is set only when a topic summary was generated during
	// this assembly. The caller must persist it so later requests reuse it
	// instead of triggering another generation.
	FreshSummary string
}

// AssemblerOptions configures an Assembler instance.
type AssemblerOptions struct {
	Logger logging.Logger
}

// Assembler combines a topic summary, the originating selection and the
// recent-turn window into the final system prompt and user message for the
// primary completion call.
type Assembler struct {
	summarizer *Summarizer
	logger     logging.Logger
}

// NewAssembler constructs an Assembler. The summarizer may be nil, in which
// case missing summaries are simply not generated.
func NewAssembler(summarizer *Summarizer, optFns ...func(o *AssemblerOptions)) *Assembler {
	opts := AssemblerOptions{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Assembler{summarizer: summarizer, logger: opts.Logger}
}

// Assemble produces the effective prompt for one request. For non-thread
// requests the inputs pass through unchanged. For topic threads it resolves
// the summary (reusing an existing one verbatim, otherwise generating at most
// one), appends the long-term memory blocks to the system prompt and prepends
// the rendered working memory to the user message. Summary generation failure
// never aborts assembly.
func (a *Assembler) Assemble(ctx context.Context, system string, pack *core.ContextPack, message string) AssembledPrompt {
	if pack == nil || !pack.IsTopicThread {
		return AssembledPrompt{System: system, UserMessage: message}
	}

	summary := pack.TopicSummary
	var fresh string
	if summary == "" && len(pack.ParentMessages) > 0 && a.summarizer != nil {
		if s, ok := a.summarizer.Summarize(ctx, pack.ParentMessages, pack.SelectedText); ok {
			summary = s
			fresh = s
		} else {
			a.logger.Warn("continuing without topic summary")
		}
	}

	var contextParts []string
	if summary != "" {
		contextParts = append(contextParts, fmt.Sprintf("Topic Context (Long-term Memory):\n%s", summary))
	}
	if pack.SelectedText != "" {
		contextParts = append(contextParts, fmt.Sprintf("\nThis topic thread was created from this selection:\n\"%s\"", pack.SelectedText))
	}
	if len(contextParts) > 0 {
		system += "\n\n" + strings.Join(contextParts, "\n")
	}

	if len(pack.RecentTurns) > 0 {
		var wm strings.Builder
		wm.WriteString("\n\nRecent conversation (Working Memory):\n")
		for i, turn := range pack.RecentTurns {
			fmt.Fprintf(&wm, "\nTurn %d:\nUser: %s\nAssistant: %s\n", i+1, turn.User, turn.Assistant)
		}
		message = wm.String() + "\nCurrent message:\n" + message
	}

	return AssembledPrompt{System: system, UserMessage: message, FreshSummary: fresh}
}
