package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/hupe1980/threadmesh/core"
	"github.com/hupe1980/threadmesh/provider"
)

// BrainstormID is the catalog id of the brainstorming agent.
const BrainstormID = "brainstorming"

const (
	// brainstormWindow is the number of trailing messages (3 turns) the
	// agent sees.
	brainstormWindow = 6
	// maxIdeas caps the parsed output.
	maxIdeas = 3
	// minIdeaLen filters blank and near-empty lines.
	minIdeaLen = 4
)

const brainstormPrompt = `Based on this conversation, generate 1-3 short, divergent, interesting topic titles that could branch off from this discussion.

Conversation:
%s

Requirements:
- Each title should be 3-7 words maximum
- Topics should be related but explore different angles
- Be creative and thought-provoking
- Return ONLY the titles, one per line
- No numbering, no explanations

Example format:
Future of quantum computing
Ethical implications of AI
Practical applications today`

// BrainstormDefinition returns the catalog entry for the brainstorming agent.
func BrainstormDefinition() Definition {
	return Definition{
		ID:          BrainstormID,
		Name:        "Brainstorming Agent",
		Description: "Generates creative topic ideas from conversations",
		Model:       "claude-3-haiku-20240307",
		Temperature: 0.9,
		MaxTokens:   300,
		Mode:        ModeParallel,
		Enabled:     true,
	}
}

// Brainstorm asks the backend for 1-3 short divergent topic titles based on
// the last few turns of conversation.
type Brainstorm struct {
	def      Definition
	provider provider.Provider
}

// NewBrainstorm constructs the brainstorming agent using def's model and
// sampling parameters.
func NewBrainstorm(def Definition, p provider.Provider) *Brainstorm {
	return &Brainstorm{def: def, provider: p}
}

// ID implements Agent.
func (b *Brainstorm) ID() string { return b.def.ID }

// Run implements Agent. It renders the trailing conversation window,
// requests topic titles and parses them one per line.
func (b *Brainstorm) Run(ctx context.Context, history []core.Message, _ *core.ContextPack) ([]string, error) {
	transcript := core.RenderTranscript(core.Tail(history, brainstormWindow))
	prompt := fmt.Sprintf(brainstormPrompt, transcript)

	resp, err := b.provider.Complete(ctx, provider.Request{
		Model:       b.def.Model,
		Messages:    []core.Message{{Sender: core.SenderUser, Text: prompt}},
		Temperature: b.def.Temperature,
		MaxTokens:   b.def.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("brainstorm completion: %w", err)
	}

	return parseIdeas(resp.Text), nil
}

// parseIdeas extracts one title per line, strips surrounding whitespace,
// drops blank or near-empty lines and caps the output at maxIdeas.
func parseIdeas(text string) []string {
	var ideas []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if len(line) < minIdeaLen {
			continue
		}
		ideas = append(ideas, line)
		if len(ideas) == maxIdeas {
			break
		}
	}
	return ideas
}
