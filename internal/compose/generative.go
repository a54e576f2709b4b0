package compose

import (
	"context"
	"fmt"
	"strings"

	"github.com/quititaus/quitit-chat/internal/resolve"
	"github.com/quititaus/quitit-chat/provider"
)

// Generative rewrites the top spans into a short friendly answer through a
// chat-completion model, constrained to the supplied sources. When the
// sources do not support an answer the model must echo the fallback string
// verbatim, which the orchestrator recognises and downgrades.
type Generative struct {
	Provider     provider.Provider
	FallbackText string
}

func (Generative) Generative() bool { return true }

func (g Generative) Compose(ctx context.Context, question string, top []resolve.Chunk) (string, error) {
	var sources strings.Builder
	for i, chunk := range top {
		if i > 0 {
			sources.WriteString("\n\n")
		}
		fmt.Fprintf(&sources, "Source %d [%s]: %s", i+1, chunk.PageID, chunk.Text)
	}

	system := fmt.Sprintf(`You are QUIT IT's friendly assistant 😊.
Answer ONLY using the "Sources" text below. If the answer isn't clearly supported, reply with this exactly:
"%s"
Be warm, helpful, and concise (about 2–5 short sentences). Avoid medical claims. Use plain language and emojis sparingly.`, g.FallbackText)

	user := fmt.Sprintf("Question: %s\n\nSources:\n%s", question, sources.String())

	answer, err := g.Provider.Completion(ctx, system, user)
	if err != nil {
		return "", fmt.Errorf("completion: %w", err)
	}
	return answer, nil
}
