package compose

import (
	"context"
	"strings"

	"github.com/quititaus/quitit-chat/internal/resolve"
)

const verbatimLeadIn = "Here's what I found on our site:"

// Verbatim composes a bulleted answer straight from the top spans without
// touching a model. Spans are restricted to the dominant (highest-scoring)
// document so the bullets read as one coherent source.
type Verbatim struct{}

func (Verbatim) Generative() bool { return false }

func (Verbatim) Compose(_ context.Context, _ string, top []resolve.Chunk) (string, error) {
	if len(top) == 0 {
		return "", nil
	}
	dominant := top[0].PageID

	var b strings.Builder
	b.WriteString(verbatimLeadIn)
	seen := make(map[string]struct{}, len(top))
	for _, chunk := range top {
		if chunk.PageID != dominant {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(chunk.Text))
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		b.WriteString("\n• ")
		b.WriteString(strings.TrimSpace(chunk.Text))
	}
	return b.String(), nil
}
