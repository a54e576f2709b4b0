package compose

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/quititaus/quitit-chat/internal/resolve"
)

type stubProvider struct {
	answer    string
	err       error
	gotSystem string
	gotUser   string
}

func (p *stubProvider) Completion(_ context.Context, system, user string) (string, error) {
	p.gotSystem = system
	p.gotUser = user
	return p.answer, p.err
}

func TestGenerativePromptShape(t *testing.T) {
	p := &stubProvider{answer: "The cores use food-grade ingredients 😊"}
	g := Generative{Provider: p, FallbackText: "sorry, no idea"}

	top := []resolve.Chunk{
		{PageID: "blog-cores-inside", Text: "Food-grade ingredients only."},
		{PageID: "faq", Text: "Zero nicotine."},
	}
	answer, err := g.Compose(context.Background(), "whats inside the cores", top)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if answer != p.answer {
		t.Fatalf("Compose = %q, want model answer", answer)
	}

	// The mandated fallback is embedded verbatim in the system prompt.
	if !strings.Contains(p.gotSystem, `"sorry, no idea"`) {
		t.Fatalf("system prompt missing fallback text: %q", p.gotSystem)
	}
	if !strings.Contains(p.gotUser, "Question: whats inside the cores") {
		t.Fatalf("user prompt missing question: %q", p.gotUser)
	}
	if !strings.Contains(p.gotUser, "Source 1 [blog-cores-inside]: Food-grade ingredients only.") ||
		!strings.Contains(p.gotUser, "Source 2 [faq]: Zero nicotine.") {
		t.Fatalf("user prompt missing numbered sources: %q", p.gotUser)
	}
}

func TestGenerativePropagatesProviderError(t *testing.T) {
	p := &stubProvider{err: errors.New("rate limited")}
	g := Generative{Provider: p, FallbackText: "sorry"}

	if _, err := g.Compose(context.Background(), "q", nil); err == nil {
		t.Fatalf("expected provider error to propagate")
	}
}
