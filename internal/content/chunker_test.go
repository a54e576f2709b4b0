package content

import (
	"strings"
	"testing"
)

func TestWindowChunkerShortText(t *testing.T) {
	c := WindowChunker{Max: 900, Overlap: 120}
	chunks := c.Split("short document")
	if len(chunks) != 1 || chunks[0] != "short document" {
		t.Fatalf("expected single chunk, got %v", chunks)
	}
	if chunks := c.Split("   "); chunks != nil {
		t.Fatalf("expected nil for blank input, got %v", chunks)
	}
}

func TestWindowChunkerOverlap(t *testing.T) {
	// Spaceless input so trimming cannot disturb the window boundaries.
	var b strings.Builder
	for i := 0; b.Len() < 2500; i++ {
		b.WriteByte(byte('a' + i%26))
	}
	text := b.String()

	c := WindowChunker{Max: 900, Overlap: 120}
	chunks := c.Split(text)
	if len(chunks) < 3 {
		t.Fatalf("expected at least 3 chunks for %d chars, got %d", len(text), len(chunks))
	}
	for i, chunk := range chunks {
		if len(chunk) > c.Max {
			t.Fatalf("chunk %d exceeds max: %d > %d", i, len(chunk), c.Max)
		}
	}
	// Each window restarts Overlap chars before the previous one ended.
	for i := 1; i < len(chunks); i++ {
		tail := chunks[i-1][len(chunks[i-1])-c.Overlap:]
		if !strings.HasPrefix(chunks[i], tail) {
			t.Fatalf("chunk %d does not overlap its predecessor", i)
		}
	}
	// No text may be lost at the end.
	last := chunks[len(chunks)-1]
	if !strings.HasSuffix(text, last) {
		t.Fatalf("final chunk does not end the document")
	}
}

func TestSentenceSplitterLengthBand(t *testing.T) {
	s := SentenceSplitter{Min: 20, Max: 80}
	text := "Too short. The flavour cores use only food-grade ingredients. " +
		strings.Repeat("x", 100) + ". Restocks usually land within two weeks!"
	got := s.Split(text)
	want := []string{
		"The flavour cores use only food-grade ingredients.",
		"Restocks usually land within two weeks!",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d sentences, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sentence %d = %q, want %q", i, got[i], want[i])
		}
	}
	if got := s.Split(""); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
}
