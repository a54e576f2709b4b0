package content

import (
	"regexp"
	"strings"
)

// Chunker splits one cleaned document into scoring spans. Implementations
// are pure: no state is shared between calls.
type Chunker interface {
	Split(text string) []string
}

// WindowChunker cuts fixed-length windows with overlap so a phrase that
// straddles a boundary still lands whole in one of the two windows.
type WindowChunker struct {
	Max     int
	Overlap int
}

func (c WindowChunker) Split(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if len(text) <= c.Max {
		return []string{text}
	}
	var chunks []string
	for start := 0; start < len(text); {
		end := start + c.Max
		if end > len(text) {
			end = len(text)
		}
		if chunk := strings.TrimSpace(text[start:end]); chunk != "" {
			chunks = append(chunks, chunk)
		}
		if end == len(text) {
			break
		}
		start = end - c.Overlap
		if start < 0 {
			start = 0
		}
	}
	return chunks
}

var sentenceEndRe = regexp.MustCompile(`([.!?]+)\s+`)

// SentenceSplitter cuts on sentence-terminal punctuation and keeps only
// sentences inside the configured length band, dropping boilerplate
// fragments and run-on blocks.
type SentenceSplitter struct {
	Min int
	Max int
}

func (s SentenceSplitter) Split(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	marked := sentenceEndRe.ReplaceAllString(text, "$1\x00")
	var sentences []string
	for _, part := range strings.Split(marked, "\x00") {
		part = strings.TrimSpace(part)
		if len(part) < s.Min || len(part) > s.Max {
			continue
		}
		sentences = append(sentences, part)
	}
	return sentences
}
