package resolve

import (
	"sort"
	"strings"
)

// Chunk is one scored span of cleaned page text. Ephemeral: rebuilt for
// every question.
type Chunk struct {
	PageID string
	URL    string
	Text   string
	Score  int
}

// Score counts how many distinct query terms appear anywhere in the span.
// Presence-per-term (rather than per-occurrence) is the policy everywhere,
// so rankings across spans stay comparable within one resolution.
func Score(terms []string, span string) int {
	lc := strings.ToLower(span)
	score := 0
	seen := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		if strings.Contains(lc, term) {
			score++
		}
	}
	return score
}

// Rank sorts chunks by score descending. The sort is stable so ties keep
// original document order.
func Rank(chunks []Chunk) {
	sort.SliceStable(chunks, func(i, j int) bool {
		return chunks[i].Score > chunks[j].Score
	})
}
