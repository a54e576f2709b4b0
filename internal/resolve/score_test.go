package resolve

import "testing"

func TestScorePresencePerDistinctTerm(t *testing.T) {
	terms := QueryTerms("flavour cores inside")
	if got := Score(terms, "The flavour cores contain food-grade ingredients"); got != 2 {
		t.Fatalf("expected score 2 (flavour, cores), got %d", got)
	}
	// Repeats of one term do not add up.
	if got := Score(terms, "flavour flavour flavour"); got != 1 {
		t.Fatalf("expected score 1 for repeated term, got %d", got)
	}
	// Duplicate query terms count once.
	if got := Score([]string{"mint", "mint"}, "cool mint"); got != 1 {
		t.Fatalf("expected duplicate query terms to count once, got %d", got)
	}
	if got := Score(terms, "nothing relevant"); got != 0 {
		t.Fatalf("expected score 0, got %d", got)
	}
}

func TestScoreMonotonic(t *testing.T) {
	terms := QueryTerms("shipping express tracking")
	base := "our delivery page"
	for _, addition := range []string{" shipping", " express", " tracking"} {
		before := Score(terms, base)
		after := Score(terms, base+addition)
		if after < before {
			t.Fatalf("adding %q lowered score: %d -> %d", addition, before, after)
		}
		base += addition
	}
}

func TestRankStableTies(t *testing.T) {
	chunks := []Chunk{
		{PageID: "a", Text: "first", Score: 1},
		{PageID: "b", Text: "second", Score: 3},
		{PageID: "c", Text: "third", Score: 1},
		{PageID: "d", Text: "fourth", Score: 3},
	}
	Rank(chunks)
	if chunks[0].PageID != "b" || chunks[1].PageID != "d" {
		t.Fatalf("expected b,d first, got %v", chunks)
	}
	// Ties keep document order.
	if chunks[2].PageID != "a" || chunks[3].PageID != "c" {
		t.Fatalf("tie order not stable: %v", chunks)
	}
}
