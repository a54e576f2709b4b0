package resolve

import "testing"

func TestMatchRuleFirstWins(t *testing.T) {
	rules := []Rule{
		{ID: "specific", Patterns: pats(`\bexpress shipping\b`), Answer: "specific answer"},
		{ID: "general", Patterns: pats(`\bshipping\b`), Answer: "general answer"},
	}

	// Matches both; the earlier rule must win.
	rule := MatchRule(rules, "do you offer express shipping?")
	if rule == nil || rule.ID != "specific" {
		t.Fatalf("expected rule 'specific', got %+v", rule)
	}

	rule = MatchRule(rules, "how much is shipping?")
	if rule == nil || rule.ID != "general" {
		t.Fatalf("expected rule 'general', got %+v", rule)
	}

	if rule := MatchRule(rules, "completely unrelated"); rule != nil {
		t.Fatalf("expected no match, got %+v", rule)
	}
}

func TestMatchRuleCaseInsensitiveOnRawText(t *testing.T) {
	rules := DefaultRules()
	for _, q := range []string{"Do you have Afterpay?", "do you have AFTERPAY", "is after pay available?"} {
		rule := MatchRule(rules, q)
		if rule == nil || rule.ID != "afterpay" {
			t.Fatalf("question %q: expected afterpay rule, got %+v", q, rule)
		}
	}
}

func TestDefaultRulesDuplicateContentBothReachable(t *testing.T) {
	rules := DefaultRules()
	first := MatchRule(rules, "is cool mint sold out?")
	if first == nil || first.ID != "sold-out" {
		t.Fatalf("expected sold-out, got %+v", first)
	}
	second := MatchRule(rules, "when is cool mint back in stock?")
	if second == nil || second.ID != "out-of-stock-alt" {
		t.Fatalf("expected out-of-stock-alt, got %+v", second)
	}
}

func TestMatchIntent(t *testing.T) {
	intents := []Intent{
		{ID: "empty", Phrases: []string{"postage"}, Answer: ""},
		{ID: "shipping", Phrases: []string{"postage", "delivery"}, Answer: "ships in 3-7 days"},
	}

	// First intent matches but has no registered answer; matching must
	// continue instead of emitting an empty answer.
	intent := MatchIntent(intents, Normalize("What's the postage cost?"))
	if intent == nil || intent.ID != "shipping" {
		t.Fatalf("expected shipping intent, got %+v", intent)
	}

	if intent := MatchIntent(intents, Normalize("nothing relevant here")); intent != nil {
		t.Fatalf("expected no intent, got %+v", intent)
	}
}

func TestMatchIntentSubstringOverNormalizedText(t *testing.T) {
	intents := DefaultIntents()
	intent := MatchIntent(intents, Normalize("my device arrived BROKEN!!"))
	if intent == nil || intent.ID != "warranty" {
		t.Fatalf("expected warranty intent, got %+v", intent)
	}
}
