package resolve

import "regexp"

// Rule is one canned FAQ entry. Patterns run against the RAW question
// text, case-insensitively: several triggers lean on word boundaries,
// which the normalizer would not preserve. Table order encodes precedence;
// more specific rules sit above more general ones.
type Rule struct {
	ID       string
	Patterns []*regexp.Regexp
	Answer   string
}

// MatchRule returns the first rule with any matching trigger, or nil when
// no rule matches (which is a normal outcome, not an error). Rules whose
// answers duplicate an earlier rule's content stay reachable; the earlier
// one simply wins.
func MatchRule(rules []Rule, question string) *Rule {
	for i := range rules {
		for _, p := range rules[i].Patterns {
			if p.MatchString(question) {
				return &rules[i]
			}
		}
	}
	return nil
}

// pats compiles trigger patterns case-insensitively; table construction
// panics on a bad pattern, which is what we want at process start.
func pats(exprs ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		compiled = append(compiled, regexp.MustCompile(`(?i)`+expr))
	}
	return compiled
}
