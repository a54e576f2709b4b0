package resolve

import "strings"

// Normalize lowercases s, replaces every character outside [a-z0-9 ] with a
// space and collapses whitespace runs. Idempotent, so it is safe to apply
// at more than one stage.
func Normalize(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := true // also trims leading spaces
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			b.WriteByte(' ')
			lastSpace = true
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// QueryTerms splits a question into normalized non-empty scoring terms.
func QueryTerms(s string) []string {
	return strings.Fields(Normalize(s))
}
