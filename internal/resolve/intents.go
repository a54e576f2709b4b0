package resolve

import "strings"

// Intent is a fuzzy keyword fallback consulted only after the rule table
// misses. Phrases are matched as substrings of the NORMALIZED question, so
// punctuation and case never get in the way.
type Intent struct {
	ID      string
	Phrases []string
	Answer  string
}

// MatchIntent returns the first intent whose any phrase is contained in the
// normalized question. An intent without registered answer text is skipped
// so the pipeline can never emit an empty answer.
func MatchIntent(intents []Intent, normalized string) *Intent {
	for i := range intents {
		if intents[i].Answer == "" {
			continue
		}
		for _, phrase := range intents[i].Phrases {
			if phrase != "" && strings.Contains(normalized, phrase) {
				return &intents[i]
			}
		}
	}
	return nil
}
