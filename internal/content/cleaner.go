package content

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	scriptRe = regexp.MustCompile(`(?is)<script[\s\S]*?</script>`)
	styleRe  = regexp.MustCompile(`(?is)<style[\s\S]*?</style>`)
	chromeRe = regexp.MustCompile(`(?is)<(?:nav|header|footer)\b[\s\S]*?</(?:nav|header|footer)>`)
	tagRe    = regexp.MustCompile(`<[^>]+>`)
	spaceRe  = regexp.MustCompile(`\s+`)
)

var strictPolicy = bluemonday.StrictPolicy()

// CleanHTML reduces a storefront page to plain text. The order matters:
// script and style bodies go first (their content is not page text), then
// page chrome, then every remaining tag becomes a single space so words
// separated only by markup stay separated (the strict policy alone would
// glue them together). The policy then strips anything tag-shaped the
// regexes missed and re-escapes the text, so the single unescape at the
// end decodes entities exactly once and a literal "&lt;p&gt;" in page
// text never resurrects a tag.
func CleanHTML(raw string) string {
	text := scriptRe.ReplaceAllString(raw, " ")
	text = styleRe.ReplaceAllString(text, " ")
	text = chromeRe.ReplaceAllString(text, " ")
	text = tagRe.ReplaceAllString(text, " ")
	text = strictPolicy.Sanitize(text)
	text = html.UnescapeString(text)
	text = strings.ReplaceAll(text, "\u00a0", " ")
	text = spaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
