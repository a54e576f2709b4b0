package chromedp

import (
	"context"
	"errors"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/chromedp/chromedp"
	readability "github.com/go-shiori/go-readability"
)

// Fetch retrieves a page through a headless browser and extracts the
// readable article text. Meant for pages the plain HTTP fetcher cannot
// render; the static storefront pages do not need it.
type Fetch struct {
	Timeout  time.Duration
	MaxChars int
}

var spaceRe = regexp.MustCompile(`\s+`)

func (f *Fetch) Fetch(ctx context.Context, pageURL string) (string, error) {
	if strings.TrimSpace(pageURL) == "" {
		return "", errors.New("invalid url")
	}

	ctx, cancel := context.WithTimeout(ctx, f.Timeout)
	defer cancel()

	html, err := fetchHTML(ctx, pageURL)
	if err != nil {
		return "", err
	}

	article, err := readability.FromReader(strings.NewReader(html), mustParseURL(pageURL))
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(spaceRe.ReplaceAllString(article.TextContent, " "))
	if f.MaxChars > 0 && len(text) > f.MaxChars {
		cut := f.MaxChars
		// Back off to a rune boundary so the cut never emits invalid UTF-8.
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}
	return text, nil
}

func fetchHTML(ctx context.Context, pageURL string) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.UserAgent("QuitItChatBot/1.0 (+support@quititaus.com.au)"),
	)
	actx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	bctx, cancelBrowser := chromedp.NewContext(actx)
	defer cancelBrowser()

	var html string
	err := chromedp.Run(bctx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	return html, err
}

func mustParseURL(raw string) *url.URL {
	u, err := url.Parse(raw)
	if err != nil {
		return &url.URL{}
	}
	return u
}
