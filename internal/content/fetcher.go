package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/quititaus/quitit-chat/internal/content/chromedp"
)

const (
	DefaultTimeout  = 8 * time.Second
	MaxCharsDefault = 20000
)

// Page is one allow-listed retrievable storefront document.
type Page struct {
	ID  string
	URL string
}

// ErrDisallowedSource marks a URL outside the allow-list or matching the
// block-list. Callers must map it to the fallback answer, never to the user.
var ErrDisallowedSource = errors.New("url not allow-listed for retrieval")

// FetchError reports a non-success network response for one page.
type FetchError struct {
	URL    string
	Status int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %d for %s", e.Status, e.URL)
}

// Fetcher retrieves the cleaned plain text of an allow-listed page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

type FetcherType string

const (
	HTTPFetcherType     FetcherType = "http"
	ChromedpFetcherType FetcherType = "chromedp"
)

// Options configures NewFetcher.
type Options struct {
	Allow         []Page
	BlockSuffixes []string
	Timeout       time.Duration
	MaxChars      int
	Cache         Cache
	CacheHits     prometheus.Counter // optional
}

// NewFetcher builds the configured fetch strategy wrapped with the
// allow/block-list guard and the shared document cache.
func NewFetcher(fetcherType FetcherType, opts Options) (Fetcher, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxChars <= 0 {
		opts.MaxChars = MaxCharsDefault
	}
	if opts.Cache == nil {
		opts.Cache = NewMemoryCache()
	}

	var inner Fetcher
	switch fetcherType {
	case HTTPFetcherType:
		inner = &httpFetcher{
			client:   &http.Client{Timeout: opts.Timeout},
			maxChars: opts.MaxChars,
		}
	case ChromedpFetcherType:
		inner = &chromedp.Fetch{Timeout: opts.Timeout, MaxChars: opts.MaxChars}
	default:
		return nil, fmt.Errorf("unsupported fetcher type: %s", fetcherType)
	}

	allow := make(map[string]struct{}, len(opts.Allow))
	for _, p := range opts.Allow {
		allow[p.URL] = struct{}{}
	}
	return &guardedFetcher{
		inner:         inner,
		cache:         opts.Cache,
		allow:         allow,
		blockSuffixes: opts.BlockSuffixes,
		cacheHits:     opts.CacheHits,
	}, nil
}

// guardedFetcher enforces the allow/block lists before any network call and
// serves repeat fetches from the cache.
type guardedFetcher struct {
	inner         Fetcher
	cache         Cache
	allow         map[string]struct{}
	blockSuffixes []string
	cacheHits     prometheus.Counter
}

func (g *guardedFetcher) Fetch(ctx context.Context, url string) (string, error) {
	if _, ok := g.allow[url]; !ok {
		return "", fmt.Errorf("%s: %w", url, ErrDisallowedSource)
	}
	lower := strings.ToLower(url)
	for _, suffix := range g.blockSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return "", fmt.Errorf("%s: %w", url, ErrDisallowedSource)
		}
	}

	if text, ok := g.cache.Get(ctx, url); ok {
		if g.cacheHits != nil {
			g.cacheHits.Inc()
		}
		return text, nil
	}

	text, err := g.inner.Fetch(ctx, url)
	if err != nil {
		return "", err
	}
	g.cache.Set(ctx, url, text)
	return text, nil
}

// httpFetcher retrieves a page with a plain GET and strips it to text.
// The storefront pages are static enough that no browser rendering is
// needed; the chromedp variant exists for pages that are not.
type httpFetcher struct {
	client   *http.Client
	maxChars int
}

func (f *httpFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &FetchError{URL: url, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", url, err)
	}

	return truncate(CleanHTML(string(body)), f.maxChars), nil
}

// truncate cuts text to at most max bytes without splitting a rune.
func truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	for max > 0 && !utf8.RuneStart(text[max]) {
		max--
	}
	return text[:max]
}
