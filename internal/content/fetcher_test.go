package content

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"unicode/utf8"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestFetcherEnforcesAllowList(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	f, err := NewFetcher(HTTPFetcherType, Options{
		Allow:         []Page{{ID: "faq", URL: srv.URL + "/pages/faqs"}},
		BlockSuffixes: []string{".pdf"},
	})
	if err != nil {
		t.Fatalf("NewFetcher: %v", err)
	}

	if _, err := f.Fetch(context.Background(), srv.URL+"/pages/secret"); !errors.Is(err, ErrDisallowedSource) {
		t.Fatalf("expected ErrDisallowedSource, got %v", err)
	}
	if hits.Load() != 0 {
		t.Fatalf("disallowed url must not reach the network, got %d hits", hits.Load())
	}
}

func TestFetcherEnforcesBlockSuffixes(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	url := srv.URL + "/downloads/guide.PDF"
	f, err := NewFetcher(HTTPFetcherType, Options{
		Allow:         []Page{{ID: "guide", URL: url}},
		BlockSuffixes: []string{".pdf"},
	})
	if err != nil {
		t.Fatalf("NewFetcher: %v", err)
	}

	// Allow-listed but suffix-blocked; the suffix check is case-insensitive.
	if _, err := f.Fetch(context.Background(), url); !errors.Is(err, ErrDisallowedSource) {
		t.Fatalf("expected ErrDisallowedSource, got %v", err)
	}
	if hits.Load() != 0 {
		t.Fatalf("blocked url must not reach the network, got %d hits", hits.Load())
	}
}

func TestFetcherCleansAndCaches(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`<html><nav>menu</nav><p>Cool</p><p>Mint</p></html>`))
	}))
	defer srv.Close()

	cacheHits := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_cache_hits"})
	f, err := NewFetcher(HTTPFetcherType, Options{
		Allow:     []Page{{ID: "faq", URL: srv.URL}},
		CacheHits: cacheHits,
	})
	if err != nil {
		t.Fatalf("NewFetcher: %v", err)
	}

	text, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if text != "Cool Mint" {
		t.Fatalf("expected cleaned text, got %q", text)
	}

	again, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch (cached): %v", err)
	}
	if again != text {
		t.Fatalf("cached text differs: %q != %q", again, text)
	}
	if hits.Load() != 1 {
		t.Fatalf("expected 1 origin hit, got %d", hits.Load())
	}
	if got := testutil.ToFloat64(cacheHits); got != 1 {
		t.Fatalf("expected 1 cache hit recorded, got %v", got)
	}
}

func TestFetcherTruncatesOnRuneBoundary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<p>" + strings.Repeat("é", 40) + "</p>"))
	}))
	defer srv.Close()

	// 21 bytes lands mid-rune: "é" is 2 bytes, so the cut must back off.
	f, err := NewFetcher(HTTPFetcherType, Options{
		Allow:    []Page{{ID: "faq", URL: srv.URL}},
		MaxChars: 21,
	})
	if err != nil {
		t.Fatalf("NewFetcher: %v", err)
	}

	text, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if !utf8.ValidString(text) {
		t.Fatalf("truncated text is not valid UTF-8: %q", text)
	}
	if text != strings.Repeat("é", 10) {
		t.Fatalf("expected 10 runes after truncation, got %q (%d bytes)", text, len(text))
	}
}

func TestFetcherReportsStatus(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	f, err := NewFetcher(HTTPFetcherType, Options{Allow: []Page{{ID: "faq", URL: srv.URL}}})
	if err != nil {
		t.Fatalf("NewFetcher: %v", err)
	}

	_, err = f.Fetch(context.Background(), srv.URL)
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected *FetchError, got %v", err)
	}
	if fetchErr.Status != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", fetchErr.Status)
	}

	// Failures must not be cached.
	if _, err := f.Fetch(context.Background(), srv.URL); err == nil {
		t.Fatalf("expected second fetch to fail")
	}
	if hits.Load() != 2 {
		t.Fatalf("expected 2 origin hits, got %d", hits.Load())
	}
}

func TestNewFetcherUnknownType(t *testing.T) {
	if _, err := NewFetcher(FetcherType("carrier-pigeon"), Options{}); err == nil {
		t.Fatalf("expected error for unknown fetcher type")
	}
}
