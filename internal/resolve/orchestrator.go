package resolve

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"sync"

	"github.com/quititaus/quitit-chat/internal/content"
	"github.com/quititaus/quitit-chat/internal/telemetry"
)

// Answer sources, as reported to the widget.
const (
	SourceFAQ         = "faq"
	SourceFAQKeywords = "faq_keywords"
	SourcePages       = "pages"
	SourceBlog        = "blog"
	SourceAIFallback  = "ai_fallback"
	SourceNone        = "none"
)

// Result is the output contract of one resolution. Answer is always
// non-empty; when no stage succeeds it carries the fixed fallback text
// with Grounded=false and Source="none".
type Result struct {
	Answer   string
	Grounded bool
	Source   string
	ID       string
	Cited    string
}

// Composer turns the top-ranked spans into a final answer. Generative
// implementations report themselves so the orchestrator can tag the
// source and recognise the model echoing the fallback string.
type Composer interface {
	Compose(ctx context.Context, question string, top []Chunk) (string, error)
	Generative() bool
}

// Orchestrator sequences the matching stages: pattern rules, keyword
// intents, then (behind the scope gate) retrieval, ranking and
// composition. The first stage producing a confident result wins.
type Orchestrator struct {
	Rules        []Rule
	Intents      []Intent
	ScopeRe      *regexp.Regexp // nil disables the gate
	Pages        []content.Page
	Fetcher      content.Fetcher
	Chunker      content.Chunker
	TopK         int
	MinScore     int
	Composer     Composer
	FallbackText string
	Logger       *log.Logger
	Metrics      *telemetry.Metrics
}

// Resolve runs one question through the pipeline exactly once. The only
// error it returns is ErrContentUnavailable (every configured page failed);
// everything else degrades to the fallback result.
func (o *Orchestrator) Resolve(ctx context.Context, question string) (Result, error) {
	if rule := MatchRule(o.Rules, question); rule != nil {
		return Result{Answer: rule.Answer, Grounded: true, Source: SourceFAQ, ID: rule.ID}, nil
	}

	normalized := Normalize(question)
	if intent := MatchIntent(o.Intents, normalized); intent != nil {
		return Result{Answer: intent.Answer, Grounded: true, Source: SourceFAQKeywords, ID: intent.ID}, nil
	}

	if o.ScopeRe != nil && !o.ScopeRe.MatchString(question) {
		return o.fallback(), nil
	}

	docs, err := o.retrieve(ctx)
	if err != nil {
		return Result{}, err
	}

	terms := QueryTerms(question)
	var chunks []Chunk
	for _, doc := range docs {
		for _, span := range o.Chunker.Split(doc.text) {
			chunks = append(chunks, Chunk{
				PageID: doc.id,
				URL:    doc.url,
				Text:   span,
				Score:  Score(terms, span),
			})
		}
	}
	Rank(chunks)

	top := chunks
	if len(top) > o.TopK {
		top = top[:o.TopK]
	}
	for len(top) > 0 && top[len(top)-1].Score == 0 {
		top = top[:len(top)-1]
	}
	if len(top) == 0 || top[0].Score < o.MinScore {
		return o.fallback(), nil
	}

	answer, err := o.Composer.Compose(ctx, question, top)
	if err != nil {
		o.Logger.Printf("compose failed: %v", err)
		return o.fallback(), nil
	}
	answer = strings.TrimSpace(answer)
	// Models sometimes quote the mandated fallback string; treat that the
	// same as emitting it bare.
	if answer == "" || strings.Trim(answer, `"`) == o.FallbackText {
		return o.fallback(), nil
	}

	source := SourcePages
	switch {
	case o.Composer.Generative():
		source = SourceAIFallback
	case strings.HasPrefix(top[0].PageID, "blog"):
		source = SourceBlog
	}
	return Result{Answer: answer, Grounded: true, Source: source, Cited: top[0].URL}, nil
}

type document struct {
	id   string
	url  string
	text string
}

// retrieve fans out over every allow-listed page in parallel, tolerating
// individual failures. Only when zero pages yield content does it fail,
// with ErrContentUnavailable wrapping the last fetch error.
func (o *Orchestrator) retrieve(ctx context.Context) ([]document, error) {
	docs := make([]document, len(o.Pages))
	errs := make([]error, len(o.Pages))
	var wg sync.WaitGroup
	for i, page := range o.Pages {
		wg.Add(1)
		go func(i int, page content.Page) {
			defer wg.Done()
			text, err := o.Fetcher.Fetch(ctx, page.URL)
			if err != nil {
				errs[i] = err
				if o.Metrics != nil {
					o.Metrics.FetchFailures.WithLabelValues(page.ID).Inc()
				}
				o.Logger.Printf("fetch %s: %v", page.ID, err)
				return
			}
			docs[i] = document{id: page.ID, url: page.URL, text: text}
		}(i, page)
	}
	wg.Wait()

	var usable []document
	var lastErr error
	for i := range docs {
		if errs[i] != nil {
			lastErr = errs[i]
			continue
		}
		if docs[i].text != "" {
			usable = append(usable, docs[i])
		}
	}
	if len(usable) == 0 {
		if lastErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrContentUnavailable, lastErr)
		}
		return nil, ErrContentUnavailable
	}
	return usable, nil
}

func (o *Orchestrator) fallback() Result {
	return Result{Answer: o.FallbackText, Grounded: false, Source: SourceNone}
}
