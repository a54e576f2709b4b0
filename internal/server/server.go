package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/quititaus/quitit-chat/config"
	"github.com/quititaus/quitit-chat/internal/compose"
	"github.com/quititaus/quitit-chat/internal/content"
	"github.com/quititaus/quitit-chat/internal/mail"
	"github.com/quititaus/quitit-chat/internal/resolve"
	"github.com/quititaus/quitit-chat/internal/store"
	"github.com/quititaus/quitit-chat/internal/telemetry"
	openai_provider "github.com/quititaus/quitit-chat/provider/openai"
)

// Run wires the service together and serves HTTP until the listener stops.
func Run(cfg *config.Config) error {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	// Unified HTTP error handler with structured JSON and logging
	baseLogger := log.New(log.Writer(), "[HTTP] ", log.LstdFlags)
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		msg := err.Error()
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if he.Message != nil {
				msg = fmt.Sprint(he.Message)
			}
		}
		req := c.Request()
		baseLogger.Printf("%d %s %s from %s: %v", code, req.Method, req.URL.Path, c.RealIP(), err)
		if !c.Response().Committed {
			_ = c.JSON(code, map[string]interface{}{"error": msg})
		}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:       86400,
	}))

	reg := prometheus.NewRegistry()
	metrics := telemetry.New(reg)

	e.GET("/healthz", func(c echo.Context) error { return c.String(200, "ok") })
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	orch, err := buildOrchestrator(cfg, metrics)
	if err != nil {
		return err
	}

	ctx := context.Background()
	var sink *store.Store
	if cfg.Store.Postgres.URL != "" {
		sink, err = store.NewWithDSN(ctx, cfg.Store.Postgres.URL)
		if err != nil {
			// The sink is best-effort; chat must keep working without it.
			baseLogger.Printf("unanswered sink unavailable: %v", err)
			sink = nil
		}
	}

	var sender mail.Sender
	if cfg.Mail.ResendAPIKey != "" {
		sender = mail.NewResend(cfg.Mail.ResendAPIKey, cfg.Mail.To, cfg.Mail.From, 10*time.Second)
	}

	api := e.Group("/api")
	ch := &ChatHandler{Resolver: orch, Metrics: metrics, Logger: log.New(log.Writer(), "[CHAT] ", log.LstdFlags)}
	ch.Register(api)
	uh := &UnansweredHandler{Store: sink, Metrics: metrics, Logger: log.New(log.Writer(), "[UNANSWERED] ", log.LstdFlags)}
	uh.Register(api)
	eh := &EmailHandler{Sender: sender, Logger: log.New(log.Writer(), "[EMAIL] ", log.LstdFlags)}
	eh.Register(api)

	addr := cfg.General.Listen
	if addr == "" {
		addr = ":8080"
	}
	log.Printf("listening on %s", addr)
	return e.Start(addr)
}

// buildOrchestrator assembles the resolution pipeline from configuration.
func buildOrchestrator(cfg *config.Config, metrics *telemetry.Metrics) (*resolve.Orchestrator, error) {
	var cache content.Cache
	switch cfg.Cache.Type {
	case "redis":
		var err error
		cache, err = content.NewRedisCache(
			fmt.Sprintf("%s:%s", cfg.Cache.Redis.Host, cfg.Cache.Redis.Port),
			cfg.Cache.Redis.Password, cfg.Cache.Redis.DB, cfg.Cache.Redis.TTL)
		if err != nil {
			return nil, err
		}
	default:
		cache = content.NewMemoryCache()
	}

	pages := make([]content.Page, 0, len(cfg.Pages.Allow))
	for _, p := range cfg.Pages.Allow {
		pages = append(pages, content.Page{ID: p.ID, URL: p.URL})
	}

	fetcher, err := content.NewFetcher(content.FetcherType(cfg.Fetch.Type), content.Options{
		Allow:         pages,
		BlockSuffixes: cfg.Pages.BlockSuffixes,
		Timeout:       cfg.Fetch.Timeout,
		MaxChars:      cfg.Fetch.MaxChars,
		Cache:         cache,
		CacheHits:     metrics.CacheHits,
	})
	if err != nil {
		return nil, err
	}

	var chunker content.Chunker
	if cfg.Chat.ChunkStrategy == "sentence" {
		chunker = content.SentenceSplitter{Min: cfg.Chat.SentenceMin, Max: cfg.Chat.SentenceMax}
	} else {
		chunker = content.WindowChunker{Max: cfg.Chat.ChunkMax, Overlap: cfg.Chat.ChunkOverlap}
	}

	var scopeRe *regexp.Regexp
	if cfg.Chat.RetrievalScope != "" {
		scopeRe, err = regexp.Compile(cfg.Chat.RetrievalScope)
		if err != nil {
			return nil, fmt.Errorf("invalid chat.retrieval_scope: %w", err)
		}
	}

	var composer resolve.Composer
	if cfg.Chat.ComposeMode == "generative" {
		oa := cfg.Providers.OpenAI
		if oa.APIKey == "" {
			return nil, fmt.Errorf("providers.openai.api_key not configured (required for compose_mode=generative)")
		}
		timeout := oa.Timeout
		if timeout <= 0 {
			timeout = 8 * time.Second
		}
		client := openai_provider.NewClient(oa.APIKey, oa.CompletionModel, oa.Temperature, oa.MaxTokens, timeout)
		composer = compose.Generative{Provider: client, FallbackText: cfg.Chat.FallbackText}
	} else {
		composer = compose.Verbatim{}
	}

	return &resolve.Orchestrator{
		Rules:        resolve.DefaultRules(),
		Intents:      resolve.DefaultIntents(),
		ScopeRe:      scopeRe,
		Pages:        pages,
		Fetcher:      fetcher,
		Chunker:      chunker,
		TopK:         cfg.Chat.TopK,
		MinScore:     cfg.Chat.MinScore,
		Composer:     composer,
		FallbackText: cfg.Chat.FallbackText,
		Logger:       log.New(log.Writer(), "[RESOLVE] ", log.LstdFlags),
		Metrics:      metrics,
	}, nil
}
