package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the chat service
type Config struct {
	General   GeneralConfig   `mapstructure:"general"`
	Chat      ChatConfig      `mapstructure:"chat"`
	Pages     PagesConfig     `mapstructure:"pages"`
	Fetch     FetchConfig     `mapstructure:"fetch"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Providers ProvidersConfig `mapstructure:"providers"`
	Mail      MailConfig      `mapstructure:"mail"`
	Store     StoreConfig     `mapstructure:"store"`
}

// GeneralConfig contains general application settings
type GeneralConfig struct {
	Listen   string `mapstructure:"listen"`
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
}

// ChatConfig tunes the answer-resolution pipeline.
type ChatConfig struct {
	FallbackText   string `mapstructure:"fallback_text"`
	MinScore       int    `mapstructure:"min_score"`
	TopK           int    `mapstructure:"top_k"`
	ChunkStrategy  string `mapstructure:"chunk_strategy"` // window or sentence
	ChunkMax       int    `mapstructure:"chunk_max"`
	ChunkOverlap   int    `mapstructure:"chunk_overlap"`
	SentenceMin    int    `mapstructure:"sentence_min"`
	SentenceMax    int    `mapstructure:"sentence_max"`
	RetrievalScope string `mapstructure:"retrieval_scope"` // regex; empty disables the gate
	ComposeMode    string `mapstructure:"compose_mode"`    // verbatim or generative
}

func (c ChatConfig) Validate() error {
	if strings.TrimSpace(c.FallbackText) == "" {
		return fmt.Errorf("chat.fallback_text is required")
	}
	if c.ChunkStrategy != "window" && c.ChunkStrategy != "sentence" {
		return fmt.Errorf("chat.chunk_strategy must be window or sentence")
	}
	if c.ChunkOverlap >= c.ChunkMax {
		return fmt.Errorf("chat.chunk_overlap must be smaller than chat.chunk_max")
	}
	if c.ComposeMode != "verbatim" && c.ComposeMode != "generative" {
		return fmt.Errorf("chat.compose_mode must be verbatim or generative")
	}
	return nil
}

// PageConfig is one allow-listed storefront page.
type PageConfig struct {
	ID  string `mapstructure:"id"`
	URL string `mapstructure:"url"`
}

// PagesConfig is the retrieval allow-list plus the block-list of
// binary-document suffixes that must never be fetched.
type PagesConfig struct {
	Allow         []PageConfig `mapstructure:"allow"`
	BlockSuffixes []string     `mapstructure:"block_suffixes"`
}

func (p PagesConfig) Validate() error {
	if len(p.Allow) == 0 {
		return fmt.Errorf("pages.allow must list at least one page")
	}
	for _, page := range p.Allow {
		if strings.TrimSpace(page.ID) == "" || strings.TrimSpace(page.URL) == "" {
			return fmt.Errorf("pages.allow entries need both id and url")
		}
	}
	return nil
}

// FetchConfig selects and bounds the page fetcher.
type FetchConfig struct {
	Type     string        `mapstructure:"type"` // http or chromedp
	Timeout  time.Duration `mapstructure:"timeout"`
	MaxChars int           `mapstructure:"max_chars"`
}

// CacheConfig selects the cleaned-document cache backend.
type CacheConfig struct {
	Type  string      `mapstructure:"type"` // inmemory or redis
	Redis RedisConfig `mapstructure:"redis"`
}

// RedisConfig contains Redis connection settings
type RedisConfig struct {
	Host     string        `mapstructure:"host"`
	Port     string        `mapstructure:"port"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

func (r RedisConfig) Validate() error {
	if strings.TrimSpace(r.Host) == "" {
		return fmt.Errorf("cache.redis.host required")
	}
	if strings.TrimSpace(r.Port) == "" {
		return fmt.Errorf("cache.redis.port required")
	}
	return nil
}

// ProvidersConfig contains generative-model provider configurations.
type ProvidersConfig struct {
	OpenAI OpenAIConfig `mapstructure:"openai"`
}

// OpenAIConfig contains the OpenAI chat-completions settings.
type OpenAIConfig struct {
	APIKey          string        `mapstructure:"api_key"`
	CompletionModel string        `mapstructure:"completion_model"`
	Temperature     float64       `mapstructure:"temperature"`
	MaxTokens       int           `mapstructure:"max_tokens"`
	Timeout         time.Duration `mapstructure:"timeout"`
}

// MailConfig contains the outbound transactional email settings.
type MailConfig struct {
	ResendAPIKey string `mapstructure:"resend_api_key"`
	To           string `mapstructure:"to"`
	From         string `mapstructure:"from"`
}

// StoreConfig contains optional persistence settings.
type StoreConfig struct {
	Postgres PostgresConfig `mapstructure:"postgres"`
}

// PostgresConfig points at the optional unanswered-question sink.
type PostgresConfig struct {
	URL string `mapstructure:"url"`
}

// DefaultFallbackText is the apology emitted when no stage produces a
// confident answer. Emitted verbatim, so edits here are user-visible.
const DefaultFallbackText = "I’m sorry, I don’t know the answer to that. You can contact our team at support@quititaus.com.au and they should be able to help you out 😊"

// LoadConfig loads config from file
func LoadConfig(path string) *Config {
	viper.SetConfigName("config") // name of config file (without extension)
	viper.SetConfigType("json")   // REQUIRED if the config file does not have the extension in the name

	viper.SetDefault("general.listen", ":8080")
	viper.SetDefault("general.log_level", "info")
	viper.SetDefault("chat.fallback_text", DefaultFallbackText)
	viper.SetDefault("chat.min_score", 2)
	viper.SetDefault("chat.top_k", 6)
	viper.SetDefault("chat.chunk_strategy", "window")
	viper.SetDefault("chat.chunk_max", 900)
	viper.SetDefault("chat.chunk_overlap", 120)
	viper.SetDefault("chat.sentence_min", 30)
	viper.SetDefault("chat.sentence_max", 220)
	viper.SetDefault("chat.retrieval_scope", `(?i)what.?s inside|ingredient|flavour core|flavor core`)
	viper.SetDefault("chat.compose_mode", "generative")
	viper.SetDefault("pages.allow", defaultPages())
	viper.SetDefault("pages.block_suffixes", []string{".pdf", ".doc", ".docx", ".xls", ".xlsx", ".zip"})
	viper.SetDefault("fetch.type", "http")
	viper.SetDefault("fetch.timeout", "8s")
	viper.SetDefault("fetch.max_chars", 20000)
	viper.SetDefault("cache.type", "inmemory")
	viper.SetDefault("cache.redis.ttl", "24h")
	viper.SetDefault("providers.openai.completion_model", "gpt-4o-mini")
	viper.SetDefault("providers.openai.temperature", 0.3)
	viper.SetDefault("providers.openai.max_tokens", 260)
	viper.SetDefault("providers.openai.timeout", "8s")
	viper.SetDefault("mail.to", "support@quititaus.com.au")
	viper.SetDefault("mail.from", "QUIT IT Bot <support@quititaus.com.au>")

	// Secrets are env-only, but AutomaticEnv only surfaces keys viper
	// already knows about; registering empty defaults is what makes the
	// QUITIT_* variables reach Unmarshal.
	viper.SetDefault("providers.openai.api_key", "")
	viper.SetDefault("mail.resend_api_key", "")
	viper.SetDefault("store.postgres.url", "")
	viper.SetDefault("cache.redis.host", "")
	viper.SetDefault("cache.redis.port", "")
	viper.SetDefault("cache.redis.password", "")
	viper.SetDefault("cache.redis.db", 0)

	if path == "" {
		viper.AddConfigPath("./config")
		viper.AddConfigPath(".")
	} else {
		viper.SetConfigFile(path)
	}

	viper.SetEnvPrefix("QUITIT")
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)

	viper.AutomaticEnv() // read in environment variables that match (QUITIT_*)

	err := viper.ReadInConfig()
	if err != nil {
		// The defaults fully describe the production deployment, so a
		// missing file is fine; anything else is fatal.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
	}

	var config Config
	if err = viper.Unmarshal(&config); err != nil {
		panic(fmt.Errorf("fatal error config file: %w", err))
	}

	if err := config.Chat.Validate(); err != nil {
		panic(err)
	}
	if err := config.Pages.Validate(); err != nil {
		panic(err)
	}
	if config.Cache.Type == "redis" {
		if err := config.Cache.Redis.Validate(); err != nil {
			panic(err)
		}
	}
	return &config
}

// defaultPages mirrors the storefront allow-list the service shipped with.
func defaultPages() []map[string]string {
	return []map[string]string{
		{"id": "blog-cores-inside", "url": "https://quititaus.com.au/blogs/news/whats-inside-quit-it-flavour-cores"},
		{"id": "home", "url": "https://quititaus.com.au/"},
		{"id": "faq", "url": "https://quititaus.com.au/pages/frequently-asked-questions"},
		{"id": "tracking", "url": "https://quititaus.com.au/apps/track123"},
		{"id": "contact", "url": "https://quititaus.com.au/pages/contact"},
		{"id": "flavour-cores", "url": "https://quititaus.com.au/products/flavour-core-bundle"},
		{"id": "starter-pack", "url": "https://quititaus.com.au/products/starter-pack"},
	}
}
