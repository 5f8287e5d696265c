// Package config reads the service configuration from the environment.
// A .env file in the working directory is loaded first when present.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string

	LLMProvider string
	LLMAPIKey   string
	GeminiModel string

	NewsProvider string
	NewsAPIKey   string

	CoinGeckoBaseURL string
	CoinGeckoAPIKey  string
	CoinGeckoRPS     float64

	QAEndpoint string
	QATimeout  time.Duration

	RedisURL    string
	SessionTTL  time.Duration
	DatabaseURL string

	BrowserDescriptions bool
	ChromeBin           string
	EnrichLinks         bool
	SearchURL           string
}

// Load reads .env (if any) and the environment.
func Load() (*Config, error) {
	godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv and validates it.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		Port:             get("PORT", "8080"),
		FrontendURL:      get("FRONTEND_URL", ""),
		LLMProvider:      strings.ToLower(get("LLM_PROVIDER", "gemini")),
		GeminiModel:      get("GEMINI_MODEL", "gemini-2.5-flash"),
		NewsProvider:     strings.ToLower(get("NEWS_PROVIDER", "cryptopanic")),
		CoinGeckoBaseURL: get("COINGECKO_BASE_URL", ""),
		CoinGeckoAPIKey:  get("COINGECKO_API_KEY", ""),
		QAEndpoint:       get("QA_ENDPOINT", "https://vaibhav7625-crypto-llama-3b-instruct.hf.space/infer"),
		RedisURL:         get("REDIS_URL", ""),
		DatabaseURL:      get("DATABASE_URL", ""),
		ChromeBin:        get("CHROME_BIN", ""),
		SearchURL:        get("SEARCH_URL", ""),
	}

	var err error
	if cfg.CoinGeckoRPS, err = strconv.ParseFloat(get("COINGECKO_RPS", "0.5"), 64); err != nil {
		return nil, fmt.Errorf("COINGECKO_RPS: %w", err)
	}
	if cfg.QATimeout, err = time.ParseDuration(get("QA_TIMEOUT", "300s")); err != nil {
		return nil, fmt.Errorf("QA_TIMEOUT: %w", err)
	}
	if cfg.SessionTTL, err = time.ParseDuration(get("SESSION_TTL", "24h")); err != nil {
		return nil, fmt.Errorf("SESSION_TTL: %w", err)
	}
	if cfg.BrowserDescriptions, err = strconv.ParseBool(get("BROWSER_DESCRIPTIONS", "false")); err != nil {
		return nil, fmt.Errorf("BROWSER_DESCRIPTIONS: %w", err)
	}
	if cfg.EnrichLinks, err = strconv.ParseBool(get("ENRICH_LINKS", "true")); err != nil {
		return nil, fmt.Errorf("ENRICH_LINKS: %w", err)
	}

	switch cfg.LLMProvider {
	case "gemini":
		cfg.LLMAPIKey = get("GEMINI_API_KEY", "")
	case "openai":
		cfg.LLMAPIKey = get("OPENAI_API_KEY", "")
	case "anthropic":
		cfg.LLMAPIKey = get("ANTHROPIC_API_KEY", "")
	default:
		return nil, fmt.Errorf("LLM_PROVIDER: unknown provider %q", cfg.LLMProvider)
	}
	if cfg.LLMAPIKey == "" {
		return nil, fmt.Errorf("LLM_PROVIDER %s: api key is not set", cfg.LLMProvider)
	}

	switch cfg.NewsProvider {
	case "cryptopanic":
		cfg.NewsAPIKey = get("CRYPTO_PANIC_API_KEY", "")
	case "finnhub":
		cfg.NewsAPIKey = get("FINNHUB_API_KEY", "")
	case "alphavantage":
		cfg.NewsAPIKey = get("ALPHA_VANTAGE_API_KEY", "")
	default:
		return nil, fmt.Errorf("NEWS_PROVIDER: unknown provider %q", cfg.NewsProvider)
	}

	return cfg, nil
}

// AllowedOrigins is the CORS allow-list: the local frontend plus FRONTEND_URL.
func (c *Config) AllowedOrigins() []string {
	origins := []string{"http://localhost:3000"}
	if c.FrontendURL != "" {
		origins = append(origins, c.FrontendURL)
	}
	return origins
}
