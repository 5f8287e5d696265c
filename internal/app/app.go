// Package app wires configuration into a ready-to-use chat router and its stores.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"cryptochat/db"
	"cryptochat/internal/config"
	"cryptochat/internal/fetcher"
	"cryptochat/internal/intent"
	"cryptochat/internal/memory"
	"cryptochat/internal/newsroute"
	"cryptochat/internal/repository"
	"cryptochat/internal/router"
	"cryptochat/pkg/llm"
	"cryptochat/pkg/market"
	"cryptochat/pkg/news"
	"cryptochat/pkg/qa"
	"cryptochat/pkg/scrape"
)

type App struct {
	Router   *router.Router
	Sessions memory.Store
	// Turns is nil when DATABASE_URL is not set.
	Turns    *repository.TurnRepository

	closers []func() error
}

// New builds the router from cfg. Redis and postgres are only dialled when
// their URLs are configured.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{}

	completer, err := llm.New(ctx, cfg.LLMProvider, cfg.LLMAPIKey, cfg.GeminiModel)
	if err != nil {
		return nil, err
	}

	newsClient, err := news.NewClient(cfg.NewsProvider, cfg.NewsAPIKey)
	if err != nil {
		return nil, err
	}

	var describer scrape.Describer = scrape.NewPageDescriber()
	if cfg.BrowserDescriptions {
		browser := scrape.NewBrowserDescriber(cfg.ChromeBin)
		a.closers = append(a.closers, browser.Close)
		describer = browser
	}

	var resolver scrape.LinkResolver
	if cfg.EnrichLinks {
		resolver = scrape.NewSearchResolver(cfg.SearchURL)
	}

	coingecko := market.NewCoinGeckoClient(cfg.CoinGeckoBaseURL, cfg.CoinGeckoAPIKey, cfg.CoinGeckoRPS)

	a.Router = router.New(
		intent.NewExtractor(completer),
		fetcher.New(coingecko),
		newsroute.New(completer, newsClient, describer, resolver, scrape.NewArticleParser()),
		qa.NewClient(cfg.QAEndpoint, cfg.QATimeout),
	)

	a.Sessions = memory.NewInMemoryStore()
	if cfg.RedisURL != "" {
		client, err := db.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("error connecting to Redis: %w", err)
		}
		a.closers = append(a.closers, client.Close)
		a.Sessions = repository.NewSessionRepository(client, cfg.SessionTTL)
		slog.Info("session memory in redis", "ttl", cfg.SessionTTL)
	}

	if cfg.DatabaseURL != "" {
		conn, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("error connecting to DB: %w", err)
		}
		a.closers = append(a.closers, conn.Close)

		if err := db.Migrate(conn); err != nil {
			a.Close()
			return nil, fmt.Errorf("error migrating DB: %w", err)
		}
		a.Turns = repository.NewTurnRepository(conn)
		slog.Info("transcripts enabled")
	}

	slog.Info("chat router ready",
		"llm", completer.Name(),
		"news", newsClient.Name(),
		"browser_descriptions", cfg.BrowserDescriptions,
		"enrich_links", cfg.EnrichLinks,
	)

	return a, nil
}

// Close releases connections and the browser, newest first.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			slog.Warn("error during shutdown", "error", err)
		}
	}
	a.closers = nil
}

var _ memory.Store = (*repository.SessionRepository)(nil)
