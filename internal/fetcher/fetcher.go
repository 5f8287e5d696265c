// Package fetcher answers market-data intents with ready-to-display text.
// Every method returns a message for the user; failures are logged and turned
// into a templated apology rather than returned as errors.
package fetcher

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"cryptochat/internal/metrics"
	"cryptochat/pkg/market"
)

const (
	DefaultChartDays    = 30
	DefaultOHLCDays     = 7
	DefaultListCount    = 10
	marketsPageSize     = 50
	wellKnownMarketCap  = 1_000_000_000
	categoryListLimit   = 10
	historyWindowInDays = 365
	notAvailable        = "N/A"
)

// MarketAPI is the subset of the CoinGecko client the fetchers use.
type MarketAPI interface {
	SimplePrice(ctx context.Context, id string) (*market.Quote, error)
	Coin(ctx context.Context, id string) (*market.Coin, error)
	History(ctx context.Context, id string, date time.Time) (*market.Coin, error)
	MarketChart(ctx context.Context, id string, days int) ([]market.PricePoint, error)
	OHLC(ctx context.Context, id string, days int) ([]market.Candle, error)
	Markets(ctx context.Context, perPage int) ([]market.MarketCoin, error)
	Categories(ctx context.Context) ([]market.Category, error)
	NFT(ctx context.Context, id string) (*market.NFT, error)
	Exchange(ctx context.Context, id string) (*market.Exchange, error)
	Exchanges(ctx context.Context, perPage int) ([]market.ExchangeSummary, error)
}

type Fetcher struct {
	api MarketAPI
	now func() time.Time
}

func New(api MarketAPI) *Fetcher {
	return &Fetcher{api: api, now: time.Now}
}

var printer = message.NewPrinter(language.English)

// Title renders an API id for display, e.g. "bitcoin" -> "Bitcoin".
// Casers keep state, so each call gets its own.
func Title(id string) string {
	return cases.Title(language.English).String(id)
}

// USD formats an amount with thousands separators and two decimals.
func USD(v float64) string {
	return "$" + printer.Sprintf("%.2f", v)
}

func money(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return USD(*v)
}

func number(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return printer.Sprintf("%.2f", *v)
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return notAvailable
	}
	return *s
}

func intOrNA(v *int) string {
	if v == nil {
		return notAvailable
	}
	return strconv.Itoa(*v)
}

func logFailure(op, asset string, err error) {
	metrics.RecordUpstreamError("coingecko", err)

	var statusErr *market.StatusError
	if errors.As(err, &statusErr) {
		slog.Warn("market api returned non-success status", "op", op, "asset", asset, "status", statusErr.StatusCode, "body", statusErr.Body)
		return
	}
	slog.Error("market api call failed", "op", op, "asset", asset, "error", err)
}
