package fetcher

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"cryptochat/internal/model"
	"cryptochat/pkg/market"
)

type fakeMarket struct {
	quote      *market.Quote
	coin       *market.Coin
	history    *market.Coin
	points     []market.PricePoint
	candles    []market.Candle
	coins      []market.MarketCoin
	categories []market.Category
	nft        *market.NFT
	exchange   *market.Exchange
	exchanges  []market.ExchangeSummary
	err        error

	historyCalls int
	historyDate  time.Time
	chartDays    int
	ohlcDays     int
}

func (f *fakeMarket) SimplePrice(ctx context.Context, id string) (*market.Quote, error) {
	return f.quote, f.err
}

func (f *fakeMarket) Coin(ctx context.Context, id string) (*market.Coin, error) {
	return f.coin, f.err
}

func (f *fakeMarket) History(ctx context.Context, id string, date time.Time) (*market.Coin, error) {
	f.historyCalls++
	f.historyDate = date
	return f.history, f.err
}

func (f *fakeMarket) MarketChart(ctx context.Context, id string, days int) ([]market.PricePoint, error) {
	f.chartDays = days
	return f.points, f.err
}

func (f *fakeMarket) OHLC(ctx context.Context, id string, days int) ([]market.Candle, error) {
	f.ohlcDays = days
	return f.candles, f.err
}

func (f *fakeMarket) Markets(ctx context.Context, perPage int) ([]market.MarketCoin, error) {
	return f.coins, f.err
}

func (f *fakeMarket) Categories(ctx context.Context) ([]market.Category, error) {
	return f.categories, f.err
}

func (f *fakeMarket) NFT(ctx context.Context, id string) (*market.NFT, error) {
	return f.nft, f.err
}

func (f *fakeMarket) Exchange(ctx context.Context, id string) (*market.Exchange, error) {
	return f.exchange, f.err
}

func (f *fakeMarket) Exchanges(ctx context.Context, perPage int) ([]market.ExchangeSummary, error) {
	return f.exchanges, f.err
}

var fixedNow = time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)

func newTestFetcher(api MarketAPI) *Fetcher {
	f := New(api)
	f.now = func() time.Time { return fixedNow }
	return f
}

func ptr[T any](v T) *T { return &v }

func TestQuote(t *testing.T) {
	api := &fakeMarket{
		quote: &market.Quote{Price: ptr(67000.123), MarketCap: ptr(1.3e12)},
		coin:  &market.Coin{MarketData: &market.MarketData{CirculatingSupply: ptr(19700000.0)}},
	}
	f := newTestFetcher(api)
	ctx := context.Background()

	tests := []struct {
		intent model.Intent
		want   string
	}{
		{model.IntentPrice, "The current price of Bitcoin is $67,000.12"},
		{model.IntentMarketCap, "The market cap of Bitcoin is $1,300,000,000,000.00"},
		{model.IntentVolume, "The 24h trading volume of Bitcoin is N/A"},
		{model.IntentSupply, "The circulating supply of Bitcoin is 19,700,000.00 coins"},
	}

	for _, tt := range tests {
		t.Run(string(tt.intent), func(t *testing.T) {
			assert.Equal(t, f.Quote(ctx, "bitcoin", tt.intent), tt.want)
		})
	}
}

func TestQuoteUnknownAsset(t *testing.T) {
	f := newTestFetcher(&fakeMarket{err: fmt.Errorf("simple price: %w", market.ErrNotFound)})
	assert.Equal(t, f.Quote(context.Background(), "notacoin", model.IntentPrice), "I couldn't find market data for Notacoin.")
}

func TestHistoryRejectsToday(t *testing.T) {
	api := &fakeMarket{}
	f := newTestFetcher(api)

	assert.Equal(t, f.History(context.Background(), "bitcoin", "15-03-2026"), msgFutureDate)
	assert.Equal(t, f.History(context.Background(), "bitcoin", "01-01-2027"), msgFutureDate)
	assert.Equal(t, api.historyCalls, 0)
}

func TestHistoryRejectsOlderThanAYear(t *testing.T) {
	api := &fakeMarket{}
	f := newTestFetcher(api)

	assert.Equal(t, f.History(context.Background(), "bitcoin", "366 days ago"), msgOutOfHistory)
	assert.Equal(t, api.historyCalls, 0)
}

func TestHistoryWithinWindow(t *testing.T) {
	api := &fakeMarket{history: &market.Coin{MarketData: &market.MarketData{
		CurrentPrice: map[string]float64{"usd": 42000.5},
	}}}
	f := newTestFetcher(api)

	got := f.History(context.Background(), "bitcoin", "364 days ago")

	assert.Equal(t, api.historyCalls, 1)
	assert.Equal(t, api.historyDate, time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, got, "On 16-03-2025, Bitcoin was priced at **$42,000.50**.")
}

func TestHistoryMissingMarketData(t *testing.T) {
	f := newTestFetcher(&fakeMarket{history: &market.Coin{}})

	got := f.History(context.Background(), "bitcoin", "10-03-2026")
	assert.Equal(t, got, "No historical data available for bitcoin on 10-03-2026.")
}

func TestHistoryBadDate(t *testing.T) {
	f := newTestFetcher(&fakeMarket{})

	assert.Equal(t, f.History(context.Background(), "bitcoin", "yesterday-ish"), "Invalid date format. Please use DD-MM-YYYY.")
	assert.Equal(t, f.History(context.Background(), "bitcoin", "3 weeks ago"), "Invalid time format. Please use days, months, or years.")
}

func TestTrendOf(t *testing.T) {
	assert.Equal(t, TrendOf(100, 120), Uptrend)
	assert.Equal(t, TrendOf(120, 100), Downtrend)
	assert.Equal(t, TrendOf(100, 100), Stable)
}

func TestTrend(t *testing.T) {
	api := &fakeMarket{points: []market.PricePoint{{Price: 100}, {Price: 110}, {Price: 120}}}
	f := newTestFetcher(api)

	got := f.Trend(context.Background(), "bitcoin", 0)

	assert.Equal(t, api.chartDays, DefaultChartDays)
	assert.Equal(t, got, "Market trend for Bitcoin over 30 days:\n"+
		"💰 Price 30 days ago: **$100.00**\n"+
		"💰 Latest price: **$120.00**\n"+
		"📊 Trend: 📈 Uptrend (bullish)")
}

func TestTrendNeedsTwoPoints(t *testing.T) {
	f := newTestFetcher(&fakeMarket{points: []market.PricePoint{{Price: 100}}})
	assert.Equal(t, f.Trend(context.Background(), "bitcoin", 7), "No market trend data available for bitcoin.")
}

func TestOHLCUsesLastCandle(t *testing.T) {
	f := newTestFetcher(&fakeMarket{candles: []market.Candle{
		{Open: 1, High: 2, Low: 0.5, Close: 1.5},
		{Open: 1.5, High: 3, Low: 1, Close: 2.25},
	}})

	got := f.OHLC(context.Background(), "ethereum", 0)
	assert.Equal(t, got, "Ethereum OHLC Data (Last Entry):\nOpen: $1.50, High: $3.00, Low: $1.00, Close: $2.25")
}

func TestOHLCSnapsDays(t *testing.T) {
	tests := []struct {
		days int
		want int
	}{
		{0, 7},
		{1, 1},
		{3, 1},
		{4, 1},
		{5, 7},
		{10, 7},
		{11, 14},
		{45, 30},
		{100, 90},
		{1000, 365},
	}

	for _, tt := range tests {
		m := &fakeMarket{candles: []market.Candle{{Open: 1, High: 1, Low: 1, Close: 1}}}
		newTestFetcher(m).OHLC(context.Background(), "bitcoin", tt.days)
		assert.Equal(t, tt.want, m.ohlcDays)
	}
}

func TestListCoinsFiltersSmallCaps(t *testing.T) {
	f := newTestFetcher(&fakeMarket{coins: []market.MarketCoin{
		{Name: "Bitcoin", MarketCap: ptr(1.3e12)},
		{Name: "Tiny", MarketCap: ptr(5e8)},
		{Name: "Ethereum", MarketCap: ptr(4e11)},
		{Name: "NoCap"},
		{Name: "Solana", MarketCap: ptr(8e10)},
	}})

	got := f.ListCoins(context.Background(), 2)
	assert.Equal(t, got, "Here are the **top 2 cryptocurrencies**:\n1. Bitcoin\n2. Ethereum")
}

func TestCategoriesTakesFirstTen(t *testing.T) {
	var categories []market.Category
	for i := 1; i <= 12; i++ {
		categories = append(categories, market.Category{Name: fmt.Sprintf("C%d", i)})
	}
	f := newTestFetcher(&fakeMarket{categories: categories})

	got := f.Categories(context.Background())
	assert.Equal(t, got, "Some popular crypto categories: C1, C2, C3, C4, C5, C6, C7, C8, C9, C10.")
}

func TestNFTAndExchange(t *testing.T) {
	f := newTestFetcher(&fakeMarket{
		nft:      &market.NFT{FloorPrice: market.Amounts{USD: ptr(12345.6)}},
		exchange: &market.Exchange{Country: ptr("Cayman Islands"), TradeVolume24hBTC: ptr(1234.5)},
	})
	ctx := context.Background()

	assert.Equal(t, f.NFT(ctx, "cryptopunks"), "NFT Collection: Cryptopunks\n💰 Floor Price: **$12,345.60**\n📈 Market Cap: **N/A**")
	assert.Equal(t, f.Exchange(ctx, "binance"), "Exchange: Binance\n🌍 Country: **Cayman Islands**\n📅 Established: **N/A**\n📊 24h BTC Trade Volume: **1,234.50 BTC**")
}

func TestExchanges(t *testing.T) {
	f := newTestFetcher(&fakeMarket{exchanges: []market.ExchangeSummary{
		{Name: "Binance"}, {Name: "Coinbase Exchange"}, {Name: "Kraken"},
	}})

	got := f.Exchanges(context.Background(), 2)
	assert.Equal(t, got, "Here are the **top 2 cryptocurrency exchanges**:\n1. Binance\n2. Coinbase Exchange")
}

func TestUpstreamFailure(t *testing.T) {
	f := newTestFetcher(&fakeMarket{err: &market.StatusError{Service: "coingecko", StatusCode: 429}})
	ctx := context.Background()

	assert.Equal(t, f.Quote(ctx, "bitcoin", model.IntentPrice), "Sorry, I couldn't fetch the data. Try again later.")
	assert.Equal(t, f.OHLC(ctx, "bitcoin", 7), "Couldn't fetch OHLC data for bitcoin.")
	assert.Equal(t, f.Categories(ctx), "Couldn't fetch crypto categories.")
	assert.Equal(t, f.NFT(ctx, "cryptopunks"), "Couldn't fetch NFT data for cryptopunks.")
	assert.Equal(t, f.Exchanges(ctx, 5), "Couldn't fetch the list of exchanges.")

	f = newTestFetcher(&fakeMarket{err: errors.New("dial tcp: timeout")})
	assert.Equal(t, f.Trend(ctx, "bitcoin", 30), "Couldn't fetch market chart data for bitcoin.")
}
