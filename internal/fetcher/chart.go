package fetcher

import (
	"context"
	"fmt"
)

type Trend string

const (
	Uptrend   Trend = "uptrend"
	Downtrend Trend = "downtrend"
	Stable    Trend = "stable"
)

var trendLabels = map[Trend]string{
	Uptrend:   "📈 Uptrend (bullish)",
	Downtrend: "📉 Downtrend (bearish)",
	Stable:    "➡️ No major trend (stable)",
}

// TrendOf compares the first and last price of a series.
func TrendOf(first, last float64) Trend {
	switch {
	case last > first:
		return Uptrend
	case last < first:
		return Downtrend
	default:
		return Stable
	}
}

// Trend reports the direction of asset's price over the last days days.
func (f *Fetcher) Trend(ctx context.Context, asset string, days int) string {
	if days <= 0 {
		days = DefaultChartDays
	}

	points, err := f.api.MarketChart(ctx, asset, days)
	if err != nil {
		logFailure("market_chart", asset, err)
		return fmt.Sprintf("Couldn't fetch market chart data for %s.", asset)
	}

	if len(points) < 2 {
		return fmt.Sprintf("No market trend data available for %s.", asset)
	}

	first := points[0].Price
	last := points[len(points)-1].Price

	return fmt.Sprintf("Market trend for %s over %d days:\n"+
		"💰 Price %d days ago: **%s**\n"+
		"💰 Latest price: **%s**\n"+
		"📊 Trend: %s",
		Title(asset), days, days, USD(first), USD(last), trendLabels[TrendOf(first, last)])
}

// OHLC reports the most recent candle of the series.
// ohlcRanges are the day counts the OHLC endpoint accepts.
var ohlcRanges = []int{1, 7, 14, 30, 90, 180, 365}

// OHLCDays snaps a requested day count to the nearest accepted range, the
// shorter one on a tie.
func OHLCDays(days int) int {
	if days <= 0 {
		return DefaultOHLCDays
	}
	best := ohlcRanges[0]
	for _, r := range ohlcRanges[1:] {
		if abs(days-r) < abs(days-best) {
			best = r
		}
	}
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func (f *Fetcher) OHLC(ctx context.Context, asset string, days int) string {
	candles, err := f.api.OHLC(ctx, asset, OHLCDays(days))
	if err != nil {
		logFailure("ohlc", asset, err)
		return fmt.Sprintf("Couldn't fetch OHLC data for %s.", asset)
	}

	if len(candles) == 0 {
		return fmt.Sprintf("No OHLC data available for %s.", asset)
	}

	c := candles[len(candles)-1]
	return fmt.Sprintf("%s OHLC Data (Last Entry):\nOpen: %s, High: %s, Low: %s, Close: %s",
		Title(asset), USD(c.Open), USD(c.High), USD(c.Low), USD(c.Close))
}
