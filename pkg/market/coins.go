package market

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// SimplePrice returns the USD price, market cap and 24h volume of a coin id.
func (c *CoinGeckoClient) SimplePrice(ctx context.Context, id string) (*Quote, error) {
	params := url.Values{
		"ids":                {id},
		"vs_currencies":      {"usd"},
		"include_market_cap": {"true"},
		"include_24hr_vol":   {"true"},
	}

	var raw map[string]map[string]*float64
	if err := c.get(ctx, "/simple/price", params, &raw); err != nil {
		return nil, err
	}

	values, ok := raw[id]
	if !ok {
		return nil, ErrNotFound
	}

	return &Quote{
		Price:     values["usd"],
		MarketCap: values["usd_market_cap"],
		Volume24h: values["usd_24h_vol"],
	}, nil
}

// Coin returns the current market data of a coin id, including circulating supply.
func (c *CoinGeckoClient) Coin(ctx context.Context, id string) (*Coin, error) {
	params := url.Values{
		"localization":   {"false"},
		"tickers":        {"false"},
		"community_data": {"false"},
		"developer_data": {"false"},
	}

	var coin Coin
	if err := c.get(ctx, "/coins/"+url.PathEscape(id), params, &coin); err != nil {
		return nil, err
	}
	return &coin, nil
}

// History returns the snapshot of a coin at 00:00 UTC of the given day.
func (c *CoinGeckoClient) History(ctx context.Context, id string, date time.Time) (*Coin, error) {
	params := url.Values{
		"date":         {date.Format("02-01-2006")},
		"localization": {"false"},
	}

	var coin Coin
	if err := c.get(ctx, "/coins/"+url.PathEscape(id)+"/history", params, &coin); err != nil {
		return nil, err
	}
	return &coin, nil
}

func (c *CoinGeckoClient) MarketChart(ctx context.Context, id string, days int) ([]PricePoint, error) {
	params := url.Values{
		"vs_currency": {"usd"},
		"days":        {strconv.Itoa(days)},
	}

	var raw struct {
		Prices [][]float64 `json:"prices"`
	}
	if err := c.get(ctx, "/coins/"+url.PathEscape(id)+"/market_chart", params, &raw); err != nil {
		return nil, err
	}

	points := make([]PricePoint, 0, len(raw.Prices))
	for _, p := range raw.Prices {
		if len(p) < 2 {
			continue
		}
		points = append(points, PricePoint{Time: time.UnixMilli(int64(p[0])), Price: p[1]})
	}
	return points, nil
}

func (c *CoinGeckoClient) OHLC(ctx context.Context, id string, days int) ([]Candle, error) {
	params := url.Values{
		"vs_currency": {"usd"},
		"days":        {strconv.Itoa(days)},
	}

	var raw [][]float64
	if err := c.get(ctx, "/coins/"+url.PathEscape(id)+"/ohlc", params, &raw); err != nil {
		return nil, err
	}

	candles := make([]Candle, 0, len(raw))
	for _, e := range raw {
		if len(e) < 5 {
			return nil, fmt.Errorf("coingecko ohlc: entry has %d values", len(e))
		}
		candles = append(candles, Candle{
			Time:  time.UnixMilli(int64(e[0])),
			Open:  e[1],
			High:  e[2],
			Low:   e[3],
			Close: e[4],
		})
	}
	return candles, nil
}

// Markets lists coins ordered by market cap, first page only.
func (c *CoinGeckoClient) Markets(ctx context.Context, perPage int) ([]MarketCoin, error) {
	params := url.Values{
		"vs_currency": {"usd"},
		"order":       {"market_cap_desc"},
		"per_page":    {strconv.Itoa(perPage)},
		"page":        {"1"},
	}

	var coins []MarketCoin
	if err := c.get(ctx, "/coins/markets", params, &coins); err != nil {
		return nil, err
	}
	return coins, nil
}

func (c *CoinGeckoClient) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.get(ctx, "/coins/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
