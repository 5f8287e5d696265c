package fetcher

import (
	"context"
	"fmt"
	"strings"
)

// ListCoins numbers the first n coins whose market cap is above one billion USD.
func (f *Fetcher) ListCoins(ctx context.Context, n int) string {
	if n <= 0 {
		n = DefaultListCount
	}

	coins, err := f.api.Markets(ctx, marketsPageSize)
	if err != nil {
		logFailure("list_coins", "", err)
		return "Sorry, I couldn't fetch the list of cryptocurrencies."
	}

	var names []string
	for _, c := range coins {
		if c.MarketCap != nil && *c.MarketCap > wellKnownMarketCap {
			names = append(names, c.Name)
		}
		if len(names) == n {
			break
		}
	}

	if len(names) == 0 {
		return "No well-known cryptocurrencies found right now."
	}

	return fmt.Sprintf("Here are the **top %d cryptocurrencies**:\n%s", len(names), numbered(names))
}

func (f *Fetcher) Categories(ctx context.Context) string {
	categories, err := f.api.Categories(ctx)
	if err != nil {
		logFailure("categories", "", err)
		return "Couldn't fetch crypto categories."
	}

	if len(categories) > categoryListLimit {
		categories = categories[:categoryListLimit]
	}

	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}

	return fmt.Sprintf("Some popular crypto categories: %s.", strings.Join(names, ", "))
}

func (f *Fetcher) NFT(ctx context.Context, id string) string {
	nft, err := f.api.NFT(ctx, id)
	if err != nil {
		logFailure("nft", id, err)
		return fmt.Sprintf("Couldn't fetch NFT data for %s.", id)
	}

	return fmt.Sprintf("NFT Collection: %s\n💰 Floor Price: **%s**\n📈 Market Cap: **%s**",
		Title(id), money(nft.FloorPrice.USD), money(nft.MarketCap.USD))
}

func (f *Fetcher) Exchange(ctx context.Context, id string) string {
	ex, err := f.api.Exchange(ctx, id)
	if err != nil {
		logFailure("exchange", id, err)
		return fmt.Sprintf("Couldn't fetch data for %s.", id)
	}

	return fmt.Sprintf("Exchange: %s\n🌍 Country: **%s**\n📅 Established: **%s**\n📊 24h BTC Trade Volume: **%s BTC**",
		Title(id), orNA(ex.Country), intOrNA(ex.YearEstablished), number(ex.TradeVolume24hBTC))
}

func (f *Fetcher) Exchanges(ctx context.Context, n int) string {
	if n <= 0 {
		n = DefaultListCount
	}

	list, err := f.api.Exchanges(ctx, n)
	if err != nil {
		logFailure("list_exchanges", "", err)
		return "Couldn't fetch the list of exchanges."
	}

	if len(list) > n {
		list = list[:n]
	}

	names := make([]string, 0, len(list))
	for _, e := range list {
		names = append(names, e.Name)
	}

	return fmt.Sprintf("Here are the **top %d cryptocurrency exchanges**:\n%s", len(names), numbered(names))
}

func numbered(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = fmt.Sprintf("%d. %s", i+1, item)
	}
	return strings.Join(lines, "\n")
}
