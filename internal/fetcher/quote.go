package fetcher

import (
	"context"
	"errors"
	"fmt"

	"cryptochat/internal/model"
	"cryptochat/pkg/market"
)

// Quote answers price, market_cap, supply and volume intents.
func (f *Fetcher) Quote(ctx context.Context, asset string, intent model.Intent) string {
	name := Title(asset)

	if intent == model.IntentSupply {
		coin, err := f.api.Coin(ctx, asset)
		if err != nil {
			return f.quoteFailure("supply", asset, err)
		}
		supply := notAvailable
		if coin.MarketData != nil {
			supply = number(coin.MarketData.CirculatingSupply)
		}
		return fmt.Sprintf("The circulating supply of %s is %s coins", name, supply)
	}

	q, err := f.api.SimplePrice(ctx, asset)
	if err != nil {
		return f.quoteFailure(string(intent), asset, err)
	}

	switch intent {
	case model.IntentPrice:
		return fmt.Sprintf("The current price of %s is %s", name, money(q.Price))
	case model.IntentMarketCap:
		return fmt.Sprintf("The market cap of %s is %s", name, money(q.MarketCap))
	case model.IntentVolume:
		return fmt.Sprintf("The 24h trading volume of %s is %s", name, money(q.Volume24h))
	}

	return "I couldn't process your request."
}

func (f *Fetcher) quoteFailure(op, asset string, err error) string {
	if errors.Is(err, market.ErrNotFound) {
		return fmt.Sprintf("I couldn't find market data for %s.", Title(asset))
	}
	logFailure(op, asset, err)
	return "Sorry, I couldn't fetch the data. Try again later."
}
