package fetcher

import (
	"context"
	"fmt"

	"cryptochat/internal/dates"
)

const (
	msgFutureDate   = "❌ Future prices are not available. Please enter a past date within the last year."
	msgOutOfHistory = "❌ CoinGecko API provides historical data only for the last 365 days. Please enter a more recent date."
)

// History answers the USD price of asset on a relative or DD-MM-YYYY date.
// Today and later are rejected, as is anything older than 365 days.
func (f *Fetcher) History(ctx context.Context, asset, date string) string {
	now := f.now()

	day, err := dates.Resolve(date, now)
	if err != nil {
		return err.Error()
	}

	today := dates.Day(now)
	if !day.Before(today) {
		return msgFutureDate
	}
	if day.Before(today.AddDate(0, 0, -historyWindowInDays)) {
		return msgOutOfHistory
	}

	label := dates.Format(day)

	coin, err := f.api.History(ctx, asset, day)
	if err != nil {
		logFailure("history", asset, err)
		return fmt.Sprintf("Couldn't fetch historical data for %s on %s.", asset, label)
	}

	if coin.MarketData == nil || coin.MarketData.CurrentPrice == nil {
		return fmt.Sprintf("No historical data available for %s on %s.", asset, label)
	}

	price, ok := coin.MarketData.CurrentPrice["usd"]
	if !ok {
		return fmt.Sprintf("No historical data available for %s on %s.", asset, label)
	}

	return fmt.Sprintf("On %s, %s was priced at **%s**.", label, Title(asset), USD(price))
}
