package model

import "strings"

const Unknown = "unknown"

type Intent string

const (
	IntentPrice         Intent = "price"
	IntentMarketCap     Intent = "market_cap"
	IntentSupply        Intent = "supply"
	IntentVolume        Intent = "volume"
	IntentHistory       Intent = "history"
	IntentMarketChart   Intent = "market_chart"
	IntentOHLC          Intent = "ohlc"
	IntentListCoins     Intent = "list_coins"
	IntentCategories    Intent = "categories"
	IntentNFT           Intent = "nft"
	IntentExchange      Intent = "exchange"
	IntentListExchanges Intent = "list_exchanges"
	IntentNews          Intent = "news"
	IntentPrevious      Intent = "previous"
	IntentGeneral       Intent = "general"
	IntentUnknown       Intent = Unknown
)

// Intents is the vocabulary the extractor offers to the model, in prompt order.
var Intents = []Intent{
	IntentPrice, IntentMarketCap, IntentSupply, IntentVolume, IntentHistory,
	IntentMarketChart, IntentOHLC, IntentListCoins, IntentCategories, IntentNFT,
	IntentExchange, IntentListExchanges, IntentNews, IntentPrevious, IntentGeneral,
}

func ParseIntent(s string) Intent {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, i := range Intents {
		if string(i) == s {
			return i
		}
	}
	return IntentUnknown
}

// IsQuote reports whether the intent is answered from the current market snapshot.
func (i Intent) IsQuote() bool {
	switch i {
	case IntentPrice, IntentMarketCap, IntentSupply, IntentVolume:
		return true
	}
	return false
}

// ParsedQuery is the structured reading of one user turn. Counted is false when
// the user did not give a number; Count is meaningless then.
type ParsedQuery struct {
	Intent  Intent `json:"intent"`
	Asset   string `json:"asset"`
	Date    string `json:"date"`
	Count   int    `json:"count,omitempty"`
	Counted bool   `json:"counted,omitempty"`
}

func UnknownQuery() ParsedQuery {
	return ParsedQuery{Intent: IntentUnknown, Asset: Unknown, Date: Unknown}
}

func (q ParsedQuery) HasAsset() bool { return q.Asset != "" && q.Asset != Unknown }

func (q ParsedQuery) HasDate() bool { return q.Date != "" && q.Date != Unknown }

func (q ParsedQuery) HasCount() bool { return q.Counted }

// WithCount records n as the user's number.
func (q ParsedQuery) WithCount(n int) ParsedQuery {
	q.Count, q.Counted = n, true
	return q
}

// CountOr returns the user's number or def when none was given.
func (q ParsedQuery) CountOr(def int) int {
	if q.HasCount() {
		return q.Count
	}
	return def
}
