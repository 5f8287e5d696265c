package market

import "time"

// Amounts is a per-currency value map where only USD is read.
type Amounts struct {
	USD *float64 `json:"usd"`
}

type Quote struct {
	Price     *float64
	MarketCap *float64
	Volume24h *float64
}

type MarketData struct {
	CurrentPrice      map[string]float64 `json:"current_price"`
	MarketCap         map[string]float64 `json:"market_cap"`
	TotalVolume       map[string]float64 `json:"total_volume"`
	CirculatingSupply *float64           `json:"circulating_supply"`
}

type Coin struct {
	ID         string      `json:"id"`
	Symbol     string      `json:"symbol"`
	Name       string      `json:"name"`
	MarketData *MarketData `json:"market_data"`
}

type PricePoint struct {
	Time  time.Time
	Price float64
}

type Candle struct {
	Time                   time.Time
	Open, High, Low, Close float64
}

type MarketCoin struct {
	ID           string   `json:"id"`
	Symbol       string   `json:"symbol"`
	Name         string   `json:"name"`
	CurrentPrice *float64 `json:"current_price"`
	MarketCap    *float64 `json:"market_cap"`
}

type Category struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	MarketCap *float64 `json:"market_cap"`
}

type NFT struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	FloorPrice Amounts `json:"floor_price"`
	MarketCap  Amounts `json:"market_cap"`
}

type Exchange struct {
	Name              string   `json:"name"`
	Country           *string  `json:"country"`
	YearEstablished   *int     `json:"year_established"`
	TradeVolume24hBTC *float64 `json:"trade_volume_24h_btc"`
}

type ExchangeSummary struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	TrustScoreRank *int   `json:"trust_score_rank"`
}
