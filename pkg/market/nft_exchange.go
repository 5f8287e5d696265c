package market

import (
	"context"
	"net/url"
	"strconv"
)

func (c *CoinGeckoClient) NFT(ctx context.Context, id string) (*NFT, error) {
	var nft NFT
	if err := c.get(ctx, "/nfts/"+url.PathEscape(id), nil, &nft); err != nil {
		return nil, err
	}
	return &nft, nil
}

func (c *CoinGeckoClient) Exchange(ctx context.Context, id string) (*Exchange, error) {
	var ex Exchange
	if err := c.get(ctx, "/exchanges/"+url.PathEscape(id), nil, &ex); err != nil {
		return nil, err
	}
	return &ex, nil
}

func (c *CoinGeckoClient) Exchanges(ctx context.Context, perPage int) ([]ExchangeSummary, error) {
	params := url.Values{
		"per_page": {strconv.Itoa(perPage)},
		"page":     {"1"},
	}

	var list []ExchangeSummary
	if err := c.get(ctx, "/exchanges", params, &list); err != nil {
		return nil, err
	}
	return list, nil
}
