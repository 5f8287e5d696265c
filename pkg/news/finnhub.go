package news

import (
	"context"
	"fmt"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"

	"cryptochat/internal/model"
)

// FinnHubClient reads the crypto market-news feed. FinnHub has no
// per-currency or keyword search, so queries are applied locally.
type FinnHubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnHubClient(apiKey string) *FinnHubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	return newFinnHubClient(cfg)
}

func newFinnHubClient(cfg *finnhub.Configuration) *FinnHubClient {
	return &FinnHubClient{client: finnhub.NewAPIClient(cfg).DefaultApi}
}

func (c *FinnHubClient) Posts(ctx context.Context, q Query) ([]model.NewsArticle, error) {
	res, resp, err := c.client.MarketNews(ctx).Category("crypto").Execute()
	if err != nil {
		if resp != nil && resp.StatusCode >= 300 {
			return nil, &StatusError{Service: c.Name(), StatusCode: resp.StatusCode}
		}
		return nil, fmt.Errorf("finnhub fetch: %w", err)
	}

	articles := make([]model.NewsArticle, 0, len(res))
	for _, news := range res {
		a := model.NewsArticle{Sentiment: model.SentimentNeutral}

		if news.Headline != nil {
			a.Title = *news.Headline
		}

		if news.Summary != nil {
			a.Description = *news.Summary
		}

		if news.Url != nil {
			a.URL = *news.Url
			a.Domain = domainOf(a.URL)
		}

		if news.Datetime != nil {
			a.PublishedAt = time.Unix(*news.Datetime, 0).UTC()
		}

		if a.Domain == "" && news.Source != nil {
			a.Domain = *news.Source
		}

		articles = append(articles, a)
	}

	return filterLocal(articles, q), nil
}

func (c *FinnHubClient) Name() string {
	return "FinnHub"
}
