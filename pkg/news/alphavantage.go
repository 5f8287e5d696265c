package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cryptochat/internal/model"
)

const alphaVantageBaseURL = "https://www.alphavantage.co/query"

// AlphaVantageClient reads the NEWS_SENTIMENT feed for the blockchain topic.
// The overall sentiment label maps onto bullish, bearish or neutral.
type AlphaVantageClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewAlphaVantageClient(apiKey string) *AlphaVantageClient {
	return &AlphaVantageClient{
		baseURL:    alphaVantageBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *AlphaVantageClient) Name() string {
	return "AlphaVantage"
}

func (c *AlphaVantageClient) Posts(ctx context.Context, q Query) ([]model.NewsArticle, error) {
	params := url.Values{}
	params.Set("function", "NEWS_SENTIMENT")
	params.Set("topics", "blockchain")
	params.Set("sort", "LATEST")
	params.Set("limit", "200")
	params.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("alphavantage request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("alphavantage fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Service: c.Name(), StatusCode: resp.StatusCode}
	}

	var raw avResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("alphavantage decode: %w", err)
	}

	articles := make([]model.NewsArticle, 0, len(raw.Feed))
	for _, item := range raw.Feed {
		publishedAt, err := time.Parse("20060102T150405", item.TimePublished)
		if err != nil {
			publishedAt = time.Time{}
		}

		domain := item.SourceDomain
		if domain == "" {
			domain = domainOf(item.URL)
		}

		articles = append(articles, model.NewsArticle{
			Title:       item.Title,
			URL:         item.URL,
			PublishedAt: publishedAt,
			Sentiment:   sentimentFromLabel(item.OverallSentimentLabel),
			Domain:      domain,
			Description: item.Summary,
		})
	}

	return filterLocal(articles, q), nil
}

// sentimentFromLabel folds "Somewhat-Bullish" and friends into the chat's labels.
func sentimentFromLabel(label string) string {
	label = strings.ToLower(label)
	switch {
	case strings.Contains(label, "bullish"):
		return model.SentimentBullish
	case strings.Contains(label, "bearish"):
		return model.SentimentBearish
	}
	return model.SentimentNeutral
}

type avResponse struct {
	Feed []avFeedItem `json:"feed"`
}

type avFeedItem struct {
	Title                 string `json:"title"`
	Summary               string `json:"summary"`
	URL                   string `json:"url"`
	SourceDomain          string `json:"source_domain"`
	TimePublished         string `json:"time_published"`
	OverallSentimentLabel string `json:"overall_sentiment_label"`
}
