package news

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"cryptochat/internal/model"
)

const defaultPageSize = 20

// Filters understood by Query.Filter.
const (
	FilterBullish   = "bullish"
	FilterBearish   = "bearish"
	FilterImportant = "important"
	FilterHot       = "hot"
)

// Query narrows a news request. Empty fields are not sent.
type Query struct {
	Currencies string
	Filter     string
	Kind       string
	Search     string
	PageSize   int
}

type NewsClient interface {
	Posts(ctx context.Context, q Query) ([]model.NewsArticle, error)
	Name() string
}

// StatusError reports a non-2xx answer from a news API.
type StatusError struct {
	Service    string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Service, e.StatusCode)
}

func (e *StatusError) HTTPStatus() int {
	return e.StatusCode
}

// domainOf returns the host of raw without a leading "www.".
func domainOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

// filterLocal applies a Query to providers that cannot filter server side.
// Title and description are both searched.
func filterLocal(articles []model.NewsArticle, q Query) []model.NewsArticle {
	var out []model.NewsArticle
	for _, a := range articles {
		text := strings.ToLower(a.Title + " " + a.Description)

		if q.Currencies != "" && !containsAny(text, strings.Split(strings.ToLower(q.Currencies), ",")) {
			continue
		}
		if q.Search != "" && !strings.Contains(text, strings.ToLower(q.Search)) {
			continue
		}
		switch q.Filter {
		case FilterBullish, FilterBearish, FilterImportant:
			if a.Sentiment != q.Filter {
				continue
			}
		}

		out = append(out, a)
	}

	size := q.PageSize
	if size <= 0 {
		size = defaultPageSize
	}
	if len(out) > size {
		out = out[:size]
	}
	return out
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		n = strings.TrimSpace(n)
		if n != "" && strings.Contains(text, n) {
			return true
		}
	}
	return false
}

// NewClient picks a provider by name. An empty name selects CryptoPanic.
func NewClient(provider, apiKey string) (NewsClient, error) {
	switch strings.ToLower(provider) {
	case "", "cryptopanic":
		return NewCryptoPanicClient(apiKey), nil
	case "finnhub":
		return NewFinnHubClient(apiKey), nil
	case "alphavantage":
		return NewAlphaVantageClient(apiKey), nil
	}
	return nil, fmt.Errorf("unknown news provider %q", provider)
}
