package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"cryptochat/internal/model"
)

const CryptoPanicBaseURL = "https://cryptopanic.com/api/v1/posts/"

type CryptoPanicClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewCryptoPanicClient(apiKey string) *CryptoPanicClient {
	return &CryptoPanicClient{
		baseURL:    CryptoPanicBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *CryptoPanicClient) Name() string {
	return "CryptoPanic"
}

func (c *CryptoPanicClient) Posts(ctx context.Context, q Query) ([]model.NewsArticle, error) {
	params := url.Values{}
	params.Set("auth_token", c.apiKey)
	params.Set("public", "true")
	if q.Currencies != "" {
		params.Set("currencies", q.Currencies)
	}
	if q.Filter != "" {
		params.Set("filter", q.Filter)
	}
	if q.Kind != "" {
		params.Set("kind", q.Kind)
	}
	if q.Search != "" {
		params.Set("q", q.Search)
	}
	if q.PageSize > 0 {
		params.Set("page_size", strconv.Itoa(q.PageSize))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("cryptopanic request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cryptopanic fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Service: c.Name(), StatusCode: resp.StatusCode}
	}

	var raw cpResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("cryptopanic decode: %w", err)
	}

	articles := make([]model.NewsArticle, 0, len(raw.Results))
	for _, item := range raw.Results {
		publishedAt, err := time.Parse(time.RFC3339, item.PublishedAt)
		if err != nil {
			publishedAt = time.Time{}
		}

		domain := item.Domain
		if domain == "" {
			domain = item.Source.Domain
		}

		articles = append(articles, model.NewsArticle{
			Title:       item.Title,
			URL:         item.URL,
			PublishedAt: publishedAt,
			Sentiment:   item.sentiment(),
			Domain:      domain,
		})
	}

	return articles, nil
}

type cpResponse struct {
	Results []cpPost `json:"results"`
}

type cpPost struct {
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	PublishedAt string   `json:"published_at"`
	Domain      string   `json:"domain"`
	Sentiment   string   `json:"sentiment"`
	Source      cpSource `json:"source"`
	Votes       cpVotes  `json:"votes"`
}

type cpSource struct {
	Title  string `json:"title"`
	Domain string `json:"domain"`
}

type cpVotes struct {
	Positive  int `json:"positive"`
	Negative  int `json:"negative"`
	Important int `json:"important"`
}

// sentiment prefers an explicit label and otherwise reads the community votes.
func (p cpPost) sentiment() string {
	if s := strings.ToLower(strings.TrimSpace(p.Sentiment)); s != "" {
		return s
	}

	v := p.Votes
	switch {
	case v.Important > v.Positive && v.Important > v.Negative:
		return model.SentimentImportant
	case v.Positive > v.Negative:
		return model.SentimentBullish
	case v.Negative > v.Positive:
		return model.SentimentBearish
	}
	return model.SentimentNeutral
}
