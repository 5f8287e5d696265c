// Package market is a small client for the CoinGecko v3 REST API.
package market

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://api.coingecko.com/api/v3"
	defaultTimeout = 30 * time.Second
	userAgent      = "Mozilla/5.0"
)

// ErrNotFound is returned when a lookup succeeds but the asset is absent from the payload.
var ErrNotFound = errors.New("market: asset not found")

// StatusError reports a non-2xx answer from the API.
type StatusError struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Service, e.StatusCode)
}

func (e *StatusError) HTTPStatus() int {
	return e.StatusCode
}

type CoinGeckoClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewCoinGeckoClient builds a client. rps <= 0 disables client-side rate limiting.
func NewCoinGeckoClient(baseURL, apiKey string, rps float64) *CoinGeckoClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}

	return &CoinGeckoClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
		limiter:    rate.NewLimiter(limit, 1),
	}
}

func (c *CoinGeckoClient) get(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("coingecko rate limit: %w", err)
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return fmt.Errorf("coingecko request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-cg-demo-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("coingecko fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Service: "coingecko", StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("coingecko decode: %w", err)
	}

	return nil
}
