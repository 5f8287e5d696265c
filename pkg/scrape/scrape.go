// Package scrape enriches news results with text taken from the web: article
// descriptions, canonical links found through search, and readable article bodies.
package scrape

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	userAgent      = "Mozilla/5.0 (compatible; cryptochat/1.0)"
	defaultTimeout = 10 * time.Second
)

// DescriptionSelector is the element news aggregator pages keep the summary in.
const DescriptionSelector = ".description-body"

var (
	ErrNoDescription = errors.New("scrape: no description on page")
	ErrNoResult      = errors.New("scrape: no search result")
)

type Describer interface {
	Describe(ctx context.Context, pageURL string) (string, error)
}

type LinkResolver interface {
	Resolve(ctx context.Context, title, domain string) (string, error)
}

func fetchDocument(ctx context.Context, client *http.Client, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status code %d", pageURL, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return doc, nil
}
