package scrape

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"
)

type ParsedArticle struct {
	Title   string
	Text    string
	Excerpt string
}

// ArticleParser downloads a page and extracts its main content.
type ArticleParser struct {
	client *http.Client
}

func NewArticleParser() *ArticleParser {
	return &ArticleParser{client: &http.Client{Timeout: 2 * defaultTimeout}}
}

func (p *ArticleParser) Parse(ctx context.Context, pageURL string) (*ParsedArticle, error) {
	parsedURL, err := url.Parse(pageURL)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("invalid article url %q", pageURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch article: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch article: unexpected status code %d", resp.StatusCode)
	}

	article, err := readability.FromReader(resp.Body, parsedURL)
	if err != nil {
		return nil, fmt.Errorf("extract article: %w", err)
	}

	out := &ParsedArticle{
		Title:   strings.TrimSpace(article.Title),
		Text:    collapseSpace(article.TextContent),
		Excerpt: strings.TrimSpace(article.Excerpt),
	}
	if out.Text == "" {
		return nil, fmt.Errorf("extract article: no readable content at %s", pageURL)
	}
	return out, nil
}
