package scrape

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const DefaultSearchURL = "https://html.duckduckgo.com/html/"

// SearchResolver finds the publisher's own link for a headline by searching
// "<title> site:<domain>" and taking the first organic result.
type SearchResolver struct {
	endpoint string
	client   *http.Client
}

func NewSearchResolver(endpoint string) *SearchResolver {
	if endpoint == "" {
		endpoint = DefaultSearchURL
	}
	return &SearchResolver{
		endpoint: endpoint,
		client:   &http.Client{Timeout: defaultTimeout},
	}
}

func (r *SearchResolver) Resolve(ctx context.Context, title, domain string) (string, error) {
	q := strings.TrimSpace(title)
	if domain != "" {
		q += " site:" + domain
	}

	doc, err := fetchDocument(ctx, r.client, r.endpoint+"?"+url.Values{"q": {q}}.Encode())
	if err != nil {
		return "", fmt.Errorf("search: %w", err)
	}

	href, ok := doc.Find("a.result__a").First().Attr("href")
	if !ok || href == "" {
		return "", ErrNoResult
	}
	return unwrapRedirect(href), nil
}

// unwrapRedirect returns the target of a search engine redirect link such as
// //duckduckgo.com/l/?uddg=<escaped url>, or href unchanged.
func unwrapRedirect(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	if strings.HasPrefix(href, "//") {
		return "https:" + href
	}
	return href
}
