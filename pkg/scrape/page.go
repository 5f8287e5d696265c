package scrape

import (
	"context"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PageDescriber reads a description from static HTML. It tries the aggregator's
// description block, then og:description, then the meta description.
type PageDescriber struct {
	client *http.Client
}

func NewPageDescriber() *PageDescriber {
	return &PageDescriber{client: &http.Client{Timeout: defaultTimeout}}
}

func (d *PageDescriber) Describe(ctx context.Context, pageURL string) (string, error) {
	doc, err := fetchDocument(ctx, d.client, pageURL)
	if err != nil {
		return "", err
	}

	if text := describe(doc); text != "" {
		return text, nil
	}
	return "", ErrNoDescription
}

func describe(doc *goquery.Document) string {
	if text := strings.TrimSpace(doc.Find(DescriptionSelector).First().Text()); text != "" {
		return collapseSpace(text)
	}

	for _, sel := range []string{`meta[property="og:description"]`, `meta[name="description"]`} {
		if content, ok := doc.Find(sel).First().Attr("content"); ok {
			if content = strings.TrimSpace(content); content != "" {
				return content
			}
		}
	}
	return ""
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
