package model

import "time"

const (
	SentimentBullish   = "bullish"
	SentimentBearish   = "bearish"
	SentimentImportant = "important"
	SentimentNeutral   = "neutral"
)

// NewsArticle is built per request from a news API result and never stored.
// Description and ResolvedLink are filled by best-effort enrichment.
type NewsArticle struct {
	Title        string
	URL          string
	PublishedAt  time.Time
	Sentiment    string
	Domain       string
	Description  string
	ResolvedLink string
}

// Link returns the resolved canonical link when one was found.
func (a NewsArticle) Link() string {
	if a.ResolvedLink != "" {
		return a.ResolvedLink
	}
	return a.URL
}

type NewsSubIntent string

const (
	NewsGeneral          NewsSubIntent = "general_news"
	NewsBySentiment      NewsSubIntent = "news_by_sentiment"
	NewsEventRelated     NewsSubIntent = "event_related_news"
	NewsSummarizeArticle NewsSubIntent = "summarize_article"
	NewsBreaking         NewsSubIntent = "breaking_news"
	NewsByDate           NewsSubIntent = "news_by_date"
	NewsByAsset          NewsSubIntent = "news_by_asset"
	NewsPrevious         NewsSubIntent = "previous"
	NewsUnknown          NewsSubIntent = Unknown
)

func ParseNewsSubIntent(s string) NewsSubIntent {
	switch NewsSubIntent(s) {
	case NewsGeneral, NewsBySentiment, NewsEventRelated, NewsSummarizeArticle,
		NewsBreaking, NewsByDate, NewsByAsset, NewsPrevious:
		return NewsSubIntent(s)
	}
	return NewsUnknown
}
