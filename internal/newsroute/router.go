// Package newsroute answers news requests: it picks a news sub-intent, queries
// the news API, filters and enriches the results, and formats them for chat.
package newsroute

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"cryptochat/internal/dates"
	"cryptochat/internal/metrics"
	"cryptochat/internal/model"
	"cryptochat/pkg/llm"
	"cryptochat/pkg/news"
	"cryptochat/pkg/scrape"
)

const DefaultCount = 5

const (
	msgNoPrevious       = "⚠️ No previous data found in memory."
	msgNoSentiment      = "❓ Could not determine sentiment filter."
	msgNoKeyword        = "❓ No specific event keyword found."
	msgNeedAsset        = "⚠️ Please specify a crypto asset."
	msgNeedDate         = "📅 Please specify the date for historical news."
	msgNeedLink         = "🔗 Please include the link of the article you want summarized."
	msgUnknownSubIntent = "❓ I couldn't understand the specific type of news you're looking for."
	msgNoNews           = "🔍 No relevant news found."
)

type ArticleParser interface {
	Parse(ctx context.Context, url string) (*scrape.ParsedArticle, error)
}

// Router needs llm and news; describer, resolver and parser may be nil, in which
// case that enrichment step is skipped.
type Router struct {
	llm       llm.Completer
	news      news.NewsClient
	describer scrape.Describer
	resolver  scrape.LinkResolver
	parser    ArticleParser
	now       func() time.Time
}

func New(completer llm.Completer, client news.NewsClient, describer scrape.Describer, resolver scrape.LinkResolver, parser ArticleParser) *Router {
	return &Router{
		llm:       completer,
		news:      client,
		describer: describer,
		resolver:  resolver,
		parser:    parser,
		now:       time.Now,
	}
}

// Request is one news turn. Query carries the asset, date and count already
// extracted for the turn. FollowUp marks turns the top-level router resolved
// from memory; Previous is the slot remembered before this turn.
type Request struct {
	Text     string
	URL      string
	Query    model.ParsedQuery
	Previous *model.MemorySlot
	FollowUp bool
}

// Route answers req. The returned recall is what should be remembered for a
// later follow-up; it is nil when nothing worth remembering was resolved.
func (r *Router) Route(ctx context.Context, req Request) (model.Reply, *model.NewsRecall) {
	sub, keyword := r.Classify(ctx, req.Text)
	q := req.Query

	if sub == model.NewsPrevious || (sub == model.NewsUnknown && req.FollowUp) {
		if req.Previous == nil || req.Previous.News == nil {
			return model.TextReply(msgNoPrevious), nil
		}
		prev := req.Previous
		sub = prev.News.SubIntent
		if !q.HasAsset() {
			q.Asset = prev.Query.Asset
		}
		if !q.HasDate() {
			q.Date = prev.Query.Date
		}
		if !q.HasCount() {
			q.Count, q.Counted = prev.Query.Count, prev.Query.Counted
		}
		if keyword == noKeyword {
			keyword = prev.News.Keyword
		}
	}

	recall := &model.NewsRecall{SubIntent: sub, Keyword: keyword}

	if sub == model.NewsSummarizeArticle {
		return r.summarize(ctx, req), recall
	}

	nq, sentiment, day, reply := r.buildQuery(sub, keyword, req.Text, q)
	if reply != "" {
		return model.TextReply(reply), recall
	}

	articles, err := r.news.Posts(ctx, nq)
	if err != nil {
		metrics.RecordUpstreamError(strings.ToLower(r.news.Name()), err)
		slog.Error("news api call failed", "provider", r.news.Name(), "sub_intent", sub, "error", err)

		var statusErr *news.StatusError
		if errors.As(err, &statusErr) {
			return model.TextReply(fmt.Sprintf("🚨 API error: %d", statusErr.StatusCode)), recall
		}
		return model.TextReply("An error occurred: " + err.Error()), recall
	}

	articles = FilterSentiment(articles, sentiment)
	if !day.IsZero() {
		articles = FilterDay(articles, day)
	}
	if len(articles) == 0 {
		return model.TextReply(msgNoNews), recall
	}

	if n := q.CountOr(DefaultCount); len(articles) > n {
		articles = articles[:n]
	}

	r.enrich(ctx, articles)
	return model.TextReply(FormatArticles(articles)), recall
}

// buildQuery maps a sub-intent onto API parameters. A non-empty reply means the
// request cannot be made and the reply should be shown instead.
func (r *Router) buildQuery(sub model.NewsSubIntent, keyword, text string, q model.ParsedQuery) (nq news.Query, sentiment string, day time.Time, reply string) {
	sentiment = model.SentimentNeutral
	if q.HasCount() {
		nq.PageSize = q.Count
	}

	withAsset := func() {
		if q.HasAsset() {
			nq.Currencies = q.Asset
		}
	}

	switch sub {
	case model.NewsGeneral:
		withAsset()
		nq.Kind = "news"

	case model.NewsBySentiment:
		sentiment = SentimentIn(text)
		if sentiment == "" {
			return nq, "", day, msgNoSentiment
		}
		nq.Filter = sentiment
		withAsset()

	case model.NewsEventRelated:
		if keyword == noKeyword {
			return nq, "", day, msgNoKeyword
		}
		nq.Search = keyword
		withAsset()

	case model.NewsByAsset:
		if !q.HasAsset() {
			return nq, "", day, msgNeedAsset
		}
		withAsset()

	case model.NewsByDate:
		if !q.HasDate() {
			return nq, "", day, msgNeedDate
		}
		d, err := dates.Resolve(q.Date, r.now())
		if err != nil {
			return nq, "", day, "⚠️ " + err.Error()
		}
		day = d
		withAsset()

	case model.NewsBreaking:
		nq.Filter = news.FilterHot
		withAsset()

	default:
		return nq, "", day, msgUnknownSubIntent
	}

	return nq, sentiment, day, ""
}

// SentimentIn finds the first sentiment word in text, checking bullish, then
// bearish, then important. Positive and negative count as bullish and bearish.
func SentimentIn(text string) string {
	text = strings.ToLower(text)
	switch {
	case strings.Contains(text, "bullish"), strings.Contains(text, "positive"):
		return model.SentimentBullish
	case strings.Contains(text, "bearish"), strings.Contains(text, "negative"):
		return model.SentimentBearish
	case strings.Contains(text, "important"):
		return model.SentimentImportant
	}
	return ""
}

func normalizeSentiment(s string) string {
	switch s = strings.ToLower(strings.TrimSpace(s)); s {
	case "positive":
		return model.SentimentBullish
	case "negative":
		return model.SentimentBearish
	case "":
		return model.SentimentNeutral
	}
	return s
}

// FilterSentiment keeps articles tagged with sentiment, preserving order.
func FilterSentiment(articles []model.NewsArticle, sentiment string) []model.NewsArticle {
	want := normalizeSentiment(sentiment)

	var out []model.NewsArticle
	for _, a := range articles {
		if normalizeSentiment(a.Sentiment) == want {
			out = append(out, a)
		}
	}
	return out
}

// FilterDay keeps articles published on the same calendar day as day.
func FilterDay(articles []model.NewsArticle, day time.Time) []model.NewsArticle {
	var out []model.NewsArticle
	for _, a := range articles {
		if !a.PublishedAt.IsZero() && dates.SameDay(a.PublishedAt.In(day.Location()), day) {
			out = append(out, a)
		}
	}
	return out
}

// enrich fills descriptions and canonical links one article at a time.
// Every failure is tolerated.
func (r *Router) enrich(ctx context.Context, articles []model.NewsArticle) {
	for i := range articles {
		a := &articles[i]

		if r.describer != nil {
			desc, err := r.describer.Describe(ctx, a.URL)
			if err != nil {
				slog.Debug("description lookup failed", "url", a.URL, "error", err)
			} else {
				a.Description = desc
			}
		}
		if a.Description == "" {
			a.Description = descriptionMissing
		}

		if r.resolver != nil {
			link, err := r.resolver.Resolve(ctx, a.Title, a.Domain)
			if err != nil {
				slog.Debug("link resolution failed", "title", a.Title, "error", err)
				continue
			}
			a.ResolvedLink = link
		}
	}
}
