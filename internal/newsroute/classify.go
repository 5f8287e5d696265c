package newsroute

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"cryptochat/internal/model"
)

const noKeyword = "none"

const classifyPrompt = `You are an AI assistant. A user is asking for cryptocurrency news.

Your job is to:
1. Classify the sub-intent of their request from the following options:
    - general_news
    - news_by_sentiment
    - event_related_news
    - summarize_article
    - breaking_news
    - news_by_date
    - news_by_asset
    - previous (the user refers to the news they asked for last time, e.g. "more of that")
    - unknown

2. If the sub-intent is event_related_news, also extract the most relevant keyword (one or two words only)
that describes the event. Example: crash, hack, ETF, lawsuit, rug pull, scam, ban.

If the sub-intent is not event-related, return none for the keyword.

Respond in this format ONLY: <intent>,<keyword>

User Query: %q
`

// Classify asks the model which kind of news the user wants. Failures and
// unrecognised replies come back as unknown with no keyword.
func (r *Router) Classify(ctx context.Context, text string) (model.NewsSubIntent, string) {
	resp, err := r.llm.Complete(ctx, fmt.Sprintf(classifyPrompt, text))
	if err != nil {
		slog.Error("news classification failed", "error", err)
		return model.NewsUnknown, noKeyword
	}
	return ParseClassification(resp)
}

// ParseClassification reads an "<intent>,<keyword>" reply, splitting on the first comma.
func ParseClassification(reply string) (model.NewsSubIntent, string) {
	reply = strings.ToLower(strings.TrimSpace(reply))
	reply = strings.Trim(reply, "`\"'")

	if line, _, ok := strings.Cut(reply, "\n"); ok {
		reply = line
	}

	label, keyword, _ := strings.Cut(reply, ",")

	sub := model.ParseNewsSubIntent(strings.Trim(strings.TrimSpace(label), "\"'<>"))

	keyword = strings.Trim(strings.TrimSpace(keyword), "\"'<>.")
	if keyword == "" || keyword == model.Unknown {
		keyword = noKeyword
	}

	return sub, keyword
}
