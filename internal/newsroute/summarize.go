package newsroute

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strings"

	"cryptochat/internal/model"
)

const maxArticleChars = 12000

const summaryPrompt = `Summarize the following news article in three to five plain sentences.
Keep names, figures and dates. Do not add anything that is not in the article.

Title: %s

%s
`

var linkPattern = regexp.MustCompile(`https?://[^\s<>"']+`)

// LinkIn returns the first http(s) link in text.
func LinkIn(text string) string {
	return strings.TrimRight(linkPattern.FindString(text), ".,;:!?)")
}

func (r *Router) summarize(ctx context.Context, req Request) model.Reply {
	link := strings.TrimSpace(req.URL)
	if link == "" {
		link = LinkIn(req.Text)
	}
	if link == "" {
		return model.TextReply(msgNeedLink)
	}
	if r.parser == nil {
		return model.TextReply("An error occurred: article parsing is not configured")
	}

	article, err := r.parser.Parse(ctx, link)
	if err != nil {
		slog.Warn("article parse failed", "url", link, "error", err)
		return model.TextReply("An error occurred: " + err.Error())
	}

	body := article.Text
	if runes := []rune(body); len(runes) > maxArticleChars {
		body = string(runes[:maxArticleChars])
	}

	summary, err := r.llm.Complete(ctx, fmt.Sprintf(summaryPrompt, article.Title, body))
	summary = strings.TrimSpace(summary)
	if err != nil || summary == "" {
		if err != nil {
			slog.Warn("article summary failed, using excerpt", "url", link, "error", err)
		}
		summary = article.Excerpt
	}

	source := ""
	if u, err := url.Parse(link); err == nil {
		source = strings.TrimPrefix(u.Hostname(), "www.")
	}

	return model.NewsReply(model.NewsItem{
		Title:       article.Title,
		Source:      source,
		Description: summary,
		Link:        link,
	})
}
