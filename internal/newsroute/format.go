package newsroute

import (
	"strings"

	"cryptochat/internal/model"
)

const (
	isoDate            = "2006-01-02"
	descriptionMissing = "cannot fetch the description"
)

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// FormatArticles renders one block per article, separated by a blank line.
func FormatArticles(articles []model.NewsArticle) string {
	blocks := make([]string, 0, len(articles))
	for _, a := range articles {
		date := ""
		if !a.PublishedAt.IsZero() {
			date = a.PublishedAt.Format(isoDate)
		}

		sentiment := a.Sentiment
		if sentiment == "" {
			sentiment = model.SentimentNeutral
		}

		domain := a.Domain
		if domain == "" {
			domain = "Unknown Source"
		}

		blocks = append(blocks, "📰 "+a.Title+"\n"+
			"📅 Date: "+date+"\n"+
			"📊 Sentiment: "+capitalize(sentiment)+"\n"+
			"🌐 Source: "+domain+"\n"+
			"📝 Description: "+a.Description+"\n"+
			"🔗 Real Article Link: "+a.Link())
	}
	return strings.TrimSpace(strings.Join(blocks, "\n\n"))
}
