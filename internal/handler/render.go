package handler

import (
	"fmt"
	"html"
	"strings"

	"cryptochat/internal/model"
	"cryptochat/pkg/qa"
)

// RenderReply turns a reply into the HTML fragment the chat page appends.
// All reply text is escaped; only <strong> emphasis survives.
func RenderReply(r model.Reply) string {
	if r.IsNews() {
		return renderNews(*r.News)
	}
	return renderText(r.Text)
}

func renderNews(n model.NewsItem) string {
	link := n.Link
	if link == "" {
		link = "#"
	}
	link = html.EscapeString(link)

	return fmt.Sprintf(`<div class='response-box'>
<p>📰 <strong>%s</strong></p>
<p>📅 <strong>Date:</strong> %s</p>
<p>😐 <strong>Sentiment:</strong> %s</p>
<p>🌐 <strong>Source:</strong> %s</p>
<p>📝 %s</p>
<p>🔗 <a href='%s' target='_blank'>%s</a></p>
</div>`,
		html.EscapeString(n.Title),
		html.EscapeString(n.Date),
		html.EscapeString(n.Sentiment),
		html.EscapeString(n.Source),
		html.EscapeString(n.Description),
		link, link)
}

var strongRestorer = strings.NewReplacer("&lt;strong&gt;", "<strong>", "&lt;/strong&gt;", "</strong>")

func renderText(text string) string {
	safe := strongRestorer.Replace(html.EscapeString(text))
	safe = qa.FormatBold(safe)
	safe = strings.ReplaceAll(safe, "\n", "<br>")

	return "<div class='response-box'>\n<p style='margin:0; line-height:1.5;'>" + safe + "</p>\n</div>"
}

func renderError(msg string) string {
	return "<div class='response-box' style='border-left:4px solid red;'>\n<p>❌ Error: " + html.EscapeString(msg) + "</p>\n</div>"
}
