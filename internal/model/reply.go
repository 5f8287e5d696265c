package model

// NewsItem is a single structured news result for the presentation layer.
type NewsItem struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Sentiment   string `json:"sentiment"`
	Source      string `json:"source"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// Reply holds exactly one of News or Text.
type Reply struct {
	News *NewsItem
	Text string
}

func TextReply(text string) Reply { return Reply{Text: text} }

func NewsReply(item NewsItem) Reply { return Reply{News: &item} }

func (r Reply) IsNews() bool { return r.News != nil }

// PlainText flattens either variant into console-friendly text.
func (r Reply) PlainText() string {
	if r.News == nil {
		return r.Text
	}
	n := r.News
	out := "📰 " + n.Title + "\n"
	if n.Date != "" {
		out += "📅 Date: " + n.Date + "\n"
	}
	if n.Sentiment != "" {
		out += "📊 Sentiment: " + n.Sentiment + "\n"
	}
	if n.Source != "" {
		out += "🌐 Source: " + n.Source + "\n"
	}
	out += "📝 " + n.Description + "\n"
	out += "🔗 " + n.Link
	return out
}
