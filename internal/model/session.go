package model

import (
	"fmt"
	"strconv"
	"time"
)

// NewsRecall is the news-specific part of a turn kept for follow-ups.
type NewsRecall struct {
	SubIntent NewsSubIntent `json:"sub_intent"`
	Keyword   string        `json:"keyword"`
}

// MemorySlot is the single remembered turn of a conversation.
type MemorySlot struct {
	Input string      `json:"input"`
	Query ParsedQuery `json:"query"`
	News  *NewsRecall `json:"news,omitempty"`
	At    time.Time   `json:"at"`
}

// Summary is the comma-joined form used in logs. It is never parsed back.
func (s MemorySlot) Summary() string {
	count := Unknown
	if s.Query.HasCount() {
		count = strconv.Itoa(s.Query.Count)
	}
	out := fmt.Sprintf("%s,%s,%s,%s", s.Query.Intent, s.Query.Asset, s.Query.Date, count)
	if s.News != nil {
		out += fmt.Sprintf(",%s,%s", s.News.SubIntent, s.News.Keyword)
	}
	return out
}
