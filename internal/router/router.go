// Package router turns one chat message into one reply: it extracts the intent,
// applies conversational memory and dispatches to the matching answerer.
package router

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cryptochat/internal/fetcher"
	"cryptochat/internal/memory"
	"cryptochat/internal/metrics"
	"cryptochat/internal/model"
	"cryptochat/internal/newsroute"
)

const (
	minCount = 1
	maxCount = 100
)

const (
	msgNoPrevious = "No previous data found in memory."
	msgNeedAsset  = "Please specify a cryptocurrency (e.g., Bitcoin, Ethereum)."
	msgFallback   = "I'm not sure how to answer that. Try asking about a cryptocurrency or its market data."
)

type Extractor interface {
	Extract(ctx context.Context, text string) (model.ParsedQuery, error)
}

type NewsRouter interface {
	Route(ctx context.Context, req newsroute.Request) (model.Reply, *model.NewsRecall)
}

type Asker interface {
	Ask(ctx context.Context, query string) string
}

type Router struct {
	extractor Extractor
	fetcher   *fetcher.Fetcher
	news      NewsRouter
	qa        Asker
	now       func() time.Time
}

func New(extractor Extractor, f *fetcher.Fetcher, news NewsRouter, qa Asker) *Router {
	return &Router{
		extractor: extractor,
		fetcher:   f,
		news:      news,
		qa:        qa,
		now:       time.Now,
	}
}

// Request is one user message. URL is an optional article link sent alongside it.
type Request struct {
	Message string
	URL     string
}

// Handle answers one message and updates sess. It always returns a reply;
// a panic while answering becomes an apology carrying the panic value.
func (r *Router) Handle(ctx context.Context, sess *memory.Session, req Request) (reply model.Reply) {
	start := time.Now()
	intent := model.IntentUnknown

	defer func() {
		if p := recover(); p != nil {
			slog.Error("panic while answering", "session", sess.ID, "panic", p)
			reply = model.TextReply(fmt.Sprintf("❌ Something went wrong while answering: %v", p))
		}
		metrics.RecordTurn(string(intent), time.Since(start))
	}()

	q, err := r.extractor.Extract(ctx, req.Message)
	if err != nil {
		slog.Warn("intent extraction failed", "session", sess.ID, "error", err)
	}
	if q.HasCount() {
		q.Count = clamp(q.Count, minCount, maxCount)
	}

	prev, hasPrev := sess.Last()
	followUp := q.Intent == model.IntentPrevious
	if followUp {
		if !hasPrev {
			return model.TextReply(msgNoPrevious)
		}
		q = merge(q, prev.Query)
	}
	intent = q.Intent

	slot := model.MemorySlot{Input: req.Message, Query: q, At: r.now()}
	if followUp {
		slot.News = prev.News
	}
	sess.Save(slot)

	slog.Info("turn resolved", "session", sess.ID, "slot", slot.Summary(), "follow_up", followUp)

	if q.Intent == model.IntentNews {
		var previous *model.MemorySlot
		if hasPrev {
			previous = &prev
		}

		var recall *model.NewsRecall
		reply, recall = r.news.Route(ctx, newsroute.Request{
			Text:     req.Message,
			URL:      req.URL,
			Query:    q,
			Previous: previous,
			FollowUp: followUp,
		})
		if recall != nil {
			slot.News = recall
			sess.Save(slot)
		}
		return reply
	}

	return model.TextReply(r.answer(ctx, q, req.Message))
}

func (r *Router) answer(ctx context.Context, q model.ParsedQuery, message string) string {
	switch {
	case q.Intent.IsQuote():
		if !q.HasAsset() {
			return msgNeedAsset
		}
		return r.fetcher.Quote(ctx, q.Asset, q.Intent)

	case q.Intent == model.IntentListCoins:
		return r.fetcher.ListCoins(ctx, q.Count)

	case q.Intent == model.IntentNFT && q.HasAsset():
		return r.fetcher.NFT(ctx, q.Asset)

	case q.Intent == model.IntentListExchanges:
		return r.fetcher.Exchanges(ctx, q.Count)

	case q.Intent == model.IntentExchange && q.HasAsset():
		return r.fetcher.Exchange(ctx, q.Asset)

	case q.Intent == model.IntentHistory && q.HasAsset() && q.HasDate():
		return r.fetcher.History(ctx, q.Asset, q.Date)

	case q.Intent == model.IntentMarketChart && q.HasAsset():
		return r.fetcher.Trend(ctx, q.Asset, q.Count)

	case q.Intent == model.IntentOHLC && q.HasAsset():
		return r.fetcher.OHLC(ctx, q.Asset, q.Count)

	case q.Intent == model.IntentCategories:
		return r.fetcher.Categories(ctx)

	case q.Intent == model.IntentGeneral:
		return r.qa.Ask(ctx, message)
	}

	return msgFallback
}

// merge takes the remembered intent and fills whatever the new turn left unknown.
func merge(q, prev model.ParsedQuery) model.ParsedQuery {
	q.Intent = prev.Intent
	if !q.HasAsset() {
		q.Asset = prev.Asset
	}
	if !q.HasDate() {
		q.Date = prev.Date
	}
	if !q.HasCount() {
		q.Count, q.Counted = prev.Count, prev.Counted
	}
	return q
}

func clamp(n, lo, hi int) int {
	return max(lo, min(n, hi))
}
