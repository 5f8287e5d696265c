package memory

import (
	"context"
	"testing"

	"cryptochat/internal/model"

	"github.com/go-playground/assert/v2"
)

func TestSessionEmpty(t *testing.T) {
	s := NewSession("a")

	_, ok := s.Last()
	assert.Equal(t, false, ok)
}

func TestSessionKeepsOnlyLastTurn(t *testing.T) {
	s := NewSession("a")
	s.Save(model.MemorySlot{Input: "price of btc", Query: model.ParsedQuery{Intent: model.IntentPrice, Asset: "bitcoin"}})
	s.Save(model.MemorySlot{Input: "eth news", Query: model.ParsedQuery{Intent: model.IntentNews, Asset: "ethereum"}})

	last, ok := s.Last()
	assert.Equal(t, true, ok)
	assert.Equal(t, "eth news", last.Input)
	assert.Equal(t, "ethereum", last.Query.Asset)
}

func TestSessionLastIsACopy(t *testing.T) {
	s := NewSession("a")
	s.Save(model.MemorySlot{Input: "x", News: &model.NewsRecall{SubIntent: model.NewsBreaking, Keyword: "none"}})

	last, _ := s.Last()
	last.Input = "changed"

	again, _ := s.Last()
	assert.Equal(t, "x", again.Input)
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := NewSession("abc")
	s.Save(model.MemorySlot{Input: "hack news", News: &model.NewsRecall{SubIntent: model.NewsEventRelated, Keyword: "hack, exploit"}})

	restored := Restore(s.Snapshot())

	last, ok := restored.Last()
	assert.Equal(t, true, ok)
	assert.Equal(t, "abc", restored.ID)
	assert.Equal(t, "hack, exploit", last.News.Keyword)
}

func TestInMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	fresh, err := store.Load(ctx, "s1")
	assert.Equal(t, nil, err)
	_, ok := fresh.Last()
	assert.Equal(t, false, ok)

	fresh.Save(model.MemorySlot{Input: "price of sol"})
	assert.Equal(t, nil, store.Save(ctx, fresh))

	loaded, err := store.Load(ctx, "s1")
	assert.Equal(t, nil, err)
	last, ok := loaded.Last()
	assert.Equal(t, true, ok)
	assert.Equal(t, "price of sol", last.Input)

	other, _ := store.Load(ctx, "s2")
	_, ok = other.Last()
	assert.Equal(t, false, ok)
}
