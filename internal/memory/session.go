// Package memory keeps the last turn of a conversation so follow-ups such as
// "what about ETH?" can reuse what was asked before.
//
// A Session belongs to exactly one conversation and is not safe for concurrent
// use; stores hand out copies.
package memory

import (
	"context"

	"cryptochat/internal/model"
)

type Session struct {
	ID   string
	slot *model.MemorySlot
}

func NewSession(id string) *Session {
	return &Session{ID: id}
}

// Save overwrites the remembered turn.
func (s *Session) Save(slot model.MemorySlot) {
	s.slot = &slot
}

// Last returns a copy of the remembered turn.
func (s *Session) Last() (model.MemorySlot, bool) {
	if s.slot == nil {
		return model.MemorySlot{}, false
	}
	return *s.slot, true
}

// Snapshot is the serialisable form of a session.
type Snapshot struct {
	ID   string            `json:"id"`
	Slot *model.MemorySlot `json:"slot,omitempty"`
}

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{ID: s.ID}
	if s.slot != nil {
		slot := *s.slot
		snap.Slot = &slot
	}
	return snap
}

func Restore(snap Snapshot) *Session {
	s := NewSession(snap.ID)
	if snap.Slot != nil {
		s.Save(*snap.Slot)
	}
	return s
}

// Store loads and saves sessions by id. Load returns a fresh empty session
// for ids it has never seen.
type Store interface {
	Load(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Ping(ctx context.Context) error
}
