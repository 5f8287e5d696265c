package memory

import (
	"context"
	"sync"
)

// InMemoryStore keeps sessions for the lifetime of the process.
type InMemoryStore struct {
	mu       sync.Mutex
	sessions map[string]Snapshot
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{sessions: make(map[string]Snapshot)}
}

func (m *InMemoryStore) Load(_ context.Context, id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap, ok := m.sessions[id]
	if !ok {
		return NewSession(id), nil
	}
	return Restore(snap), nil
}

func (m *InMemoryStore) Save(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[s.ID] = s.Snapshot()
	return nil
}

func (m *InMemoryStore) Ping(context.Context) error {
	return nil
}
