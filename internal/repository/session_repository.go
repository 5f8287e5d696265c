package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"cryptochat/internal/memory"
)

const sessionKeyPrefix = "cryptochat:session:"

// SessionRepository keeps conversation memory in redis as JSON snapshots.
// Every save refreshes the TTL, so idle conversations expire on their own.
type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionRepository(client *redis.Client, ttl time.Duration) *SessionRepository {
	return &SessionRepository{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func (r *SessionRepository) Load(ctx context.Context, id string) (*memory.Session, error) {
	data, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return memory.NewSession(id), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var snap memory.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	snap.ID = id

	return memory.Restore(snap), nil
}

func (r *SessionRepository) Save(ctx context.Context, s *memory.Session) error {
	data, err := json.Marshal(s.Snapshot())
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := r.client.Set(ctx, sessionKey(s.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
