package model

import "time"

// Turn is one persisted exchange of the chat transcript.
type Turn struct {
	ID        int64
	SessionID string
	Input     string
	Intent    string
	Asset     string
	Reply     string
	CreatedAt time.Time
}
