package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// Schema creates the transcript table used by repository.TurnRepository.
const Schema = `
CREATE TABLE IF NOT EXISTS chat_turn (
	id          BIGSERIAL PRIMARY KEY,
	session_id  TEXT        NOT NULL,
	input       TEXT        NOT NULL,
	intent      TEXT        NOT NULL,
	asset       TEXT        NOT NULL DEFAULT '',
	reply       TEXT        NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS chat_turn_session_idx ON chat_turn (session_id, created_at DESC);
`

// Connect opens a pooled postgres handle and checks it with a ping.
func Connect(connStr string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

func Migrate(db *sql.DB) error {
	_, err := db.Exec(Schema)
	return err
}
