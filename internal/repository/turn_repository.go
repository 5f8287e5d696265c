package repository

import (
	"context"
	"database/sql"

	"cryptochat/internal/model"
)

type TurnRepository struct {
	db *sql.DB
}

func NewTurnRepository(db *sql.DB) *TurnRepository {
	return &TurnRepository{db: db}
}

func (r *TurnRepository) SaveTurn(ctx context.Context, turn *model.Turn) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO chat_turn(session_id, input, intent, asset, reply)
		VALUES($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, turn.SessionID, turn.Input, turn.Intent, turn.Asset, turn.Reply).Scan(&turn.ID, &turn.CreatedAt)
}

func (r *TurnRepository) GetTurns(ctx context.Context, sessionID string, limit, offset int) ([]model.Turn, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, session_id, input, intent, asset, reply, created_at
		FROM chat_turn
		WHERE session_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`, sessionID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var turns []model.Turn
	for rows.Next() {
		var t model.Turn
		err := rows.Scan(&t.ID, &t.SessionID, &t.Input, &t.Intent, &t.Asset, &t.Reply, &t.CreatedAt)
		if err != nil {
			return nil, err
		}
		turns = append(turns, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return turns, nil
}

func (r *TurnRepository) GetTurnTotal(ctx context.Context, sessionID string) (int, error) {
	var total int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM chat_turn WHERE session_id = $1`, sessionID).Scan(&total)
	return total, err
}

func (r *TurnRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
