package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// dailyRepo caches generated daily content keyed by (day, kind).
type dailyRepo struct {
	db *sql.DB
}

func (r *dailyRepo) Get(ctx context.Context, day, kind string) (json.RawMessage, bool, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM daily_content WHERE day = ? AND kind = ?`, day, kind,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get daily content: %w", err)
	}
	return json.RawMessage(data), true, nil
}

func (r *dailyRepo) Put(ctx context.Context, day, kind string, data json.RawMessage) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO daily_content (day, kind, data) VALUES (?, ?, ?)
		ON CONFLICT (day, kind) DO UPDATE SET data = excluded.data
	`, day, kind, string(data))
	if err != nil {
		return fmt.Errorf("put daily content: %w", err)
	}
	return nil
}
