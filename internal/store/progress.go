package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// progressRepo stores the single progress record in a one-row table.
type progressRepo struct {
	db *sql.DB
}

func (r *progressRepo) Load(ctx context.Context) (json.RawMessage, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM progress WHERE id = 1`,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	return json.RawMessage(data), nil
}

func (r *progressRepo) Save(ctx context.Context, data json.RawMessage) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO progress (id, data, updated_at) VALUES (1, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP
	`, string(data))
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

func (r *progressRepo) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM progress WHERE id = 1`); err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}
	return nil
}
