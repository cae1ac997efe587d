package store

import (
	"context"
	"database/sql"
	"fmt"
)

// historyRepo stores turns with a per-bot FIFO cap. The monotonically
// increasing seq column orders turns; timestamps alone can collide within
// a second.
type historyRepo struct {
	db *sql.DB
}

func (r *historyRepo) Append(ctx context.Context, turn Turn) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	var next int64
	if err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(seq), 0) + 1 FROM turns`,
	).Scan(&next); err != nil {
		return fmt.Errorf("next seq: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO turns (id, bot, mode, role, content, source, created_at, seq)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, turn.ID, turn.Bot, turn.Mode, turn.Role, turn.Content, turn.Source, turn.CreatedAt.UTC(), next)
	if err != nil {
		return fmt.Errorf("insert turn: %w", err)
	}

	// Evict beyond the cap, oldest first.
	_, err = tx.ExecContext(ctx, `
		DELETE FROM turns WHERE bot = ? AND seq NOT IN (
			SELECT seq FROM turns WHERE bot = ? ORDER BY seq DESC LIMIT ?
		)
	`, turn.Bot, turn.Bot, historyRows)
	if err != nil {
		return fmt.Errorf("evict turns: %w", err)
	}

	return tx.Commit()
}

func (r *historyRepo) Recent(ctx context.Context, bot string, limit int) ([]Turn, error) {
	if limit <= 0 || limit > historyRows {
		limit = historyRows
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, bot, mode, role, content, source, created_at
		FROM (
			SELECT id, bot, mode, role, content, source, created_at, seq
			FROM turns WHERE bot = ? ORDER BY seq DESC LIMIT ?
		) ORDER BY seq ASC
	`, bot, limit)
	if err != nil {
		return nil, fmt.Errorf("query turns: %w", err)
	}
	defer rows.Close()

	var turns []Turn
	for rows.Next() {
		var t Turn
		if err := rows.Scan(&t.ID, &t.Bot, &t.Mode, &t.Role, &t.Content, &t.Source, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan turn: %w", err)
		}
		turns = append(turns, t)
	}
	return turns, rows.Err()
}

func (r *historyRepo) Clear(ctx context.Context, bot string) error {
	var err error
	if bot == "" {
		_, err = r.db.ExecContext(ctx, `DELETE FROM turns`)
	} else {
		_, err = r.db.ExecContext(ctx, `DELETE FROM turns WHERE bot = ?`, bot)
	}
	if err != nil {
		return fmt.Errorf("clear turns: %w", err)
	}
	return nil
}
