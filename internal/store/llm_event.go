package store

import (
	"context"
	"database/sql"
	"fmt"
)

type llmEventRepo struct {
	db *sql.DB
}

func (r *llmEventRepo) Append(ctx context.Context, ev LLMEvent) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO llm_events
			(provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, ev.Provider, ev.Model, ev.Purpose, ev.InputTokens, ev.OutputTokens,
		ev.LatencyMs, ev.Success, ev.ErrorMessage)
	if err != nil {
		return fmt.Errorf("append llm event: %w", err)
	}
	return nil
}

func (r *llmEventRepo) Stats(ctx context.Context) (*LLMStats, error) {
	stats := &LLMStats{ByModel: make(map[string]LLMModelStats)}

	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN success THEN 0 ELSE 1 END), 0),
		       COALESCE(SUM(input_tokens), 0),
		       COALESCE(SUM(output_tokens), 0)
		FROM llm_events
	`).Scan(&stats.Requests, &stats.Failures, &stats.InputTokens, &stats.OutputTokens)
	if err != nil {
		return nil, fmt.Errorf("aggregate llm events: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT model, COUNT(*), COALESCE(SUM(input_tokens), 0), COALESCE(SUM(output_tokens), 0)
		FROM llm_events GROUP BY model
	`)
	if err != nil {
		return nil, fmt.Errorf("aggregate by model: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var model string
		var m LLMModelStats
		if err := rows.Scan(&model, &m.Requests, &m.InputTokens, &m.OutputTokens); err != nil {
			return nil, fmt.Errorf("scan model stats: %w", err)
		}
		stats.ByModel[model] = m
	}
	return stats, rows.Err()
}

func (r *llmEventRepo) Recent(ctx context.Context, limit int) ([]LLMEvent, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message, created_at
		FROM llm_events ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}
	defer rows.Close()

	var events []LLMEvent
	for rows.Next() {
		var ev LLMEvent
		var success sql.NullBool
		if err := rows.Scan(&ev.Provider, &ev.Model, &ev.Purpose, &ev.InputTokens,
			&ev.OutputTokens, &ev.LatencyMs, &success, &ev.ErrorMessage, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan llm event: %w", err)
		}
		ev.Success = success.Bool
		events = append(events, ev)
	}
	return events, rows.Err()
}
