package store

import (
	"context"
	"encoding/json"
	"time"
)

// HistoryLimit caps the number of exchanges (a user message and its
// reply) retained per bot. Each exchange is stored as two turn rows;
// the oldest exchanges are evicted FIFO when new ones are appended.
const HistoryLimit = 50

// historyRows is the per-bot row cap implied by HistoryLimit.
const historyRows = 2 * HistoryLimit

// Turn is one message in a conversation, either side.
type Turn struct {
	ID        string
	Bot       string
	Mode      string
	Role      string // "user" or "assistant"
	Content   string
	Source    string // "ai", "fallback" or "local" for assistant turns
	CreatedAt time.Time
}

// ProgressRepo persists the single learner progress record as a JSON
// document. The progress package owns the shape; the store treats it as
// an opaque blob.
type ProgressRepo interface {
	// Load returns the stored record, or (nil, nil) when none exists yet.
	Load(ctx context.Context) (json.RawMessage, error)

	// Save upserts the record.
	Save(ctx context.Context, data json.RawMessage) error

	// Reset deletes the record.
	Reset(ctx context.Context) error
}

// HistoryRepo stores conversation turns per bot with FIFO eviction.
type HistoryRepo interface {
	// Append stores a turn and evicts the oldest turns for the same bot
	// beyond HistoryLimit exchanges.
	Append(ctx context.Context, turn Turn) error

	// Recent returns up to limit most recent turns for a bot, oldest first.
	Recent(ctx context.Context, bot string, limit int) ([]Turn, error)

	// Clear deletes all turns for a bot. An empty bot clears everything.
	Clear(ctx context.Context, bot string) error
}

// DailyRepo caches generated daily content (word of the day, fact of the
// day) keyed by calendar day and kind.
type DailyRepo interface {
	// Get returns the cached blob for (day, kind). ok is false on a miss.
	Get(ctx context.Context, day, kind string) (data json.RawMessage, ok bool, err error)

	// Put upserts the blob for (day, kind).
	Put(ctx context.Context, day, kind string, data json.RawMessage) error
}

// SettingsRepo is a string key-value table for user preferences.
type SettingsRepo interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// LLMEvent captures one LLM API call for observability.
type LLMEvent struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	CreatedAt    time.Time
}

// LLMStats aggregates recorded events.
type LLMStats struct {
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
	ByModel      map[string]LLMModelStats
}

// LLMModelStats is the per-model slice of LLMStats.
type LLMModelStats struct {
	Requests     int
	InputTokens  int
	OutputTokens int
}

// LLMEventRepo provides append and aggregate access to LLM request events.
type LLMEventRepo interface {
	// Append records one LLM API call.
	Append(ctx context.Context, ev LLMEvent) error

	// Stats aggregates all recorded events.
	Stats(ctx context.Context) (*LLMStats, error)

	// Recent returns the most recent events, newest first.
	Recent(ctx context.Context, limit int) ([]LLMEvent, error)
}
