// Package chat coordinates a conversation: it routes each user message
// to the quiz engine, the LLM provider or the fallback responder, and
// records the exchange in history and progress.
package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/ankitadas/tutorbuddy/internal/catalog"
	"github.com/ankitadas/tutorbuddy/internal/fallback"
	"github.com/ankitadas/tutorbuddy/internal/llm"
	"github.com/ankitadas/tutorbuddy/internal/progress"
	"github.com/ankitadas/tutorbuddy/internal/quiz"
	"github.com/ankitadas/tutorbuddy/internal/store"
)

// Reply provenance values.
const (
	SourceAI       = "ai"
	SourceFallback = "fallback"
	SourceLocal    = "local"
)

// Generation bounds for a single chat turn.
const (
	// historyWindow is the number of stored turns sent to the provider.
	// Six exchanges, both sides.
	historyWindow = 12

	defaultTimeout   = 15 * time.Second
	replyMaxTokens   = 500
	replyTemperature = 0.7
)

// Reply is the assistant's answer to one user message.
type Reply struct {
	Text   string
	Source string
}

// Config wires an Orchestrator. Provider may be nil when no credential is
// configured; every message then goes to the fallback responder.
type Config struct {
	Provider  llm.Provider
	Responder *fallback.Responder
	Engine    *quiz.Engine
	Tracker   *progress.Tracker
	History   store.HistoryRepo
	Progress  store.ProgressRepo

	// Timeout bounds one LLM call. Default 15s.
	Timeout time.Duration

	// Now and NewID are injectable for tests.
	Now   func() time.Time
	NewID func() string
}

// Orchestrator serializes message handling for one learner. The mutex is
// the single-writer discipline for the pending quiz, progress and history.
type Orchestrator struct {
	mu  sync.Mutex
	cfg Config

	bot  catalog.Bot
	mode string

	// points and streak mirror the progress record so the UI header can
	// read them without waiting on an in-flight message.
	points atomic.Int64
	streak atomic.Int64
}

// New creates an Orchestrator. The conversation starts unset; call
// SetConversation before handling messages.
func New(cfg Config) *Orchestrator {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.NewID == nil {
		cfg.NewID = uuid.NewString
	}
	o := &Orchestrator{cfg: cfg}
	o.syncSnapshot()
	return o
}

// StatsSnapshot returns the current points and streak without taking
// the orchestrator lock.
func (o *Orchestrator) StatsSnapshot() (points, streak int) {
	return int(o.points.Load()), int(o.streak.Load())
}

func (o *Orchestrator) syncSnapshot() {
	p := o.cfg.Tracker.Progress()
	o.points.Store(int64(p.TotalPoints))
	o.streak.Store(int64(p.Streak))
}

// SetConversation switches to a (bot, mode) pair, validating it against
// the catalog. Any pending quiz is abandoned.
func (o *Orchestrator) SetConversation(bot catalog.Bot, modeID string) error {
	if _, err := catalog.ModeByID(bot, modeID); err != nil {
		return err
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.bot = bot
	o.mode = modeID
	o.cfg.Engine.Reset()
	return nil
}

// Bot returns the active bot.
func (o *Orchestrator) Bot() catalog.Bot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.bot
}

// Mode returns the active mode id.
func (o *Orchestrator) Mode() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.mode
}

// HandleMessage answers one user message. It always produces a reply for
// non-empty input: LLM when available, fallback otherwise. ok is false
// for empty or whitespace-only input, which records nothing.
func (o *Orchestrator) HandleMessage(ctx context.Context, text string) (Reply, bool) {
	if strings.TrimSpace(text) == "" {
		return Reply{}, false
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	reply := o.respond(ctx, text)
	o.record(ctx, text, reply)
	return reply, true
}

// respond picks the answer path for a message.
func (o *Orchestrator) respond(ctx context.Context, text string) Reply {
	// A pending quiz answer is graded locally, never sent to the LLM.
	if o.mode == catalog.ModeQuiz && o.cfg.Engine.HasPending() {
		return Reply{
			Text:   o.cfg.Responder.Respond(o.bot, o.mode, text, o.cfg.Engine),
			Source: SourceLocal,
		}
	}

	if o.cfg.Provider != nil {
		if answer, err := o.generate(ctx, text); err == nil {
			return Reply{Text: answer, Source: SourceAI}
		}
		// Any generation failure degrades to the fallback below.
	}

	return Reply{
		Text:   o.cfg.Responder.Respond(o.bot, o.mode, text, o.cfg.Engine),
		Source: SourceFallback,
	}
}

// generate asks the provider for a reply with the mode's persona and a
// window of recent history.
func (o *Orchestrator) generate(ctx context.Context, text string) (string, error) {
	mode, err := catalog.ModeByID(o.bot, o.mode)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(llm.WithPurpose(ctx, "chat"), o.cfg.Timeout)
	defer cancel()

	var messages []llm.Message
	recent, err := o.cfg.History.Recent(ctx, string(o.bot), historyWindow)
	if err != nil {
		// A broken history read costs context, not the reply.
		fmt.Fprintf(os.Stderr, "warning: load history window: %v\n", err)
	}
	for _, t := range recent {
		role := llm.RoleUser
		if t.Role == "assistant" {
			role = llm.RoleAssistant
		}
		messages = append(messages, llm.Message{Role: role, Content: t.Content})
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: text})

	resp, err := o.cfg.Provider.Generate(ctx, llm.Request{
		System:      mode.Persona,
		Messages:    messages,
		MaxTokens:   replyMaxTokens,
		Temperature: replyTemperature,
	})
	if err != nil {
		return "", err
	}

	answer := strings.TrimSpace(resp.Text())
	if answer == "" {
		return "", &llm.ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("empty reply")}
	}
	return answer, nil
}

// record persists both sides of the exchange and updates progress.
// Persistence failures are reported but never break the conversation.
func (o *Orchestrator) record(ctx context.Context, text string, reply Reply) {
	now := o.cfg.Now()

	turns := []store.Turn{
		{
			ID:        o.cfg.NewID(),
			Bot:       string(o.bot),
			Mode:      o.mode,
			Role:      "user",
			Content:   text,
			CreatedAt: now,
		},
		{
			ID:        o.cfg.NewID(),
			Bot:       string(o.bot),
			Mode:      o.mode,
			Role:      "assistant",
			Content:   reply.Text,
			Source:    reply.Source,
			CreatedAt: now,
		},
	}
	for _, t := range turns {
		if err := o.cfg.History.Append(ctx, t); err != nil {
			fmt.Fprintf(os.Stderr, "warning: append turn: %v\n", err)
		}
	}

	o.cfg.Tracker.RecordTurn(o.mode, text)
	o.saveProgress(ctx)
	o.syncSnapshot()
}

// CheckStreak runs the daily streak update and persists the result.
func (o *Orchestrator) CheckStreak(ctx context.Context) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.cfg.Tracker.CheckStreak(o.cfg.Now())
	o.saveProgress(ctx)
	o.syncSnapshot()
}

// Progress returns the tracked record for display.
func (o *Orchestrator) Progress() *progress.UserProgress {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.cfg.Tracker.Progress()
}

func (o *Orchestrator) saveProgress(ctx context.Context) {
	data, err := json.Marshal(o.cfg.Tracker.Progress())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: marshal progress: %v\n", err)
		return
	}
	if err := o.cfg.Progress.Save(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: save progress: %v\n", err)
	}
}

// LoadProgress reads the stored progress record. A missing or corrupted
// record yields a fresh zero record rather than an error.
func LoadProgress(ctx context.Context, repo store.ProgressRepo) *progress.UserProgress {
	p := &progress.UserProgress{}

	data, err := repo.Load(ctx)
	if err != nil || data == nil {
		return p
	}
	if err := json.Unmarshal(data, p); err != nil {
		return &progress.UserProgress{}
	}
	return p
}
