package cmd

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ankitadas/tutorbuddy/internal/app"
	"github.com/ankitadas/tutorbuddy/internal/chat"
	"github.com/ankitadas/tutorbuddy/internal/daily"
	"github.com/ankitadas/tutorbuddy/internal/fallback"
	"github.com/ankitadas/tutorbuddy/internal/llm"
	"github.com/ankitadas/tutorbuddy/internal/notify"
	"github.com/ankitadas/tutorbuddy/internal/progress"
	"github.com/ankitadas/tutorbuddy/internal/quiz"
	"github.com/ankitadas/tutorbuddy/internal/speech"
	"github.com/ankitadas/tutorbuddy/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := context.Background()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	notices := &notify.Buffer{}
	record := chat.LoadProgress(ctx, st.ProgressRepo())
	tracker := progress.NewTracker(record, notices)

	seed := uint64(time.Now().UnixNano())
	responder := fallback.New(rand.New(rand.NewPCG(seed, 1)))
	engine := quiz.NewEngine(rand.New(rand.NewPCG(seed, 2)))

	provider := buildProvider(ctx, st.LLMEventRepo())

	orch := chat.New(chat.Config{
		Provider:  provider,
		Responder: responder,
		Engine:    engine,
		Tracker:   tracker,
		History:   st.HistoryRepo(),
		Progress:  st.ProgressRepo(),
	})
	orch.CheckStreak(ctx)

	dailySvc := daily.New(provider, st.DailyRepo(), rand.New(rand.NewPCG(seed, 3)), nil)

	speaker, _ := speech.NewSpeaker()

	return app.Run(app.Deps{
		Orchestrator: orch,
		Daily:        dailySvc,
		History:      st.HistoryRepo(),
		Settings:     st.SettingsRepo(),
		Speaker:      speaker,
		Notices:      notices,
	})
}

// buildProvider resolves LLM configuration. A nil return means no
// credential was found; the app then answers from the local responder.
func buildProvider(ctx context.Context, events store.LLMEventRepo) llm.Provider {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			fmt.Fprintln(os.Stderr, "No LLM credential configured; replies will use the built-in responder.")
			return nil
		}
		cfg = discovered
	}

	provider, err := llm.NewProvider(ctx, cfg, events)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider unavailable:", err)
		return nil
	}
	return provider
}
