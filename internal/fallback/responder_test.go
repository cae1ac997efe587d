package fallback

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/ankitadas/tutorbuddy/internal/catalog"
	"github.com/ankitadas/tutorbuddy/internal/quiz"
)

func newFixture(seed uint64) (*Responder, *quiz.Engine) {
	return New(rand.New(rand.NewPCG(seed, 0))), quiz.NewEngine(rand.New(rand.NewPCG(seed, 1)))
}

func TestRespondIsTotalForEveryBotModeAndInput(t *testing.T) {
	inputs := []string{"", "   ", "xyzzy qwfp", "hello", "quiz me", "tell me about space", "?"}

	for _, bot := range catalog.AllBots() {
		modes, err := catalog.Modes(bot)
		if err != nil {
			t.Fatalf("Modes(%q): %v", bot, err)
		}
		for _, m := range modes {
			for _, in := range inputs {
				r, engine := newFixture(42)
				got := r.Respond(bot, m.ID, in, engine)
				if strings.TrimSpace(got) == "" {
					t.Errorf("empty reply for %q/%q input %q", bot, m.ID, in)
				}
			}
		}
	}
}

func TestFirstMatchWins(t *testing.T) {
	r, engine := newFixture(1)
	// "check" appears in an earlier rule than "tip"; the earlier rule wins.
	got := r.Respond(catalog.BotEnglish, "grammar", "Can you check this? Any tip?", engine)
	if !strings.Contains(got, "subject and verb agree") {
		t.Errorf("expected the sentence-check rule to fire first, got %q", got)
	}
}

func TestKeywordMatchingIsCaseInsensitive(t *testing.T) {
	r, engine := newFixture(1)
	got := r.Respond(catalog.BotEnglish, "grammar", "PUNCTUATION please", engine)
	if !strings.Contains(got, "road signs for reading") {
		t.Errorf("expected punctuation rule, got %q", got)
	}
}

func TestDeterministicGivenFixedSeed(t *testing.T) {
	r1, e1 := newFixture(99)
	r2, e2 := newFixture(99)
	for range 10 {
		a := r1.Respond(catalog.BotEnglish, "conversation", "hello there", e1)
		b := r2.Respond(catalog.BotEnglish, "conversation", "hello there", e2)
		if a != b {
			t.Fatalf("same seed diverged: %q vs %q", a, b)
		}
	}
}

func TestVocabularyWordCard(t *testing.T) {
	r, engine := newFixture(5)
	got := r.Respond(catalog.BotEnglish, "vocabulary", "give me a word", engine)
	if !strings.Contains(got, "New Word:") || !strings.Contains(got, "Memory Trick:") {
		t.Errorf("expected a word card, got %q", got)
	}
}

func TestExplorerTopics(t *testing.T) {
	r, engine := newFixture(5)
	got := r.Respond(catalog.BotGK, "explorer", "tell me about space", engine)
	if !strings.Contains(got, "Space is incredible") {
		t.Errorf("expected the space topic, got %q", got)
	}

	got = r.Respond(catalog.BotGK, "explorer", "mumble", engine)
	if !strings.Contains(got, "Pick a topic to explore") {
		t.Errorf("expected the topic prompt default, got %q", got)
	}
}

func TestQuizModeIssuesQuestionOnTrigger(t *testing.T) {
	r, engine := newFixture(7)
	got := r.Respond(catalog.BotEnglish, catalog.ModeQuiz, "quiz me", engine)

	if !engine.HasPending() {
		t.Fatal("expected a pending quiz after the trigger")
	}
	for _, letter := range []string{"A)", "B)", "C)"} {
		if !strings.Contains(got, letter) {
			t.Errorf("question missing option %q: %q", letter, got)
		}
	}
	if !strings.Contains(got, "Type A, B, or C to answer!") {
		t.Errorf("missing answer instructions: %q", got)
	}
}

func TestQuizModeWithoutTriggerStaysIdle(t *testing.T) {
	r, engine := newFixture(7)
	got := r.Respond(catalog.BotEnglish, catalog.ModeQuiz, "hello", engine)
	if engine.HasPending() {
		t.Fatal("no question should be issued without a trigger word")
	}
	if !strings.Contains(got, "Quiz me!") {
		t.Errorf("expected the idle encouragement, got %q", got)
	}
}

func TestQuizModeGradesPendingAnswer(t *testing.T) {
	r, engine := newFixture(7)
	r.Respond(catalog.BotEnglish, catalog.ModeQuiz, "quiz me", engine)

	// Grade with a letter that exists either way; the reply must be one of
	// the two grading shapes and the pending quiz must clear.
	got := r.Respond(catalog.BotEnglish, catalog.ModeQuiz, "B", engine)
	if engine.HasPending() {
		t.Fatal("pending quiz must clear after grading")
	}
	if !strings.Contains(got, "Correct!") && !strings.Contains(got, "Not quite!") {
		t.Errorf("expected grading feedback, got %q", got)
	}
}

func TestGKQuizUsesMediumTrigger(t *testing.T) {
	r, engine := newFixture(11)
	r.Respond(catalog.BotGK, catalog.ModeQuiz, "medium", engine)
	if !engine.HasPending() {
		t.Error("'medium' should start a GK quiz")
	}

	r2, e2 := newFixture(11)
	r2.Respond(catalog.BotEnglish, catalog.ModeQuiz, "medium", e2)
	if e2.HasPending() {
		t.Error("'medium' is not an English quiz trigger")
	}
}
