package catalog

import (
	"errors"
	"testing"
)

func TestModesCoverBothBots(t *testing.T) {
	for _, bot := range AllBots() {
		modes, err := Modes(bot)
		if err != nil {
			t.Fatalf("Modes(%q): %v", bot, err)
		}
		if len(modes) == 0 {
			t.Fatalf("bot %q has no modes", bot)
		}
		for _, m := range modes {
			if m.ID == "" || m.Name == "" || m.Persona == "" {
				t.Errorf("bot %q mode %+v has empty fields", bot, m)
			}
		}
	}
}

func TestEveryModeHasQuickActionsAndWelcome(t *testing.T) {
	for _, bot := range AllBots() {
		modes, _ := Modes(bot)
		for _, m := range modes {
			actions, err := QuickActions(bot, m.ID)
			if err != nil {
				t.Fatalf("QuickActions(%q, %q): %v", bot, m.ID, err)
			}
			if len(actions) == 0 {
				t.Errorf("no quick actions for %q/%q", bot, m.ID)
			}
			welcome, err := WelcomeMessage(bot, m.ID)
			if err != nil {
				t.Fatalf("WelcomeMessage(%q, %q): %v", bot, m.ID, err)
			}
			if welcome == "" {
				t.Errorf("empty welcome for %q/%q", bot, m.ID)
			}
		}
	}
}

func TestUnknownLookupsFailLoudly(t *testing.T) {
	if _, err := Modes(Bot("robot")); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("Modes(robot) err = %v, want ErrInvalidConfiguration", err)
	}
	if _, err := ModeByID(BotEnglish, "algebra"); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("ModeByID err = %v, want ErrInvalidConfiguration", err)
	}
	if _, err := QuizBank(BotEnglish, "grammar"); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("QuizBank on non-quiz mode err = %v, want ErrInvalidConfiguration", err)
	}
}

func TestQuizBanksAreWellFormed(t *testing.T) {
	for _, bot := range AllBots() {
		bank, err := QuizBank(bot, ModeQuiz)
		if err != nil {
			t.Fatalf("QuizBank(%q): %v", bot, err)
		}
		if len(bank) == 0 {
			t.Fatalf("empty quiz bank for %q", bot)
		}
		for i, q := range bank {
			letterIdx := -1
			for j, l := range Letters {
				if q.Correct == l {
					letterIdx = j
				}
			}
			if letterIdx == -1 {
				t.Errorf("%q question %d: correct letter %q not in A/B/C", bot, i, q.Correct)
				continue
			}
			if q.Options[letterIdx] != q.Answer {
				t.Errorf("%q question %d: option %s = %q, answer = %q", bot, i, q.Correct, q.Options[letterIdx], q.Answer)
			}
			if q.Explanation == "" {
				t.Errorf("%q question %d has no explanation", bot, i)
			}
		}
	}
}

func TestBadgesWatchKnownStats(t *testing.T) {
	known := map[StatKey]bool{
		StatWordsLearned: true, StatSentencesFixed: true, StatStoriesStarted: true,
		StatQuizzesCompleted: true, StatQuestionsAsked: true, StatStreak: true,
	}
	seen := map[string]bool{}
	for _, b := range Badges() {
		if seen[b.ID] {
			t.Errorf("duplicate badge id %q", b.ID)
		}
		seen[b.ID] = true
		if !known[b.Stat] {
			t.Errorf("badge %q watches unknown stat %q", b.ID, b.Stat)
		}
		if b.Threshold <= 0 {
			t.Errorf("badge %q has non-positive threshold %d", b.ID, b.Threshold)
		}
	}
}
