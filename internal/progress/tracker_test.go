package progress

import (
	"testing"
	"time"

	"github.com/ankitadas/tutorbuddy/internal/catalog"
)

// recorder captures notifications for assertions.
type recorder struct {
	titles []string
}

func (r *recorder) Achievement(title, _ string) {
	r.titles = append(r.titles, title)
}

func TestRecordTurnCounters(t *testing.T) {
	cases := []struct {
		mode    string
		message string
		check   func(Stats) int
		want    int
	}{
		{"vocabulary", "give me a word", func(s Stats) int { return s.WordsLearned }, 1},
		{"grammar", "check this", func(s Stats) int { return s.SentencesFixed }, 1},
		{catalog.ModeQuiz, "B", func(s Stats) int { return s.QuizzesCompleted }, 1},
		{"story", "start a story", func(s Stats) int { return s.StoriesStarted }, 1},
		{"story", "what happens next", func(s Stats) int { return s.StoriesStarted }, 0},
		{"conversation", "hello", func(s Stats) int { return s.WordsLearned }, 0},
	}

	for _, tc := range cases {
		p := &UserProgress{}
		tr := NewTracker(p, nil)
		tr.RecordTurn(tc.mode, tc.message)

		if got := tc.check(p.Stats); got != tc.want {
			t.Errorf("mode %q message %q: counter = %d, want %d", tc.mode, tc.message, got, tc.want)
		}
		if p.Stats.QuestionsAsked != 1 {
			t.Errorf("mode %q: questionsAsked = %d, want 1", tc.mode, p.Stats.QuestionsAsked)
		}
		if p.TotalPoints != TurnPoints {
			t.Errorf("mode %q: points = %d, want %d", tc.mode, p.TotalPoints, TurnPoints)
		}
	}
}

func TestBadgeUnlockAndIdempotence(t *testing.T) {
	rec := &recorder{}
	p := &UserProgress{Stats: Stats{StoriesStarted: 5}}
	tr := NewTracker(p, rec)

	unlocked := tr.EvaluateBadges()
	if len(unlocked) != 1 || unlocked[0].ID != "storystarter" {
		t.Fatalf("unlocked = %+v, want just storystarter", unlocked)
	}
	if p.TotalPoints != BadgePoints {
		t.Errorf("points = %d, want %d", p.TotalPoints, BadgePoints)
	}
	if len(rec.titles) != 1 {
		t.Errorf("notifications = %v, want one", rec.titles)
	}

	// Re-running with no stat change must not award again.
	if again := tr.EvaluateBadges(); len(again) != 0 {
		t.Errorf("second evaluation unlocked %+v", again)
	}
	if p.TotalPoints != BadgePoints {
		t.Errorf("points changed on idempotent re-check: %d", p.TotalPoints)
	}
	if len(p.Badges) != 1 {
		t.Errorf("badge set = %v, want exactly one entry", p.Badges)
	}
}

func TestStreakBadgeWatchesStreak(t *testing.T) {
	p := &UserProgress{Streak: 7}
	tr := NewTracker(p, nil)
	tr.EvaluateBadges()
	if !p.HasBadge("weekwarrior") {
		t.Error("7-day streak should unlock weekwarrior")
	}
}

func TestCheckStreak(t *testing.T) {
	today := time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)

	cases := []struct {
		name      string
		lastVisit string
		start     int
		want      int
	}{
		{"first visit ever", "", 0, 1},
		{"yesterday continues", "2026-08-27", 3, 4},
		{"three days ago resets", "2026-08-25", 9, 1},
		{"same day unchanged", "2026-08-28", 5, 5},
		{"garbage date resets", "not-a-date", 5, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &UserProgress{Streak: tc.start, LastVisit: tc.lastVisit}
			tr := NewTracker(p, nil)
			tr.CheckStreak(today)

			if p.Streak != tc.want {
				t.Errorf("streak = %d, want %d", p.Streak, tc.want)
			}
			if p.LastVisit != "2026-08-28" {
				t.Errorf("lastVisit = %q, want today", p.LastVisit)
			}
		})
	}
}

func TestStreakContinuationNotifies(t *testing.T) {
	rec := &recorder{}
	p := &UserProgress{Streak: 2, LastVisit: "2026-08-27"}
	tr := NewTracker(p, rec)
	tr.CheckStreak(time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC))

	if len(rec.titles) == 0 || rec.titles[0] != "Streak Continued!" {
		t.Errorf("notifications = %v, want Streak Continued!", rec.titles)
	}
}
