package progress

import (
	"fmt"
	"strings"
	"time"

	"github.com/ankitadas/tutorbuddy/internal/catalog"
)

// Point awards.
const (
	TurnPoints  = 10
	BadgePoints = 100
)

// Notifier receives achievement and streak toasts. The TUI renders them;
// tests use a recorder.
type Notifier interface {
	Achievement(title, description string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Achievement(string, string) {}

// Tracker mutates a UserProgress and re-evaluates badges after every
// change. It owns no persistence; callers save the record after each turn.
type Tracker struct {
	progress *UserProgress
	notifier Notifier
}

// NewTracker wraps an existing progress record. A nil notifier means
// notifications are discarded.
func NewTracker(p *UserProgress, n Notifier) *Tracker {
	if n == nil {
		n = NopNotifier{}
	}
	return &Tracker{progress: p, notifier: n}
}

// Progress returns the tracked record.
func (t *Tracker) Progress() *UserProgress {
	return t.progress
}

// RecordTurn updates counters and points for one completed conversation
// turn, then evaluates badges. Story turns only count as "started" when
// the message carries a start intent.
func (t *Tracker) RecordTurn(modeID, userMessage string) {
	p := t.progress
	p.Stats.QuestionsAsked++

	switch modeID {
	case "vocabulary":
		p.Stats.WordsLearned++
	case "grammar":
		p.Stats.SentencesFixed++
	case catalog.ModeQuiz:
		p.Stats.QuizzesCompleted++
	case "story":
		if strings.Contains(strings.ToLower(userMessage), "start") {
			p.Stats.StoriesStarted++
		}
	}

	p.TotalPoints += TurnPoints
	t.EvaluateBadges()
}

// EvaluateBadges unlocks every badge whose watched stat has reached its
// threshold. Each unlock awards bonus points and a toast. Idempotent: a
// badge unlocks at most once and the set never shrinks.
func (t *Tracker) EvaluateBadges() []catalog.Badge {
	p := t.progress
	var unlocked []catalog.Badge
	for _, b := range catalog.Badges() {
		if p.HasBadge(b.ID) {
			continue
		}
		if p.statValue(b.Stat) < b.Threshold {
			continue
		}
		p.Badges = append(p.Badges, b.ID)
		p.TotalPoints += BadgePoints
		t.notifier.Achievement(b.Name+" Unlocked!", b.Description)
		unlocked = append(unlocked, b)
	}
	return unlocked
}

// CheckStreak updates the consecutive-day counter for a visit on the given
// day. Calendar-day arithmetic: exactly one day since the last visit
// continues the streak, more than one resets it, the same day is a no-op
// for the counter. LastVisit always becomes today. Badges are re-evaluated
// because the streak badge watches this counter.
func (t *Tracker) CheckStreak(today time.Time) {
	p := t.progress
	day := Day(today)

	switch {
	case p.LastVisit == "":
		p.Streak = 1
	case p.LastVisit == day:
		// Same day; nothing to do.
	default:
		last, err := time.Parse(DayFormat, p.LastVisit)
		if err != nil {
			// Corrupted date: treat as a fresh start rather than failing.
			p.Streak = 1
			break
		}
		todayDay, _ := time.Parse(DayFormat, day)
		diff := int(todayDay.Sub(last).Hours() / 24)
		if diff == 1 {
			p.Streak++
			t.notifier.Achievement("Streak Continued!", fmt.Sprintf("%d days in a row! 🔥", p.Streak))
		} else {
			p.Streak = 1
		}
	}

	p.LastVisit = day
	t.EvaluateBadges()
}
