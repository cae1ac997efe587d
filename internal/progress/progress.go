// Package progress tracks gamification state: points, day streak, per-mode
// counters and badge unlocks.
package progress

import (
	"time"

	"github.com/ankitadas/tutorbuddy/internal/catalog"
)

// Stats holds the monotonically non-decreasing usage counters.
type Stats struct {
	WordsLearned     int `json:"wordsLearned"`
	SentencesFixed   int `json:"sentencesFixed"`
	StoriesStarted   int `json:"storiesStarted"`
	QuizzesCompleted int `json:"quizzesCompleted"`
	QuestionsAsked   int `json:"questionsAsked"`
}

// Get returns the counter for a stat key. Streak is handled by the caller.
func (s Stats) Get(key catalog.StatKey) int {
	switch key {
	case catalog.StatWordsLearned:
		return s.WordsLearned
	case catalog.StatSentencesFixed:
		return s.SentencesFixed
	case catalog.StatStoriesStarted:
		return s.StoriesStarted
	case catalog.StatQuizzesCompleted:
		return s.QuizzesCompleted
	case catalog.StatQuestionsAsked:
		return s.QuestionsAsked
	}
	return 0
}

// UserProgress is the single persistent gamification record.
type UserProgress struct {
	Streak      int      `json:"streak"`
	LastVisit   string   `json:"lastVisit,omitempty"` // calendar day, DayFormat
	TotalPoints int      `json:"totalPoints"`
	Badges      []string `json:"badges"`
	Stats       Stats    `json:"stats"`
}

// DayFormat is the calendar-day layout used for LastVisit.
const DayFormat = "2006-01-02"

// HasBadge reports whether the badge id has been unlocked.
func (p *UserProgress) HasBadge(id string) bool {
	for _, b := range p.Badges {
		if b == id {
			return true
		}
	}
	return false
}

// statValue resolves the watched value for a badge, including the streak.
func (p *UserProgress) statValue(key catalog.StatKey) int {
	if key == catalog.StatStreak {
		return p.Streak
	}
	return p.Stats.Get(key)
}

// Day truncates t to its calendar day string.
func Day(t time.Time) string {
	return t.Format(DayFormat)
}
