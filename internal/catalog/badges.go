package catalog

// StatKey identifies a progress counter watched by a badge.
type StatKey string

const (
	StatWordsLearned     StatKey = "wordsLearned"
	StatSentencesFixed   StatKey = "sentencesFixed"
	StatStoriesStarted   StatKey = "storiesStarted"
	StatQuizzesCompleted StatKey = "quizzesCompleted"
	StatQuestionsAsked   StatKey = "questionsAsked"

	// StatStreak is the consecutive-day visit counter. It lives outside the
	// per-mode stats map but badges watch it the same way.
	StatStreak StatKey = "streak"
)

// Badge is an immutable achievement definition.
type Badge struct {
	ID          string
	Name        string
	Icon        string
	Description string
	Stat        StatKey
	Threshold   int
}

var badges = []Badge{
	{ID: "wordsmith", Name: "Wordsmith", Icon: "📖", Stat: StatWordsLearned, Threshold: 50, Description: "Learn 50 new words"},
	{ID: "grammarpro", Name: "Grammar Pro", Icon: "✅", Stat: StatSentencesFixed, Threshold: 20, Description: "Fix 20 sentences correctly"},
	{ID: "storystarter", Name: "Story Starter", Icon: "📝", Stat: StatStoriesStarted, Threshold: 5, Description: "Begin 5 stories"},
	{ID: "quizchamp", Name: "Quiz Champion", Icon: "🏆", Stat: StatQuizzesCompleted, Threshold: 10, Description: "10 quizzes in a row correct"},
	{ID: "knowledgeseeker", Name: "Knowledge Seeker", Icon: "🧠", Stat: StatQuestionsAsked, Threshold: 100, Description: "Ask 100 questions"},
	{ID: "weekwarrior", Name: "Week Warrior", Icon: "🔥", Stat: StatStreak, Threshold: 7, Description: "7 day streak"},
}

// Badges returns all badge definitions in display order.
func Badges() []Badge {
	out := make([]Badge, len(badges))
	copy(out, badges)
	return out
}
