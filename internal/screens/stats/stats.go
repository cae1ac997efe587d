// Package stats shows the learner's points, streak, badges and counters.
package stats

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ankitadas/tutorbuddy/internal/catalog"
	"github.com/ankitadas/tutorbuddy/internal/progress"
	"github.com/ankitadas/tutorbuddy/internal/screen"
	"github.com/ankitadas/tutorbuddy/internal/ui/components"
	"github.com/ankitadas/tutorbuddy/internal/ui/layout"
	"github.com/ankitadas/tutorbuddy/internal/ui/theme"
)

// StatsScreen renders a read-only snapshot of the progress record.
type StatsScreen struct {
	record *progress.UserProgress
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates the stats screen over the given record.
func New(record *progress.UserProgress) *StatsScreen {
	return &StatsScreen{record: record}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "My Progress"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	p := s.record

	title := theme.Title.Width(width).Render("⭐ My Progress")

	summary := fmt.Sprintf("★ %d points    ⚡%d day streak    🏅 %d/%d badges",
		p.TotalPoints, p.Streak, len(p.Badges), len(catalog.Badges()))
	summaryLine := theme.Subtitle.Width(width).Render(summary)

	counters := s.renderCounters()
	badges := s.renderBadges(width)

	content := title + "\n" + summaryLine + "\n\n" + counters + "\n" + badges

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(content)
}

func (s *StatsScreen) renderCounters() string {
	st := s.record.Stats
	rows := []struct {
		label string
		value int
	}{
		{"Words learned", st.WordsLearned},
		{"Sentences fixed", st.SentencesFixed},
		{"Stories started", st.StoriesStarted},
		{"Quizzes completed", st.QuizzesCompleted},
		{"Questions asked", st.QuestionsAsked},
	}

	var b strings.Builder
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %-20s %s\n",
			r.label,
			theme.Selected.Render(fmt.Sprintf("%d", r.value))))
	}
	return b.String()
}

// renderBadges lists every badge with a progress bar towards its
// threshold. Unlocked badges show full.
func (s *StatsScreen) renderBadges(width int) string {
	p := s.record

	barWidth := width / 2
	if barWidth > 50 {
		barWidth = 50
	}

	var b strings.Builder
	b.WriteString(theme.Body.Render("  Badges") + "\n\n")
	for _, badge := range catalog.Badges() {
		current := badgeStat(p, badge)
		percent := float64(current) / float64(badge.Threshold)
		if p.HasBadge(badge.ID) {
			percent = 1
		}

		name := badge.Icon + " " + badge.Name
		if p.HasBadge(badge.ID) {
			name = theme.Correct.Render(name)
		} else {
			name = theme.Body.Render(name)
		}

		bar := components.NewProgressBar("", percent, true, barWidth)
		b.WriteString(fmt.Sprintf("  %s  %s\n      %s\n",
			name,
			theme.Hint.Render(badge.Description),
			bar.View()))
	}
	return b.String()
}

func badgeStat(p *progress.UserProgress, badge catalog.Badge) int {
	if badge.Stat == catalog.StatStreak {
		return p.Streak
	}
	return p.Stats.Get(badge.Stat)
}
