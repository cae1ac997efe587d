// Package welcome is the landing screen: tutor picker, word and fact of
// the day, and the most recent conversations.
package welcome

import (
	"context"
	"sort"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ankitadas/tutorbuddy/internal/catalog"
	"github.com/ankitadas/tutorbuddy/internal/chat"
	"github.com/ankitadas/tutorbuddy/internal/daily"
	"github.com/ankitadas/tutorbuddy/internal/notify"
	"github.com/ankitadas/tutorbuddy/internal/router"
	"github.com/ankitadas/tutorbuddy/internal/screen"
	"github.com/ankitadas/tutorbuddy/internal/screens/modes"
	"github.com/ankitadas/tutorbuddy/internal/screens/settings"
	"github.com/ankitadas/tutorbuddy/internal/screens/stats"
	"github.com/ankitadas/tutorbuddy/internal/speech"
	"github.com/ankitadas/tutorbuddy/internal/store"
	"github.com/ankitadas/tutorbuddy/internal/ui/components"
	"github.com/ankitadas/tutorbuddy/internal/ui/theme"
)

const recentShown = 5

// dailyContentMsg carries the resolved word and fact of the day.
type dailyContentMsg struct {
	word catalog.Word
	fact string
}

// recentMsg carries the latest user messages across both bots.
type recentMsg struct {
	turns []store.Turn
}

// WelcomeScreen is the landing screen.
type WelcomeScreen struct {
	orch    *chat.Orchestrator
	daily   *daily.Service
	history store.HistoryRepo

	menu   components.Menu
	word   catalog.Word
	fact   string
	recent []store.Turn
	loaded bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates the welcome screen with its navigation menu.
func New(orch *chat.Orchestrator, dailySvc *daily.Service, history store.HistoryRepo, settingsRepo store.SettingsRepo, speaker *speech.Speaker, notices *notify.Buffer) *WelcomeScreen {
	s := &WelcomeScreen{
		orch:    orch,
		daily:   dailySvc,
		history: history,
	}

	items := make([]components.MenuItem, 0, len(catalog.AllBots())+3)
	for _, b := range catalog.AllBots() {
		bot := b
		detail := "Grammar, vocabulary and stories"
		if bot == catalog.BotGK {
			detail = "Facts, quizzes and exploration"
		}
		items = append(items, components.MenuItem{
			Label:  bot.Icon() + "  " + bot.DisplayName(),
			Detail: detail,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: modes.New(bot, orch, settingsRepo, speaker, notices),
					}
				}
			},
		})
	}
	items = append(items,
		components.MenuItem{Label: "⭐  My Progress", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(orch.Progress())}
			}
		}},
		components.MenuItem{Label: "⚙   Settings", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: settings.New(settingsRepo, history)}
			}
		}},
		components.MenuItem{Label: "👋  Exit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	s.menu = components.NewMenu(items)
	return s
}

func (s *WelcomeScreen) Init() tea.Cmd {
	return tea.Batch(s.loadDaily(), s.loadRecent())
}

func (s *WelcomeScreen) Title() string {
	return "Welcome"
}

// loadDaily resolves the word and fact of the day off the UI goroutine;
// both may hit the LLM on a cache miss.
func (s *WelcomeScreen) loadDaily() tea.Cmd {
	svc := s.daily
	return func() tea.Msg {
		ctx := context.Background()
		return dailyContentMsg{
			word: svc.WordOfDay(ctx),
			fact: svc.FactOfDay(ctx),
		}
	}
}

// loadRecent merges both bots' histories and keeps the newest user
// messages.
func (s *WelcomeScreen) loadRecent() tea.Cmd {
	history := s.history
	return func() tea.Msg {
		ctx := context.Background()

		var all []store.Turn
		for _, bot := range catalog.AllBots() {
			turns, err := history.Recent(ctx, string(bot), store.HistoryLimit)
			if err != nil {
				continue
			}
			for _, t := range turns {
				if t.Role == "user" {
					all = append(all, t)
				}
			}
		}

		sort.Slice(all, func(i, j int) bool {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		})
		if len(all) > recentShown {
			all = all[:recentShown]
		}
		return recentMsg{turns: all}
	}
}

func (s *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case dailyContentMsg:
		s.word = msg.word
		s.fact = msg.fact
		s.loaded = true
		return s, nil

	case recentMsg:
		s.recent = msg.turns
		return s, nil
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *WelcomeScreen) View(width, height int) string {
	title := theme.Title.Width(width).Render("🎓 TutorBuddy")
	subtitle := theme.Subtitle.Width(width).Render("Your learning adventure starts here!")

	sections := []string{title, subtitle, "", s.menu.View()}

	if s.loaded {
		cardWidth := width - 12
		if cardWidth > 64 {
			cardWidth = 64
		}
		word := theme.Card.Width(cardWidth).Render(
			theme.Selected.Render("📖 Word of the Day: "+s.word.Word) + "\n" +
				theme.Body.Render(s.word.Definition))
		fact := theme.Card.Width(cardWidth).Render(
			theme.Selected.Render("💡 Fun Fact") + "\n" +
				theme.Body.Render(s.fact))
		cards := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
			Render(lipgloss.JoinVertical(lipgloss.Left, word, fact))
		sections = append(sections, "", cards)
	}

	if len(s.recent) > 0 {
		lines := theme.Hint.Render("  Recently you asked:") + "\n"
		for _, t := range s.recent {
			text := t.Content
			if len(text) > 48 {
				text = text[:45] + "..."
			}
			lines += theme.Body.Render("   · "+text) +
				theme.Hint.Render("  ("+catalog.Bot(t.Bot).DisplayName()+")") + "\n"
		}
		sections = append(sections, "", lines)
	}

	content := ""
	for i, sec := range sections {
		if i > 0 {
			content += "\n"
		}
		content += sec
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(content)
}
