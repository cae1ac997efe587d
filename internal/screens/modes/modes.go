// Package modes lets the learner pick a conversation mode for the
// chosen tutor.
package modes

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ankitadas/tutorbuddy/internal/catalog"
	"github.com/ankitadas/tutorbuddy/internal/chat"
	"github.com/ankitadas/tutorbuddy/internal/notify"
	"github.com/ankitadas/tutorbuddy/internal/router"
	"github.com/ankitadas/tutorbuddy/internal/screen"
	"github.com/ankitadas/tutorbuddy/internal/screens/conversation"
	"github.com/ankitadas/tutorbuddy/internal/speech"
	"github.com/ankitadas/tutorbuddy/internal/store"
	"github.com/ankitadas/tutorbuddy/internal/ui/components"
	"github.com/ankitadas/tutorbuddy/internal/ui/theme"
)

// ModesScreen is the mode picker for one bot.
type ModesScreen struct {
	bot    catalog.Bot
	menu   components.Menu
	errMsg string
}

var _ screen.Screen = (*ModesScreen)(nil)

// New creates the mode picker. Selecting a mode switches the
// orchestrator's conversation and opens the chat screen.
func New(bot catalog.Bot, orch *chat.Orchestrator, settings store.SettingsRepo, speaker *speech.Speaker, notices *notify.Buffer) *ModesScreen {
	s := &ModesScreen{bot: bot}

	modes, err := catalog.Modes(bot)
	if err != nil {
		s.errMsg = err.Error()
		return s
	}

	items := make([]components.MenuItem, 0, len(modes))
	for _, m := range modes {
		mode := m
		items = append(items, components.MenuItem{
			Label:  mode.Icon + "  " + mode.Name,
			Detail: mode.Description,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					if err := orch.SetConversation(bot, mode.ID); err != nil {
						return router.PopScreenMsg{}
					}
					return router.PushScreenMsg{
						Screen: conversation.New(orch, mode, settings, speaker, notices),
					}
				}
			},
		})
	}
	s.menu = components.NewMenu(items)
	return s
}

func (s *ModesScreen) Init() tea.Cmd {
	return nil
}

func (s *ModesScreen) Title() string {
	return s.bot.DisplayName()
}

func (s *ModesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ModesScreen) View(width, height int) string {
	if s.errMsg != "" {
		return theme.Incorrect.Render("  " + s.errMsg)
	}

	title := theme.Title.Width(width).Render(fmt.Sprintf("%s %s", s.bot.Icon(), s.bot.DisplayName()))
	subtitle := theme.Subtitle.Width(width).Render("What would you like to do?")

	content := title + "\n" + subtitle + "\n\n" + s.menu.View()

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(content)
}
