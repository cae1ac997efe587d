// Package settings hosts the preferences screen: speech toggle and
// chat history clearing.
package settings

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ankitadas/tutorbuddy/internal/catalog"
	"github.com/ankitadas/tutorbuddy/internal/screen"
	"github.com/ankitadas/tutorbuddy/internal/store"
	"github.com/ankitadas/tutorbuddy/internal/ui/components"
	"github.com/ankitadas/tutorbuddy/internal/ui/theme"
)

// toggleSpeechMsg and clearHistoryMsg are the menu actions.
type toggleSpeechMsg struct{}
type clearHistoryMsg struct{ bot catalog.Bot }

// SettingsScreen lets the learner flip preferences.
type SettingsScreen struct {
	settings store.SettingsRepo
	history  store.HistoryRepo

	menu     components.Menu
	speechOn bool
	notice   string
}

var _ screen.Screen = (*SettingsScreen)(nil)

// New creates the settings screen.
func New(settings store.SettingsRepo, history store.HistoryRepo) *SettingsScreen {
	s := &SettingsScreen{settings: settings, history: history}

	if v, ok, err := settings.Get(context.Background(), store.SettingSpeech); err == nil && ok {
		s.speechOn = v == "true"
	}

	s.rebuildMenu()
	return s
}

// rebuildMenu refreshes labels that depend on current state.
func (s *SettingsScreen) rebuildMenu() {
	speechLabel := "🔊 Read replies aloud: Off"
	if s.speechOn {
		speechLabel = "🔊 Read replies aloud: On"
	}

	selected := s.menu.Selected
	items := []components.MenuItem{
		{Label: speechLabel, Action: func() tea.Cmd {
			return func() tea.Msg { return toggleSpeechMsg{} }
		}},
		{Label: "🗑  Clear English Buddy history", Action: func() tea.Cmd {
			return func() tea.Msg { return clearHistoryMsg{bot: catalog.BotEnglish} }
		}},
		{Label: "🗑  Clear GK Genius history", Action: func() tea.Cmd {
			return func() tea.Msg { return clearHistoryMsg{bot: catalog.BotGK} }
		}},
	}
	s.menu = components.NewMenu(items)
	if selected < len(items) {
		s.menu.Selected = selected
	}
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case toggleSpeechMsg:
		s.speechOn = !s.speechOn
		val := "false"
		if s.speechOn {
			val = "true"
		}
		if err := s.settings.Set(context.Background(), store.SettingSpeech, val); err != nil {
			s.notice = "Could not save the setting."
		} else {
			s.notice = ""
		}
		s.rebuildMenu()
		return s, nil

	case clearHistoryMsg:
		if err := s.history.Clear(context.Background(), string(msg.bot)); err != nil {
			s.notice = "Could not clear the history."
		} else {
			s.notice = msg.bot.DisplayName() + " history cleared."
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SettingsScreen) View(width, height int) string {
	title := theme.Title.Width(width).Render("⚙  Settings")

	content := title + "\n\n" + s.menu.View()
	if s.notice != "" {
		content += "\n" + theme.Hint.Render("  "+s.notice)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(content)
}
