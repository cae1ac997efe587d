// Package app hosts the root Bubble Tea model: frame layout, global
// keys and the screen router.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ankitadas/tutorbuddy/internal/chat"
	"github.com/ankitadas/tutorbuddy/internal/daily"
	"github.com/ankitadas/tutorbuddy/internal/notify"
	"github.com/ankitadas/tutorbuddy/internal/router"
	"github.com/ankitadas/tutorbuddy/internal/screen"
	"github.com/ankitadas/tutorbuddy/internal/screens/welcome"
	"github.com/ankitadas/tutorbuddy/internal/speech"
	"github.com/ankitadas/tutorbuddy/internal/store"
	"github.com/ankitadas/tutorbuddy/internal/ui/layout"
)

// Deps carries the services the TUI needs.
type Deps struct {
	Orchestrator *chat.Orchestrator
	Daily        *daily.Service
	History      store.HistoryRepo
	Settings     store.SettingsRepo
	Speaker      *speech.Speaker
	Notices      *notify.Buffer
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps   Deps
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the welcome screen.
func newAppModel(deps Deps) AppModel {
	welcomeScreen := welcome.New(
		deps.Orchestrator,
		deps.Daily,
		deps.History,
		deps.Settings,
		deps.Speaker,
		deps.Notices,
	)
	return AppModel{
		deps:   deps,
		router: router.New(welcomeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	points, streak := m.deps.Orchestrator.StatsSnapshot()
	header := layout.RenderHeader(title, points, streak, m.width)

	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// footerHints asks the active screen first, then falls back to the
// stock navigation hints.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); hints != nil {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(deps Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
