// Package conversation is the chat screen: message history, input box,
// quick action suggestions and achievement toasts.
package conversation

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ankitadas/tutorbuddy/internal/catalog"
	"github.com/ankitadas/tutorbuddy/internal/chat"
	"github.com/ankitadas/tutorbuddy/internal/notify"
	"github.com/ankitadas/tutorbuddy/internal/screen"
	"github.com/ankitadas/tutorbuddy/internal/speech"
	"github.com/ankitadas/tutorbuddy/internal/store"
	"github.com/ankitadas/tutorbuddy/internal/ui/components"
	"github.com/ankitadas/tutorbuddy/internal/ui/layout"
	"github.com/ankitadas/tutorbuddy/internal/ui/theme"
)

const inputCharLimit = 280

// message is one rendered chat entry.
type message struct {
	role   string // "user" or "assistant"
	text   string
	source string
}

// ConversationScreen implements screen.Screen for an active chat.
type ConversationScreen struct {
	orch     *chat.Orchestrator
	settings store.SettingsRepo
	speaker  *speech.Speaker
	notices  *notify.Buffer

	bot      catalog.Bot
	mode     catalog.Mode
	quick    []string
	quickIdx int

	view    viewport.Model
	input   components.ChatInput
	spin    spinner.Model
	toast   components.Toast
	waiting bool

	messages []message
	speechOn bool

	lastWidth, lastHeight int
}

var _ screen.Screen = (*ConversationScreen)(nil)
var _ screen.KeyHintProvider = (*ConversationScreen)(nil)

// New creates the chat screen for the orchestrator's active conversation.
func New(orch *chat.Orchestrator, mode catalog.Mode, settings store.SettingsRepo, speaker *speech.Speaker, notices *notify.Buffer) *ConversationScreen {
	bot := orch.Bot()
	quick, _ := catalog.QuickActions(bot, mode.ID)

	speechOn := false
	if settings != nil {
		if v, ok, err := settings.Get(context.Background(), store.SettingSpeech); err == nil && ok {
			speechOn = v == "true"
		}
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	s := &ConversationScreen{
		orch:     orch,
		settings: settings,
		speaker:  speaker,
		notices:  notices,
		bot:      bot,
		mode:     mode,
		quick:    quick,
		view:     viewport.New(),
		input:    components.NewChatInput("Type your message...", inputCharLimit),
		spin:     sp,
		speechOn: speechOn,
	}

	if welcome, err := catalog.WelcomeMessage(bot, mode.ID); err == nil && welcome != "" {
		s.messages = append(s.messages, message{role: "assistant", text: welcome})
	}

	return s
}

func (s *ConversationScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *ConversationScreen) Title() string {
	return fmt.Sprintf("%s · %s", s.bot.DisplayName(), s.mode.Name)
}

func (s *ConversationScreen) KeyHints() []layout.KeyHint {
	speechHint := "Speech on"
	if !s.speechOn {
		speechHint = "Speech off"
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Tab", Description: "Suggest"},
		{Key: "Ctrl+S", Description: speechHint},
		{Key: "PgUp/PgDn", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ConversationScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.toast.Update(msg)

	switch msg := msg.(type) {
	case replyMsg:
		return s.handleReply(msg)

	case spinner.TickMsg:
		if !s.waiting {
			return s, nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ConversationScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return s.submit()

	case "tab":
		if len(s.quick) > 0 {
			s.input.SetText(s.quick[s.quickIdx])
			s.quickIdx = (s.quickIdx + 1) % len(s.quick)
		}
		return s, nil

	case "ctrl+s":
		s.speechOn = !s.speechOn
		if s.settings != nil {
			val := "false"
			if s.speechOn {
				val = "true"
			}
			_ = s.settings.Set(context.Background(), store.SettingSpeech, val)
		}
		return s, nil

	case "pgup", "pgdown", "ctrl+u", "ctrl+d":
		var cmd tea.Cmd
		s.view, cmd = s.view.Update(msg)
		return s, cmd
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submit sends the typed message to the orchestrator in the background.
// One message in flight at a time.
func (s *ConversationScreen) submit() (screen.Screen, tea.Cmd) {
	if s.waiting {
		return s, nil
	}
	text := s.input.Value()
	if text == "" {
		return s, nil
	}

	s.messages = append(s.messages, message{role: "user", text: text})
	s.input.Clear()
	s.waiting = true
	s.refreshView()

	return s, tea.Batch(s.send(text), s.spin.Tick)
}

func (s *ConversationScreen) send(text string) tea.Cmd {
	orch := s.orch
	return func() tea.Msg {
		reply, ok := orch.HandleMessage(context.Background(), text)
		return replyMsg{Reply: reply, OK: ok}
	}
}

func (s *ConversationScreen) handleReply(msg replyMsg) (screen.Screen, tea.Cmd) {
	s.waiting = false
	if !msg.OK {
		return s, nil
	}

	s.messages = append(s.messages, message{
		role:   "assistant",
		text:   msg.Reply.Text,
		source: msg.Reply.Source,
	})
	s.refreshView()

	if s.speechOn && s.speaker != nil {
		s.speaker.Speak(context.Background(), msg.Reply.Text)
	}

	// Achievements raised while handling the message become toasts.
	var cmd tea.Cmd
	if s.notices != nil {
		for _, n := range s.notices.Drain() {
			cmd = s.toast.Show(n.Title + " " + n.Description)
		}
	}
	return s, cmd
}

// refreshView rebuilds the viewport content and follows the newest
// message.
func (s *ConversationScreen) refreshView() {
	width := s.lastWidth
	if width <= 0 {
		width = layout.MinWidth
	}
	s.view.SetContent(s.renderMessages(width))
	s.view.GotoBottom()
}

func (s *ConversationScreen) View(width, height int) string {
	inputBox := theme.Card.Width(width - 4).Render(s.input.View())

	status := s.renderStatus(width)

	chrome := lipgloss.Height(inputBox) + lipgloss.Height(status)
	viewHeight := height - chrome
	if viewHeight < 1 {
		viewHeight = 1
	}

	if width != s.lastWidth || viewHeight != s.lastHeight {
		s.lastWidth = width
		s.lastHeight = viewHeight
		s.view.SetWidth(width)
		s.view.SetHeight(viewHeight)
		s.refreshView()
	}

	return s.view.View() + "\n" + status + "\n" + inputBox
}

// renderStatus draws the line between history and input: the toast when
// one is live, otherwise the typing indicator or quick action chips.
func (s *ConversationScreen) renderStatus(width int) string {
	if s.toast.Visible() {
		return s.toast.View(width)
	}
	if s.waiting {
		return "  " + s.spin.View() + theme.Hint.Render(fmt.Sprintf(" %s is thinking...", s.bot.DisplayName()))
	}
	if len(s.quick) > 0 {
		return "  " + theme.Hint.Render("Try: "+strings.Join(s.quick, " · "))
	}
	return ""
}

func (s *ConversationScreen) renderMessages(width int) string {
	bubbleWidth := width - 8
	if bubbleWidth < 20 {
		bubbleWidth = 20
	}

	var b strings.Builder
	for i, m := range s.messages {
		if i > 0 {
			b.WriteString("\n")
		}
		if m.role == "user" {
			bubble := theme.UserBubble.MaxWidth(bubbleWidth).Render("You: " + m.text)
			b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Right).Render(bubble))
		} else {
			label := s.bot.Icon() + " " + s.bot.DisplayName()
			if m.source == chat.SourceFallback {
				label += theme.Hint.Render("  (offline)")
			}
			bubble := theme.BotBubble.MaxWidth(bubbleWidth).Render(label + "\n" + m.text)
			b.WriteString(bubble)
		}
		b.WriteString("\n")
	}
	return b.String()
}
