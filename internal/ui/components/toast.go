package components

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ankitadas/tutorbuddy/internal/ui/theme"
)

const toastDuration = 3 * time.Second

// toastExpiredMsg dismisses the toast shown at the given generation.
type toastExpiredMsg struct {
	generation int
}

// Toast shows a short-lived achievement banner. Showing a new toast
// restarts the timer and replaces the text.
type Toast struct {
	text       string
	generation int
}

// Show displays the given text and returns the expiry command.
func (t *Toast) Show(text string) tea.Cmd {
	t.text = text
	t.generation++
	gen := t.generation
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{generation: gen}
	})
}

// Update hides the toast when its timer fires. Stale timers from
// replaced toasts are ignored.
func (t *Toast) Update(msg tea.Msg) {
	if expired, ok := msg.(toastExpiredMsg); ok && expired.generation == t.generation {
		t.text = ""
	}
}

// Visible reports whether there is a toast to draw.
func (t *Toast) Visible() bool {
	return t.text != ""
}

// View renders the toast centered in the given width.
func (t *Toast) View(width int) string {
	if t.text == "" {
		return ""
	}
	banner := theme.Toast.Render("🎉 " + t.text)
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(banner)
}
