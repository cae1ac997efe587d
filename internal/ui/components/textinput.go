package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// ChatInput wraps bubbles/textinput for the message box at the bottom of
// the chat screen.
type ChatInput struct {
	Model textinput.Model
}

// NewChatInput creates a focused chat input with the given placeholder.
func NewChatInput(placeholder string, charLimit int) ChatInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if charLimit > 0 {
		ti.CharLimit = charLimit
	}

	return ChatInput{Model: ti}
}

// Init returns the initial command.
func (c ChatInput) Init() tea.Cmd {
	return c.Model.Focus()
}

// Update handles messages.
func (c ChatInput) Update(msg tea.Msg) (ChatInput, tea.Cmd) {
	var cmd tea.Cmd
	c.Model, cmd = c.Model.Update(msg)
	return c, cmd
}

// View renders the input.
func (c ChatInput) View() string {
	return c.Model.View()
}

// Value returns the trimmed input text.
func (c ChatInput) Value() string {
	return strings.TrimSpace(c.Model.Value())
}

// Clear resets the input for the next message.
func (c *ChatInput) Clear() {
	c.Model.SetValue("")
}

// SetText replaces the input contents, placing the cursor at the end.
func (c *ChatInput) SetText(text string) {
	c.Model.SetValue(text)
	c.Model.CursorEnd()
}

// SetWidth resizes the input field.
func (c *ChatInput) SetWidth(width int) {
	c.Model.SetWidth(width)
}
