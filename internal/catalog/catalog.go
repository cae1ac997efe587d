// Package catalog is the static content registry: bots, modes, quick
// actions, badges, daily words/facts, and quiz banks. All lookups are total
// over the fixed catalog: asking for a bot/mode pair that does not exist is
// a programming error, reported as ErrInvalidConfiguration.
package catalog

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration indicates a lookup for a bot/mode combination that
// is not part of the catalog. This is a programmer error, not a runtime
// condition to recover from.
var ErrInvalidConfiguration = errors.New("invalid bot/mode configuration")

// Bot identifies one of the two tutors.
type Bot string

const (
	BotEnglish Bot = "english"
	BotGK      Bot = "gk"
)

// AllBots returns the bots in display order.
func AllBots() []Bot {
	return []Bot{BotEnglish, BotGK}
}

// DisplayName returns the user-facing bot name.
func (b Bot) DisplayName() string {
	switch b {
	case BotEnglish:
		return "English Buddy"
	case BotGK:
		return "GK Genius"
	default:
		return string(b)
	}
}

// Icon returns the bot's avatar glyph.
func (b Bot) Icon() string {
	switch b {
	case BotEnglish:
		return "📖"
	case BotGK:
		return "🌍"
	default:
		return "🤖"
	}
}

// Valid reports whether b is a known bot.
func (b Bot) Valid() bool {
	return b == BotEnglish || b == BotGK
}

// Mode is a conversation mode belonging to exactly one bot. Modes are
// immutable catalog entries that live for the process lifetime.
type Mode struct {
	ID          string
	Name        string
	Icon        string
	Description string

	// Persona is the system instruction sent to the LLM provider. It is
	// never used by the local fallback responder.
	Persona string
}

// ModeQuiz is the shared id of both bots' quiz modes.
const ModeQuiz = "quiz"

// IsQuiz reports whether the mode runs the quiz state machine.
func (m Mode) IsQuiz() bool {
	return m.ID == ModeQuiz
}

// Modes returns the ordered mode list for a bot.
func Modes(bot Bot) ([]Mode, error) {
	modes, ok := botModes[bot]
	if !ok {
		return nil, fmt.Errorf("%w: unknown bot %q", ErrInvalidConfiguration, bot)
	}
	return modes, nil
}

// ModeByID returns the mode with the given id for a bot.
func ModeByID(bot Bot, id string) (Mode, error) {
	modes, err := Modes(bot)
	if err != nil {
		return Mode{}, err
	}
	for _, m := range modes {
		if m.ID == id {
			return m, nil
		}
	}
	return Mode{}, fmt.Errorf("%w: bot %q has no mode %q", ErrInvalidConfiguration, bot, id)
}

// QuickActions returns the suggested inputs for a bot/mode pair.
func QuickActions(bot Bot, modeID string) ([]string, error) {
	if _, err := ModeByID(bot, modeID); err != nil {
		return nil, err
	}
	return quickActions[bot][modeID], nil
}

// WelcomeMessage returns the canned greeting shown when a chat starts.
func WelcomeMessage(bot Bot, modeID string) (string, error) {
	if _, err := ModeByID(bot, modeID); err != nil {
		return "", err
	}
	return welcomeMessages[bot][modeID], nil
}
