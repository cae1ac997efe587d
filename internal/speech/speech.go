// Package speech reads replies aloud through the platform speech command
// ('say' on macOS, 'espeak' elsewhere). Speech is best-effort: a missing
// command or a failed invocation is silently ignored.
package speech

import (
	"context"
	"os/exec"
	"regexp"
	"runtime"
	"strings"
)

// Speaker speaks cleaned reply text.
type Speaker struct {
	command string
	args    []string
}

// NewSpeaker picks the platform speech command. available is false when
// no command exists; Speak is then a no-op.
func NewSpeaker() (*Speaker, bool) {
	candidates := []struct {
		command string
		args    []string
	}{
		{"espeak", nil},
		{"espeak-ng", nil},
	}
	if runtime.GOOS == "darwin" {
		candidates = append([]struct {
			command string
			args    []string
		}{{"say", []string{"-r", "175"}}}, candidates...)
	}

	for _, c := range candidates {
		if _, err := exec.LookPath(c.command); err == nil {
			return &Speaker{command: c.command, args: c.args}, true
		}
	}
	return &Speaker{}, false
}

// Speak pronounces the text asynchronously. Failures are swallowed; the
// reply is already on screen.
func (s *Speaker) Speak(ctx context.Context, text string) {
	if s.command == "" {
		return
	}
	clean := CleanForSpeech(text)
	if clean == "" {
		return
	}

	args := append(append([]string{}, s.args...), clean)
	cmd := exec.CommandContext(ctx, s.command, args...)
	go func() { _ = cmd.Run() }()
}

var (
	emojiPattern      = regexp.MustCompile(`[\x{1F300}-\x{1F9FF}\x{2600}-\x{27BF}\x{2B00}-\x{2BFF}\x{FE0F}]`)
	whitespacePattern = regexp.MustCompile(`[ \t]+`)
)

// CleanForSpeech strips markdown markers and emoji and flattens newlines
// so the speech command reads naturally.
func CleanForSpeech(text string) string {
	s := strings.ReplaceAll(text, "**", "")
	s = strings.ReplaceAll(s, "*", "")
	s = strings.ReplaceAll(s, "\n\n", ". ")
	s = strings.ReplaceAll(s, "\n", ", ")
	s = emojiPattern.ReplaceAllString(s, "")
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
