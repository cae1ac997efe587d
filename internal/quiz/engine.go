// Package quiz implements the per-session quiz state machine: at most one
// outstanding question at a time, graded exactly once.
package quiz

import (
	"math/rand/v2"
	"strings"

	"github.com/ankitadas/tutorbuddy/internal/catalog"
)

// Pending is the answer key of the outstanding question.
type Pending struct {
	Letter      string
	Answer      string
	Explanation string
}

// Issued is what the caller displays after issuing a question.
type Issued struct {
	Question string
	Options  [3]string
}

// GradeResult reports the outcome of grading a learner's answer.
type GradeResult struct {
	Correct     bool
	Letter      string
	Answer      string
	Explanation string
}

// Engine holds the pending quiz for one conversation session. It is not
// safe for concurrent use; the orchestrator serializes turns.
type Engine struct {
	rng     *rand.Rand
	pending *Pending
}

// NewEngine creates an Engine drawing questions with the given source.
func NewEngine(rng *rand.Rand) *Engine {
	return &Engine{rng: rng}
}

// Issue draws a question uniformly at random from the bot's quiz bank and
// makes it the pending question, discarding any previous one.
func (e *Engine) Issue(bot catalog.Bot, modeID string) (Issued, error) {
	bank, err := catalog.QuizBank(bot, modeID)
	if err != nil {
		return Issued{}, err
	}
	q := bank[e.rng.IntN(len(bank))]
	e.pending = &Pending{
		Letter:      q.Correct,
		Answer:      q.Answer,
		Explanation: q.Explanation,
	}
	return Issued{Question: q.Question, Options: q.Options}, nil
}

// Grade checks raw against the pending question and clears it, correct or
// not. Returns nil when no question is pending.
//
// An answer is accepted when it equals the correct letter
// (case-insensitive), contains the correct answer text as a substring
// (deliberate leniency, kept from the original behavior), or is a single
// character matching the letter.
func (e *Engine) Grade(raw string) *GradeResult {
	if e.pending == nil {
		return nil
	}
	p := e.pending
	e.pending = nil

	answer := strings.ToLower(strings.TrimSpace(raw))
	letter := strings.ToLower(p.Letter)
	full := strings.ToLower(p.Answer)

	correct := answer == letter ||
		strings.Contains(answer, full) ||
		(len(answer) == 1 && answer == letter)

	return &GradeResult{
		Correct:     correct,
		Letter:      p.Letter,
		Answer:      p.Answer,
		Explanation: p.Explanation,
	}
}

// HasPending reports whether a question is awaiting an answer.
func (e *Engine) HasPending() bool {
	return e.pending != nil
}

// Reset clears any pending question. Called when a new chat starts.
func (e *Engine) Reset() {
	e.pending = nil
}
