// Package fallback is the deterministic local responder used whenever the
// LLM provider is unconfigured or fails. Each bot/mode pair carries an
// ordered rule table; the first rule whose keyword list matches the
// lowercased message wins. Quiz modes delegate to the quiz engine.
package fallback

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/ankitadas/tutorbuddy/internal/catalog"
	"github.com/ankitadas/tutorbuddy/internal/quiz"
)

// rule pairs a keyword predicate with a response source. When responses
// holds several entries one is picked uniformly at random; render, when
// set, takes precedence and builds the reply itself.
type rule struct {
	keywords  []string
	responses []string
	render    func(r *Responder) string
}

func (ru rule) matches(msg string) bool {
	for _, kw := range ru.keywords {
		if strings.Contains(msg, kw) {
			return true
		}
	}
	return false
}

// modeRules is the rule table plus default responses for one bot/mode pair.
// Rules are evaluated in declared order; defaults fire when nothing matches.
type modeRules struct {
	rules    []rule
	defaults []string
}

// catchAll answers any bot/mode pair with no table of its own, keeping the
// responder total.
const catchAll = "That's interesting! Keep asking questions and exploring. Learning is an adventure! 🌟"

// Responder selects canned replies by keyword matching. The random source
// is injected so tests can pin the choice among equally-ranked responses.
type Responder struct {
	rng *rand.Rand
}

// New creates a Responder using the given random source.
func New(rng *rand.Rand) *Responder {
	return &Responder{rng: rng}
}

// Respond computes the fallback reply for a user message. For quiz modes it
// grades a pending question or issues a new one through engine; for all
// other modes it walks the mode's rule table. The reply is never empty.
func (r *Responder) Respond(bot catalog.Bot, modeID, message string, engine *quiz.Engine) string {
	msg := strings.ToLower(message)

	if modeID == catalog.ModeQuiz {
		return r.quizReply(bot, msg, engine)
	}

	tables, ok := ruleTables[bot]
	if !ok {
		return catchAll
	}
	table, ok := tables[modeID]
	if !ok {
		return catchAll
	}

	for _, ru := range table.rules {
		if !ru.matches(msg) {
			continue
		}
		if ru.render != nil {
			return ru.render(r)
		}
		return r.pick(ru.responses)
	}
	if len(table.defaults) == 0 {
		return catchAll
	}
	return r.pick(table.defaults)
}

// quizReply runs the quiz flow: grade first when a question is pending,
// otherwise issue a new question only when the message carries a trigger
// word. Anything else gets the mode's encouragement line.
func (r *Responder) quizReply(bot catalog.Bot, msg string, engine *quiz.Engine) string {
	if engine.HasPending() {
		res := engine.Grade(msg)
		return gradeReply(bot, res)
	}

	if containsAny(msg, quizTriggers[bot]) {
		iss, err := engine.Issue(bot, catalog.ModeQuiz)
		if err != nil {
			// Unreachable for catalog bots; keep the responder total anyway.
			return quizIdleReply(bot)
		}
		return formatQuestion(bot, iss)
	}

	return quizIdleReply(bot)
}

// pick returns a uniformly random entry.
func (r *Responder) pick(list []string) string {
	if len(list) == 1 {
		return list[0]
	}
	return list[r.rng.IntN(len(list))]
}

func containsAny(msg string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(msg, kw) {
			return true
		}
	}
	return false
}

// quizTriggers are the words that start a new question in quiz mode.
var quizTriggers = map[catalog.Bot][]string{
	catalog.BotEnglish: {"quiz", "question", "easy", "hard"},
	catalog.BotGK:      {"quiz", "question", "easy", "medium", "hard"},
}

func formatQuestion(bot catalog.Bot, iss quiz.Issued) string {
	if bot == catalog.BotGK {
		return fmt.Sprintf("🏆 **Quiz Time!**\n\n%s\n\nA) %s\nB) %s\nC) %s\n\nType A, B, or C to answer!",
			iss.Question, iss.Options[0], iss.Options[1], iss.Options[2])
	}
	return fmt.Sprintf("🎯 **%s**\n\nA) %s\nB) %s\nC) %s\n\nType A, B, or C to answer!",
		iss.Question, iss.Options[0], iss.Options[1], iss.Options[2])
}

func gradeReply(bot catalog.Bot, res *quiz.GradeResult) string {
	if bot == catalog.BotGK {
		if res.Correct {
			return fmt.Sprintf("✅ **Correct!** Awesome! 🎉\n\n%s\n\nYou're a knowledge champion! Ready for another? Say 'Quiz me!'", res.Explanation)
		}
		return fmt.Sprintf("❌ **Not quite!** The correct answer is **%s) %s**\n\n%s\n\nKeep learning! Try another question? Say 'Quiz me!'",
			res.Letter, res.Answer, res.Explanation)
	}
	if res.Correct {
		return fmt.Sprintf("✅ **Correct!** Great job! 🎉\n\n%s\n\nYou're doing amazing! Want another question? Say 'Quiz me!'", res.Explanation)
	}
	return fmt.Sprintf("❌ **Not quite!** The correct answer is **%s) %s**\n\n%s\n\nDon't worry, mistakes help us learn! Try another one? Say 'Quiz me!'",
		res.Letter, res.Answer, res.Explanation)
}

func quizIdleReply(bot catalog.Bot) string {
	if bot == catalog.BotGK {
		return "Nice try! Every question helps you learn. Remember: The more you know, the more you grow! Want another quiz? Say 'Quiz me!' 🏆"
	}
	return "Good thinking! Remember: Practice makes perfect. Every mistake is a chance to learn. Want another question? Just say 'Quiz me!' 🎯"
}
