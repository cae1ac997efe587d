package catalog

import "fmt"

// QuizQuestion is a multiple-choice question with exactly three options
// lettered A, B, C.
type QuizQuestion struct {
	Question string
	Options  [3]string // index 0=A, 1=B, 2=C

	// Correct is the correct option letter ("A", "B" or "C").
	Correct string

	// Answer is the full text of the correct option.
	Answer string

	Explanation string
}

// Letters are the option letters in order.
var Letters = [3]string{"A", "B", "C"}

var englishQuizBank = []QuizQuestion{
	{
		Question:    "Which sentence is correct?",
		Options:     [3]string{"She don't like pizza", "She doesn't like pizza", "She doesn't likes pizza"},
		Correct:     "B",
		Answer:      "She doesn't like pizza",
		Explanation: "We use 'doesn't' (does not) with 'she/he/it', and the main verb stays in base form (like, not likes).",
	},
	{
		Question:    "What's the plural of 'child'?",
		Options:     [3]string{"Childs", "Children", "Childrens"},
		Correct:     "B",
		Answer:      "Children",
		Explanation: "'Child' is an irregular noun. Its plural form is 'children', not 'childs'. Some words don't follow the regular -s/-es pattern!",
	},
	{
		Question:    "Which word means 'very happy'?",
		Options:     [3]string{"Sad", "Joyful", "Angry"},
		Correct:     "B",
		Answer:      "Joyful",
		Explanation: "'Joyful' means full of joy or very happy. It's a positive emotion word!",
	},
	{
		Question:    "Choose the correct verb form:",
		Options:     [3]string{"I am going to school", "I is going to school", "I are going to school"},
		Correct:     "A",
		Answer:      "I am going to school",
		Explanation: "We use 'am' with 'I', 'is' with 'he/she/it', and 'are' with 'you/we/they'.",
	},
}

var gkQuizBank = []QuizQuestion{
	{
		Question:    "What is the largest planet in our solar system?",
		Options:     [3]string{"Earth", "Jupiter", "Saturn"},
		Correct:     "B",
		Answer:      "Jupiter",
		Explanation: "Jupiter is the largest planet! It's so big that more than 1,300 Earths could fit inside it. It's a gas giant with beautiful swirling storms!",
	},
	{
		Question:    "How many continents are there?",
		Options:     [3]string{"5", "6", "7"},
		Correct:     "C",
		Answer:      "7",
		Explanation: "There are 7 continents: Africa, Antarctica, Asia, Australia, Europe, North America, and South America. Each one is unique!",
	},
	{
		Question:    "What do bees make?",
		Options:     [3]string{"Milk", "Honey", "Butter"},
		Correct:     "B",
		Answer:      "Honey",
		Explanation: "Bees make honey! They collect nectar from flowers and turn it into sweet, golden honey. A single bee makes only about 1/12 of a teaspoon in its lifetime!",
	},
	{
		Question:    "What is the fastest land animal?",
		Options:     [3]string{"Lion", "Cheetah", "Horse"},
		Correct:     "B",
		Answer:      "Cheetah",
		Explanation: "The cheetah is the fastest land animal! It can run up to 70 mph (112 km/h) in short bursts. That's faster than a car on the highway!",
	},
	{
		Question:    "What is the capital of France?",
		Options:     [3]string{"London", "Paris", "Rome"},
		Correct:     "B",
		Answer:      "Paris",
		Explanation: "Paris is the capital of France! It's known as the 'City of Light' and is famous for the Eiffel Tower, which was built in 1889.",
	},
	{
		Question:    "How many legs does a spider have?",
		Options:     [3]string{"6", "8", "10"},
		Correct:     "B",
		Answer:      "8",
		Explanation: "Spiders have 8 legs! This is what makes them arachnids, not insects. Insects have 6 legs. All spiders have 8 legs, no matter their size!",
	},
}

// QuizBank returns the question pool for a bot's quiz mode.
func QuizBank(bot Bot, modeID string) ([]QuizQuestion, error) {
	mode, err := ModeByID(bot, modeID)
	if err != nil {
		return nil, err
	}
	if !mode.IsQuiz() {
		return nil, fmt.Errorf("%w: mode %q of bot %q is not a quiz mode", ErrInvalidConfiguration, modeID, bot)
	}
	switch bot {
	case BotEnglish:
		return englishQuizBank, nil
	case BotGK:
		return gkQuizBank, nil
	}
	return nil, fmt.Errorf("%w: no quiz bank for bot %q", ErrInvalidConfiguration, bot)
}
