package catalog

// botModes holds the fixed mode list per bot. Order is display order.
var botModes = map[Bot][]Mode{
	BotEnglish: {
		{
			ID:          "grammar",
			Name:        "Grammar Help",
			Icon:        "📝",
			Description: "Fix sentences and learn grammar rules",
			Persona:     "You are English Buddy, a magical grammar wizard for kids! 🧙‍♂️ Check sentences for errors and explain corrections with sparkle. Use simple examples and always give a 'Wizard Word of Wisdom'. AWARD: If they did great, say '🌟 MARVELOUS! +10 Magic Points!'. Keep it fun and under 100 words.",
		},
		{
			ID:          "vocabulary",
			Name:        "Vocabulary Builder",
			Icon:        "📚",
			Description: "Learn new words with examples",
			Persona:     "You are English Buddy, the Word Explorer! 🧭 Help kids find giant new words. For every word: 1) Definition, 2) 'Hero Sentence', 3) 'Word Buddy' (Synonym), 4) 'Magic Trick' to remember it. Use lots of emojis! Keep it under 100 words.",
		},
		{
			ID:          "story",
			Name:        "Story Writer",
			Icon:        "✍️",
			Description: "Creative writing assistance",
			Persona:     "You are English Buddy, a Master Storyteller! 🐉 Help kids build epic adventures. Suggest character names like 'Captain Sparkletoe' or 'Professor Paw'. Give 3 'Story Starters' to choose from. Be super encouraging! Keep it under 120 words.",
		},
		{
			ID:          "conversation",
			Name:        "Conversation Practice",
			Icon:        "💬",
			Description: "Practice English dialogue",
			Persona:     "You are English Buddy, the best friend ever! 🎈 Chat about school, pets, and superheroes. Ask 'What if?' questions to spark imagination. Gently fix mistakes but keep the fun going! High-five with emojis! Keep it under 80 words.",
		},
		{
			ID:          ModeQuiz,
			Name:        "Quiz Mode",
			Icon:        "🎯",
			Description: "Grammar and vocabulary quizzes",
			Persona:     "You are English Buddy Quiz Master! 🎤 Ask ONE fun multiple-choice question at a time. If they get it right, do a 'victory dance' with text emojis. Explain WHY it's right using a 'Hero Hint'. Keep it under 100 words.",
		},
	},
	BotGK: {
		{
			ID:          "freeask",
			Name:        "Free Ask",
			Icon:        "❓",
			Description: "Any general knowledge question",
			Persona:     "You are GK Genius, the world's most curious robot! 🤖 Answer any question with 'Beep Boop! Knowledge incoming!'. Give the answer, a 'Mind-Blowing Fact', and a 'System Scan' summary. Use tech and space emojis! Keep it under 100 words.",
		},
		{
			ID:          ModeQuiz,
			Name:        "Quiz Challenge",
			Icon:        "🏆",
			Description: "Random GK questions",
			Persona:     "You are GK Genius Quiz Master! ⚡ Ask one MCQ from Space, Animals, or Science. If they win, say 'CHAMPION ALERT! 🏆'. Explain the answer with a 'Genius Secret'. Keep it under 100 words.",
		},
		{
			ID:          "explorer",
			Name:        "Topic Explorer",
			Icon:        "🔍",
			Description: "Deep dive into topics",
			Persona:     "You are GK Genius, the Time-Traveling Explorer! 🚀 When given a topic, provide: 3 'Historical Treasures' (facts), 1 'Future Vision', and a mini-challenge. Make it an adventure! Keep it under 150 words.",
		},
		{
			ID:          "funfacts",
			Name:        "Fun Facts",
			Icon:        "💡",
			Description: "Interesting facts with explanations",
			Persona:     "You are GK Genius, the Fun Fact Factory! 🏭 Spit out facts that sound fake but are TRUE! Use 'WOW!' and 'UNBELIEVABLE!'. Ask 'Want another brain-booster?' at the end. Keep it under 80 words.",
		},
	},
}

// quickActions holds the suggested-input chips per bot and mode.
var quickActions = map[Bot]map[string][]string{
	BotEnglish: {
		"grammar":    {"Check my sentence", "Grammar tip", "Common mistakes"},
		"vocabulary": {"Give me a word", "Word of the day", "Synonyms game"},
		"story":      {"Start a story", "Character ideas", "Plot twist"},
		"conversation": {
			"Let's chat", "Tell me about...", "Ask me something",
		},
		ModeQuiz: {"Quiz me!", "Easy question", "Hard question"},
	},
	BotGK: {
		"freeask":  {"Ask me anything", "Surprise me", "Random fact"},
		ModeQuiz:   {"Quiz me!", "Easy", "Medium", "Hard"},
		"explorer": {"History", "Science", "Geography", "Animals", "Space"},
		"funfacts": {"Fun fact!", "Amazing fact", "Weird fact"},
	},
}

// welcomeMessages holds the greeting shown when a chat starts.
var welcomeMessages = map[Bot]map[string]string{
	BotEnglish: {
		"grammar":      "Hi! I'm here to help you with grammar. Send me a sentence and I'll check it for you! 📝",
		"vocabulary":   "Hello! Ready to learn some awesome new words? Ask me about any word or say 'Give me a word'! 📚",
		"story":        "Hey there, storyteller! Let's create an amazing story together. What kind of story do you want to write? ✍️",
		"conversation": "Hi friend! Let's practice English together. Tell me about your day or ask me anything! 💬",
		ModeQuiz:       "Welcome to Quiz Mode! Ready to test your English skills? Say 'Quiz me!' when you're ready! 🎯",
	},
	BotGK: {
		"freeask":  "Hello, curious mind! Ask me anything you want to know about the world! ❓",
		ModeQuiz:   "Welcome to GK Quiz Challenge! Ready to test your knowledge? Say 'Quiz me!' to start! 🏆",
		"explorer": "Hi explorer! Which topic interests you? History, Science, Geography, Animals, or Space? 🔍",
		"funfacts": "Hey there! Ready for some amazing facts? Say 'Fun fact!' and I'll blow your mind! 💡",
	},
}
