package fallback

import "fmt"

// vocabWord is a canned entry for the vocabulary word card.
type vocabWord struct {
	word string
	def  string
	ex   string
	tip  string
}

var vocabWords = []vocabWord{
	{word: "Magnificent", def: "extremely beautiful or impressive", ex: "The sunset was magnificent!", tip: "Think: MAGnificent = MAGical!"},
	{word: "Curious", def: "eager to learn or know something", ex: "She was curious about how planes fly.", tip: "Curious cats want to know everything!"},
	{word: "Brave", def: "showing courage", ex: "The brave firefighter saved the cat.", tip: "Brave people face their fears!"},
	{word: "Generous", def: "willing to give and share", ex: "He was generous with his toys.", tip: "Generous = GENerous with GENerosity!"},
}

func renderVocabCard(r *Responder) string {
	w := vocabWords[r.rng.IntN(len(vocabWords))]
	return fmt.Sprintf("📚 New Word: **%s**\n\nDefinition: %s\n\nExample: \"%s\"\n\nMemory Trick: %s\n\nTry using this word today!",
		w.word, w.def, w.ex, w.tip)
}

var storyStarters = []string{
	"Once upon a time, in a magical forest, there lived a curious fox who discovered a mysterious door...",
	"In a world where robots and humans lived together, a young inventor created something amazing...",
	"On a stormy night, Emma found a glowing book in her grandmother's attic that could...",
	"Deep in the ocean, a brave little fish named Finn decided to explore the forbidden coral reef...",
}

func renderStoryStarter(r *Responder) string {
	return storyStarters[r.rng.IntN(len(storyStarters))] + "\n\nWhat happens next? Continue the story! ✍️"
}

// englishRules holds the rule tables for English Buddy's non-quiz modes.
// Rule order matters: matching is first-match-wins.
var englishRules = map[string]modeRules{
	"grammar": {
		rules: []rule{
			{
				keywords:  []string{"check", "correct", "is this right"},
				responses: []string{"I'd love to help check that! Here's a grammar tip: Always check that your subject and verb agree. For example, 'He runs' (not 'He run'). Also, don't forget punctuation at the end! Share a sentence and I'll help you improve it! 📝"},
			},
			{
				keywords: []string{"tip", "advice", "help"},
				responses: []string{
					"Here's a helpful tip: When writing, read your sentence out loud. If it sounds wrong, it probably is! Common mistakes to watch: their/there/they're, your/you're, and its/it's. 📝",
					"Grammar tip: Every sentence needs a subject (who/what) and a verb (action). Example: 'The cat (subject) sleeps (verb).' Try making your own! 📝",
					"Remember: Use 'a' before consonant sounds (a cat) and 'an' before vowel sounds (an apple). This makes your English sound natural! 📝",
				},
			},
			{
				keywords:  []string{"punctuation", "comma", "period"},
				responses: []string{"Punctuation is like road signs for reading! Periods (.) end sentences. Commas (,) show pauses. Question marks (?) show questions. Exclamation marks (!) show excitement! Which one do you need help with? 📝"},
			},
			{
				keywords:  []string{"tense", "past", "present", "future"},
				responses: []string{"Tenses tell us WHEN something happens! Present: 'I eat' (now), Past: 'I ate' (before), Future: 'I will eat' (later). Which tense would you like to practice? 📝"},
			},
			{
				keywords:  []string{"verb", "action"},
				responses: []string{"Verbs are action words! They tell us what someone or something DOES. Examples: run, jump, think, sleep, eat. Can you think of a verb? Try using it in a sentence! 📝"},
			},
			{
				keywords:  []string{"noun", "person", "place", "thing"},
				responses: []string{"Nouns are naming words! They can be: People (teacher, friend), Places (school, park), Things (book, car), or Ideas (love, freedom). What noun would you like to use in a sentence? 📝"},
			},
			{
				keywords:  []string{"adjective", "describe"},
				responses: []string{"Adjectives describe nouns! They make writing more interesting. Instead of 'dog', say 'big brown dog'. Instead of 'house', say 'beautiful old house'. Try adding adjectives to make your sentences colorful! 📝"},
			},
			{
				keywords:  []string{"interjection", "exclamation"},
				responses: []string{"Interjections are words that express strong feelings or sudden emotions! They're usually followed by an exclamation mark. Examples: Wow! Ouch! Yay! Oops! Hey! Hurray! They add emotion to your writing! 📝"},
			},
			{
				keywords:  []string{"pronoun", "he", "she", "they"},
				responses: []string{"Pronouns replace nouns so we don't repeat them! Examples: I, you, he, she, it, we, they. Instead of 'John went to John's house', we say 'John went to his house'. Much better! 📝"},
			},
			{
				keywords:  []string{"adverb", "how", "when", "where"},
				responses: []string{"Adverbs describe verbs! They tell us HOW, WHEN, or WHERE something happens. Examples: quickly, slowly, yesterday, here, carefully. 'She ran quickly' - 'quickly' describes how she ran! 📝"},
			},
			{
				keywords:  []string{"preposition", "in", "on", "at"},
				responses: []string{"Prepositions show relationships between words! They tell us WHERE or WHEN. Examples: in, on, at, under, over, beside, before, after. 'The cat is ON the table' - 'on' shows where! 📝"},
			},
		},
		defaults: []string{
			"That looks good! Remember: Start sentences with capital letters, use commas for pauses, and end with proper punctuation (. ! ?). Keep up the great work! 📝",
			"Nice work! Grammar tip: Make sure every sentence has a subject and a verb. Read it aloud to check if it sounds right! 📝",
			"Great effort! Remember to check: Capital letter at start? Subject-verb agreement? Punctuation at end? You're doing well! 📝",
			"Good job! Here's a quick check: Does your sentence make sense? Is it complete? Does it have proper punctuation? Keep practicing! 📝",
		},
	},
	"vocabulary": {
		rules: []rule{
			{
				keywords: []string{"give me a word", "word of the day"},
				render:   renderVocabCard,
			},
		},
		defaults: []string{
			"Words are amazing! The more words you know, the better you can express yourself. Try to learn one new word every day and use it in a sentence. What word would you like to learn about? 📚",
		},
	},
	"story": {
		rules: []rule{
			{
				keywords: []string{"start", "begin"},
				render:   renderStoryStarter,
			},
			{
				keywords:  []string{"character", "idea"},
				responses: []string{"Great stories need interesting characters! Think about: What do they look like? What do they want? What's their biggest fear? Try creating a hero who's brave but also has a funny weakness! ✍️"},
			},
		},
		defaults: []string{
			"Every great story has a beginning (introduce characters), middle (problem/adventure), and end (solution). Add details about what characters see, hear, and feel. Keep writing - you're doing great! ✍️",
		},
	},
	"conversation": {
		rules: []rule{
			{
				keywords: []string{"hello", "hi", "hey"},
				responses: []string{
					"Hello! I'm so happy to chat with you! Tell me, what's your favorite thing to do after school? 💬",
					"Hi there! How's your day going? I'd love to hear about it! 💬",
					"Hey! Great to see you! What would you like to talk about today? 💬",
				},
			},
			{
				keywords:  []string{"school", "class", "teacher", "homework"},
				responses: []string{"School is such an important part of life! What's your favorite subject? I think every subject teaches us something valuable. Math helps us solve problems, English helps us express ourselves, and science helps us understand the world! 📚"},
			},
			{
				keywords:  []string{"play", "game", "hobby", "fun"},
				responses: []string{"Playing and having hobbies is so important! It helps us relax and learn new skills. What games or activities do you enjoy? Whether it's sports, video games, drawing, or reading - they all help us grow in different ways! 🎮"},
			},
			{
				keywords:  []string{"family", "mom", "dad", "brother", "sister", "parent"},
				responses: []string{"Family is wonderful! They're the people who care about us the most. Do you have siblings? What do you like doing with your family? Family time is precious! 👨‍👩‍👧‍👦"},
			},
			{
				keywords:  []string{"food", "eat", "hungry", "lunch", "dinner", "breakfast"},
				responses: []string{"Food is not just fuel - it's also about culture and memories! What's your favorite food? I find it interesting how different cultures have different cuisines. Do you like trying new foods? 🍕"},
			},
			{
				keywords:  []string{"pet", "dog", "cat", "animal"},
				responses: []string{"Animals are amazing! Do you have any pets? If you could have any pet in the world, what would it be? Pets teach us responsibility and give us companionship. Even learning about wild animals is fascinating! 🐕"},
			},
			{
				keywords:  []string{"sport", "soccer", "basketball", "football", "cricket"},
				responses: []string{"Sports are great for staying healthy and learning teamwork! Do you play any sports? Even if you don't play, watching sports can be exciting. What's your favorite sport to play or watch? ⚽"},
			},
			{
				keywords:  []string{"book", "read", "story"},
				responses: []string{"Reading is like having adventures without leaving your room! What kind of books do you like? Fantasy, mystery, adventure? Books help us learn new words and imagine new worlds. Do you have a favorite book or author? 📖"},
			},
			{
				keywords:  []string{"movie", "film", "watch", "tv", "show"},
				responses: []string{"Movies and shows are great entertainment! What's your favorite movie or TV show? I think stories, whether in books or on screen, help us understand different perspectives and emotions. What genre do you like best? 🎬"},
			},
			{
				keywords:  []string{"weather", "rain", "sunny", "cold", "hot"},
				responses: []string{"Weather affects our mood and activities! What's your favorite type of weather? I think rainy days are cozy for reading, while sunny days are perfect for outdoor fun. What do you like to do in different weather? ☀️"},
			},
			{
				keywords:  []string{"happy", "sad", "angry", "excited", "feel"},
				responses: []string{"It's important to talk about our feelings! Everyone feels different emotions, and that's completely normal. What makes you feel happy? Remember, it's okay to feel sad sometimes too - talking about it helps! 😊"},
			},
			{
				keywords:  []string{"friend", "buddy", "pal"},
				responses: []string{"Friends make life more fun! Good friends support each other and share good times together. What do you like doing with your friends? Friendship is about being kind, listening, and having fun together! 👫"},
			},
			{
				keywords:  []string{"music", "song", "sing"},
				responses: []string{"Music is universal! Every culture has music. What kind of music do you like? Do you play any instruments or enjoy singing? Music can make us happy, help us relax, or give us energy! 🎵"},
			},
			{
				keywords:  []string{"computer", "phone", "internet", "video"},
				responses: []string{"Technology is amazing! It helps us learn, communicate, and have fun. What's your favorite thing to do with technology? Remember to balance screen time with other activities too! 💻"},
			},
			{
				keywords:  []string{"?", "what", "why", "how"},
				responses: []string{"That's a great question! Asking questions shows you're curious and want to learn. I love answering questions! Can you tell me more about what you're wondering? The more specific you are, the better I can help! ❓"},
			},
			{
				keywords:  []string{"favorite", "best", "love"},
				responses: []string{"It's fun to talk about our favorites! Our favorites tell a lot about who we are and what we enjoy. What else do you love? Whether it's a color, food, activity, or place - I'd love to hear about it! ⭐"},
			},
			{
				keywords:  []string{"learn", "help", "teach", "understand"},
				responses: []string{"I'm here to help you learn! What would you like to know more about? Learning is a journey, and asking for help is a sign of strength, not weakness. What can I help you with today? 📚"},
			},
			{
				keywords:  []string{"today", "yesterday", "tomorrow"},
				responses: []string{"Time is interesting! Each day is a new opportunity. What did you do today? Or what are you planning for tomorrow? Talking about our daily experiences helps us practice English naturally! 📅"},
			},
		},
		defaults: []string{
			"That's interesting! Tell me more about that. I'm curious to hear your thoughts! 💬",
			"I see! Can you explain a bit more? The more we talk, the better your English gets! 💬",
			"Wow! That sounds cool! What else can you tell me about it? 💬",
			"Nice! I'd love to hear more details. What do you think about it? 💬",
			"Interesting point! How do you feel about that? Sharing our thoughts helps us practice! 💬",
			"That's a good topic! What's your opinion on it? I'm here to listen and chat! 💬",
			"Cool! Can you give me an example? Examples help make conversations more interesting! 💬",
			"I understand! What made you think of that? I love hearing your ideas! 💬",
		},
	},
}
