package catalog

// Word is a word-of-the-day entry.
type Word struct {
	Word       string
	Definition string
}

var wordsOfDay = []Word{
	{Word: "Serendipity", Definition: "Finding something good without looking for it"},
	{Word: "Ephemeral", Definition: "Lasting for a very short time"},
	{Word: "Resilient", Definition: "Able to recover quickly from difficulties"},
	{Word: "Eloquent", Definition: "Fluent and persuasive in speaking or writing"},
	{Word: "Benevolent", Definition: "Well-meaning and kindly"},
}

var factsOfDay = []string{
	"Honey never spoils! Archaeologists have found 3000-year-old honey in Egyptian tombs that was still edible.",
	`A group of flamingos is called a "flamboyance"!`,
	"The human brain uses 20% of the body's energy but only makes up 2% of its weight.",
	"Octopuses have three hearts and blue blood!",
	"The shortest war in history lasted only 38 minutes between Britain and Zanzibar in 1896.",
}

// WordsOfDay returns the canned word-of-the-day pool.
func WordsOfDay() []Word {
	out := make([]Word, len(wordsOfDay))
	copy(out, wordsOfDay)
	return out
}

// FactsOfDay returns the canned fact-of-the-day pool.
func FactsOfDay() []string {
	out := make([]string, len(factsOfDay))
	copy(out, factsOfDay)
	return out
}
