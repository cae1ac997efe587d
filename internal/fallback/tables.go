package fallback

import "github.com/ankitadas/tutorbuddy/internal/catalog"

// ruleTables maps each bot to its per-mode rule tables. Quiz modes are
// absent on purpose; they route through the quiz engine instead.
var ruleTables = map[catalog.Bot]map[string]modeRules{
	catalog.BotEnglish: englishRules,
	catalog.BotGK:      gkRules,
}
