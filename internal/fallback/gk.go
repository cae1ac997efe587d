package fallback

// gkRules holds the rule tables for GK Genius's non-quiz modes.
var gkRules = map[string]modeRules{
	"freeask": {
		defaults: []string{
			"Great question! Here's something cool: The Earth is about 4.5 billion years old! That's older than you can imagine. Did you know that dinosaurs lived millions of years ago but humans have only been around for about 300,000 years? 🌍",
			"Interesting! Let me tell you: The human heart beats about 100,000 times per day! That's like a drum that never stops. Did you know your heart pumps enough blood to fill a swimming pool every year? 💓",
			"Wow! Here's a fact: Light travels so fast it could go around Earth 7.5 times in just ONE second! Did you know it takes 8 minutes for sunlight to reach Earth? ⚡",
			"Cool question! Did you know: There are more stars in the universe than grains of sand on all Earth's beaches! The universe is HUGE! Did you know our galaxy has over 100 billion stars? ✨",
		},
	},
	"explorer": {
		rules: []rule{
			{
				keywords:  []string{"science"},
				responses: []string{"🔬 Science is amazing!\n\n5 Cool Facts:\n1. Water can be solid, liquid, or gas\n2. Plants make their own food using sunlight\n3. Sound travels through air as waves\n4. Magnets attract iron and steel\n5. Your body has 206 bones\n\nWOW Fact: Lightning is 5 times hotter than the sun! ⚡"},
			},
			{
				keywords:  []string{"history"},
				responses: []string{"📜 History is fascinating!\n\n5 Key Facts:\n1. Ancient Egyptians built pyramids 4,500 years ago\n2. Dinosaurs lived millions of years before humans\n3. The first airplane flew in 1903\n4. Humans landed on the moon in 1969\n5. The internet was invented in the 1960s\n\nWOW Fact: Cleopatra lived closer to the iPhone than to the pyramids! 🏛️"},
			},
			{
				keywords:  []string{"space", "astronomy"},
				responses: []string{"🚀 Space is incredible!\n\n5 Amazing Facts:\n1. The sun is a star, not a planet\n2. There are 8 planets in our solar system\n3. A day on Venus is longer than its year\n4. Saturn's rings are made of ice and rock\n5. The moon controls Earth's tides\n\nWOW Fact: You could fit 1.3 million Earths inside the sun! ☀️"},
			},
		},
		defaults: []string{
			"Pick a topic to explore: History, Science, Geography, Animals, or Space! Each one is full of amazing discoveries! 🔍",
		},
	},
	"funfacts": {
		defaults: []string{
			"💡 Fun Fact: Bananas are berries, but strawberries aren't! Weird, right? Berries have seeds inside, and bananas do! Did you know watermelons are berries too? 🍌",
			"💡 Fun Fact: A group of owls is called a 'parliament'! How fancy! Did you know owls can turn their heads 270 degrees? 🦉",
			"💡 Fun Fact: Sharks have been around longer than trees! They're over 400 million years old! Did you know some sharks glow in the dark? 🦈",
			"💡 Fun Fact: Your nose can remember 50,000 different smells! That's amazing! Did you know smell is the strongest sense tied to memory? 👃",
		},
	},
}
