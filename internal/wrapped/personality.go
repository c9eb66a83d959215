package wrapped

import (
	"fmt"

	"github.com/nightcatdev/aiwrap/internal/model"
)

// promptsForTopPercentile is the prompt volume mapped to the 100th
// percentile when placing the user on the personality scale.
const promptsForTopPercentile = 15000

type archetype struct {
	Type        string
	Icon        string
	Description string
	Traits      []string
}

var archetypesByTopic = map[string]archetype{
	"Coding & Debugging": {
		Type:        "The Debug Demon 🔥",
		Icon:        "👺",
		Description: "You don't just code, you wage war against bugs with AI as your trusty sidekick. Stack Overflow who?",
		Traits:      []string{"Problem-solver", "Detail-oriented", "Persistent debugger", "Code whisperer"},
	},
	"Creative Writing": {
		Type:        "The Creative Catalyst ✨",
		Icon:        "🎨",
		Description: "Words flow through you like magic. You and AI co-author stories that would make bestseller lists jealous.",
		Traits:      []string{"Imaginative", "Expressive", "Story weaver", "Word artist"},
	},
	"Research & Learning": {
		Type:        "The Knowledge Hunter 🎯",
		Icon:        "🧠",
		Description: "Curiosity is your superpower. You've gone down more rabbit holes than Alice herself.",
		Traits:      []string{"Curious explorer", "Deep thinker", "Fact finder", "Lifelong learner"},
	},
	"Work & Productivity": {
		Type:        "The Productivity Pro ⚡",
		Icon:        "💼",
		Description: "Efficiency is your middle name. You've turned AI into the ultimate productivity hack.",
		Traits:      []string{"Goal-oriented", "Efficient", "Organized", "Results-driven"},
	},
}

var fallbackArchetype = archetype{
	Type:        "The AI Explorer 🚀",
	Icon:        "🌟",
	Description: "You explore the full potential of AI, never afraid to try something new.",
	Traits:      []string{"Adventurous", "Open-minded", "Versatile", "Innovative"},
}

// determinePersonality picks the archetype keyed by the dominant topic
// and decorates the traits from behavior counters. The polite trait
// replaces the fourth base trait rather than extending the list.
func determinePersonality(snap model.MetricsSnapshot) model.Personality {
	base, ok := archetypesByTopic[snap.DominantTopic()]
	if !ok {
		base = fallbackArchetype
	}

	traits := append([]string(nil), base.Traits...)
	if snap.LateNightCount > 50 {
		traits = append(traits, "Night owl 🦉")
	}
	if snap.PoliteCount > 50 {
		traits = append(traits[:3:3], "Polite prompter 🤝")
	}

	percentile := minInt(99, roundPct(float64(snap.TotalPrompts)/promptsForTopPercentile*100))

	return model.Personality{
		Type:        base.Type,
		Icon:        base.Icon,
		Description: base.Description,
		Traits:      traits,
		Percentile:  percentile,
		Comparison:  fmt.Sprintf("Top %d%% of users share your energy! 🌊", 100-percentile),
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func roundPct(f float64) int {
	if f < 0 {
		return 0
	}
	return int(f + 0.5)
}
