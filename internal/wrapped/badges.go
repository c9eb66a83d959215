package wrapped

import (
	"time"

	"github.com/nightcatdev/aiwrap/internal/model"
)

// badgeRule decides one achievement from the snapshot. Rules are
// evaluated in catalog order so the earned list is deterministic.
type badgeRule struct {
	id          string
	name        string
	description string
	icon        string
	color       string
	earned      func(model.MetricsSnapshot) bool
}

var badgeCatalog = []badgeRule{
	{"token-titan", "Token Titan", "Processed 1M+ tokens", "👑", "#00f0ff",
		func(s model.MetricsSnapshot) bool { return s.TotalTokens > 1_000_000 }},
	{"word-tsunami", "Word Tsunami", "500+ conversations", "🌊", "#1fb8cd",
		func(s model.MetricsSnapshot) bool { return s.TotalConversations > 500 }},
	{"prompt-prodigy", "Prompt Prodigy", "10,000+ prompts sent", "🎯", "#ff00a8",
		func(s model.MetricsSnapshot) bool { return s.TotalPrompts > 10_000 }},
	{"3am-thinker", "3 AM Thinker", "Late night AI sessions", "🦉", "#8b00ff",
		func(s model.MetricsSnapshot) bool { return s.LateNightCount > 10 }},
	{"early-bird", "Early Bird", "Early morning prompts", "🐦", "#ffee00",
		func(s model.MetricsSnapshot) bool { return s.EarlyMorningCount > 10 }},
	{"consistency-monarch", "Consistency Monarch", "Active 300+ days", "🏰", "#ff00a8",
		func(s model.MetricsSnapshot) bool { return s.ActiveDays > 300 }},
	{"streak-master", "Streak Master", "30+ day streak", "🔥", "#cc785c",
		func(s model.MetricsSnapshot) bool { return s.LongestStreak > 30 }},
	{"polite-prompter", "Polite Prompter", "Said please & thank you 50+ times", "🤝", "#10a37f",
		func(s model.MetricsSnapshot) bool { return s.PoliteCount > 50 }},
	{"daily-devotee", "Daily Devotee", "Active 30+ days", "📅", "#4285f4",
		func(s model.MetricsSnapshot) bool { return s.ActiveDays > 30 }},
	{"topic-explorer", "Topic Explorer", "Explored 5+ topics", "🗺️", "#00ff88",
		func(s model.MetricsSnapshot) bool { return len(s.Topics) > 4 }},
}

// earnBadges walks the catalog and returns the badges the snapshot
// qualifies for. EarnedDate is the processing date; exports carry no
// unlock history.
func earnBadges(snap model.MetricsSnapshot, now time.Time) []model.Badge {
	date := now.Format("2006-01-02")
	var badges []model.Badge
	for _, rule := range badgeCatalog {
		if rule.earned(snap) {
			badges = append(badges, model.Badge{
				ID:          rule.id,
				Name:        rule.name,
				Description: rule.description,
				Icon:        rule.icon,
				Color:       rule.color,
				EarnedDate:  date,
			})
		}
	}
	return badges
}
