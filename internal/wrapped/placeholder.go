package wrapped

import (
	"time"

	"github.com/nightcatdev/aiwrap/internal/model"
)

// PlaceholderProfile builds a demo profile from fabricated but
// plausible metrics. Used by the demo flag so the slide deck can be
// previewed without an export file.
func PlaceholderProfile(now time.Time) model.DerivedProfile {
	if now.IsZero() {
		now = time.Now()
	}

	dateCounts := make(map[string]int)
	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	for i := 0; i < 365; i += 2 {
		dateCounts[start.AddDate(0, 0, i).Format("2006-01-02")] = 3 + i%7
	}

	snap := model.MetricsSnapshot{
		TotalConversations: 847,
		TotalPrompts:       12_340,
		TotalResponses:     12_340,
		InputTokens:        460_000,
		OutputTokens:       1_540_000,
		TotalTokens:        2_000_000,
		DateCounts:         dateCounts,
		ActiveDays:         len(dateCounts),
		PeakHour:           22,
		PeakDay:            3,
		LongestConversation: model.ConversationLength{
			Title: "Rewriting the side project from scratch", Turns: 64,
		},
		ShortestConversation: model.ConversationLength{Title: "quick question", Turns: 2},
		PoliteCount:          73,
		LateNightCount:       58,
		EarlyMorningCount:    12,
		Topics: []model.TopicCount{
			{Name: "Coding & Debugging", Conversations: 412, Percentage: 49},
			{Name: "Research & Learning", Conversations: 160, Percentage: 19},
			{Name: "Work & Productivity", Conversations: 120, Percentage: 14},
			{Name: "Creative Writing", Conversations: 80, Percentage: 9},
			{Name: "Fun & Casual", Conversations: 75, Percentage: 9},
		},
		FirstActivity: start,
	}
	snap.LongestStreak = 41
	snap.CurrentStreak = 6
	for h := range snap.HourCounts {
		snap.HourCounts[h] = 100 + (h*37)%400
	}
	for d := range snap.DayCounts {
		snap.DayCounts[d] = 1200 + (d*211)%800
	}

	return Build(snap, Options{Now: now})
}
