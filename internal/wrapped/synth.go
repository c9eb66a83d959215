// Package wrapped turns a metrics snapshot into the shareable
// year-in-review profile: topics with display metadata, a personality
// archetype, earned badges, the activity heatmap, and the playful
// comparisons the slides render.
package wrapped

import (
	"fmt"
	"strings"
	"time"

	"github.com/nightcatdev/aiwrap/internal/model"
)

// Benchmarks are the fixed population reference points behind the
// percentile estimates. They are presentation flavor, so callers may
// override them from config.
type Benchmarks struct {
	AvgPromptsPerYear  int
	ConversationsBase  int
	TokensBase         int64
	DiversityPerTopic  int
	PowerUserPrompts   int
	RegularUserPrompts int
}

// DefaultBenchmarks mirrors the published reference values.
func DefaultBenchmarks() Benchmarks {
	return Benchmarks{
		AvgPromptsPerYear:  7300,
		ConversationsBase:  1000,
		TokensBase:         3_000_000,
		DiversityPerTopic:  15,
		PowerUserPrompts:   10_000,
		RegularUserPrompts: 5_000,
	}
}

// Options adjusts profile synthesis. The zero value means "now" with
// default benchmarks.
type Options struct {
	Now        time.Time
	Benchmarks *Benchmarks
}

// Build derives the complete profile from a snapshot. Pure function of
// its inputs; rebuilding from the same snapshot and options yields the
// same profile.
func Build(snap model.MetricsSnapshot, opts Options) model.DerivedProfile {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	bench := DefaultBenchmarks()
	if opts.Benchmarks != nil {
		bench = *opts.Benchmarks
	}

	topics := make([]model.TopicShare, len(snap.Topics))
	for i, t := range snap.Topics {
		meta := metaFor(t.Name)
		topics[i] = model.TopicShare{
			Name:          t.Name,
			Conversations: t.Conversations,
			Percentage:    t.Percentage,
			Icon:          meta.Icon,
			Color:         meta.Color,
		}
	}

	heatmap := buildHeatmap(snap.DateCounts, now)
	if snap.ActiveDays == 0 {
		heatmap = seededHeatmap(snap, now)
	}

	return model.DerivedProfile{
		Metrics:     snap,
		Topics:      topics,
		TopTopic:    topHighlight(snap),
		Personality: determinePersonality(snap),
		Badges:      earnBadges(snap, now),
		Heatmap:     heatmap,
		QuirkyFacts: quirkyFacts(snap),
		Months:      monthlyHighlights(snap.DateCounts),
		PeakTimes:   peakTimes(snap),
		Tokens:      tokenBreakdown(snap),
		Comparisons: comparisons(snap, bench),
		GeneratedAt: now,
	}
}

func topHighlight(snap model.MetricsSnapshot) model.TopicHighlight {
	if len(snap.Topics) == 0 {
		return model.TopicHighlight{
			Name:          "General Conversations",
			Conversations: snap.TotalConversations,
			Percentage:    100,
			Icon:          "💬",
			Insight:       fmt.Sprintf("You had %d conversations this year.", snap.TotalConversations),
		}
	}
	top := snap.Topics[0]
	return model.TopicHighlight{
		Name:          top.Name,
		Conversations: top.Conversations,
		Percentage:    top.Percentage,
		Icon:          metaFor(top.Name).Icon,
		Insight: fmt.Sprintf("You had %d conversations about %s.",
			top.Conversations, strings.ToLower(top.Name)),
	}
}

func tokenBreakdown(snap model.MetricsSnapshot) model.TokenBreakdown {
	ratio := 0.0
	if snap.InputTokens > 0 {
		ratio = float64(snap.OutputTokens) / float64(snap.InputTokens)
		ratio = float64(int(ratio*100+0.5)) / 100
	}
	return model.TokenBreakdown{
		Input:            snap.InputTokens,
		Output:           snap.OutputTokens,
		Ratio:            ratio,
		EquivalentWords:  int64(float64(snap.TotalTokens)*0.75 + 0.5),
		EquivalentBooks:  float64(int(float64(snap.TotalTokens)/75000*10+0.5)) / 10,
		EquivalentTweets: snap.TotalTokens / 56,
	}
}

func comparisons(snap model.MetricsSnapshot, bench Benchmarks) model.Comparisons {
	promptsPercentile := 0
	if snap.TotalPrompts > 0 {
		promptsPercentile = minInt(99, roundPct((1-float64(bench.AvgPromptsPerYear)/float64(snap.TotalPrompts))*100))
	}

	category := "Casual User"
	switch {
	case snap.TotalPrompts > bench.PowerUserPrompts:
		category = "Power User"
	case snap.TotalPrompts > bench.RegularUserPrompts:
		category = "Regular User"
	}

	perDay := snap.TotalPrompts
	if snap.ActiveDays > 0 {
		perDay = snap.TotalPrompts / snap.ActiveDays
	}

	return model.Comparisons{
		ConversationsPercentile: minInt(99, roundPct(float64(snap.TotalConversations)/float64(bench.ConversationsBase)*100)),
		TokensPercentile:        minInt(99, roundPct(float64(snap.TotalTokens)/float64(bench.TokensBase)*100)),
		DiversityPercentile:     minInt(99, len(snap.Topics)*bench.DiversityPerTopic),
		ConsistencyPercentile:   minInt(99, roundPct(float64(snap.ActiveDays)/365*100)),
		PromptsPercentile:       promptsPercentile,
		UserCategory:            category,
		PromptsPerDay:           fmt.Sprintf("%d/day", perDay),
		Insights: []string{
			fmt.Sprintf("With %s prompts, you're in the top %d%% of ChatGPT users! 🌍",
				groupDigits(snap.TotalPrompts), 100-maxInt(1, promptsPercentile)),
			fmt.Sprintf("You've explored %d different topic areas this year", len(snap.Topics)),
			fmt.Sprintf("%d active days shows real commitment! 🔥", snap.ActiveDays),
		},
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
