package model

import "time"

// TopicShare is a topic entry enriched with display metadata for the
// rendering layer.
type TopicShare struct {
	Name          string `json:"name"`
	Conversations int    `json:"conversations"`
	Percentage    int    `json:"percentage"`
	Icon          string `json:"icon"`
	Color         string `json:"color"`
}

// TopicHighlight describes the single dominant topic.
type TopicHighlight struct {
	Name          string `json:"name"`
	Conversations int    `json:"conversations"`
	Percentage    int    `json:"percentage"`
	Icon          string `json:"icon"`
	Insight       string `json:"insight"`
}

// Personality is the selected archetype plus behavioral traits.
type Personality struct {
	Type        string   `json:"type"`
	Icon        string   `json:"icon"`
	Description string   `json:"description"`
	Traits      []string `json:"traits"`
	Percentile  int      `json:"percentile"`
	Comparison  string   `json:"comparison"`
}

// Badge is one earned achievement.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	EarnedDate  string `json:"earnedDate"` // processing date, exports carry no unlock history
}

// HeatmapDay is one cell of the 365-day activity heatmap.
// Level is always in [0, 5].
type HeatmapDay struct {
	Date  string `json:"date"` // 2006-01-02
	Count int    `json:"count"`
	Level int    `json:"level"`
}

// MonthHighlight is one month singled out for the year recap.
type MonthHighlight struct {
	Month    string `json:"month"`
	Messages int    `json:"messages"`
	Note     string `json:"note"`
}

// MonthlyHighlights pairs the busiest and quietest months.
type MonthlyHighlights struct {
	Busiest  MonthHighlight `json:"busiest"`
	Quietest MonthHighlight `json:"quietest"`
}

// PeakTimes describes when the user is most active.
type PeakTimes struct {
	BestHour string `json:"bestHour"`
	BestDay  string `json:"bestDay"`
	Insight  string `json:"insight"`
}

// TokenBreakdown holds token totals with playful real-world equivalents.
type TokenBreakdown struct {
	Input            int64   `json:"input"`
	Output           int64   `json:"output"`
	Ratio            float64 `json:"ratio"`
	EquivalentWords  int64   `json:"equivalentWords"`
	EquivalentBooks  float64 `json:"equivalentBooks"`
	EquivalentTweets int64   `json:"equivalentTweets"`
}

// Comparisons holds percentile estimates against fixed population
// benchmarks. Presentation flavor, not rigorous statistics.
type Comparisons struct {
	ConversationsPercentile int      `json:"conversationsPercentile"`
	TokensPercentile        int      `json:"tokensPercentile"`
	DiversityPercentile     int      `json:"diversityPercentile"`
	ConsistencyPercentile   int      `json:"consistencyPercentile"`
	PromptsPercentile       int      `json:"promptsPercentile"`
	UserCategory            string   `json:"userCategory"`
	PromptsPerDay           string   `json:"userPromptsPerDay"`
	Insights                []string `json:"insights"`
}

// DerivedProfile is the final shareable model consumed by every slide.
// Pure function of a MetricsSnapshot; recomputed wholesale, never
// incrementally updated.
type DerivedProfile struct {
	Metrics     MetricsSnapshot   `json:"summary"`
	Topics      []TopicShare      `json:"topics"`
	TopTopic    TopicHighlight    `json:"topTopic"`
	Personality Personality       `json:"personality"`
	Badges      []Badge           `json:"badges"`
	Heatmap     []HeatmapDay      `json:"heatmapData"`
	QuirkyFacts []string          `json:"quirkyFacts"`
	Months      MonthlyHighlights `json:"monthlyHighlights"`
	PeakTimes   PeakTimes         `json:"peakTimes"`
	Tokens      TokenBreakdown    `json:"tokens"`
	Comparisons Comparisons       `json:"comparisons"`
	GeneratedAt time.Time         `json:"generatedAt"`
}
