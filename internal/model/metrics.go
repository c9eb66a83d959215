package model

import "time"

// TopicCount holds the number of conversations assigned to one topic
// category, with its share of the total.
type TopicCount struct {
	Name          string `json:"name"`
	Conversations int    `json:"conversations"`
	Percentage    int    `json:"percentage"`
}

// ConversationLength identifies a conversation by title with its turn count.
type ConversationLength struct {
	Title string `json:"title"`
	Turns int    `json:"turns"`
}

// MetricsSnapshot is the aggregate computed in a single pass over the
// normalized conversation list. Immutable once built.
type MetricsSnapshot struct {
	TotalConversations int `json:"totalConversations"`
	TotalPrompts       int `json:"totalPrompts"`
	TotalResponses     int `json:"totalResponses"`

	InputTokens  int64 `json:"totalTokensInput"`
	OutputTokens int64 `json:"totalTokensOutput"`
	TotalTokens  int64 `json:"totalTokens"`

	HourCounts [24]int        `json:"hourCounts"`
	DayCounts  [7]int         `json:"dayCounts"` // Sunday = 0
	DateCounts map[string]int `json:"dateCounts"`
	ActiveDays int            `json:"activeDays"`

	PeakHour int `json:"peakHour"`
	PeakDay  int `json:"peakDay"` // weekday index, Sunday = 0

	LongestConversation  ConversationLength `json:"longestConversation"`
	ShortestConversation ConversationLength `json:"shortestConversation"`

	PoliteCount       int `json:"politeCount"`
	LateNightCount    int `json:"lateNightCount"`
	EarlyMorningCount int `json:"earlyMorningCount"`

	LongestStreak int `json:"longestStreak"`
	CurrentStreak int `json:"currentStreak"`

	Topics []TopicCount `json:"topics"` // sorted by count descending

	FirstActivity time.Time `json:"firstActivity,omitempty"`
}

// DominantTopic returns the highest-count topic name, or "" when no
// topics were assigned.
func (m MetricsSnapshot) DominantTopic() string {
	if len(m.Topics) == 0 {
		return ""
	}
	return m.Topics[0].Name
}

// AverageConversationLength is prompts per conversation.
func (m MetricsSnapshot) AverageConversationLength() float64 {
	if m.TotalConversations == 0 {
		return 0
	}
	return float64(m.TotalPrompts) / float64(m.TotalConversations)
}
