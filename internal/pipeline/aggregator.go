// Package pipeline computes the metrics snapshot from normalized
// conversation records in a single pass, and classifies conversations
// into topic categories.
package pipeline

import (
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/nightcatdev/aiwrap/internal/model"
)

// Token estimation constants. Real text is estimated at one token per
// four characters. Records recovered from counts alone carry no text,
// so the aggregator falls back to average message lengths.
const (
	charsPerToken     = 4
	avgPromptChars    = 150
	avgResponseChars  = 500
	maxTopics         = 6
	lateNightStart    = 0 // inclusive hour
	lateNightEnd      = 4 // inclusive hour
	earlyMorningStart = 5
	earlyMorningEnd   = 6
)

// EstimateTokens approximates the token count of a message body.
// Empty text estimates to zero.
func EstimateTokens(text string) int64 {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return 0
	}
	return int64((n + charsPerToken - 1) / charsPerToken)
}

// Aggregate computes a MetricsSnapshot from the record list in one
// pass. Records with no turns are dropped first; if nothing remains
// the whole export is treated as empty.
func Aggregate(records []model.ConversationRecord, now time.Time) (model.MetricsSnapshot, error) {
	kept := records[:0:0]
	for _, r := range records {
		if len(r.Turns) > 0 {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return model.MetricsSnapshot{}, model.ErrEmptyExport
	}

	snap := model.MetricsSnapshot{
		TotalConversations: len(kept),
		DateCounts:         make(map[string]int),
	}
	topicTally := make(map[string]int)
	var firstActivity time.Time

	for _, conv := range kept {
		topicTally[ClassifyTitle(conv.Title)]++

		turnCount := len(conv.Turns)
		if snap.LongestConversation.Turns == 0 || turnCount > snap.LongestConversation.Turns {
			snap.LongestConversation = model.ConversationLength{Title: conv.Title, Turns: turnCount}
		}
		if snap.ShortestConversation.Turns == 0 || turnCount < snap.ShortestConversation.Turns {
			snap.ShortestConversation = model.ConversationLength{Title: conv.Title, Turns: turnCount}
		}

		for _, turn := range conv.Turns {
			ts := turn.Timestamp
			if ts.IsZero() {
				ts = conv.CreatedAt
			}

			switch turn.Role {
			case model.RoleUser:
				snap.TotalPrompts++
				snap.InputTokens += EstimateTokens(turn.Text)
				if isPolite(turn.Text) {
					snap.PoliteCount++
				}
				if !ts.IsZero() {
					local := ts.Local()
					h := local.Hour()
					snap.HourCounts[h]++
					snap.DayCounts[int(local.Weekday())]++
					snap.DateCounts[local.Format(dateLayout)]++
					if h >= lateNightStart && h <= lateNightEnd {
						snap.LateNightCount++
					}
					if h >= earlyMorningStart && h <= earlyMorningEnd {
						snap.EarlyMorningCount++
					}
				}
			case model.RoleAssistant:
				snap.TotalResponses++
				snap.OutputTokens += EstimateTokens(turn.Text)
			}

			if !ts.IsZero() && (firstActivity.IsZero() || ts.Before(firstActivity)) {
				firstActivity = ts
			}
		}
	}

	snap.TotalTokens = snap.InputTokens + snap.OutputTokens
	if snap.TotalTokens == 0 && snap.TotalPrompts > 0 {
		// Count-only recovery produced records without bodies. Estimate
		// volume from average message lengths instead of reporting zero.
		snap.InputTokens = int64(snap.TotalPrompts) * avgPromptChars / charsPerToken
		snap.OutputTokens = int64(snap.TotalResponses) * avgResponseChars / charsPerToken
		snap.TotalTokens = snap.InputTokens + snap.OutputTokens
	}

	snap.ActiveDays = len(snap.DateCounts)
	snap.PeakHour = argmax(snap.HourCounts[:])
	snap.PeakDay = argmax(snap.DayCounts[:])
	snap.FirstActivity = firstActivity
	snap.LongestStreak, snap.CurrentStreak = Streaks(snap.DateCounts, now)
	snap.Topics = rankTopics(topicTally, len(kept))

	return snap, nil
}

// isPolite reports whether a prompt contains a courtesy word. Counted
// at most once per turn no matter how many occurrences.
func isPolite(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "please") || strings.Contains(lower, "thank")
}

// rankTopics orders tallied topics by count descending, name ascending
// on ties, and keeps the top entries with rounded percentages.
func rankTopics(tally map[string]int, total int) []model.TopicCount {
	topics := make([]model.TopicCount, 0, len(tally))
	for name, count := range tally {
		pct := int(float64(count)/float64(total)*100 + 0.5)
		topics = append(topics, model.TopicCount{Name: name, Conversations: count, Percentage: pct})
	}
	sort.Slice(topics, func(i, j int) bool {
		if topics[i].Conversations != topics[j].Conversations {
			return topics[i].Conversations > topics[j].Conversations
		}
		return topics[i].Name < topics[j].Name
	})
	if len(topics) > maxTopics {
		topics = topics[:maxTopics]
	}
	return topics
}

func argmax(counts []int) int {
	best := 0
	for i, c := range counts {
		if c > counts[best] {
			best = i
		}
	}
	return best
}
