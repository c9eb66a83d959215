package pipeline

import (
	"strings"
	"testing"
	"time"

	"github.com/nightcatdev/aiwrap/internal/model"
)

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int64
	}{
		{"empty", "", 0},
		{"one char", "a", 1},
		{"four chars", "abcd", 1},
		{"five chars", "abcde", 2},
		{"multibyte runes", "日本語テスト", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateTokens(tt.text); got != tt.want {
				t.Errorf("EstimateTokens(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestEstimateTokensMonotonic(t *testing.T) {
	prev := int64(0)
	for n := 0; n <= 64; n++ {
		got := EstimateTokens(strings.Repeat("x", n))
		if got < prev {
			t.Fatalf("token estimate shrank at length %d: %d < %d", n, got, prev)
		}
		prev = got
	}
}

func TestAggregateEmpty(t *testing.T) {
	if _, err := Aggregate(nil, time.Now()); err != model.ErrEmptyExport {
		t.Fatalf("Aggregate(nil) error = %v, want ErrEmptyExport", err)
	}

	empty := []model.ConversationRecord{{ID: "conv_1", Title: "ghost"}}
	if _, err := Aggregate(empty, time.Now()); err != model.ErrEmptyExport {
		t.Fatalf("Aggregate(turnless records) error = %v, want ErrEmptyExport", err)
	}
}

func TestAggregateSingleConversation(t *testing.T) {
	ts := time.Date(2024, time.July, 3, 14, 30, 0, 0, time.Local)
	records := []model.ConversationRecord{{
		ID:        "conv_1",
		Title:     "Debug my Python script",
		CreatedAt: ts,
		Turns: []model.Turn{
			{Role: model.RoleUser, Text: "Please help me fix this bug", Timestamp: ts},
			{Role: model.RoleAssistant, Text: "Sure. The loop index is off by one.", Timestamp: ts.Add(time.Minute)},
		},
	}}

	snap, err := Aggregate(records, ts.AddDate(0, 1, 0))
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	if snap.TotalConversations != 1 {
		t.Errorf("TotalConversations = %d, want 1", snap.TotalConversations)
	}
	if snap.TotalPrompts != 1 || snap.TotalResponses != 1 {
		t.Errorf("prompts/responses = %d/%d, want 1/1", snap.TotalPrompts, snap.TotalResponses)
	}
	if snap.PoliteCount != 1 {
		t.Errorf("PoliteCount = %d, want 1", snap.PoliteCount)
	}
	if got := snap.DominantTopic(); got != TopicCoding {
		t.Errorf("DominantTopic = %q, want %q", got, TopicCoding)
	}
	if snap.HourCounts[14] != 1 {
		t.Errorf("HourCounts[14] = %d, want 1", snap.HourCounts[14])
	}
	if snap.DayCounts[int(ts.Weekday())] != 1 {
		t.Errorf("DayCounts[%d] = %d, want 1", int(ts.Weekday()), snap.DayCounts[int(ts.Weekday())])
	}
	if snap.ActiveDays != 1 {
		t.Errorf("ActiveDays = %d, want 1", snap.ActiveDays)
	}
	if snap.TotalTokens != snap.InputTokens+snap.OutputTokens {
		t.Errorf("TotalTokens = %d, want %d", snap.TotalTokens, snap.InputTokens+snap.OutputTokens)
	}
	if snap.TotalTokens == 0 {
		t.Error("TotalTokens = 0 for non-empty text")
	}
	if !snap.FirstActivity.Equal(ts) {
		t.Errorf("FirstActivity = %v, want %v", snap.FirstActivity, ts)
	}
}

func TestAggregatePolitenessOncePerTurn(t *testing.T) {
	ts := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.Local)
	records := []model.ConversationRecord{{
		ID:        "conv_1",
		Title:     "Thanks",
		CreatedAt: ts,
		Turns: []model.Turn{
			{Role: model.RoleUser, Text: "please please PLEASE thank you thanks"},
			{Role: model.RoleUser, Text: "no courtesy here"},
		},
	}}

	snap, err := Aggregate(records, ts)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if snap.PoliteCount != 1 {
		t.Errorf("PoliteCount = %d, want 1 (one polite turn counted once)", snap.PoliteCount)
	}
}

func TestAggregateLateNightAndEarlyMorning(t *testing.T) {
	day := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.Local)
	turns := []model.Turn{
		{Role: model.RoleUser, Text: "3am idea", Timestamp: day.Add(3 * time.Hour)},
		{Role: model.RoleUser, Text: "up at five", Timestamp: day.Add(5 * time.Hour)},
		{Role: model.RoleUser, Text: "midday", Timestamp: day.Add(12 * time.Hour)},
	}
	records := []model.ConversationRecord{{ID: "conv_1", Title: "hours", Turns: turns}}

	snap, err := Aggregate(records, day)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if snap.LateNightCount != 1 {
		t.Errorf("LateNightCount = %d, want 1", snap.LateNightCount)
	}
	if snap.EarlyMorningCount != 1 {
		t.Errorf("EarlyMorningCount = %d, want 1", snap.EarlyMorningCount)
	}
}

func TestAggregateSyntheticFallbackTokens(t *testing.T) {
	records := []model.ConversationRecord{{
		ID:    "conv_1",
		Title: "Conversation 1",
		Turns: []model.Turn{
			{Role: model.RoleUser},
			{Role: model.RoleAssistant},
			{Role: model.RoleUser},
		},
	}}

	snap, err := Aggregate(records, time.Now())
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	wantInput := int64(2) * avgPromptChars / charsPerToken
	wantOutput := int64(1) * avgResponseChars / charsPerToken
	if snap.InputTokens != wantInput {
		t.Errorf("InputTokens = %d, want %d", snap.InputTokens, wantInput)
	}
	if snap.OutputTokens != wantOutput {
		t.Errorf("OutputTokens = %d, want %d", snap.OutputTokens, wantOutput)
	}
	if snap.TotalTokens != wantInput+wantOutput {
		t.Errorf("TotalTokens = %d, want %d", snap.TotalTokens, wantInput+wantOutput)
	}
}

func TestAggregateLongestShortest(t *testing.T) {
	mk := func(title string, turns int) model.ConversationRecord {
		c := model.ConversationRecord{ID: title, Title: title}
		for i := 0; i < turns; i++ {
			role := model.RoleUser
			if i%2 == 1 {
				role = model.RoleAssistant
			}
			c.Turns = append(c.Turns, model.Turn{Role: role, Text: "x"})
		}
		return c
	}
	records := []model.ConversationRecord{mk("mid", 4), mk("long", 10), mk("short", 2)}

	snap, err := Aggregate(records, time.Now())
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if snap.LongestConversation.Title != "long" || snap.LongestConversation.Turns != 10 {
		t.Errorf("LongestConversation = %+v, want long/10", snap.LongestConversation)
	}
	if snap.ShortestConversation.Title != "short" || snap.ShortestConversation.Turns != 2 {
		t.Errorf("ShortestConversation = %+v, want short/2", snap.ShortestConversation)
	}
}

func TestAggregateTopicRanking(t *testing.T) {
	titles := []string{
		"Fix the build error", "Debug the API", "Refactor python code", // coding x3
		"Write a poem", "Write a story", // creative x2
		"What is entropy", // research x1
	}
	var records []model.ConversationRecord
	for _, title := range titles {
		records = append(records, model.ConversationRecord{
			ID:    title,
			Title: title,
			Turns: []model.Turn{{Role: model.RoleUser, Text: "hi"}},
		})
	}

	snap, err := Aggregate(records, time.Now())
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if len(snap.Topics) != 3 {
		t.Fatalf("len(Topics) = %d, want 3", len(snap.Topics))
	}
	if snap.Topics[0].Name != TopicCoding || snap.Topics[0].Conversations != 3 {
		t.Errorf("Topics[0] = %+v, want %s x3", snap.Topics[0], TopicCoding)
	}
	if snap.Topics[1].Name != TopicCreative || snap.Topics[2].Name != TopicResearch {
		t.Errorf("topic order = %q, %q; want creative then research",
			snap.Topics[1].Name, snap.Topics[2].Name)
	}
	if snap.Topics[0].Percentage != 50 {
		t.Errorf("Topics[0].Percentage = %d, want 50", snap.Topics[0].Percentage)
	}
}
