package pipeline

import "testing"

func TestClassifyTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"coding keyword", "Fix Python error in deploy script", TopicCoding},
		{"creative keyword", "Write a short story about winter", TopicCreative},
		{"research keyword", "What is quantum entanglement", TopicResearch},
		{"work keyword", "Draft email to the team about the deadline", TopicWork},
		{"advice keyword", "Should I buy a laptop or a desktop", TopicAdvice},
		{"fun keyword", "Tell me a joke", TopicFun},
		{"finance keyword", "Monthly budget breakdown", TopicFinance},
		{"health keyword", "Workout plan for beginners", TopicHealth},
		{"travel keyword", "Trip itinerary for Lisbon", TopicTravel},
		{"no match", "Hmm", TopicExploration},
		{"empty title", "", TopicExploration},
		{"case insensitive", "DEBUG THE SQL QUERY", TopicCoding},
		{"coding wins over advice", "Help me debug this function", TopicCoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyTitle(tt.title); got != tt.want {
				t.Errorf("ClassifyTitle(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestClassifyTitleDeterministic(t *testing.T) {
	titles := []string{
		"Write code for a data dashboard",
		"Research the history of money",
		"Plan a fun trip",
	}
	for _, title := range titles {
		first := ClassifyTitle(title)
		for i := 0; i < 50; i++ {
			if got := ClassifyTitle(title); got != first {
				t.Fatalf("ClassifyTitle(%q) flapped: %q then %q", title, first, got)
			}
		}
	}
}

func TestAllTopicsEndsWithCatchAll(t *testing.T) {
	topics := AllTopics()
	if len(topics) != len(topicRules)+1 {
		t.Fatalf("AllTopics() returned %d names, want %d", len(topics), len(topicRules)+1)
	}
	if topics[len(topics)-1] != TopicExploration {
		t.Errorf("last topic = %q, want %q", topics[len(topics)-1], TopicExploration)
	}
}
