package pipeline

import (
	"testing"
	"time"
)

func TestStreaks(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		dates       []string
		wantLongest int
		wantCurrent int
	}{
		{"empty", nil, 0, 0},
		{"single old day", []string{"2024-01-15"}, 1, 0},
		{"single recent day", []string{"2025-03-10"}, 1, 1},
		{
			"broken run keeps longest",
			[]string{"2024-06-01", "2024-06-02", "2024-06-03", "2024-06-10"},
			3, 0,
		},
		{
			"run ending now counts as current",
			[]string{"2025-03-06", "2025-03-07", "2025-03-08", "2025-03-09", "2025-03-10"},
			5, 5,
		},
		{
			"run ending yesterday still current",
			[]string{"2025-03-08", "2025-03-09"},
			2, 2,
		},
		{
			"old long run does not leak into current",
			[]string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04"},
			4, 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counts := make(map[string]int, len(tt.dates))
			for _, d := range tt.dates {
				counts[d]++
			}
			longest, current := Streaks(counts, now)
			if longest != tt.wantLongest {
				t.Errorf("longest = %d, want %d", longest, tt.wantLongest)
			}
			if current != tt.wantCurrent {
				t.Errorf("current = %d, want %d", current, tt.wantCurrent)
			}
		})
	}
}
