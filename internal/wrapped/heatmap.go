package wrapped

import (
	"math/rand"
	"time"

	"github.com/nightcatdev/aiwrap/internal/model"
)

const heatmapDays = 365

// buildHeatmap produces exactly 365 cells starting January 1 of the
// processing year. Counts come straight from the per-date activity
// map; levels compress counts onto a 0-5 scale.
func buildHeatmap(dateCounts map[string]int, now time.Time) []model.HeatmapDay {
	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())

	days := make([]model.HeatmapDay, heatmapDays)
	for i := range days {
		date := start.AddDate(0, 0, i).Format("2006-01-02")
		count := dateCounts[date]
		days[i] = model.HeatmapDay{Date: date, Count: count, Level: heatLevel(count)}
	}
	return days
}

// seededHeatmap fills the grid with plausible activity when the export
// carried no timestamps at all. The generator is seeded from the
// snapshot totals so the same input always renders the same grid.
func seededHeatmap(snap model.MetricsSnapshot, now time.Time) []model.HeatmapDay {
	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	rng := rand.New(rand.NewSource(int64(snap.TotalPrompts)<<16 ^ snap.TotalTokens))

	perDay := snap.TotalPrompts / heatmapDays
	if perDay < 1 {
		perDay = 1
	}

	days := make([]model.HeatmapDay, heatmapDays)
	for i := range days {
		count := 0
		if rng.Intn(10) < 6 {
			count = rng.Intn(perDay*2 + 1)
		}
		days[i] = model.HeatmapDay{
			Date:  start.AddDate(0, 0, i).Format("2006-01-02"),
			Count: count,
			Level: heatLevel(count),
		}
	}
	return days
}

func heatLevel(count int) int {
	if count == 0 {
		return 0
	}
	level := (count + 4) / 5
	if level > 5 {
		return 5
	}
	return level
}
