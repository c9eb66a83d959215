package pipeline

import (
	"sort"
	"time"
)

const dateLayout = "2006-01-02"

// Streaks computes the longest and current run of consecutive active
// calendar days from a per-date activity map.
//
// The current streak uses the source-compatible approximation: a run
// counts as current when its last day is within run-length days of
// now. It is not a strict ended-today-or-yesterday check.
func Streaks(dateCounts map[string]int, now time.Time) (longest, current int) {
	if len(dateCounts) == 0 {
		return 0, 0
	}

	dates := make([]string, 0, len(dateCounts))
	for d := range dateCounts {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	run := 0
	var prev time.Time
	for i, ds := range dates {
		d, err := time.ParseInLocation(dateLayout, ds, now.Location())
		if err != nil {
			continue
		}

		if i == 0 || !d.Equal(prev.AddDate(0, 0, 1)) {
			run = 1
		} else {
			run++
		}
		prev = d

		if run > longest {
			longest = run
		}

		daysAgo := int(today.Sub(d).Round(24*time.Hour).Hours() / 24)
		if daysAgo <= run {
			current = run
		}
	}

	return longest, current
}
