package wrapped

import (
	"fmt"
	"sort"
	"time"

	"github.com/nightcatdev/aiwrap/internal/model"
)

var dayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// quirkyFacts builds the light-hearted fact list. Facts are conditional
// on the counters that back them except the closing prompt-total fact,
// so the list is never empty.
func quirkyFacts(snap model.MetricsSnapshot) []string {
	var facts []string

	if snap.PoliteCount > 0 {
		facts = append(facts, fmt.Sprintf(
			"You said 'please' or 'thank you' %d times. Manners maketh the human! 🥹", snap.PoliteCount))
	}
	if snap.LongestConversation.Turns > 20 {
		facts = append(facts, fmt.Sprintf(
			"Your longest conversation was %d messages. That's a whole journey! 🎢", snap.LongestConversation.Turns))
	}
	if snap.LateNightCount > 10 {
		facts = append(facts, fmt.Sprintf(
			"You had %d late-night AI sessions. Night owl energy! 🦉", snap.LateNightCount))
	}
	if top := snap.DominantTopic(); top != "" {
		facts = append(facts, fmt.Sprintf(
			"%s was your jam with %d conversations! 🎯", top, snap.Topics[0].Conversations))
	}

	return append(facts, fmt.Sprintf(
		"You sent %s prompts this year. AI bestie status: confirmed. 🤝", groupDigits(snap.TotalPrompts)))
}

// monthlyHighlights picks the busiest and quietest months from the
// per-date activity map. Months with zero activity never win quietest;
// the comparison is among months that appear at all.
func monthlyHighlights(dateCounts map[string]int) model.MonthlyHighlights {
	counts := make(map[time.Month]int)
	for date, n := range dateCounts {
		d, err := time.Parse("2006-01-02", date)
		if err != nil {
			continue
		}
		counts[d.Month()] += n
	}

	type entry struct {
		month time.Month
		count int
	}
	entries := make([]entry, 0, len(counts))
	for m, n := range counts {
		entries = append(entries, entry{m, n})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].month < entries[j].month
	})

	busiest := model.MonthHighlight{Month: "October"}
	quietest := model.MonthHighlight{Month: "July"}
	if len(entries) > 0 {
		b, q := entries[0], entries[len(entries)-1]
		busiest = model.MonthHighlight{Month: b.month.String(), Messages: b.count}
		quietest = model.MonthHighlight{Month: q.month.String(), Messages: q.count}
	}

	busiest.Note = fmt.Sprintf("%s you went FERAL. %d messages? We're impressed! 🔥", busiest.Month, busiest.Messages)
	quietest.Note = fmt.Sprintf("%s was chill. Either vacation or finding yourself? 🏖️", quietest.Month)

	return model.MonthlyHighlights{Busiest: busiest, Quietest: quietest}
}

func peakTimes(snap model.MetricsSnapshot) model.PeakTimes {
	day := dayNames[snap.PeakDay%7]
	return model.PeakTimes{
		BestHour: fmt.Sprintf("%d:00", snap.PeakHour),
		BestDay:  day,
		Insight:  fmt.Sprintf("Peak productivity: %s at %d:00. You know your rhythm! 🎵", day, snap.PeakHour),
	}
}

// groupDigits formats an integer with thousands separators.
func groupDigits(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}
