package insight

import (
	"sort"

	"github.com/nightcatdev/aiwrap/internal/model"
	"github.com/nightcatdev/aiwrap/internal/pipeline"
)

const maxMergedTopics = 6

// Merge reclassifies the analyzer's refined titles and rebuilds the
// snapshot's topic list from them. Counts and percentages are
// recomputed against the snapshot's conversation total; everything
// else in the snapshot is untouched. An analysis without titles leaves
// the snapshot as-is.
func Merge(snap model.MetricsSnapshot, analysis Analysis) model.MetricsSnapshot {
	if len(analysis.Titles) == 0 {
		return snap
	}

	tally := make(map[string]int)
	for _, title := range analysis.Titles {
		tally[pipeline.ClassifyTitle(title)]++
	}

	total := snap.TotalConversations
	if total == 0 {
		total = len(analysis.Titles)
	}

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
	if len(topics) > maxMergedTopics {
		topics = topics[:maxMergedTopics]
	}

	snap.Topics = topics
	return snap
}
