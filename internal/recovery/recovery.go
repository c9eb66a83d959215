// Package recovery reconstructs conversation boundaries and turn roles
// from flattened, line-oriented text that carries no machine-readable
// structure.
//
// Recovery is a cascade of strategies, each strictly more aggressive
// than the last. A later strategy runs only when the current best
// candidate looks implausible (one merged conversation despite many
// user turns), and its candidate is adopted only when it finds strictly
// more conversations. Earlier candidates are replaced wholesale, never
// merged.
package recovery

import (
	"fmt"

	"github.com/nightcatdev/aiwrap/internal/model"
)

// Recover turns flattened export text into conversation records. It
// fails only when the input yields zero extractable lines; once lines
// exist the cascade always produces some result.
func Recover(text string) ([]model.ConversationRecord, error) {
	lines := nonEmptyLines(text)
	if len(lines) == 0 {
		return nil, model.ErrEmptyExport
	}

	best := lineScan(lines)

	if len(best) <= 1 {
		if u := totalUserTurns(best); u > 5 {
			if cand := regexBoundaries(text); len(cand) > len(best) {
				best = cand
			}
		}
	}

	if len(best) <= 1 {
		if u := totalUserTurns(best); u > 3 {
			if cand := transitionBreaks(lines, u); len(cand) > len(best) {
				best = cand
			}
		}
	}

	if len(best) <= 1 {
		if u := totalUserTurns(best); u > 10 {
			if cand := estimateFromVolume(u); len(cand) > len(best) {
				best = cand
			}
		}
	}

	if len(best) == 0 {
		// Text with no recognizable markers at all. Synthesize a single
		// container sized from the line volume so the caller still gets
		// a usable result.
		best = []model.ConversationRecord{{
			ID:    "conv_1",
			Title: "Conversation 1",
			Turns: syntheticTurns(maxInt(1, ceilDiv(len(lines), 20)), 0),
		}}
	}

	for i := range best {
		best[i].ID = fmt.Sprintf("conv_%d", i+1)
	}
	return best, nil
}

func totalUserTurns(convs []model.ConversationRecord) int {
	n := 0
	for _, c := range convs {
		n += c.UserTurns()
	}
	return n
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
