package recovery

import (
	"regexp"
	"strings"
)

// Rendered exports label each turn with a bare marker line. User turns
// are marked "User" or "You"; assistant turns "ChatGPT", "Assistant",
// or a model-name line like "GPT-4".
var modelNameMarker = regexp.MustCompile(`^GPT-?\d`)

func isUserMarker(line string) bool {
	return line == "User" || line == "You"
}

func isAssistantMarker(line string) bool {
	return line == "ChatGPT" || line == "Assistant" || modelNameMarker.MatchString(line)
}

func isMarker(line string) bool {
	return isUserMarker(line) || isAssistantMarker(line)
}

// plausibleTitle reports whether a line looks like a conversation title
// rather than a marker or message body. Length bounds differ per
// strategy, so they are parameters.
func plausibleTitle(line string, minLen, maxLen int) bool {
	if line == "" || isMarker(line) || strings.HasPrefix(line, "Model:") {
		return false
	}
	n := len(line)
	return n > minLen && n < maxLen
}

// truncateTitle caps a title at 100 runes.
func truncateTitle(s string) string {
	const maxTitle = 100
	r := []rune(s)
	if len(r) > maxTitle {
		return string(r[:maxTitle])
	}
	return s
}

// nonEmptyLines splits text into trimmed, non-empty lines.
func nonEmptyLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
