package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nightcatdev/aiwrap/internal/cli"
	"github.com/nightcatdev/aiwrap/internal/model"
	"github.com/nightcatdev/aiwrap/internal/tui/theme"
)

// Slide order for the deck.
const (
	slideIntro = iota
	slideVolume
	slideTopics
	slidePersonality
	slideBadges
	slideHeatmap
	slideRhythm
	slideMonths
	slideFacts
	slideOutro
	slideCount
)

// renderSlide renders one slide body. Pure function of the slide index
// and profile, so every slide can be tested without running a program.
func renderSlide(index int, p model.DerivedProfile) string {
	switch index {
	case slideIntro:
		return renderIntro(p)
	case slideVolume:
		return renderVolume(p)
	case slideTopics:
		return renderTopics(p)
	case slidePersonality:
		return renderPersonality(p)
	case slideBadges:
		return renderBadges(p)
	case slideHeatmap:
		return renderHeatmapSlide(p)
	case slideRhythm:
		return renderRhythm(p)
	case slideMonths:
		return renderMonths(p)
	case slideFacts:
		return renderFacts(p)
	default:
		return renderOutro(p)
	}
}

func slideTitle(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(theme.Active.Accent).Render(s)
}

func bigStat(value, label string) string {
	t := theme.Active
	v := lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary).Render(value)
	l := lipgloss.NewStyle().Foreground(t.TextMuted).Render(label)
	return v + "\n" + l
}

func muted(s string) string {
	return lipgloss.NewStyle().Foreground(theme.Active.TextMuted).Render(s)
}

func renderIntro(p model.DerivedProfile) string {
	year := p.GeneratedAt.Year()
	return strings.Join([]string{
		slideTitle(fmt.Sprintf("✨ Your %d AI Wrapped ✨", year)),
		"",
		muted("A year of conversations, distilled."),
		"",
		muted("Press → to begin"),
	}, "\n")
}

func renderVolume(p model.DerivedProfile) string {
	m := p.Metrics
	return strings.Join([]string{
		slideTitle("📊 The numbers"),
		"",
		bigStat(cli.FormatNumber(int64(m.TotalConversations)), "conversations"),
		"",
		bigStat(cli.FormatNumber(int64(m.TotalPrompts)), "prompts sent"),
		"",
		bigStat(cli.FormatTokens(m.TotalTokens), "tokens exchanged"),
		"",
		muted(fmt.Sprintf("That's roughly %s words, or %.1f novels 📚",
			cli.FormatNumber(p.Tokens.EquivalentWords), p.Tokens.EquivalentBooks)),
	}, "\n")
}

func renderTopics(p model.DerivedProfile) string {
	t := theme.Active
	lines := []string{slideTitle("🗺️ What you talked about"), ""}

	for i, topic := range p.Topics {
		bar := strings.Repeat("█", topic.Percentage/4)
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(topic.Color))
		lines = append(lines, fmt.Sprintf("%s %-22s %s %s",
			topic.Icon,
			topic.Name,
			style.Render(bar),
			muted(cli.FormatPercent(topic.Percentage)),
		))
		if i >= 5 {
			break
		}
	}

	lines = append(lines, "",
		lipgloss.NewStyle().Foreground(t.TextPrimary).Render(p.TopTopic.Insight))
	return strings.Join(lines, "\n")
}

func renderPersonality(p model.DerivedProfile) string {
	t := theme.Active
	pers := p.Personality
	lines := []string{
		slideTitle("🔮 Your AI personality"),
		"",
		lipgloss.NewStyle().Bold(true).Foreground(t.Magenta).Render(pers.Icon + " " + pers.Type),
		"",
		muted(pers.Description),
		"",
	}
	for _, trait := range pers.Traits {
		lines = append(lines, lipgloss.NewStyle().Foreground(t.TextPrimary).Render("· "+trait))
	}
	lines = append(lines, "", muted(pers.Comparison))
	return strings.Join(lines, "\n")
}

func renderBadges(p model.DerivedProfile) string {
	lines := []string{slideTitle("🏆 Badges earned"), ""}
	if len(p.Badges) == 0 {
		lines = append(lines, muted("No badges this year. Room to grow!"))
		return strings.Join(lines, "\n")
	}
	for _, b := range p.Badges {
		name := lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color(b.Color)).Render(b.Name)
		lines = append(lines, fmt.Sprintf("%s %s  %s", b.Icon, name, muted(b.Description)))
	}
	return strings.Join(lines, "\n")
}

func renderHeatmapSlide(p model.DerivedProfile) string {
	m := p.Metrics
	return strings.Join([]string{
		slideTitle("🔥 Your year, day by day"),
		"",
		cli.RenderHeatmap(p.Heatmap),
		muted(fmt.Sprintf("%d active days · longest streak %d days · current streak %d days",
			m.ActiveDays, m.LongestStreak, m.CurrentStreak)),
	}, "\n")
}

func renderRhythm(p model.DerivedProfile) string {
	m := p.Metrics

	values := make([]float64, len(m.HourCounts))
	for i, c := range m.HourCounts {
		values[i] = float64(c)
	}

	return strings.Join([]string{
		slideTitle("⏰ Your rhythm"),
		"",
		cli.RenderSparkline(values),
		muted("midnight → 11 PM"),
		"",
		bigStat(cli.FormatHour(m.PeakHour), "peak hour"),
		"",
		bigStat(cli.FormatDayOfWeek(m.PeakDay), "favorite day"),
		"",
		muted(p.PeakTimes.Insight),
	}, "\n")
}

func renderMonths(p model.DerivedProfile) string {
	t := theme.Active
	return strings.Join([]string{
		slideTitle("📅 Month by month"),
		"",
		lipgloss.NewStyle().Foreground(t.Orange).Render("Busiest: " + p.Months.Busiest.Month),
		muted(p.Months.Busiest.Note),
		"",
		lipgloss.NewStyle().Foreground(t.Blue).Render("Quietest: " + p.Months.Quietest.Month),
		muted(p.Months.Quietest.Note),
	}, "\n")
}

func renderFacts(p model.DerivedProfile) string {
	lines := []string{slideTitle("🎲 Quirky facts"), ""}
	for _, fact := range p.QuirkyFacts {
		lines = append(lines, "· "+fact)
	}
	return strings.Join(lines, "\n")
}

func renderOutro(p model.DerivedProfile) string {
	t := theme.Active
	c := p.Comparisons
	return strings.Join([]string{
		slideTitle("🚀 See you next year"),
		"",
		lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary).Render(c.UserCategory),
		muted(c.PromptsPerDay + " on active days"),
		"",
		strings.Join(c.Insights, "\n"),
		"",
		muted("Press q to exit"),
	}, "\n")
}
