package cmd

import (
	"fmt"

	"github.com/nightcatdev/aiwrap/internal/cli"

	"github.com/spf13/cobra"
)

var wrapCmd = &cobra.Command{
	Use:   "wrap",
	Short: "Parse an export and show the year summary",
	RunE:  runWrap,
}

func init() {
	rootCmd.AddCommand(wrapCmd)
}

func runWrap(cmd *cobra.Command, args []string) error {
	if flagJSON {
		return runJSON(cmd, args)
	}

	profile, err := loadProfile()
	if err != nil {
		return err
	}

	m := profile.Metrics

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("YOUR %d AI WRAPPED", profile.GeneratedAt.Year())))
	fmt.Println()

	rows := [][]string{
		{"Conversations", cli.FormatNumber(int64(m.TotalConversations))},
		{"Prompts", cli.FormatNumber(int64(m.TotalPrompts))},
		{"Responses", cli.FormatNumber(int64(m.TotalResponses))},
		{"Input Tokens", cli.FormatTokens(m.InputTokens)},
		{"Output Tokens", cli.FormatTokens(m.OutputTokens)},
		{"Total Tokens", cli.FormatTokens(m.TotalTokens)},
		{"Active Days", cli.FormatNumber(int64(m.ActiveDays))},
		{"Longest Streak", fmt.Sprintf("%d days", m.LongestStreak)},
		{"Peak Hour", cli.FormatHour(m.PeakHour)},
		{"Peak Day", cli.FormatDayOfWeek(m.PeakDay)},
	}
	if top := m.DominantTopic(); top != "" {
		rows = append(rows, []string{"Top Topic", top})
	}
	rows = append(rows, []string{"Badges Earned", cli.FormatNumber(int64(len(profile.Badges)))})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	fmt.Println()
	fmt.Printf("  %s %s\n", profile.Personality.Icon, profile.Personality.Type)
	fmt.Printf("  %s\n", profile.Personality.Comparison)
	fmt.Println()
	fmt.Println("  Run `aiwrap slides` for the full show.")
	fmt.Println()

	return nil
}
