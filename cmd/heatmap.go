package cmd

import (
	"fmt"

	"github.com/nightcatdev/aiwrap/internal/cli"

	"github.com/spf13/cobra"
)

var heatmapCmd = &cobra.Command{
	Use:   "heatmap",
	Short: "365-day activity heatmap",
	RunE:  runHeatmap,
}

func init() {
	rootCmd.AddCommand(heatmapCmd)
}

func runHeatmap(_ *cobra.Command, _ []string) error {
	profile, err := loadProfile()
	if err != nil {
		return err
	}

	m := profile.Metrics

	fmt.Println()
	fmt.Println(cli.RenderTitle("YOUR YEAR, DAY BY DAY"))
	fmt.Println()
	fmt.Print(cli.RenderHeatmap(profile.Heatmap))
	fmt.Println()
	fmt.Printf("  Active days: %d   Longest streak: %d   Current streak: %d\n",
		m.ActiveDays, m.LongestStreak, m.CurrentStreak)
	fmt.Printf("  Busiest month: %s (%s messages)\n",
		profile.Months.Busiest.Month, cli.FormatNumber(int64(profile.Months.Busiest.Messages)))
	fmt.Println()
	return nil
}
