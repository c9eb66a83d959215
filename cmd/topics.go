package cmd

import (
	"fmt"

	"github.com/nightcatdev/aiwrap/internal/cli"

	"github.com/spf13/cobra"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Topic breakdown of your conversations",
	RunE:  runTopics,
}

func init() {
	rootCmd.AddCommand(topicsCmd)
}

func runTopics(_ *cobra.Command, _ []string) error {
	profile, err := loadProfile()
	if err != nil {
		return err
	}

	if len(profile.Topics) == 0 {
		fmt.Println("\n  No topics classified.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("WHAT YOU TALKED ABOUT"))
	fmt.Println()

	rows := make([][]string, len(profile.Topics))
	for i, t := range profile.Topics {
		rows[i] = []string{
			t.Icon + " " + t.Name,
			cli.FormatNumber(int64(t.Conversations)),
			cli.FormatPercent(t.Percentage),
		}
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Topic", "Conversations", "Share"},
		Rows:    rows,
	}))

	fmt.Println()
	fmt.Printf("  %s\n", profile.TopTopic.Insight)
	fmt.Println()
	return nil
}
