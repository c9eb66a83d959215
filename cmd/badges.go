package cmd

import (
	"fmt"

	"github.com/nightcatdev/aiwrap/internal/cli"

	"github.com/spf13/cobra"
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "Achievements earned this year",
	RunE:  runBadges,
}

func init() {
	rootCmd.AddCommand(badgesCmd)
}

func runBadges(_ *cobra.Command, _ []string) error {
	profile, err := loadProfile()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("BADGES EARNED"))
	fmt.Println()

	if len(profile.Badges) == 0 {
		fmt.Println("  No badges this year. Room to grow!")
		fmt.Println()
		return nil
	}

	rows := make([][]string, len(profile.Badges))
	for i, b := range profile.Badges {
		rows[i] = []string{b.Icon + " " + b.Name, b.Description}
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Badge", "How you earned it"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}
