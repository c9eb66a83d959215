package cmd

import (
	"fmt"

	"github.com/nightcatdev/aiwrap/internal/cli"

	"github.com/spf13/cobra"
)

var factsCmd = &cobra.Command{
	Use:   "facts",
	Short: "Quirky facts and token equivalents",
	RunE:  runFacts,
}

func init() {
	rootCmd.AddCommand(factsCmd)
}

func runFacts(_ *cobra.Command, _ []string) error {
	profile, err := loadProfile()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("QUIRKY FACTS"))
	fmt.Println()
	for _, fact := range profile.QuirkyFacts {
		fmt.Printf("  · %s\n", fact)
	}

	t := profile.Tokens
	fmt.Println()
	fmt.Printf("  Your %s tokens are roughly:\n", cli.FormatTokens(t.Input+t.Output))
	fmt.Printf("    %s words\n", cli.FormatNumber(t.EquivalentWords))
	fmt.Printf("    %.1f novels\n", t.EquivalentBooks)
	fmt.Printf("    %s tweets\n", cli.FormatNumber(t.EquivalentTweets))
	fmt.Println()
	return nil
}
