package cmd

import (
	"fmt"

	"github.com/nightcatdev/aiwrap/internal/cli"

	"github.com/spf13/cobra"
)

var personalityCmd = &cobra.Command{
	Use:   "personality",
	Short: "Your AI personality archetype",
	RunE:  runPersonality,
}

func init() {
	rootCmd.AddCommand(personalityCmd)
}

func runPersonality(_ *cobra.Command, _ []string) error {
	profile, err := loadProfile()
	if err != nil {
		return err
	}

	p := profile.Personality

	fmt.Println()
	fmt.Println(cli.RenderTitle("YOUR AI PERSONALITY"))
	fmt.Println()
	fmt.Printf("  %s %s\n\n", p.Icon, p.Type)
	fmt.Printf("  %s\n\n", p.Description)
	for _, trait := range p.Traits {
		fmt.Printf("    · %s\n", trait)
	}
	fmt.Println()
	fmt.Printf("  %s\n", p.Comparison)
	fmt.Println()
	return nil
}
