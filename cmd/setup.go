package cmd

import (
	"fmt"

	"github.com/nightcatdev/aiwrap/internal/config"
	"github.com/nightcatdev/aiwrap/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	themeOptions := make([]huh.Option[string], len(theme.All))
	for i, t := range theme.All {
		themeOptions[i] = huh.NewOption(t.Name, t.Name)
	}

	exportPath := cfg.General.DefaultExport
	themeName := cfg.Appearance.Theme
	if themeName == "" {
		themeName = theme.FlexokiDark.Name
	}
	endpoint := cfg.Analyzer.Endpoint

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Default export file").
				Description("Used when no --file flag is given. Leave blank to always pass --file.").
				Placeholder("~/Downloads/chatgpt-export.zip").
				Value(&exportPath),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOptions...).
				Value(&themeName),
			huh.NewInput().
				Title("Analyzer endpoint (optional)").
				Description("Remote service for --ai topic refinement.").
				Placeholder("https://analyzer.example.com/v1/analyze").
				Value(&endpoint),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("setup aborted: %w", err)
	}

	cfg.General.DefaultExport = exportPath
	cfg.Appearance.Theme = themeName
	cfg.Analyzer.Endpoint = endpoint

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `aiwrap setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
