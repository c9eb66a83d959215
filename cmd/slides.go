package cmd

import (
	"fmt"

	"github.com/nightcatdev/aiwrap/internal/config"
	"github.com/nightcatdev/aiwrap/internal/tui"
	"github.com/nightcatdev/aiwrap/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var slidesCmd = &cobra.Command{
	Use:   "slides",
	Short: "Play the wrapped slide show",
	RunE:  runSlides,
}

func init() {
	rootCmd.AddCommand(slidesCmd)
}

func runSlides(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	profile, err := loadProfile()
	if err != nil {
		return err
	}

	if err := tui.Run(profile); err != nil {
		return fmt.Errorf("slide show error: %w", err)
	}
	return nil
}
