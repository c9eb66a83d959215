package cmd

import (
	"fmt"

	"github.com/nightcatdev/aiwrap/internal/config"
	"github.com/nightcatdev/aiwrap/internal/store"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the saved profile",
	RunE:  runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)
}

func runClear(_ *cobra.Command, _ []string) error {
	s, err := store.Open(config.StorePath())
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if err := s.Clear(); err != nil {
		return fmt.Errorf("clearing profile: %w", err)
	}

	fmt.Println("  Saved profile cleared.")
	return nil
}
