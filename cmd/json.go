package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var jsonCmd = &cobra.Command{
	Use:   "json",
	Short: "Print the full profile as JSON",
	RunE:  runJSON,
}

func init() {
	rootCmd.AddCommand(jsonCmd)
}

func runJSON(_ *cobra.Command, _ []string) error {
	// JSON output goes to stdout alone; force progress off
	flagQuiet = true

	profile, err := loadProfile()
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
