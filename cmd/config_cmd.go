package cmd

import (
	"fmt"

	"github.com/nightcatdev/aiwrap/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	if cfg.General.DefaultExport != "" {
		fmt.Printf("    Default export: %s\n", cfg.General.DefaultExport)
	} else {
		fmt.Println("    Default export: (none, pass --file)")
	}
	fmt.Printf("    Quiet:          %v\n", cfg.General.Quiet)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Analyzer]")
	if endpoint := config.AnalyzerEndpoint(cfg); endpoint != "" {
		fmt.Printf("    Endpoint: %s\n", endpoint)
	} else {
		fmt.Println("    Endpoint: (not configured)")
	}
	if config.AnalyzerKey(cfg) != "" {
		fmt.Println("    API key:  set")
	} else {
		fmt.Println("    API key:  (not set)")
	}
	fmt.Println()

	fmt.Println("  [Benchmarks]")
	if cfg.Benchmarks.AvgPromptsPerYear > 0 || cfg.Benchmarks.ConversationsBase > 0 || cfg.Benchmarks.TokensBase > 0 {
		fmt.Printf("    Overrides: prompts/year=%d conversations=%d tokens=%d\n",
			cfg.Benchmarks.AvgPromptsPerYear, cfg.Benchmarks.ConversationsBase, cfg.Benchmarks.TokensBase)
	} else {
		fmt.Println("    Using defaults")
	}

	return nil
}
