// Package cmd implements the aiwrap CLI commands.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/nightcatdev/aiwrap/internal/config"
	"github.com/nightcatdev/aiwrap/internal/export"
	"github.com/nightcatdev/aiwrap/internal/insight"
	"github.com/nightcatdev/aiwrap/internal/model"
	"github.com/nightcatdev/aiwrap/internal/pipeline"
	"github.com/nightcatdev/aiwrap/internal/store"
	"github.com/nightcatdev/aiwrap/internal/wrapped"

	"github.com/spf13/cobra"
)

var (
	flagFile    string
	flagJSON    bool
	flagQuiet   bool
	flagNoStore bool
	flagAI      bool
	flagDemo    bool
)

var rootCmd = &cobra.Command{
	Use:   "aiwrap",
	Short: "Your year with ChatGPT, wrapped",
	Long:  "Parse a ChatGPT data export and turn it into a year-in-review: stats, topics, badges, and slides.",
	RunE:  runWrap,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "Export file (.zip, .json, or .html)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Print the profile as JSON instead of tables")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().BoolVar(&flagNoStore, "no-store", false, "Don't save the profile for later commands")
	rootCmd.PersistentFlags().BoolVar(&flagAI, "ai", false, "Refine topics through the configured analyzer")
	rootCmd.PersistentFlags().BoolVar(&flagDemo, "demo", false, "Use placeholder data instead of an export")
}

func progress(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, format, args...)
}

// loadProfile is the shared load path used by all commands. It builds
// a fresh profile from the export file when one is given (or demo data
// with --demo), falling back to the previously saved profile.
func loadProfile() (model.DerivedProfile, error) {
	if flagDemo {
		return wrapped.PlaceholderProfile(time.Now()), nil
	}

	cfg, _ := config.Load()
	if cfg.General.Quiet {
		flagQuiet = true
	}

	file := flagFile
	if file == "" {
		file = cfg.General.DefaultExport
	}
	if file == "" {
		// No input file; re-render the saved profile
		s, err := store.Open(config.StorePath())
		if err != nil {
			return model.DerivedProfile{}, err
		}
		defer func() { _ = s.Close() }()

		profile, source, err := s.Load()
		if err != nil {
			return model.DerivedProfile{}, err
		}
		progress("  Loaded saved profile (from %s)\n", source)
		return profile, nil
	}

	return buildProfile(file, cfg)
}

// buildProfile runs the full pipeline on one export file.
func buildProfile(file string, cfg config.Config) (model.DerivedProfile, error) {
	progress("  Reading %s...\n", file)
	data, err := os.ReadFile(file)
	if err != nil {
		return model.DerivedProfile{}, fmt.Errorf("reading export: %w", err)
	}

	records, err := export.Extract(file, data)
	if err != nil {
		return model.DerivedProfile{}, err
	}
	progress("  Found %d conversations\n", len(records))

	now := time.Now()
	snap, err := pipeline.Aggregate(records, now)
	if err != nil {
		return model.DerivedProfile{}, err
	}

	if flagAI {
		snap = refineTopics(snap, records, cfg)
	}

	profile := wrapped.Build(snap, wrapped.Options{
		Now:        now,
		Benchmarks: benchmarksFromConfig(cfg),
	})

	if !flagNoStore {
		if err := saveProfile(profile, file); err != nil {
			progress("  Could not save profile: %v\n", err)
		}
	}

	return profile, nil
}

// refineTopics asks the configured analyzer for better titles. Any
// failure keeps the locally classified topics.
func refineTopics(snap model.MetricsSnapshot, records []model.ConversationRecord, cfg config.Config) model.MetricsSnapshot {
	client := insight.NewClient(config.AnalyzerEndpoint(cfg), config.AnalyzerKey(cfg))
	if client == nil {
		progress("  No analyzer configured, skipping --ai\n")
		return snap
	}

	titles := make([]string, len(records))
	for i, r := range records {
		titles[i] = r.Title
	}

	progress("  Asking analyzer to refine topics...\n")
	analysis, err := client.Analyze(context.Background(), titles)
	if err != nil {
		if errors.Is(err, insight.ErrUnavailable) {
			progress("  Analyzer unavailable, using local topics\n")
			return snap
		}
		progress("  Analyzer error: %v\n", err)
		return snap
	}
	return insight.Merge(snap, analysis)
}

func saveProfile(profile model.DerivedProfile, file string) error {
	s, err := store.Open(config.StorePath())
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()
	return s.Save(profile, file)
}

func benchmarksFromConfig(cfg config.Config) *wrapped.Benchmarks {
	bench := wrapped.DefaultBenchmarks()
	if cfg.Benchmarks.AvgPromptsPerYear > 0 {
		bench.AvgPromptsPerYear = cfg.Benchmarks.AvgPromptsPerYear
	}
	if cfg.Benchmarks.ConversationsBase > 0 {
		bench.ConversationsBase = cfg.Benchmarks.ConversationsBase
	}
	if cfg.Benchmarks.TokensBase > 0 {
		bench.TokensBase = cfg.Benchmarks.TokensBase
	}
	return &bench
}
