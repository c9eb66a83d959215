// Package config loads and saves aiwrap configuration from the XDG
// config directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all aiwrap configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
	Analyzer   AnalyzerConfig   `toml:"analyzer"`
	Benchmarks BenchmarkConfig  `toml:"benchmarks"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	// DefaultExport is used when no --file flag is given.
	DefaultExport string `toml:"default_export,omitempty"`
	Quiet         bool   `toml:"quiet"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// AnalyzerConfig holds optional AI analyzer settings.
type AnalyzerConfig struct {
	Endpoint string `toml:"endpoint,omitempty"`
	APIKey   string `toml:"api_key,omitempty"`
}

// BenchmarkConfig overrides the population reference points behind the
// percentile estimates. Zero values keep the defaults.
type BenchmarkConfig struct {
	AvgPromptsPerYear int   `toml:"avg_prompts_per_year,omitempty"`
	ConversationsBase int   `toml:"conversations_base,omitempty"`
	TokensBase        int64 `toml:"tokens_base,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "aiwrap")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "aiwrap")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// StorePath returns the full path to the profile database.
func StorePath() string {
	return filepath.Join(ConfigDir(), "profile.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// AnalyzerEndpoint returns the analyzer URL from env var or config, in
// that order.
func AnalyzerEndpoint(cfg Config) string {
	if url := os.Getenv("AIWRAP_ANALYZER_URL"); url != "" {
		return url
	}
	return cfg.Analyzer.Endpoint
}

// AnalyzerKey returns the analyzer API key from env var or config, in
// that order.
func AnalyzerKey(cfg Config) string {
	if key := os.Getenv("AIWRAP_ANALYZER_KEY"); key != "" {
		return key
	}
	return cfg.Analyzer.APIKey
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
