package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Load reads the configuration file at path, layering it over defaults and
// pulling secrets from the environment. A missing file is not an error: the
// defaults plus environment are a complete configuration.
func Load(path string) (*Config, error) {
	cfg := Default()

	// A keyword_tiers table in the file replaces the default table wholesale;
	// merging would make default keywords impossible to remove.
	defaultTiers := cfg.Scoring.KeywordTiers
	cfg.Scoring.KeywordTiers = nil

	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return nil, fmt.Errorf("failed to expand config path: %w", err)
		}

		data, err := os.ReadFile(expanded)
		switch {
		case os.IsNotExist(err):
			// Fall through to defaults.
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if cfg.Scoring.KeywordTiers == nil {
		cfg.Scoring.KeywordTiers = defaultTiers
	}

	cfg.Analyzer.APIKey = os.Getenv("GEMINI_API_KEY")
	cfg.SAMGov.APIKey = os.Getenv("SAM_GOV_API_KEY")
	cfg.Email.SMTPPass = os.Getenv("SMTP_PASSWORD")

	if cfg.Email.FromEmail == "" {
		cfg.Email.FromEmail = cfg.Email.SMTPUser
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks the invariants the scoring core depends on.
func (c *Config) Validate() error {
	if c.Scoring.RelevanceThreshold < 0 || c.Scoring.RelevanceThreshold > 10 {
		return fmt.Errorf("relevance_threshold %d out of range 0-10", c.Scoring.RelevanceThreshold)
	}
	if c.Scoring.TitleMultiplier < 1 {
		return fmt.Errorf("title_multiplier must be positive, got %d", c.Scoring.TitleMultiplier)
	}
	if c.Scoring.NormalizationDivisor < 1 {
		return fmt.Errorf("normalization_divisor must be positive, got %d", c.Scoring.NormalizationDivisor)
	}
	if len(c.Scoring.KeywordTiers) == 0 {
		return fmt.Errorf("keyword_tiers must not be empty")
	}
	for kw, w := range c.Scoring.KeywordTiers {
		if w < 1 || w > 3 {
			return fmt.Errorf("keyword %q has weight %d, want 1-3", kw, w)
		}
	}
	if c.Feeds.EntriesPerFeed < 1 {
		return fmt.Errorf("entries_per_feed must be positive, got %d", c.Feeds.EntriesPerFeed)
	}
	if c.SAMGov.WindowDays < 1 {
		return fmt.Errorf("samgov window_days must be positive, got %d", c.SAMGov.WindowDays)
	}
	return nil
}

// WriteDefault writes the default configuration as TOML to path, creating
// parent directories as needed.
func WriteDefault(path string) error {
	expanded, err := expandPath(path)
	if err != nil {
		return fmt.Errorf("failed to expand config path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	return os.WriteFile(expanded, data, 0o644)
}

// expandPath expands a leading ~ to the home directory.
func expandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}
