/*
Package config defines the digest configuration, loaded from a TOML file
with defaults for every option. Secrets are never read from the file; they
come from the environment.
*/
package config

import (
	"time"

	"github.com/shanehull/defbrief/internal/scoring"
)

// Config represents the application configuration.
type Config struct {
	Scoring  ScoringConfig  `toml:"scoring"`
	Feeds    FeedsConfig    `toml:"feeds"`
	SAMGov   SAMGovConfig   `toml:"samgov"`
	Analyzer AnalyzerConfig `toml:"analyzer"`
	Email    EmailConfig    `toml:"email"`
	Output   OutputConfig   `toml:"output"`
}

// ScoringConfig holds the relevance scoring knobs and the keyword tier
// table. Weights encode relevance strength: 3 is highly specific, 1 is
// broad context.
type ScoringConfig struct {
	RelevanceThreshold   int            `toml:"relevance_threshold"`
	TitleMultiplier      int            `toml:"title_multiplier"`
	NormalizationDivisor int            `toml:"normalization_divisor"`
	KeywordTiers         map[string]int `toml:"keyword_tiers"`
}

// FeedsConfig lists the RSS sources grouped by category. Categories are
// processed in declared order.
type FeedsConfig struct {
	EntriesPerFeed      int            `toml:"entries_per_feed"`
	FetchTimeoutSeconds int            `toml:"fetch_timeout_seconds"`
	Categories          []FeedCategory `toml:"categories"`
}

// FeedCategory is a named, ordered group of feed sources.
type FeedCategory struct {
	Name    string       `toml:"name"`
	Sources []FeedSource `toml:"sources"`
}

// FeedSource is one feed URL with a display name.
type FeedSource struct {
	Name string `toml:"name"`
	URL  string `toml:"url"`
}

// SAMGovConfig configures the contract opportunity searches. The API key is
// read from SAM_GOV_API_KEY; when unset the opportunities phase is skipped.
type SAMGovConfig struct {
	BaseURL             string `toml:"base_url"`
	WindowDays          int    `toml:"window_days"`
	SearchLimit         int    `toml:"search_limit"`
	FetchTimeoutSeconds int    `toml:"fetch_timeout_seconds"`
	APIKey              string `toml:"-"`
}

// AnalyzerConfig configures the Gemini analyzer. The API key is read from
// GEMINI_API_KEY.
type AnalyzerConfig struct {
	Model          string `toml:"model"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	APIKey         string `toml:"-"`
}

// Timeout returns the per-call analyzer timeout.
func (a AnalyzerConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// EmailConfig holds SMTP settings for digest delivery. The password is read
// from SMTP_PASSWORD.
type EmailConfig struct {
	SMTPServer     string `toml:"smtp_server"`
	SMTPPort       int    `toml:"smtp_port"`
	SMTPUser       string `toml:"smtp_user"`
	FromEmail      string `toml:"from_email"`
	ToEmail        string `toml:"to_email"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	SMTPPass       string `toml:"-"`
}

// Enabled reports whether enough SMTP settings are present to send email.
func (e EmailConfig) Enabled() bool {
	return e.SMTPServer != "" && e.SMTPUser != "" && e.SMTPPass != "" && e.ToEmail != ""
}

// Timeout returns the SMTP dial timeout.
func (e EmailConfig) Timeout() time.Duration {
	return time.Duration(e.TimeoutSeconds) * time.Second
}

// OutputConfig controls where per-run logs are written.
type OutputConfig struct {
	Dir string `toml:"dir"`
}

// Default returns a Config with the standing keyword tiers and feed list.
func Default() *Config {
	return &Config{
		Scoring: ScoringConfig{
			RelevanceThreshold:   scoring.DefaultRelevanceThreshold,
			TitleMultiplier:      scoring.DefaultTitleMultiplier,
			NormalizationDivisor: scoring.DefaultNormalizationDivisor,
			KeywordTiers: map[string]int{
				// Tier 1 (weight 3): highly specific, almost always relevant.
				"Anduril":               3,
				"Jones Act":             3,
				"Section 27":            3,
				"Sealift":               3,
				"Maritime Autonomy":     3,
				"Dive-LD":               3,
				"Ghost Shark":           3,
				"Saronic":               3,
				"Saildrone":             3,
				"Shield AI":             3,
				"Palantir":              3,
				"Replicator Initiative": 3,
				"Maritime Action Plan":  3,
				"MAP":                   3,
				"USV":                   3,
				"UUV":                   3,
				"CCA":                   3,
				"MASC":                  3,
				"Lattice OS":            3,
				"Hivemind":              3,
				"Hedge Strategy":        3,
				// Tier 2 (weight 2): relevant but sometimes ambiguous.
				"MSC":                             2,
				"unmanned systems":                2,
				"defense AI":                      2,
				"autonomous vessels":              2,
				"Maritime Domain Awareness":       2,
				"MDA":                             2,
				"Attritable":                      2,
				"Low-cost":                        2,
				"DIU":                             2,
				"Defense Innovation Unit":         2,
				"Distributed Maritime Operations": 2,
				"DMO":                             2,
				"Physical AI":                     2,
				"Autonomous Welding":              2,
				"ISR":                             2,
				"Intelligence, Surveillance, Reconnaissance": 2,
				// Tier 3 (weight 1): broad context, not definitive alone.
				"autonomous":      1,
				"semi-autonomous": 1,
				"naval":           1,
				"Coast Guard":     1,
				"shipbuilding":    1,
				"shipyard":        1,
				"readiness":       1,
				"dual-use":        1,
				"supply chain":    1,
			},
		},
		Feeds: FeedsConfig{
			EntriesPerFeed:      3,
			FetchTimeoutSeconds: 30,
			Categories: []FeedCategory{
				{
					Name: "Defense",
					Sources: []FeedSource{
						{Name: "War on the Rocks", URL: "https://warontherocks.com/feed/"},
						{Name: "Defense One - Tech", URL: "https://www.defenseone.com/rss/technology"},
						{Name: "Breaking Defense", URL: "https://breakingdefense.com/full-rss-feed/"},
						{Name: "Defense News", URL: "https://www.defensenews.com/m/rss/"},
						{Name: "USNI News", URL: "https://news.usni.org/feed"},
					},
				},
				{
					Name: "Maritime",
					Sources: []FeedSource{
						{Name: "gCaptain", URL: "https://feeds.feedburner.com/gcaptain"},
						{Name: "Maritime Executive", URL: "https://maritime-executive.com/rss"},
					},
				},
				{
					Name: "Tech",
					Sources: []FeedSource{
						{Name: "Wired Security", URL: "https://www.wired.com/feed/category/security"},
					},
				},
				{
					Name: "Government",
					Sources: []FeedSource{
						{Name: "Federal News Network", URL: "https://federalnewsnetwork.com/feed"},
					},
				},
			},
		},
		SAMGov: SAMGovConfig{
			BaseURL:             "https://api.sam.gov/opportunities/v2/search",
			WindowDays:          7,
			SearchLimit:         10,
			FetchTimeoutSeconds: 30,
		},
		Analyzer: AnalyzerConfig{
			Model:          "gemini-2.0-flash",
			TimeoutSeconds: 120,
		},
		Email: EmailConfig{
			SMTPServer:     "smtp.gmail.com",
			SMTPPort:       465,
			TimeoutSeconds: 10,
		},
		Output: OutputConfig{
			Dir: "output",
		},
	}
}
