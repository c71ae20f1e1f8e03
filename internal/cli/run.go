package cli

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/shanehull/defbrief/internal/ai"
	"github.com/shanehull/defbrief/internal/config"
	"github.com/shanehull/defbrief/internal/feeds"
	"github.com/shanehull/defbrief/internal/notify"
	"github.com/shanehull/defbrief/internal/pipeline"
	"github.com/shanehull/defbrief/internal/runlog"
	"github.com/shanehull/defbrief/internal/samgov"
	"github.com/shanehull/defbrief/internal/scoring"
)

var (
	runNoEmail  bool
	runNoSAMGov bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Scan feeds and SAM.gov, score everything, and deliver the brief",
	Long: `Run executes one complete digest pass: fetch the configured RSS
feeds category by category, pull recent SAM.gov contract opportunities,
score every item, write a JSON run log, and email the hits.

Requires GEMINI_API_KEY. SAM_GOV_API_KEY is optional; without it the
opportunities phase is skipped. Email delivery needs SMTP_PASSWORD plus
the [email] config section.

Examples:
  defbrief run               # Full pass with email delivery
  defbrief run --no-email    # Score and log only
  defbrief run --no-samgov   # Skip contract opportunities`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runNoEmail, "no-email", false, "Skip email delivery, console report only")
	runCmd.Flags().BoolVar(&runNoSAMGov, "no-samgov", false, "Skip the SAM.gov opportunities phase")
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Analyzer.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}

	tiers, err := scoring.NewTierTable(cfg.Scoring.KeywordTiers, cfg.Scoring.TitleMultiplier, cfg.Scoring.NormalizationDivisor)
	if err != nil {
		return fmt.Errorf("failed to build keyword tiers: %w", err)
	}

	analyzer, err := ai.New(ctx, cfg.Analyzer.APIKey, cfg.Analyzer.Model, tiers.Keywords(), cfg.Analyzer.Timeout())
	if err != nil {
		return fmt.Errorf("failed to initialize analyzer: %w", err)
	}

	reader := feeds.NewReader(cfg.Feeds.EntriesPerFeed, feedTimeout(cfg))

	var source pipeline.OpportunitySource
	switch {
	case runNoSAMGov:
		log.Println("SAM.gov phase disabled by flag")
	case cfg.SAMGov.APIKey == "":
		log.Println("SAM_GOV_API_KEY not set, skipping contract opportunities")
	default:
		source = samgov.NewClient(
			cfg.SAMGov.BaseURL,
			cfg.SAMGov.APIKey,
			cfg.SAMGov.WindowDays,
			samgovSearches(cfg),
			samgovTimeout(cfg),
		)
	}

	p := pipeline.New(reader, source, analyzer, tiers, cfg.Scoring.RelevanceThreshold, pipeline.LogObserver{})

	result, err := p.Run(ctx, pipelineCategories(cfg))
	if err != nil {
		return fmt.Errorf("digest run failed: %w", err)
	}

	record := runlog.Build(result, runlog.ConfigSnapshot{
		Model:                cfg.Analyzer.Model,
		RelevanceThreshold:   cfg.Scoring.RelevanceThreshold,
		EntriesPerFeed:       cfg.Feeds.EntriesPerFeed,
		KeywordTiers:         tiers.Weights(),
		TitleMultiplier:      tiers.TitleMultiplier(),
		NormalizationDivisor: tiers.NormalizationDivisor(),
	}, time.Now())

	logPath, err := runlog.Write(cfg.Output.Dir, record)
	if err != nil {
		return fmt.Errorf("failed to write run log: %w", err)
	}

	data := notify.DigestData{
		Articles:      result.HitArticles,
		Opportunities: result.HitOpportunities,
		GeneratedAt:   record.RunTimestamp,
	}

	notify.ReportRun(data, len(result.Articles), len(result.Opportunities), logPath)

	if runNoEmail || data.Empty() {
		return nil
	}
	if !cfg.Email.Enabled() {
		log.Println("Email not configured, skipping delivery")
		return nil
	}

	msg, err := notify.NewHTMLDigestRenderer().Render(data)
	if err != nil {
		return fmt.Errorf("failed to render digest: %w", err)
	}
	if err := notify.NewEmailSender(cfg.Email).Send(msg); err != nil {
		return fmt.Errorf("failed to send digest: %w", err)
	}

	return nil
}

func pipelineCategories(cfg *config.Config) []pipeline.Category {
	categories := make([]pipeline.Category, 0, len(cfg.Feeds.Categories))
	for _, c := range cfg.Feeds.Categories {
		cat := pipeline.Category{Name: c.Name, Feeds: make([]pipeline.Feed, 0, len(c.Sources))}
		for _, s := range c.Sources {
			cat.Feeds = append(cat.Feeds, pipeline.Feed{Name: s.Name, URL: s.URL})
		}
		categories = append(categories, cat)
	}
	return categories
}

func samgovSearches(cfg *config.Config) []samgov.Search {
	searches := samgov.DefaultSearches()
	if cfg.SAMGov.SearchLimit > 0 {
		for i := range searches {
			searches[i].Limit = cfg.SAMGov.SearchLimit
		}
	}
	return searches
}

func feedTimeout(cfg *config.Config) time.Duration {
	return time.Duration(cfg.Feeds.FetchTimeoutSeconds) * time.Second
}

func samgovTimeout(cfg *config.Config) time.Duration {
	return time.Duration(cfg.SAMGov.FetchTimeoutSeconds) * time.Second
}
