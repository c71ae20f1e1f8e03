package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shanehull/defbrief/internal/config"
	"github.com/shanehull/defbrief/internal/scoring"
)

var scanBody string

var scanCmd = &cobra.Command{
	Use:   "scan <title>",
	Short: "Score a headline against the keyword tiers",
	Long: `Scan runs the keyword tier scanner against a single headline and
prints the matches and normalized score. Useful for tuning the tier
table without a full digest pass.

Examples:
  defbrief scan "Anduril unveils new USV"
  defbrief scan "Navy contract awarded" --body "autonomous surface vessel trials"`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().StringVar(&scanBody, "body", "", "Optional body text to scan after the title")
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	tiers, err := scoring.NewTierTable(cfg.Scoring.KeywordTiers, cfg.Scoring.TitleMultiplier, cfg.Scoring.NormalizationDivisor)
	if err != nil {
		return fmt.Errorf("failed to build keyword tiers: %w", err)
	}

	title := args[0]
	result := tiers.Scan(title, scanBody)

	fmt.Printf("Title: %s\n", title)
	if scanBody != "" {
		fmt.Printf("Body:  %s\n", scanBody)
	}
	fmt.Println(strings.Repeat("-", 40))

	if len(result.Matches) == 0 {
		fmt.Println("No keyword matches.")
	} else {
		for _, m := range result.Matches {
			fmt.Printf("  %-40s weight=%d  in %s\n", m.Keyword, m.Weight, m.Location)
		}
	}

	fmt.Println(strings.Repeat("-", 40))
	fmt.Printf("Keyword score: %.1f/10 (threshold %d)\n", result.KeywordScore, cfg.Scoring.RelevanceThreshold)

	return nil
}
