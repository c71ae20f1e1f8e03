/*
Package runlog builds and persists the audit record of one pipeline
execution. Every scored item is retained, hit or miss, so thresholds and the
rubric can be tuned after the fact. One file is written per run and never
touched again.
*/
package runlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/shanehull/defbrief/internal/pipeline"
	"github.com/shanehull/defbrief/internal/types"
)

// ConfigSnapshot captures the scoring configuration active during the run.
type ConfigSnapshot struct {
	Model                string         `json:"model"`
	RelevanceThreshold   int            `json:"relevance_threshold"`
	EntriesPerFeed       int            `json:"entries_per_feed"`
	KeywordTiers         map[string]int `json:"keyword_tiers"`
	TitleMultiplier      int            `json:"title_multiplier"`
	NormalizationDivisor int            `json:"normalization_divisor"`
}

// Summary holds the run's headline counts.
type Summary struct {
	ArticlesScored      int `json:"articles_scored"`
	ArticleHits         int `json:"articles_hits"`
	OpportunitiesScored int `json:"opportunities_scored"`
	OpportunityHits     int `json:"opportunities_hits"`
}

// Record is the complete audit trail of one execution.
type Record struct {
	RunID         string                    `json:"run_id"`
	RunTimestamp  time.Time                 `json:"run_timestamp"`
	Config        ConfigSnapshot            `json:"config"`
	Summary       Summary                   `json:"summary"`
	Articles      []types.ScoredArticle     `json:"articles"`
	Opportunities []types.ScoredOpportunity `json:"opportunities"`
}

// Build aggregates a pipeline result and the active configuration into one
// Record. Pure aggregation: nothing is filtered or re-scored here.
func Build(result *pipeline.Result, snapshot ConfigSnapshot, now time.Time) Record {
	return Record{
		RunID:        uuid.New().String(),
		RunTimestamp: now,
		Config:       snapshot,
		Summary: Summary{
			ArticlesScored:      len(result.Articles),
			ArticleHits:         len(result.HitArticles),
			OpportunitiesScored: len(result.Opportunities),
			OpportunityHits:     len(result.HitOpportunities),
		},
		Articles:      result.Articles,
		Opportunities: result.Opportunities,
	}
}

// Write saves the record to dir as run_<timestamp>.json and returns the
// path. The file carries the run timestamp in its name; an existing file is
// never overwritten.
func Write(dir string, record Record) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create run log directory %s: %w", dir, err)
	}

	filename := fmt.Sprintf("run_%s.json", record.RunTimestamp.Format("2006-01-02_150405"))
	path := filepath.Join(dir, filename)

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal run record: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create run log file %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return "", fmt.Errorf("failed to write run log file %s: %w", path, err)
	}

	return path, nil
}
