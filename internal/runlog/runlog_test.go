package runlog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shanehull/defbrief/internal/pipeline"
	"github.com/shanehull/defbrief/internal/types"
)

func sampleResult() *pipeline.Result {
	hit := types.ScoredArticle{
		Article: types.Article{Title: "Anduril unveils new USV", Source: "USNI News"},
		Scored:  types.Scored{CompositeScore: 4, KeywordScore: 10},
	}
	miss := types.ScoredArticle{
		Article: types.Article{Title: "Budget recap", Source: "Federal News Network"},
		Scored:  types.Scored{CompositeScore: 2, LLMScore: 3},
	}
	opp := types.ScoredOpportunity{
		Opportunity: types.Opportunity{NoticeID: "N1", Title: "Dry dock repair"},
		Scored:      types.Scored{CompositeScore: 6, LLMScore: 8},
	}

	return &pipeline.Result{
		Articles:         []types.ScoredArticle{hit, miss},
		HitArticles:      []types.ScoredArticle{hit},
		Opportunities:    []types.ScoredOpportunity{opp},
		HitOpportunities: []types.ScoredOpportunity{opp},
	}
}

func sampleSnapshot() ConfigSnapshot {
	return ConfigSnapshot{
		Model:                "gemini-2.0-flash",
		RelevanceThreshold:   4,
		EntriesPerFeed:       3,
		KeywordTiers:         map[string]int{"Anduril": 3},
		TitleMultiplier:      2,
		NormalizationDivisor: 6,
	}
}

func TestBuild(t *testing.T) {
	now := time.Date(2026, 8, 26, 6, 30, 0, 0, time.UTC)
	record := Build(sampleResult(), sampleSnapshot(), now)

	if record.RunID == "" {
		t.Error("RunID is empty")
	}
	if !record.RunTimestamp.Equal(now) {
		t.Errorf("RunTimestamp = %v, want %v", record.RunTimestamp, now)
	}

	want := Summary{ArticlesScored: 2, ArticleHits: 1, OpportunitiesScored: 1, OpportunityHits: 1}
	if record.Summary != want {
		t.Errorf("Summary = %+v, want %+v", record.Summary, want)
	}

	// Misses stay in the record; the ledger must never narrow to hits only.
	if len(record.Articles) != 2 {
		t.Errorf("Articles in record = %d, want 2 including the miss", len(record.Articles))
	}
	if record.Config.RelevanceThreshold != 4 {
		t.Errorf("Config.RelevanceThreshold = %d, want 4", record.Config.RelevanceThreshold)
	}
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 8, 26, 6, 30, 15, 0, time.UTC)
	record := Build(sampleResult(), sampleSnapshot(), now)

	path, err := Write(dir, record)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	wantName := "run_2026-08-26_063015.json"
	if filepath.Base(path) != wantName {
		t.Errorf("file name = %q, want %q", filepath.Base(path), wantName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading run log: %v", err)
	}

	var loaded Record
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("run log is not valid JSON: %v", err)
	}
	if loaded.Summary != record.Summary {
		t.Errorf("round-tripped Summary = %+v, want %+v", loaded.Summary, record.Summary)
	}
	if len(loaded.Articles) != 2 || len(loaded.Opportunities) != 1 {
		t.Errorf("round-tripped items = %d articles, %d opportunities", len(loaded.Articles), len(loaded.Opportunities))
	}
}

func TestWrite_NeverOverwrites(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 8, 26, 6, 30, 15, 0, time.UTC)
	record := Build(sampleResult(), sampleSnapshot(), now)

	if _, err := Write(dir, record); err != nil {
		t.Fatalf("first Write() error = %v", err)
	}
	if _, err := Write(dir, record); err == nil {
		t.Fatal("second Write() with the same timestamp succeeded, want error")
	}
}

func TestWrite_EmptyRunIsValid(t *testing.T) {
	dir := t.TempDir()
	record := Build(&pipeline.Result{}, sampleSnapshot(), time.Now())

	path, err := Write(dir, record)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if record.Summary != (Summary{}) {
		t.Errorf("empty run Summary = %+v, want zero counts", record.Summary)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("run log not written: %v", err)
	}
}
