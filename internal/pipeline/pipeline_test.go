package pipeline

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shanehull/defbrief/internal/scoring"
	"github.com/shanehull/defbrief/internal/types"
)

type fakeAnalyzer struct {
	scores  map[string]int
	failing map[string]bool
}

func (f *fakeAnalyzer) analyze(title string) (*types.Analysis, error) {
	if f.failing[title] {
		return nil, errors.New("model unavailable")
	}
	return &types.Analysis{
		Score:    f.scores[title],
		Summary:  "summary for " + title,
		Category: types.CategoryMaritime,
	}, nil
}

func (f *fakeAnalyzer) AnalyzeArticle(_ context.Context, title, _ string) (*types.Analysis, error) {
	return f.analyze(title)
}

func (f *fakeAnalyzer) AnalyzeOpportunity(_ context.Context, opp types.Opportunity) (*types.Analysis, error) {
	return f.analyze(opp.Title)
}

type fakeReader struct {
	articles map[string][]types.Article
	errFor   map[string]error
}

func (f *fakeReader) Fetch(_ context.Context, name, _ string) ([]types.Article, error) {
	if err := f.errFor[name]; err != nil {
		return nil, err
	}
	return f.articles[name], nil
}

type fakeSource struct {
	opps []types.Opportunity
	err  error
}

func (f *fakeSource) Fetch(_ context.Context) ([]types.Opportunity, error) {
	return f.opps, f.err
}

func testTiers(t *testing.T) *scoring.TierTable {
	t.Helper()
	tiers, err := scoring.NewTierTable(
		map[string]int{"Anduril": 3, "USV": 3, "naval": 1},
		scoring.DefaultTitleMultiplier,
		scoring.DefaultNormalizationDivisor,
	)
	if err != nil {
		t.Fatalf("NewTierTable() error = %v", err)
	}
	return tiers
}

func TestScoreArticle_KeywordFloorIsAHit(t *testing.T) {
	analyzer := &fakeAnalyzer{scores: map[string]int{"Anduril unveils new USV": 0}}
	p := New(nil, nil, analyzer, testTiers(t), scoring.DefaultRelevanceThreshold, nil)

	scored, err := p.ScoreArticle(context.Background(), types.Article{Title: "Anduril unveils new USV"})
	if err != nil {
		t.Fatalf("ScoreArticle() error = %v", err)
	}

	if scored.KeywordScore != 10 {
		t.Errorf("KeywordScore = %v, want 10", scored.KeywordScore)
	}
	if scored.CompositeScore != 4 {
		t.Errorf("CompositeScore = %d, want 4 (keyword floor)", scored.CompositeScore)
	}
	if !p.IsHit(scored.CompositeScore) {
		t.Error("composite 4 should be a hit at the default threshold")
	}
	if len(scored.Matches) != 2 {
		t.Errorf("Matches = %+v, want two title matches", scored.Matches)
	}
}

func TestScoreArticle_NoKeywordsLowLLMIsAMiss(t *testing.T) {
	analyzer := &fakeAnalyzer{scores: map[string]int{"Parliament budget recap": 3}}
	p := New(nil, nil, analyzer, testTiers(t), scoring.DefaultRelevanceThreshold, nil)

	scored, err := p.ScoreArticle(context.Background(), types.Article{
		Title:   "Parliament budget recap",
		Snippet: "Nothing relevant in here.",
	})
	if err != nil {
		t.Fatalf("ScoreArticle() error = %v", err)
	}

	if scored.CompositeScore != 2 {
		t.Errorf("CompositeScore = %d, want 2 (round of 1.8)", scored.CompositeScore)
	}
	if p.IsHit(scored.CompositeScore) {
		t.Error("composite 2 should be a miss at the default threshold")
	}
}

func TestScoreOpportunity_TitleOnlyScan(t *testing.T) {
	analyzer := &fakeAnalyzer{scores: map[string]int{"USV maintenance": 5}}
	p := New(nil, nil, analyzer, testTiers(t), scoring.DefaultRelevanceThreshold, nil)

	scored, err := p.ScoreOpportunity(context.Background(), types.Opportunity{
		NoticeID: "N1",
		Title:    "USV maintenance",
	})
	if err != nil {
		t.Fatalf("ScoreOpportunity() error = %v", err)
	}

	// 3*2=6 raw points saturates at the divisor: keyword score 10.
	if scored.KeywordScore != 10 {
		t.Errorf("KeywordScore = %v, want 10", scored.KeywordScore)
	}
	if scored.CompositeScore != 7 {
		t.Errorf("CompositeScore = %d, want 7", scored.CompositeScore)
	}
	for _, m := range scored.Matches {
		if m.Location != types.MatchTitle {
			t.Errorf("opportunity match location = %q, want title only", m.Location)
		}
	}
}

func TestRun_DroppedArticleAppearsNowhere(t *testing.T) {
	titles := []string{"first naval story", "second naval story", "third naval story"}
	articles := make([]types.Article, 0, len(titles))
	for _, title := range titles {
		articles = append(articles, types.Article{Title: title, Source: "Feed A"})
	}

	analyzer := &fakeAnalyzer{
		scores:  map[string]int{titles[0]: 8, titles[2]: 8},
		failing: map[string]bool{titles[1]: true},
	}
	reader := &fakeReader{articles: map[string][]types.Article{"Feed A": articles}}

	p := New(reader, nil, analyzer, testTiers(t), scoring.DefaultRelevanceThreshold, nil)

	result, err := p.Run(context.Background(), []Category{
		{Name: "Defense", Feeds: []Feed{{Name: "Feed A", URL: "http://example.com/a"}}},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(result.Articles) != 2 {
		t.Errorf("Articles scored = %d, want 2 (failed item dropped)", len(result.Articles))
	}
	for _, a := range result.Articles {
		if a.Title == titles[1] {
			t.Errorf("dropped article %q present in results", a.Title)
		}
	}
	for _, a := range result.HitArticles {
		if a.Title == titles[1] {
			t.Errorf("dropped article %q present in hits", a.Title)
		}
	}
}

func TestRun_ClassifiesHitsAndMisses(t *testing.T) {
	analyzer := &fakeAnalyzer{scores: map[string]int{
		"Anduril wins award": 9, // hit
		"Sports roundup":     0, // miss
	}}
	reader := &fakeReader{articles: map[string][]types.Article{
		"Feed A": {
			{Title: "Anduril wins award", Source: "Feed A"},
			{Title: "Sports roundup", Source: "Feed A"},
		},
	}}

	p := New(reader, nil, analyzer, testTiers(t), scoring.DefaultRelevanceThreshold, nil)

	result, err := p.Run(context.Background(), []Category{
		{Name: "Defense", Feeds: []Feed{{Name: "Feed A", URL: "http://example.com/a"}}},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(result.Articles) != 2 {
		t.Errorf("Articles = %d, want 2 (hits and misses both retained)", len(result.Articles))
	}
	if len(result.HitArticles) != 1 || result.HitArticles[0].Title != "Anduril wins award" {
		t.Errorf("HitArticles = %+v, want only the Anduril story", result.HitArticles)
	}
}

func TestRun_OpportunityPhase(t *testing.T) {
	analyzer := &fakeAnalyzer{scores: map[string]int{"Shipyard overhaul": 8}}
	source := &fakeSource{opps: []types.Opportunity{{NoticeID: "N1", Title: "Shipyard overhaul"}}}

	p := New(&fakeReader{}, source, analyzer, testTiers(t), scoring.DefaultRelevanceThreshold, nil)

	result, err := p.Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(result.Opportunities) != 1 {
		t.Fatalf("Opportunities = %d, want 1", len(result.Opportunities))
	}
	if len(result.HitOpportunities) != 1 {
		t.Errorf("HitOpportunities = %d, want 1", len(result.HitOpportunities))
	}
}

func TestRun_SourceFailureIsNotFatal(t *testing.T) {
	source := &fakeSource{err: fmt.Errorf("network down")}
	p := New(&fakeReader{}, source, &fakeAnalyzer{}, testTiers(t), scoring.DefaultRelevanceThreshold, nil)

	result, err := p.Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("Run() error = %v, want empty result instead", err)
	}
	if len(result.Opportunities) != 0 || len(result.Articles) != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
}

func TestRun_FeedFailureSkipsOnlyThatFeed(t *testing.T) {
	analyzer := &fakeAnalyzer{scores: map[string]int{"naval story": 8}}
	reader := &fakeReader{
		articles: map[string][]types.Article{
			"Good Feed": {{Title: "naval story", Source: "Good Feed"}},
		},
		errFor: map[string]error{
			"Bad Feed": fmt.Errorf("connection refused"),
		},
	}

	p := New(reader, nil, analyzer, testTiers(t), scoring.DefaultRelevanceThreshold, nil)
	result, err := p.Run(context.Background(), []Category{
		{Name: "Defense", Feeds: []Feed{
			{Name: "Bad Feed", URL: "http://example.com/bad"},
			{Name: "Good Feed", URL: "http://example.com/good"},
		}},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(result.Articles) != 1 {
		t.Errorf("Articles = %d, want 1 from the good feed", len(result.Articles))
	}
}
