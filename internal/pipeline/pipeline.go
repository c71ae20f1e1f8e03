/*
Package pipeline orchestrates a digest run: it walks the configured feed
categories and opportunity searches in order, invokes the analyzer and the
keyword scanner on every item, blends the scores and classifies each item as
a hit or a miss against the relevance threshold.
*/
package pipeline

import (
	"context"

	"github.com/shanehull/defbrief/internal/scoring"
	"github.com/shanehull/defbrief/internal/types"
)

// Analyzer is the external qualitative assessment collaborator.
type Analyzer interface {
	AnalyzeArticle(ctx context.Context, title, snippet string) (*types.Analysis, error)
	AnalyzeOpportunity(ctx context.Context, opp types.Opportunity) (*types.Analysis, error)
}

// FeedReader produces decoded feed entries for one source.
type FeedReader interface {
	Fetch(ctx context.Context, name, url string) ([]types.Article, error)
}

// OpportunitySource produces deduplicated contract listings.
type OpportunitySource interface {
	Fetch(ctx context.Context) ([]types.Opportunity, error)
}

// Feed is one named source URL within a category.
type Feed struct {
	Name string
	URL  string
}

// Category groups feeds; categories are processed in declared order.
type Category struct {
	Name  string
	Feeds []Feed
}

// Result is everything one run scored, hits and misses alike.
type Result struct {
	Articles         []types.ScoredArticle
	HitArticles      []types.ScoredArticle
	Opportunities    []types.ScoredOpportunity
	HitOpportunities []types.ScoredOpportunity
}

// Pipeline scores items one at a time, in input order, with no retries. An
// item whose analysis fails is dropped entirely and never recorded.
type Pipeline struct {
	reader    FeedReader
	source    OpportunitySource
	analyzer  Analyzer
	tiers     *scoring.TierTable
	threshold int
	observer  Observer
}

// New builds a pipeline. source may be nil, in which case the opportunities
// phase is skipped. A nil observer disables progress reporting.
func New(reader FeedReader, source OpportunitySource, analyzer Analyzer, tiers *scoring.TierTable, threshold int, observer Observer) *Pipeline {
	if observer == nil {
		observer = NopObserver{}
	}
	return &Pipeline{
		reader:    reader,
		source:    source,
		analyzer:  analyzer,
		tiers:     tiers,
		threshold: threshold,
		observer:  observer,
	}
}

// ScoreArticle runs one article through analysis, keyword scanning and the
// composite blend. A nil result with a non-nil error means the analyzer
// failed and the article produced no record.
func (p *Pipeline) ScoreArticle(ctx context.Context, article types.Article) (*types.ScoredArticle, error) {
	analysis, err := p.analyzer.AnalyzeArticle(ctx, article.Title, article.Snippet)
	if err != nil {
		return nil, err
	}

	return &types.ScoredArticle{
		Article: article,
		Scored:  p.score(article.Title, article.Snippet, analysis),
	}, nil
}

// ScoreOpportunity scores a contract listing. Opportunities carry no free
// text, so the keyword scan sees the title only.
func (p *Pipeline) ScoreOpportunity(ctx context.Context, opp types.Opportunity) (*types.ScoredOpportunity, error) {
	analysis, err := p.analyzer.AnalyzeOpportunity(ctx, opp)
	if err != nil {
		return nil, err
	}

	return &types.ScoredOpportunity{
		Opportunity: opp,
		Scored:      p.score(opp.Title, "", analysis),
	}, nil
}

func (p *Pipeline) score(title, body string, analysis *types.Analysis) types.Scored {
	scan := p.tiers.Scan(title, body)
	composite := scoring.Combine(analysis.Score, scan.KeywordScore)

	return types.Scored{
		CompositeScore: composite,
		LLMScore:       analysis.Score,
		KeywordScore:   scan.KeywordScore,
		Matches:        scan.Matches,
		Summary:        analysis.Summary,
		Category:       analysis.Category,
	}
}

// IsHit reports whether a composite score meets the relevance threshold.
func (p *Pipeline) IsHit(composite int) bool {
	return composite >= p.threshold
}

// Run executes a full digest pass: every category's feeds in declared order,
// then the opportunity source. Feed and source failures degrade to empty
// contributions; an empty Result is a valid outcome.
func (p *Pipeline) Run(ctx context.Context, categories []Category) (*Result, error) {
	result := &Result{}

	for _, category := range categories {
		p.observer.CategoryStarted(category.Name)

		for _, feed := range category.Feeds {
			articles, err := p.reader.Fetch(ctx, feed.Name, feed.URL)
			if err != nil {
				p.observer.FeedFailed(feed.Name, err)
				continue
			}
			p.observer.FeedScanned(feed.Name, len(articles))

			for _, article := range articles {
				scored, err := p.ScoreArticle(ctx, article)
				if err != nil {
					p.observer.ItemDropped(article.Title, err)
					continue
				}

				result.Articles = append(result.Articles, *scored)
				hit := p.IsHit(scored.CompositeScore)
				if hit {
					result.HitArticles = append(result.HitArticles, *scored)
				}
				p.observer.ItemScored(scored.Title, scored.Scored, hit)
			}
		}
	}

	if p.source != nil {
		opps, err := p.source.Fetch(ctx)
		if err != nil {
			p.observer.FeedFailed("SAM.gov", err)
			opps = nil
		}

		for _, opp := range opps {
			scored, err := p.ScoreOpportunity(ctx, opp)
			if err != nil {
				p.observer.ItemDropped(opp.Title, err)
				continue
			}

			result.Opportunities = append(result.Opportunities, *scored)
			hit := p.IsHit(scored.CompositeScore)
			if hit {
				result.HitOpportunities = append(result.HitOpportunities, *scored)
			}
			p.observer.ItemScored(scored.Title, scored.Scored, hit)
		}
	}

	return result, nil
}
