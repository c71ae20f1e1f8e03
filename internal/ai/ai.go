/*
Package ai provides the qualitative relevance assessment of articles and
contract opportunities via the Gemini API.
*/
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/shanehull/defbrief/internal/types"
)

// Analyzer scores items with a Gemini model constrained to a structured
// JSON response.
type Analyzer struct {
	client   *genai.Client
	model    string
	keywords []string
	timeout  time.Duration
}

// New creates an analyzer. The keyword list is injected into the scoring
// rubric so the model boosts items mentioning priority terms.
func New(ctx context.Context, apiKey, model string, keywords []string, timeout time.Duration) (*Analyzer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Analyzer{
		client:   client,
		model:    model,
		keywords: keywords,
		timeout:  timeout,
	}, nil
}

// AnalyzeArticle scores a news article from its title and snippet.
func (a *Analyzer) AnalyzeArticle(ctx context.Context, title, snippet string) (*types.Analysis, error) {
	return a.generate(ctx, articlePrompt(a.keywords, title, snippet))
}

// AnalyzeOpportunity scores a contract listing from its structured metadata.
func (a *Analyzer) AnalyzeOpportunity(ctx context.Context, opp types.Opportunity) (*types.Analysis, error) {
	return a.generate(ctx, opportunityPrompt(a.keywords, opp))
}

func (a *Analyzer) generate(ctx context.Context, prompt string) (*types.Analysis, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	contents := []*genai.Content{
		{
			Parts: []*genai.Part{{Text: prompt}},
			Role:  "user",
		},
	}

	resp, err := a.client.Models.GenerateContent(ctx, a.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   analysisSchema(),
	})
	if err != nil {
		return nil, fmt.Errorf("gemini API call failed: %w", err)
	}

	respText := resp.Text()

	var analysis types.Analysis
	if err := json.Unmarshal([]byte(respText), &analysis); err != nil {
		return nil, fmt.Errorf("failed to unmarshal gemini JSON response: %w. Raw text: %s", err, respText)
	}

	if analysis.Score < 0 || analysis.Score > 10 {
		return nil, fmt.Errorf("gemini returned out-of-range score %d", analysis.Score)
	}
	if analysis.Summary == "" {
		analysis.Summary = "No summary available."
	}
	analysis.Category = analysis.Category.Normalize()

	return &analysis, nil
}

func analysisSchema() *genai.Schema {
	categories := make([]string, 0, len(types.Categories))
	for _, c := range types.Categories {
		categories = append(categories, string(c))
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"score": {
				Type:        genai.TypeInteger,
				Description: "Integer 0-10 per the rubric.",
			},
			"summary": {
				Type:        genai.TypeString,
				Description: "2-sentence executive summary.",
			},
			"category": {
				Type:        genai.TypeString,
				Enum:        categories,
				Description: "Subject area of the item.",
			},
		},
		Required: []string{"score", "summary", "category"},
	}
}
