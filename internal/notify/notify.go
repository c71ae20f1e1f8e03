/*
Package notify handles reporting of a digest run via console output and a
single HTML email with the hit articles and contract opportunities.
*/
package notify

import (
	"fmt"
	"time"

	"github.com/shanehull/defbrief/internal/types"
)

// DigestData is everything the digest renders: hits only, articles and
// opportunities separated, in scoring order.
type DigestData struct {
	Articles      []types.ScoredArticle
	Opportunities []types.ScoredOpportunity
	GeneratedAt   time.Time
}

// Empty reports whether there is nothing worth sending.
func (d DigestData) Empty() bool {
	return len(d.Articles) == 0 && len(d.Opportunities) == 0
}

// Subject is the digest email subject line.
func (d DigestData) Subject() string {
	return fmt.Sprintf("Defense Brief: %d Articles, %d Contracts", len(d.Articles), len(d.Opportunities))
}

// RenderedMessage is a digest ready for delivery.
type RenderedMessage struct {
	Subject string
	Text    string
	HTML    string
}

// ReportRun prints the run outcome to the console.
func ReportRun(data DigestData, articlesScored, oppsScored int, runLogPath string) {
	if data.Empty() {
		fmt.Println("\n-------------------------------------------")
		fmt.Println("No high-relevance articles or contracts found today.")
		fmt.Println("-------------------------------------------")
		fmt.Printf("Run log saved to %s.\n", runLogPath)
		return
	}

	fmt.Println("\n===========================================")
	fmt.Printf("%d ARTICLE HITS, %d CONTRACT HITS\n", len(data.Articles), len(data.Opportunities))
	fmt.Println("===========================================")

	for i, a := range data.Articles {
		fmt.Printf("\n--- ARTICLE #%d ---\n", i+1)
		fmt.Printf("Title:    %s\n", a.Title)
		fmt.Printf("Score:    %d/10 (LLM=%d, KW=%.1f)\n", a.CompositeScore, a.LLMScore, a.KeywordScore)
		fmt.Printf("Category: %s\n", a.Category)
		fmt.Printf("Source:   %s\n", a.Source)
		fmt.Printf("URL:      %s\n", a.Link)
		fmt.Printf("Summary:\n\t%s\n", a.Summary)
	}

	for i, o := range data.Opportunities {
		fmt.Printf("\n--- CONTRACT #%d ---\n", i+1)
		fmt.Printf("Title:        %s\n", o.Title)
		fmt.Printf("Score:        %d/10 (LLM=%d, KW=%.1f)\n", o.CompositeScore, o.LLMScore, o.KeywordScore)
		fmt.Printf("Solicitation: %s | NAICS: %s | Type: %s\n", o.SolicitationNumber, o.NAICSCode, o.Type)
		fmt.Printf("Deadline:     %s\n", o.ResponseDeadline)
		fmt.Printf("URL:          %s\n", o.Link)
		fmt.Printf("Summary:\n\t%s\n", o.Summary)
	}

	fmt.Println("\n===========================================")
	fmt.Printf("Scored %d articles and %d opportunities. Run log saved to %s.\n",
		articlesScored, oppsScored, runLogPath)
	fmt.Println("===========================================")
}
