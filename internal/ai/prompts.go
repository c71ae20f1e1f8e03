package ai

import (
	"fmt"
	"strings"

	"github.com/shanehull/defbrief/internal/types"
)

const articlePromptTemplate = `You are a defense-tech analyst screening articles for a daily digest.
Score the article below on a 0-10 scale using this rubric:

  8-10: Directly mentions a priority keyword (%[1]s) OR covers
        a specific contract award, weapon-system milestone, or policy change
        in maritime defense / autonomous systems / defense AI.
        Examples: "Navy awards $400M sealift contract", "Anduril unveils
        autonomous patrol boat".
  5-7:  General defense-industry or military news that is useful background
        but does not mention priority keywords or a specific program.
        Examples: "Pentagon budget request overview", "NATO exercises in
        the Baltic".
  1-4:  Tangentially related - mentions the military but focuses on
        politics, lifestyle, or broad geopolitics with no defense-tech angle.
  0:    Completely irrelevant (sports, entertainment, etc.).

Priority keywords (boost score when present): %[1]s

Return ONLY a JSON object with these fields:
- "score": integer 0-10 per the rubric above
- "summary": 2-sentence executive summary
- "category": one of "Maritime", "AI/Tech", "Geopolitics", "Contracting", "Other"

Article title: %[2]s
Snippet: %[3]s`

const opportunityPromptTemplate = `You are a defense-tech analyst screening government contract opportunities.
Score this opportunity on a 0-10 scale using this rubric:

  8-10: Directly related to priority keywords (%[1]s) OR involves
        shipbuilding, autonomous systems, defense AI, or maritime logistics.
  5-7:  General defense/government contract that may be tangentially relevant.
  1-4:  Government contract with little defense-tech relevance.
  0:    Completely irrelevant.

Priority keywords (boost score when present): %[1]s

Return ONLY a JSON object with these fields:
- "score": integer 0-10 per the rubric above
- "summary": 2-sentence description of what this contract covers and why it matters
- "category": one of "Maritime", "AI/Tech", "Geopolitics", "Contracting", "Other"

Contract title: %[2]s
Solicitation number: %[3]s
NAICS code: %[4]s
Type: %[5]s
Response deadline: %[6]s`

func articlePrompt(keywords []string, title, snippet string) string {
	return fmt.Sprintf(articlePromptTemplate, strings.Join(keywords, ", "), title, snippet)
}

func opportunityPrompt(keywords []string, opp types.Opportunity) string {
	return fmt.Sprintf(opportunityPromptTemplate,
		strings.Join(keywords, ", "),
		opp.Title,
		opp.SolicitationNumber,
		opp.NAICSCode,
		opp.Type,
		opp.ResponseDeadline,
	)
}
