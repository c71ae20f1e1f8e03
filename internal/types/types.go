package types

// Category is the analyst-assigned subject area for a scored item.
type Category string

const (
	CategoryMaritime    Category = "Maritime"
	CategoryAITech      Category = "AI/Tech"
	CategoryGeopolitics Category = "Geopolitics"
	CategoryContracting Category = "Contracting"
	CategoryOther       Category = "Other"
)

// Categories lists every valid category value.
var Categories = []Category{
	CategoryMaritime,
	CategoryAITech,
	CategoryGeopolitics,
	CategoryContracting,
	CategoryOther,
}

// Normalize maps an unrecognized category string to CategoryOther.
func (c Category) Normalize() Category {
	for _, known := range Categories {
		if c == known {
			return known
		}
	}
	return CategoryOther
}

// Article is one feed entry with its text already extracted and decoded.
type Article struct {
	Title   string `json:"title"`
	Snippet string `json:"-"`
	Link    string `json:"link"`
	Source  string `json:"source"`
}

// Opportunity is one SAM.gov contract listing.
type Opportunity struct {
	NoticeID           string `json:"noticeId"`
	Title              string `json:"title"`
	SolicitationNumber string `json:"solicitationNumber"`
	NAICSCode          string `json:"naicsCode"`
	Type               string `json:"type"`
	ResponseDeadline   string `json:"responseDeadLine"`
	Link               string `json:"link"`
}

// Analysis is the qualitative assessment returned by the analyzer.
type Analysis struct {
	Score    int      `json:"score"`
	Summary  string   `json:"summary"`
	Category Category `json:"category"`
}

// MatchLocation records where in an item a keyword matched.
type MatchLocation string

const (
	MatchTitle MatchLocation = "title"
	MatchBody  MatchLocation = "body"
)

// KeywordMatch is one matched keyword. A keyword that matches the title is
// never also recorded against the body of the same item.
type KeywordMatch struct {
	Keyword  string        `json:"keyword"`
	Weight   int           `json:"weight"`
	Location MatchLocation `json:"location"`
}

// Scored carries the scoring outcome shared by articles and opportunities.
type Scored struct {
	CompositeScore int            `json:"score"`
	LLMScore       int            `json:"llm_score"`
	KeywordScore   float64        `json:"keyword_score"`
	Matches        []KeywordMatch `json:"matched_keywords"`
	Summary        string         `json:"summary"`
	Category       Category       `json:"category"`
}

// ScoredArticle is an article after analysis and scoring.
type ScoredArticle struct {
	Article
	Scored
}

// ScoredOpportunity is a contract listing after analysis and scoring.
type ScoredOpportunity struct {
	Opportunity
	Scored
}
