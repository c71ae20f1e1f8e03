package scoring

import (
	"math"

	"github.com/shanehull/defbrief/internal/types"
)

// ScanResult is the outcome of one keyword scan.
type ScanResult struct {
	KeywordScore float64
	Matches      []types.KeywordMatch
}

// Scan matches every keyword in the table against the title first and the
// body only if the title did not match. Title matches earn weight times the
// title multiplier, body matches earn the bare weight. The summed raw points
// are normalized to a 0-10 score that saturates at the divisor, rounded to
// one decimal place.
//
// An empty body is valid: title-only matching still applies.
func (t *TierTable) Scan(title, body string) ScanResult {
	var matches []types.KeywordMatch
	rawPoints := 0

	for _, e := range t.entries {
		switch {
		case e.pattern.MatchString(title):
			rawPoints += e.weight * t.titleMultiplier
			matches = append(matches, types.KeywordMatch{
				Keyword:  e.keyword,
				Weight:   e.weight,
				Location: types.MatchTitle,
			})
		case body != "" && e.pattern.MatchString(body):
			rawPoints += e.weight
			matches = append(matches, types.KeywordMatch{
				Keyword:  e.keyword,
				Weight:   e.weight,
				Location: types.MatchBody,
			})
		}
	}

	score := math.Min(10, float64(rawPoints)/float64(t.normalizationDivisor)*10)
	score = math.Round(score*10) / 10

	return ScanResult{KeywordScore: score, Matches: matches}
}
