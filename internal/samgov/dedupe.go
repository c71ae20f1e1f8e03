package samgov

import "github.com/shanehull/defbrief/internal/types"

// Dedupe merges ordered result sets into a list with at most one opportunity
// per notice ID. The first occurrence wins, within a set and across sets;
// later duplicates are dropped without merging fields. First-seen order is
// preserved.
//
// Opportunities with an empty notice ID are never collapsed against each
// other: a missing identifier says nothing about two listings being the same.
func Dedupe(resultSets [][]types.Opportunity) []types.Opportunity {
	seen := make(map[string]struct{})
	var unique []types.Opportunity

	for _, set := range resultSets {
		for _, opp := range set {
			if opp.NoticeID != "" {
				if _, dup := seen[opp.NoticeID]; dup {
					continue
				}
				seen[opp.NoticeID] = struct{}{}
			}
			unique = append(unique, opp)
		}
	}
	return unique
}
