/*
Package scoring implements the deterministic half of relevance scoring: the
tier-weighted keyword scan and the composite blend of the analyzer score with
the keyword score.
*/
package scoring

import (
	"fmt"
	"regexp"
	"sort"
)

const (
	DefaultTitleMultiplier      = 2
	DefaultNormalizationDivisor = 6
	DefaultRelevanceThreshold   = 4

	minTierWeight = 1
	maxTierWeight = 3
)

type tierEntry struct {
	keyword string
	weight  int
	pattern *regexp.Regexp
}

// TierTable holds the weighted keyword list with patterns compiled once.
// It is immutable after construction; the same table is shared by every scan
// in a run.
type TierTable struct {
	entries              []tierEntry
	titleMultiplier      int
	normalizationDivisor int
}

// NewTierTable compiles a keyword-weight map into a scan table. Weights must
// be in [1,3]. Matching is case-insensitive and word-boundary delimited, so
// "MSC" will not match inside "MSCellaneous".
func NewTierTable(weights map[string]int, titleMultiplier, normalizationDivisor int) (*TierTable, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("keyword tier table is empty")
	}
	if titleMultiplier < 1 {
		return nil, fmt.Errorf("title multiplier must be positive, got %d", titleMultiplier)
	}
	if normalizationDivisor < 1 {
		return nil, fmt.Errorf("normalization divisor must be positive, got %d", normalizationDivisor)
	}

	entries := make([]tierEntry, 0, len(weights))
	for kw, w := range weights {
		if kw == "" {
			return nil, fmt.Errorf("empty keyword in tier table")
		}
		if w < minTierWeight || w > maxTierWeight {
			return nil, fmt.Errorf("keyword %q has weight %d, want %d-%d", kw, w, minTierWeight, maxTierWeight)
		}

		pattern, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`)
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern for keyword %q: %w", kw, err)
		}

		entries = append(entries, tierEntry{keyword: kw, weight: w, pattern: pattern})
	}

	// Fixed iteration order so identical inputs always produce an identical
	// match list.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].keyword < entries[j].keyword
	})

	return &TierTable{
		entries:              entries,
		titleMultiplier:      titleMultiplier,
		normalizationDivisor: normalizationDivisor,
	}, nil
}

// Keywords returns the table's keywords in scan order.
func (t *TierTable) Keywords() []string {
	kws := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		kws = append(kws, e.keyword)
	}
	return kws
}

// Weights returns a copy of the keyword-weight map, for config snapshots.
func (t *TierTable) Weights() map[string]int {
	weights := make(map[string]int, len(t.entries))
	for _, e := range t.entries {
		weights[e.keyword] = e.weight
	}
	return weights
}

// TitleMultiplier returns the factor applied to title matches.
func (t *TierTable) TitleMultiplier() int {
	return t.titleMultiplier
}

// NormalizationDivisor returns the raw-point count at which the keyword
// score saturates.
func (t *TierTable) NormalizationDivisor() int {
	return t.normalizationDivisor
}
