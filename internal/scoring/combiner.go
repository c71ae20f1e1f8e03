package scoring

import "math"

// Combine blends the analyzer score (60%) with the keyword score (40%) into
// a single 0-10 integer, clamped at 10.
//
// The split keeps the analyzer dominant while a strong keyword match
// provides a reliable floor: a keyword score of 10 alone yields a composite
// of 4, so an item with "Anduril" in the title stays visible even when the
// analyzer returns 0. Downstream filtering depends on that floor.
//
// Inputs are assumed to be within their documented ranges; out-of-range
// input is a caller bug.
func Combine(llmScore int, keywordScore float64) int {
	composite := int(math.Round(float64(llmScore)*0.6 + keywordScore*0.4))
	if composite > 10 {
		composite = 10
	}
	return composite
}
