package scoring

import "testing"

func TestCombine(t *testing.T) {
	tests := []struct {
		name         string
		llmScore     int
		keywordScore float64
		want         int
	}{
		{name: "keyword floor with zero llm score", llmScore: 0, keywordScore: 10, want: 4},
		{name: "llm ceiling with zero keyword score", llmScore: 10, keywordScore: 0, want: 6},
		{name: "both zero", llmScore: 0, keywordScore: 0, want: 0},
		{name: "both maxed clamps to ten", llmScore: 10, keywordScore: 10, want: 10},
		{name: "miss scenario rounds down", llmScore: 3, keywordScore: 0, want: 2}, // round(1.8)
		{name: "mid blend", llmScore: 5, keywordScore: 5, want: 5},
		{name: "rounding up", llmScore: 7, keywordScore: 6.7, want: 7}, // round(6.88)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Combine(tt.llmScore, tt.keywordScore); got != tt.want {
				t.Errorf("Combine(%d, %v) = %d, want %d", tt.llmScore, tt.keywordScore, got, tt.want)
			}
		})
	}
}

func TestCombine_Monotonic(t *testing.T) {
	prev := -1
	for llm := 0; llm <= 10; llm++ {
		got := Combine(llm, 5)
		if got < prev {
			t.Errorf("Combine(%d, 5) = %d, less than Combine(%d, 5) = %d", llm, got, llm-1, prev)
		}
		prev = got
	}

	prev = -1
	for kw := 0; kw <= 100; kw++ {
		got := Combine(5, float64(kw)/10)
		if got < prev {
			t.Errorf("Combine(5, %v) = %d, decreased from %d", float64(kw)/10, got, prev)
		}
		prev = got
	}
}

func TestCombine_Bounds(t *testing.T) {
	for llm := 0; llm <= 10; llm++ {
		for kw := 0; kw <= 100; kw += 5 {
			got := Combine(llm, float64(kw)/10)
			if got < 0 || got > 10 {
				t.Errorf("Combine(%d, %v) = %d, out of [0,10]", llm, float64(kw)/10, got)
			}
		}
	}
}
