package pipeline

import (
	"log"

	"github.com/shanehull/defbrief/internal/types"
)

// Observer receives progress events as the pipeline works through a run.
// Scoring itself never touches the console; all diagnostics flow through
// here.
type Observer interface {
	CategoryStarted(name string)
	FeedScanned(feed string, count int)
	FeedFailed(feed string, err error)
	ItemScored(title string, scored types.Scored, hit bool)
	ItemDropped(title string, err error)
}

// NopObserver discards all events.
type NopObserver struct{}

func (NopObserver) CategoryStarted(string)                {}
func (NopObserver) FeedScanned(string, int)               {}
func (NopObserver) FeedFailed(string, error)              {}
func (NopObserver) ItemScored(string, types.Scored, bool) {}
func (NopObserver) ItemDropped(string, error)             {}

// LogObserver writes progress to the standard logger.
type LogObserver struct{}

func (LogObserver) CategoryStarted(name string) {
	log.Printf("--- %s ---", name)
}

func (LogObserver) FeedScanned(feed string, count int) {
	log.Printf("Scanning %d articles from %s...", count, feed)
}

func (LogObserver) FeedFailed(feed string, err error) {
	log.Printf("Error fetching %s: %v", feed, err)
}

func (LogObserver) ItemScored(title string, scored types.Scored, hit bool) {
	verdict := "skipping"
	if hit {
		verdict = ">>> HIT!"
	}
	log.Printf("  %s Score %d/10 (LLM=%d, KW=%.1f): %s",
		verdict, scored.CompositeScore, scored.LLMScore, scored.KeywordScore, truncateTitle(title))
}

func (LogObserver) ItemDropped(title string, err error) {
	log.Printf("  Analysis failed, dropping %q: %v", truncateTitle(title), err)
}

func truncateTitle(title string) string {
	const max = 50
	runes := []rune(title)
	if len(runes) <= max {
		return title
	}
	return string(runes[:max]) + "..."
}
