/*
Package feeds fetches RSS and Atom feeds and extracts (title, snippet, link)
entries for scoring. Different feeds store article text in different fields,
so extraction falls back through content, summary and description.
*/
package feeds

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shanehull/defbrief/internal/types"
)

const snippetLimit = 1000

// Reader fetches feeds over HTTP and decodes their entries.
type Reader struct {
	entriesPerFeed int
	httpClient     *http.Client
}

// NewReader creates a reader that returns at most entriesPerFeed articles
// per feed. The timeout applies per feed request.
func NewReader(entriesPerFeed int, timeout time.Duration) *Reader {
	return &Reader{
		entriesPerFeed: entriesPerFeed,
		httpClient:     &http.Client{Timeout: timeout},
	}
}

// feedDocument matches both RSS 2.0 (rss > channel > item) and Atom
// (feed > entry) documents.
type feedDocument struct {
	Channel *rssChannel `xml:"channel"`
	Entries []atomEntry `xml:"entry"`
}

type rssChannel struct {
	Items []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Encoded     string `xml:"http://purl.org/rss/1.0/modules/content/ encoded"`
}

type atomEntry struct {
	Title   string     `xml:"title"`
	Links   []atomLink `xml:"link"`
	Summary string     `xml:"summary"`
	Content string     `xml:"content"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
}

// Fetch downloads one feed and returns its leading entries, tagged with the
// source name. Entry text arrives decoded, HTML-stripped and truncated.
func (r *Reader) Fetch(ctx context.Context, name, feedURL string) ([]types.Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", feedURL, err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed %s: %w", feedURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received non-OK status code %d from %s", resp.StatusCode, feedURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed body from %s: %w", feedURL, err)
	}

	articles, err := parse(body, name)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed %s: %w", feedURL, err)
	}

	if len(articles) > r.entriesPerFeed {
		articles = articles[:r.entriesPerFeed]
	}
	return articles, nil
}

func parse(data []byte, source string) ([]types.Article, error) {
	var doc feedDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	var articles []types.Article

	if doc.Channel != nil {
		for _, item := range doc.Channel.Items {
			articles = append(articles, types.Article{
				Title:   fallbackTitle(stripHTML(item.Title)),
				Snippet: entrySnippet(item.Encoded, item.Description),
				Link:    item.Link,
				Source:  source,
			})
		}
		return articles, nil
	}

	for _, entry := range doc.Entries {
		articles = append(articles, types.Article{
			Title:   fallbackTitle(stripHTML(entry.Title)),
			Snippet: entrySnippet(entry.Content, entry.Summary),
			Link:    pickAtomLink(entry.Links),
			Source:  source,
		})
	}
	return articles, nil
}

// entrySnippet prefers full content over the summary/description field, then
// strips markup and truncates.
func entrySnippet(content, summary string) string {
	text := content
	if text == "" {
		text = summary
	}

	text = stripHTML(text)
	runes := []rune(text)
	if len(runes) > snippetLimit {
		text = string(runes[:snippetLimit])
	}
	return text
}

func fallbackTitle(title string) string {
	if title == "" {
		return "Untitled"
	}
	return title
}

func pickAtomLink(links []atomLink) string {
	for _, l := range links {
		if l.Rel == "" || l.Rel == "alternate" {
			return l.Href
		}
	}
	if len(links) > 0 {
		return links[0].Href
	}
	return ""
}
