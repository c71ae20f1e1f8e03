/*
Package samgov fetches contract opportunity listings from the SAM.gov search
API and merges overlapping search results into a unique-by-notice list.
*/
package samgov

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shanehull/defbrief/internal/types"
)

const DefaultBaseURL = "https://api.sam.gov/opportunities/v2/search"

// Search is one query definition against the opportunities API. Exactly one
// of NAICSCode or Query should be set.
type Search struct {
	Description string
	NAICSCode   string
	Query       string
	Limit       int
}

// DefaultSearches mirror the two standing queries the digest runs with: one
// by NAICS code for shipbuilding and repair, one by defense-tech keywords.
func DefaultSearches() []Search {
	return []Search{
		{Description: "Shipbuilding & Repair (NAICS 336611)", NAICSCode: "336611", Limit: 10},
		{Description: "Defense Tech Keywords", Query: "autonomous unmanned AI robotics", Limit: 10},
	}
}

// Client queries the SAM.gov opportunities API over a rolling date window.
type Client struct {
	baseURL    string
	apiKey     string
	windowDays int
	searches   []Search
	httpClient *http.Client
	now        func() time.Time
}

// NewClient builds a client for the given API key. The timeout applies per
// search request.
func NewClient(baseURL, apiKey string, windowDays int, searches []Search, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		windowDays: windowDays,
		searches:   searches,
		httpClient: &http.Client{Timeout: timeout},
		now:        time.Now,
	}
}

type searchResponse struct {
	OpportunitiesData []struct {
		NoticeID           string `json:"noticeId"`
		Title              string `json:"title"`
		SolicitationNumber string `json:"solicitationNumber"`
		NAICSCode          string `json:"naicsCode"`
		Type               string `json:"type"`
		ResponseDeadline   string `json:"responseDeadLine"`
	} `json:"opportunitiesData"`
}

// Fetch runs every configured search and returns the deduplicated union,
// preserving search order. A failed search contributes nothing and never
// aborts the remaining searches.
func (c *Client) Fetch(ctx context.Context) ([]types.Opportunity, error) {
	dateTo := c.now()
	dateFrom := dateTo.AddDate(0, 0, -c.windowDays)

	resultSets := make([][]types.Opportunity, 0, len(c.searches))
	for _, search := range c.searches {
		log.Printf("SAM.gov: searching %s...", search.Description)

		opps, err := c.runSearch(ctx, search, dateFrom, dateTo)
		if err != nil {
			log.Printf("SAM.gov error (%s): %v", search.Description, err)
			continue
		}
		resultSets = append(resultSets, opps)
	}

	unique := Dedupe(resultSets)
	log.Printf("SAM.gov: found %d unique opportunities", len(unique))
	return unique, nil
}

func (c *Client) runSearch(ctx context.Context, search Search, from, to time.Time) ([]types.Opportunity, error) {
	params := url.Values{
		"api_key":    {c.apiKey},
		"postedFrom": {from.Format("01/02/2006")},
		"postedTo":   {to.Format("01/02/2006")},
		"limit":      {strconv.Itoa(search.Limit)},
	}
	if search.NAICSCode != "" {
		params.Set("ncode", search.NAICSCode)
	}
	if search.Query != "" {
		params.Set("q", search.Query)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received non-OK status code %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	opps := make([]types.Opportunity, 0, len(parsed.OpportunitiesData))
	for _, raw := range parsed.OpportunitiesData {
		opps = append(opps, types.Opportunity{
			NoticeID:           raw.NoticeID,
			Title:              orDefault(raw.Title, "Untitled"),
			SolicitationNumber: orDefault(raw.SolicitationNumber, "N/A"),
			NAICSCode:          orDefault(raw.NAICSCode, "N/A"),
			Type:               orDefault(raw.Type, "N/A"),
			ResponseDeadline:   orDefault(raw.ResponseDeadline, "N/A"),
			Link:               fmt.Sprintf("https://sam.gov/opp/%s/view", raw.NoticeID),
		})
	}
	return opps, nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
