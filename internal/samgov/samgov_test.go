package samgov

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_Fetch(t *testing.T) {
	var gotParams []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotParams = append(gotParams, q.Encode())

		if q.Get("api_key") != "test-key" {
			t.Errorf("api_key = %q, want %q", q.Get("api_key"), "test-key")
		}
		if q.Get("postedFrom") == "" || q.Get("postedTo") == "" {
			t.Error("missing posted date window params")
		}

		// The keyword search fails; only the NAICS search returns data.
		if q.Get("q") != "" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		fmt.Fprint(w, `{"opportunitiesData":[
			{"noticeId":"N1","title":"Dry dock repair","solicitationNumber":"SOL-1","naicsCode":"336611","type":"Solicitation","responseDeadLine":"2026-09-01"},
			{"noticeId":"N2","title":""}
		]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", 7, DefaultSearches(), 5*time.Second)

	opps, err := client.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if len(gotParams) != 2 {
		t.Errorf("server saw %d searches, want 2", len(gotParams))
	}
	if len(opps) != 2 {
		t.Fatalf("Fetch() returned %d opportunities, want 2", len(opps))
	}

	first := opps[0]
	if first.NoticeID != "N1" || first.Title != "Dry dock repair" {
		t.Errorf("unexpected first opportunity: %+v", first)
	}
	if first.Link != "https://sam.gov/opp/N1/view" {
		t.Errorf("Link = %q, want constructed sam.gov view URL", first.Link)
	}

	// Missing fields default to placeholders.
	second := opps[1]
	if second.Title != "Untitled" {
		t.Errorf("empty title = %q, want %q", second.Title, "Untitled")
	}
	if second.SolicitationNumber != "N/A" || second.NAICSCode != "N/A" || second.Type != "N/A" || second.ResponseDeadline != "N/A" {
		t.Errorf("missing fields not defaulted: %+v", second)
	}
}

func TestClient_Fetch_AllSearchesFail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(server.URL, "bad-key", 7, DefaultSearches(), 5*time.Second)

	opps, err := client.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v, want graceful empty result", err)
	}
	if len(opps) != 0 {
		t.Errorf("Fetch() returned %d opportunities, want 0", len(opps))
	}
}

func TestClient_Fetch_DedupesAcrossSearches(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Both searches return the same notice with different titles.
		title := "from NAICS search"
		if r.URL.Query().Get("q") != "" {
			title = "from keyword search"
		}
		fmt.Fprintf(w, `{"opportunitiesData":[{"noticeId":"ABC123","title":"%s"}]}`, title)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", 7, DefaultSearches(), 5*time.Second)

	opps, err := client.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(opps) != 1 {
		t.Fatalf("Fetch() returned %d opportunities, want 1", len(opps))
	}
	if opps[0].Title != "from NAICS search" {
		t.Errorf("surviving record title = %q, want the earlier search's record", opps[0].Title)
	}
}
