package collectors

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"
)

func TestYahooCollect(t *testing.T) {
	publishTime := time.Date(2025, 8, 29, 9, 0, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "0700.HK" {
			t.Errorf("Expected ticker query, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"news": [
				{
					"title": "Tencent announces dividend increase",
					"link": "https://example.com/dividend",
					"publisher": "Reuters",
					"providerPublishTime": ` + formatUnix(publishTime) + `
				},
				{
					"title": "",
					"link": "https://example.com/empty"
				}
			]
		}`))
	}))
	defer server.Close()

	collector := NewYahooCollector(20)
	collector.baseURL = server.URL

	candidates, err := collector.Collect(context.Background(), "0700.HK", "Tencent", 1)
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	if len(candidates) != 1 {
		t.Fatalf("Expected 1 candidate, got %d", len(candidates))
	}

	got := candidates[0]
	if got.Source != "Yahoo Finance (Reuters)" {
		t.Errorf("Source = %q, want Yahoo Finance (Reuters)", got.Source)
	}
	if !got.PublishedDate.Equal(publishTime) {
		t.Errorf("PublishedDate = %v, want %v", got.PublishedDate, publishTime)
	}
	if got.RelevanceScore <= yahooProfile.BaseRelevance {
		t.Errorf("Expected dividend headline above base relevance, got %v", got.RelevanceScore)
	}
}

func TestYahooCollectMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	collector := NewYahooCollector(20)
	collector.baseURL = server.URL

	if _, err := collector.Collect(context.Background(), "0700.HK", "Tencent", 1); err == nil {
		t.Error("Expected an error for a malformed response")
	}
}

func formatUnix(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}
