package collectors

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const sampleHKEXPage = `<!DOCTYPE html>
<html>
<body>
<div class="row">
  <div class="col-date">29/08/2025 18:15</div>
  <div class="col-dn-title"><a href="/listedco/announcement1.pdf">Discloseable Transaction in relation to the Acquisition of Shares</a></div>
</div>
<div class="row">
  <div class="col-date">29/08/2025</div>
  <div class="col-dn-title"><a href="https://example.com/full.pdf">Monthly Return of Equity Issuer</a></div>
</div>
<div class="row">
  <div class="col-date"></div>
  <div class="col-dn-title"><a href="/skip.pdf">Row without a date</a></div>
</div>
</body>
</html>`

func TestHKEXCollect(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("stockId"); got != "00700" {
			t.Errorf("Expected normalized stock code 00700, got %q", got)
		}
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(sampleHKEXPage))
	}))
	defer server.Close()

	collector := NewHKEXCollector()
	collector.baseURL = server.URL

	candidates, err := collector.Collect(context.Background(), "0700.HK", "Tencent", 1)
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	if len(candidates) != 2 {
		t.Fatalf("Expected 2 candidates (dateless row dropped), got %d", len(candidates))
	}

	first := candidates[0]
	if first.Source != "HKEXnews (Official)" {
		t.Errorf("Source = %q, want HKEXnews (Official)", first.Source)
	}
	if first.CompanyName != "Tencent" {
		t.Errorf("CompanyName = %q, want Tencent", first.CompanyName)
	}
	if first.SourceURL != server.URL+"/listedco/announcement1.pdf" {
		t.Errorf("Expected relative link resolved against base, got %q", first.SourceURL)
	}
	want := time.Date(2025, 8, 29, 18, 15, 0, 0, time.UTC)
	if !first.PublishedDate.Equal(want) {
		t.Errorf("PublishedDate = %v, want %v", first.PublishedDate, want)
	}
	if first.RelevanceScore <= hkexProfile.BaseRelevance {
		t.Errorf("Expected acquisition announcement above base relevance, got %v", first.RelevanceScore)
	}

	second := candidates[1]
	if second.SourceURL != "https://example.com/full.pdf" {
		t.Errorf("Absolute link must be kept as-is, got %q", second.SourceURL)
	}
	if second.RelevanceScore != hkexProfile.BaseRelevance {
		t.Errorf("Routine filing must stay at base relevance, got %v", second.RelevanceScore)
	}
}

func TestParseHKEXDate(t *testing.T) {
	withTime := parseHKEXDate("29/08/2025 18:15")
	if withTime.Day() != 29 || withTime.Month() != time.August || withTime.Hour() != 18 {
		t.Errorf("parseHKEXDate with time = %v", withTime)
	}

	dateOnly := parseHKEXDate("29/08/2025")
	if dateOnly.Day() != 29 || dateOnly.Month() != time.August || dateOnly.Year() != 2025 {
		t.Errorf("parseHKEXDate date only = %v", dateOnly)
	}

	fallback := parseHKEXDate("garbage")
	if time.Since(fallback) > time.Minute {
		t.Errorf("Expected fallback to the current time, got %v", fallback)
	}
}
