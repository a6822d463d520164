package report

import (
	"os"
	"strings"
	"testing"
	"time"

	"finance-digest/internal/models"
	"finance-digest/internal/store"
)

func digestFixture() ([]models.Article, *store.Statistics) {
	score := 0.6
	label := models.SentimentPositive
	confidence := 0.6
	translated := "Tencent releases strong earnings"

	articles := []models.Article{
		{
			ID:                  1,
			Ticker:              "0700.HK",
			Title:               "腾讯公布强劲财报",
			ContentTranslated:   &translated,
			Source:              "HKEXnews (Official)",
			SourceURL:           "https://example.com/filing",
			PublishedDate:       time.Date(2025, 8, 29, 9, 30, 0, 0, time.UTC),
			SentimentScore:      &score,
			SentimentLabel:      &label,
			SentimentConfidence: &confidence,
			RelevanceScore:      0.8,
			Keywords:            []string{"earnings", "profit", "revenue", "dividend", "growth", "extra"},
		},
		{
			ID:            2,
			Ticker:        "0700.HK",
			Title:         "Rumored Tencent acquisition",
			Source:        "Google News (SCMP)",
			IsRumor:       true,
			PublishedDate: time.Date(2025, 8, 29, 8, 0, 0, 0, time.UTC),
		},
	}

	stats := &store.Statistics{
		TotalArticles: 10,
		ArticlesToday: 2,
		RumorsCount:   1,
		SentimentBreakdown: map[string]int64{
			models.SentimentPositive: 1,
		},
		SourceBreakdown: map[string]int64{
			"HKEXnews (Official)": 1,
			"Google News (SCMP)":  1,
		},
	}

	return articles, stats
}

func TestRenderHTML(t *testing.T) {
	articles, stats := digestFixture()

	html, err := RenderHTML(articles, stats, time.Date(2025, 8, 30, 7, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("RenderHTML failed: %v", err)
	}

	checks := []struct {
		name string
		want string
	}{
		{"date header", "Daily News Digest - August 30, 2025"},
		{"translated title preferred", "Tencent releases strong earnings"},
		{"ticker", "0700.HK"},
		{"rumor badge", "badge-rumor"},
		{"sentiment badge", "badge-positive"},
		{"unclassified falls back to neutral", "badge-neutral"},
		{"relevance percent", "Relevance: 80%"},
		{"source link", "https://example.com/filing"},
	}

	for _, tt := range checks {
		if !strings.Contains(html, tt.want) {
			t.Errorf("%s: rendered digest missing %q", tt.name, tt.want)
		}
	}

	if strings.Contains(html, "extra") {
		t.Error("Expected keywords beyond the first five to be dropped")
	}
}

func TestRenderHTMLEmptyDigest(t *testing.T) {
	html, err := RenderHTML(nil, &store.Statistics{
		SentimentBreakdown: map[string]int64{},
		SourceBreakdown:    map[string]int64{},
	}, time.Now())
	if err != nil {
		t.Fatalf("RenderHTML failed: %v", err)
	}

	if !strings.Contains(html, "No new articles to report today") {
		t.Error("Expected the empty-digest notice")
	}
}

func TestWritePreview(t *testing.T) {
	articles, stats := digestFixture()
	dir := t.TempDir()

	path, err := WritePreview(dir, articles, stats)
	if err != nil {
		t.Fatalf("WritePreview failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read preview file: %v", err)
	}
	if !strings.Contains(string(content), "Watchlist News Digest") {
		t.Error("Preview file does not contain the digest header")
	}
	if !strings.HasSuffix(path, ".html") {
		t.Errorf("Expected an .html preview path, got %q", path)
	}
}
