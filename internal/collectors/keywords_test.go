package collectors

import (
	"testing"
)

func TestDetectRumor(t *testing.T) {
	profile := ScoringProfile{
		RumorTerms:          baseRumorTerms,
		RumorConfidenceStep: 0.35,
		RumorConfidenceCap:  0.95,
	}

	tests := []struct {
		name           string
		text           string
		wantRumor      bool
		wantConfidence float64
	}{
		{"no markers", "Tencent reports quarterly earnings", false, 0.0},
		{"single marker", "Tencent reportedly in talks", true, 0.35},
		{"two markers", "Speculation grows as sources say deal is near", true, 0.70},
		{"confidence capped", "Rumor: speculation, unconfirmed and reportedly alleged", true, 0.95},
		{"chinese marker", "市场传闻腾讯将回购股份", true, 0.35},
		{"case insensitive", "RUMOR of a merger", true, 0.35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isRumor, confidence := profile.DetectRumor(tt.text)
			if isRumor != tt.wantRumor {
				t.Errorf("DetectRumor(%q) rumor = %v, want %v", tt.text, isRumor, tt.wantRumor)
			}
			if confidence != tt.wantConfidence {
				t.Errorf("DetectRumor(%q) confidence = %v, want %v", tt.text, confidence, tt.wantConfidence)
			}
		})
	}
}

func TestRelevance(t *testing.T) {
	profile := ScoringProfile{
		ImportantTerms: baseImportantTerms,
		BaseRelevance:  0.3,
		RelevanceStep:  0.25,
	}

	tests := []struct {
		name string
		text string
		want float64
	}{
		{"no matches falls back to base", "Company opens new office", 0.3},
		{"single match", "Quarterly earnings announced", 0.55},
		{"two matches", "Earnings rise as revenue doubles", 0.8},
		{"capped at one", "Earnings, profit, revenue, dividend and acquisition news", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := profile.Relevance(tt.text)
			if got != tt.want {
				t.Errorf("Relevance(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestKeywords(t *testing.T) {
	profile := ScoringProfile{ImportantTerms: baseImportantTerms}

	got := profile.Keywords("Earnings beat forecasts as revenue climbs")
	want := map[string]bool{"earnings": true, "revenue": true, "forecast": true}

	if len(got) != len(want) {
		t.Fatalf("Keywords returned %v, want the terms %v", got, want)
	}
	for _, term := range got {
		if !want[term] {
			t.Errorf("Unexpected keyword %q", term)
		}
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"english", "Tencent reports earnings", "en"},
		{"chinese", "腾讯公布财报", "zh"},
		{"mixed contains han", "Tencent 腾讯 earnings", "zh"},
		{"empty", "", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectLanguage(tt.text); got != tt.want {
				t.Errorf("DetectLanguage(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestNormalizeStockCode(t *testing.T) {
	tests := []struct {
		name   string
		ticker string
		want   string
	}{
		{"hk suffix stripped and padded", "0700.HK", "00700"},
		{"bare code padded", "700", "00700"},
		{"already five digits", "09988", "09988"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeStockCode(tt.ticker); got != tt.want {
				t.Errorf("normalizeStockCode(%q) = %q, want %q", tt.ticker, got, tt.want)
			}
		})
	}
}
