package sentiment

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestEnglishClassify(t *testing.T) {
	classifier := NewEnglishClassifier()

	tests := []struct {
		name           string
		text           string
		wantLabel      string
		wantScore      float64
		wantConfidence float64
	}{
		{"single positive term", "Company reports strong quarter", "positive", 0.25, 0.25},
		{"two positive terms", "Record profit for the year", "positive", 0.5, 0.5},
		{"confidence capped", "Record profit, strong growth, surge and breakthrough gain", "positive", 0.8, 0.8},
		{"single negative term", "Regulators open investigation", "negative", -0.25, 0.25},
		{"negative outweighs positive", "Profit warning raises concern over risk", "negative", -0.75, 0.75},
		{"no terms is neutral", "Company holds annual meeting", "neutral", 0.0, 0.5},
		{"balanced terms are neutral", "Strong sales offset by weak margins", "neutral", 0.0, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := classifier.Classify(tt.text)
			if err != nil {
				t.Fatalf("Classify failed: %v", err)
			}
			if got == nil {
				t.Fatal("Expected a judgment for non-empty input")
			}
			if got.Label != tt.wantLabel {
				t.Errorf("Label = %q, want %q", got.Label, tt.wantLabel)
			}
			if got.Score != tt.wantScore {
				t.Errorf("Score = %v, want %v", got.Score, tt.wantScore)
			}
			if got.Confidence != tt.wantConfidence {
				t.Errorf("Confidence = %v, want %v", got.Confidence, tt.wantConfidence)
			}
		})
	}
}

func TestEnglishClassifyEmptyInput(t *testing.T) {
	classifier := NewEnglishClassifier()

	for _, text := range []string{"", "   ", "\n\t"} {
		got, err := classifier.Classify(text)
		if err != nil {
			t.Fatalf("Classify(%q) failed: %v", text, err)
		}
		if got != nil {
			t.Errorf("Classify(%q) = %+v, want nil for empty input", text, got)
		}
	}
}

func TestChineseClassify(t *testing.T) {
	classifier := NewChineseClassifier()

	tests := []struct {
		name      string
		text      string
		wantLabel string
	}{
		{"positive", "公司盈利大增，业绩创新高", "positive"},
		{"negative", "公司亏损扩大，面临调查", "negative"},
		{"neutral", "公司召开年度股东大会", "neutral"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := classifier.Classify(tt.text)
			if err != nil {
				t.Fatalf("Classify failed: %v", err)
			}
			if got == nil {
				t.Fatal("Expected a judgment for non-empty input")
			}
			if got.Label != tt.wantLabel {
				t.Errorf("Label = %q, want %q", got.Label, tt.wantLabel)
			}
		})
	}
}

func TestRemoteClassifierDelegates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("Authorization = %q, want bearer token", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"label": "positive", "score": 0.92, "confidence": 0.88}`))
	}))
	defer server.Close()

	classifier := NewRemoteClassifier(server.URL, "secret", NewEnglishClassifier())

	got, err := classifier.Classify("Company beats expectations")
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if got.Label != "positive" || got.Score != 0.92 || got.Confidence != 0.88 {
		t.Errorf("Expected the remote judgment to be used, got %+v", got)
	}
}

func TestRemoteClassifierFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	classifier := NewRemoteClassifier(server.URL, "", NewEnglishClassifier())

	got, err := classifier.Classify("Record profit for the year")
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if got == nil || got.Label != "positive" {
		t.Errorf("Expected the lexicon fallback judgment, got %+v", got)
	}
}

func TestRemoteClassifierNoFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	classifier := NewRemoteClassifier(server.URL, "", nil)

	if _, err := classifier.Classify("anything"); err == nil {
		t.Error("Expected an error when the service fails and no fallback exists")
	}
}
