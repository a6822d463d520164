package sentiment

import (
	"math"
	"strings"
)

var englishPositiveTerms = []string{
	"profit", "gain", "growth", "surge", "beat", "exceed",
	"strong", "robust", "upgrade", "bullish", "outperform",
	"success", "record", "high", "breakthrough",
}

var englishNegativeTerms = []string{
	"loss", "decline", "fall", "drop", "miss", "weak",
	"downgrade", "bearish", "underperform", "concern",
	"warning", "risk", "investigation", "lawsuit", "fraud",
}

// EnglishClassifier scores English financial text by counting matches
// against positive and negative term lists.
type EnglishClassifier struct{}

// NewEnglishClassifier creates the lexicon-based English classifier.
func NewEnglishClassifier() *EnglishClassifier {
	return &EnglishClassifier{}
}

// Classify returns the lexicon judgment, or nil for empty input.
func (c *EnglishClassifier) Classify(text string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	lower := strings.ToLower(text)
	return lexiconScore(lower, englishPositiveTerms, englishNegativeTerms), nil
}

// lexiconScore turns term counts into a label, a signed score and a
// confidence capped at 0.8; a tie is neutral at confidence 0.5.
func lexiconScore(text string, positive, negative []string) *Result {
	posCount := 0
	for _, term := range positive {
		if strings.Contains(text, term) {
			posCount++
		}
	}

	negCount := 0
	for _, term := range negative {
		if strings.Contains(text, term) {
			negCount++
		}
	}

	switch {
	case posCount > negCount:
		confidence := math.Min(float64(posCount)*0.25, 0.8)
		return &Result{Label: "positive", Score: confidence, Confidence: confidence}
	case negCount > posCount:
		confidence := math.Min(float64(negCount)*0.25, 0.8)
		return &Result{Label: "negative", Score: -confidence, Confidence: confidence}
	default:
		return &Result{Label: "neutral", Score: 0.0, Confidence: 0.5}
	}
}
