// Package sentiment provides the classification collaborators that judge a
// headline's tone. Classifiers are pure text -> judgment functions; a nil
// result means the input was empty.
package sentiment

// Result is the judgment a classifier returns for a piece of text.
type Result struct {
	Label      string  `json:"label"`      // positive, neutral or negative
	Score      float64 `json:"score"`      // signed, in [-1, 1]
	Confidence float64 `json:"confidence"` // in [0, 1]
}

// Classifier assigns a sentiment judgment to text.
type Classifier interface {
	Classify(text string) (*Result, error)
}
