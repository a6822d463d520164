// Package collectors produces raw news candidates from external feeds.
// Each collector is a thin adapter around one source with a data-driven
// scoring profile for rumor detection and relevance.
package collectors

import (
	"context"
	"time"
)

// Candidate is a raw news item produced by a collector, before storage and
// classification.
type Candidate struct {
	Ticker          string
	CompanyName     string
	Title           string
	Content         string
	Language        string
	Source          string
	SourceURL       string
	PublishedDate   time.Time
	IsRumor         bool
	RumorConfidence float64
	RelevanceScore  float64
	Keywords        []string
}

// Collector fetches recent news candidates for one security. "No results"
// is an empty slice, not an error.
type Collector interface {
	Name() string
	Collect(ctx context.Context, ticker, companyName string, windowDays int) ([]Candidate, error)
}
