package models

import (
	"math"
	"time"
)

// Sentiment labels assigned by the classification step.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// Article represents a stored, annotated news candidate for a watchlist security.
// Rows are append-only: after insert, only the duplicate flags are ever updated.
type Article struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Ticker      string `json:"ticker" gorm:"not null;index"`
	CompanyName string `json:"company_name"`
	Title       string `json:"title" gorm:"not null"`

	// Raw text as collected and, once the classification step has run,
	// its English rendering. ContentTranslated stays nil until then.
	ContentOriginal   string  `json:"content_original" gorm:"type:text"`
	ContentTranslated *string `json:"content_translated" gorm:"type:text"`

	Language  string `json:"language"` // two-letter code, e.g. "en", "zh"
	Source    string `json:"source" gorm:"not null;index"`
	SourceURL string `json:"source_url"`

	// Speculative-content markers produced by the collector's detection pass.
	IsRumor         bool    `json:"is_rumor" gorm:"default:false"`
	RumorConfidence float64 `json:"rumor_confidence"`

	PublishedDate time.Time `json:"published_date" gorm:"index"`
	ScrapedDate   time.Time `json:"scraped_date" gorm:"autoCreateTime"`

	// Filled by the classification collaborator; nil until classified.
	SentimentScore      *float64 `json:"sentiment_score" gorm:"index:idx_sentiment"`
	SentimentLabel      *string  `json:"sentiment_label" gorm:"index:idx_sentiment"`
	SentimentConfidence *float64 `json:"sentiment_confidence"`

	RelevanceScore float64  `json:"relevance_score"`
	Keywords       []string `json:"keywords" gorm:"serializer:json"`

	// Duplicate annotation. A duplicate is retained, never deleted, but
	// excluded from ranking. DuplicateOf points at the canonical article.
	IsDuplicate bool  `json:"is_duplicate" gorm:"default:false;index"`
	DuplicateOf *uint `json:"duplicate_of"`
}

// TableName sets the table name for the Article model
func (Article) TableName() string {
	return "articles"
}

// RankScore is the weighted importance used to order digest items:
// absolute sentiment magnitude weighted against relevance, so strongly
// negative news ranks as highly as strongly positive news.
func (a *Article) RankScore() float64 {
	var sentiment float64
	if a.SentimentScore != nil {
		sentiment = *a.SentimentScore
	}
	return math.Abs(sentiment)*0.6 + a.RelevanceScore*0.4
}

// DisplayTitle prefers the translated rendering over the original headline.
func (a *Article) DisplayTitle() string {
	if a.ContentTranslated != nil && *a.ContentTranslated != "" {
		return *a.ContentTranslated
	}
	return a.Title
}
