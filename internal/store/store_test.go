package store

import (
	"testing"
	"time"

	"finance-digest/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// seedArticle inserts an article with the given scores and returns its id.
func seedArticle(t *testing.T, store *ArticleStore, title, source string, sentiment, relevance float64, published time.Time) uint {
	label := models.SentimentNeutral
	if sentiment > 0 {
		label = models.SentimentPositive
	} else if sentiment < 0 {
		label = models.SentimentNegative
	}

	confidence := 0.8
	article := &models.Article{
		Ticker:              "0700.HK",
		CompanyName:         "Tencent",
		Title:               title,
		Source:              source,
		Language:            "en",
		PublishedDate:       published,
		SentimentScore:      &sentiment,
		SentimentLabel:      &label,
		SentimentConfidence: &confidence,
		RelevanceScore:      relevance,
	}

	id, err := store.Insert(article)
	if err != nil {
		t.Fatalf("Failed to seed article %q: %v", title, err)
	}
	return id
}
