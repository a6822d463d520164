// Package store implements the durable article store, ranking query,
// report tracker and translation cache on top of gorm.
package store

import (
	"errors"
	"fmt"
	"time"

	"finance-digest/internal/models"

	"gorm.io/gorm"
)

// ErrValidation is returned when a required article field is missing.
// It is fatal to that single insert, never to the surrounding run.
var ErrValidation = errors.New("article validation failed")

// ArticleStore persists news articles and their annotations.
type ArticleStore struct {
	db *gorm.DB
}

// NewArticleStore creates a new article store
func NewArticleStore(db *gorm.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

// Insert writes a new article and returns its fresh id. It does not perform
// deduplication; callers are expected to have queried Exists beforehand.
func (s *ArticleStore) Insert(article *models.Article) (uint, error) {
	if article.Title == "" {
		return 0, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if article.Source == "" {
		return 0, fmt.Errorf("%w: source is required", ErrValidation)
	}

	if err := s.db.Create(article).Error; err != nil {
		return 0, fmt.Errorf("failed to insert article: %w", err)
	}

	return article.ID, nil
}

// Exists reports whether an article with the exact same title and source was
// published within windowDays of now (inclusive). The comparison is plain
// string equality: it catches re-scraped identical headlines, not semantic
// duplicates.
func (s *ArticleStore) Exists(title, source string, windowDays int) (bool, error) {
	cutoff := time.Now().AddDate(0, 0, -windowDays)

	var count int64
	err := s.db.Model(&models.Article{}).
		Where("title = ? AND source = ? AND published_date >= ?", title, source, cutoff).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check article existence: %w", err)
	}

	return count > 0, nil
}

// MarkDuplicate flags an article as a re-publication of the canonical one.
// The call is idempotent. Marking against a target that is itself flagged
// duplicate is rejected so that DuplicateOf always points at a canonical,
// non-duplicate row.
func (s *ArticleStore) MarkDuplicate(articleID, canonicalID uint) error {
	var canonical models.Article
	if err := s.db.First(&canonical, canonicalID).Error; err != nil {
		return fmt.Errorf("canonical article %d not found: %w", canonicalID, err)
	}
	if canonical.IsDuplicate {
		return fmt.Errorf("article %d is itself a duplicate and cannot be a canonical target", canonicalID)
	}

	err := s.db.Model(&models.Article{}).
		Where("id = ?", articleID).
		Updates(map[string]interface{}{
			"is_duplicate": true,
			"duplicate_of": canonicalID,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to mark article %d as duplicate: %w", articleID, err)
	}

	return nil
}

// Recent returns every article, duplicate or not, published within the
// window, optionally filtered by ticker. Ordering is unspecified; callers
// sort if they need an order.
func (s *ArticleStore) Recent(windowDays int, ticker string) ([]models.Article, error) {
	cutoff := time.Now().AddDate(0, 0, -windowDays)

	query := s.db.Where("published_date >= ?", cutoff)
	if ticker != "" {
		query = query.Where("ticker = ?", ticker)
	}

	var articles []models.Article
	if err := query.Find(&articles).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch recent articles: %w", err)
	}

	return articles, nil
}

// Statistics aggregates counters over the store. Totals cover the full
// table; the sentiment and source breakdowns cover the trailing day. The
// numbers are recomputed on every call.
type Statistics struct {
	TotalArticles      int64            `json:"total_articles"`
	ArticlesToday      int64            `json:"articles_today"`
	RumorsCount        int64            `json:"rumors_count"`
	SentimentBreakdown map[string]int64 `json:"sentiment_breakdown"`
	SourceBreakdown    map[string]int64 `json:"source_breakdown"`
}

// Statistics computes aggregate counters for the whole store.
func (s *ArticleStore) Statistics() (*Statistics, error) {
	stats := &Statistics{
		SentimentBreakdown: make(map[string]int64),
		SourceBreakdown:    make(map[string]int64),
	}

	if err := s.db.Model(&models.Article{}).Count(&stats.TotalArticles).Error; err != nil {
		return nil, fmt.Errorf("failed to count articles: %w", err)
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if err := s.db.Model(&models.Article{}).
		Where("published_date >= ?", startOfDay).
		Count(&stats.ArticlesToday).Error; err != nil {
		return nil, fmt.Errorf("failed to count today's articles: %w", err)
	}

	if err := s.db.Model(&models.Article{}).
		Where("is_rumor = ?", true).
		Count(&stats.RumorsCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count rumors: %w", err)
	}

	dayCutoff := now.AddDate(0, 0, -1)

	type breakdownRow struct {
		Key   string
		Count int64
	}

	var sentimentRows []breakdownRow
	err := s.db.Model(&models.Article{}).
		Select("COALESCE(sentiment_label, '') as key, COUNT(*) as count").
		Where("published_date >= ?", dayCutoff).
		Group("sentiment_label").
		Scan(&sentimentRows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute sentiment breakdown: %w", err)
	}
	for _, row := range sentimentRows {
		if row.Key == "" {
			continue // unclassified items are not part of the breakdown
		}
		stats.SentimentBreakdown[row.Key] = row.Count
	}

	var sourceRows []breakdownRow
	err = s.db.Model(&models.Article{}).
		Select("source as key, COUNT(*) as count").
		Where("published_date >= ?", dayCutoff).
		Group("source").
		Scan(&sourceRows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute source breakdown: %w", err)
	}
	for _, row := range sourceRows {
		stats.SourceBreakdown[row.Key] = row.Count
	}

	return stats, nil
}
