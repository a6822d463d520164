package store

import (
	"fmt"
	"time"

	"finance-digest/internal/models"

	"gorm.io/gorm"
)

// rankExpr orders by weighted importance: absolute sentiment magnitude
// carries more weight than relevance, and an unclassified article scores
// its sentiment component as zero.
const rankExpr = "(ABS(COALESCE(sentiment_score, 0)) * 0.6 + COALESCE(relevance_score, 0) * 0.4)"

// reportSuppressionWindow is how long a reported article stays out of the
// rankings. It is rolling, not permanent: the ReportedArticle row is kept
// forever, but suppression expires after a day.
const reportSuppressionWindow = 24 * time.Hour

// TopOptions parameterizes the ranking query.
type TopOptions struct {
	Limit             int
	MaxAgeDays        int
	ExcludeDuplicates bool
	ExcludeReported   bool
}

// Ranking computes the ordered subset of stored articles eligible for a digest.
type Ranking struct {
	db *gorm.DB
}

// NewRanking creates a new ranking query service
func NewRanking(db *gorm.DB) *Ranking {
	return &Ranking{db: db}
}

// Top returns the highest-ranked articles within the age window, ordered by
// rank score descending with published date descending as the tie-break.
func (r *Ranking) Top(opts TopOptions) ([]models.Article, error) {
	cutoff := time.Now().AddDate(0, 0, -opts.MaxAgeDays)

	query := r.db.Model(&models.Article{}).
		Where("published_date >= ?", cutoff)

	if opts.ExcludeDuplicates {
		query = query.Where("is_duplicate = ?", false)
	}

	if opts.ExcludeReported {
		reportCutoff := time.Now().Add(-reportSuppressionWindow)
		query = query.Where(
			"id NOT IN (?)",
			r.db.Model(&models.ReportedArticle{}).
				Select("article_id").
				Where("report_date >= ?", reportCutoff),
		)
	}

	var articles []models.Article
	err := query.
		Order(rankExpr + " DESC, published_date DESC").
		Limit(opts.Limit).
		Find(&articles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query top articles: %w", err)
	}

	return articles, nil
}
