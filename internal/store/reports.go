package store

import (
	"fmt"
	"log"
	"time"

	"finance-digest/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReportTracker records which articles have already been delivered. An
// article is Unreported until a ReportedArticle row exists for it; there is
// no transition back.
type ReportTracker struct {
	db *gorm.DB
}

// NewReportTracker creates a new report tracker
func NewReportTracker(db *gorm.DB) *ReportTracker {
	return &ReportTracker{db: db}
}

// MarkReported records delivery for the given article ids. Marking is
// idempotent: an id that already has a mark is silently ignored, so a retry
// after a partial failure cannot create a second row.
func (t *ReportTracker) MarkReported(articleIDs []uint) error {
	if len(articleIDs) == 0 {
		return nil
	}

	now := time.Now()
	for _, id := range articleIDs {
		mark := models.ReportedArticle{
			ArticleID:  id,
			ReportDate: now,
		}
		err := t.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "article_id"}},
			DoNothing: true,
		}).Create(&mark).Error
		if err != nil {
			return fmt.Errorf("failed to mark article %d as reported: %w", id, err)
		}
	}

	log.Printf("Marked %d articles as reported", len(articleIDs))
	return nil
}

// IsReported reports whether a delivery mark exists for the article at all,
// regardless of how long ago it was recorded.
func (t *ReportTracker) IsReported(articleID uint) (bool, error) {
	var count int64
	err := t.db.Model(&models.ReportedArticle{}).
		Where("article_id = ?", articleID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check reported mark: %w", err)
	}
	return count > 0, nil
}
