package store

import (
	"fmt"

	"finance-digest/internal/models"

	"gorm.io/gorm"
)

// FeedbackLog is an append-only audit log of user reactions to articles.
type FeedbackLog struct {
	db *gorm.DB
}

// NewFeedbackLog creates a new feedback log
func NewFeedbackLog(db *gorm.DB) *FeedbackLog {
	return &FeedbackLog{db: db}
}

// Record appends one feedback entry for an article.
func (f *FeedbackLog) Record(articleID uint, feedbackType string, feedbackValue int, notes string) error {
	entry := models.Feedback{
		ArticleID:     articleID,
		FeedbackType:  feedbackType,
		FeedbackValue: feedbackValue,
		Notes:         notes,
	}
	if err := f.db.Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to record feedback: %w", err)
	}
	return nil
}
