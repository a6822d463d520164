package models

import "time"

// ReportedArticle records that an article was included in a delivered digest.
// The uniqueness constraint on ArticleID is what makes report-marking
// idempotent: a second mark attempt is a silent no-op, not an error.
type ReportedArticle struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ArticleID  uint      `json:"article_id" gorm:"uniqueIndex;not null"`
	ReportDate time.Time `json:"report_date" gorm:"index"`

	// Relationships
	Article Article `json:"article,omitempty" gorm:"foreignKey:ArticleID;references:ID"`
}

// TableName sets the table name for the ReportedArticle model
func (ReportedArticle) TableName() string {
	return "reported_articles"
}
