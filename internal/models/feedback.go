package models

import "time"

// Feedback is a pure audit log of user reactions to reported articles,
// kept for future scoring improvements. The core has no read path for it.
type Feedback struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	ArticleID     uint      `json:"article_id" gorm:"not null;index"`
	FeedbackType  string    `json:"feedback_type"`
	FeedbackValue int       `json:"feedback_value"`
	Notes         string    `json:"notes" gorm:"type:text"`
	CreatedDate   time.Time `json:"created_date" gorm:"autoCreateTime"`

	// Relationships
	Article Article `json:"article,omitempty" gorm:"foreignKey:ArticleID;references:ID"`
}

// TableName sets the table name for the Feedback model
func (Feedback) TableName() string {
	return "user_feedback"
}
