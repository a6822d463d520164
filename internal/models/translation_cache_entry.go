package models

import "time"

// TranslationCacheEntry memoizes original-text -> translated-text so the same
// headline is never sent to the translation backend twice. The key is the
// exact original string; no whitespace or case normalization is applied.
type TranslationCacheEntry struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	OriginalText   string    `json:"original_text" gorm:"type:text;uniqueIndex"`
	TranslatedText string    `json:"translated_text" gorm:"type:text"`
	SourceLang     string    `json:"source_lang"`
	TargetLang     string    `json:"target_lang"`
	CreatedDate    time.Time `json:"created_date" gorm:"autoCreateTime"`
}

// TableName sets the table name for the TranslationCacheEntry model
func (TranslationCacheEntry) TableName() string {
	return "translation_cache"
}
