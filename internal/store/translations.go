package store

import (
	"errors"
	"fmt"

	"finance-digest/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TranslationCache memoizes translations keyed by the exact original text.
type TranslationCache struct {
	db *gorm.DB
}

// NewTranslationCache creates a new translation cache
func NewTranslationCache(db *gorm.DB) *TranslationCache {
	return &TranslationCache{db: db}
}

// Lookup returns the cached translation for the exact original text, if any.
func (c *TranslationCache) Lookup(originalText string) (string, bool, error) {
	var entry models.TranslationCacheEntry
	err := c.db.Where("original_text = ?", originalText).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to look up translation: %w", err)
	}
	return entry.TranslatedText, true, nil
}

// Save caches a translation. Re-translating the same exact text overwrites
// the prior entry; no history is kept.
func (c *TranslationCache) Save(originalText, translatedText, sourceLang, targetLang string) error {
	entry := models.TranslationCacheEntry{
		OriginalText:   originalText,
		TranslatedText: translatedText,
		SourceLang:     sourceLang,
		TargetLang:     targetLang,
	}
	err := c.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "original_text"}},
		DoUpdates: clause.AssignmentColumns([]string{"translated_text", "source_lang", "target_lang"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to cache translation: %w", err)
	}
	return nil
}
