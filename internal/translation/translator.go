// Package translation renders foreign-language headlines into the target
// language, memoizing results in the durable translation cache.
package translation

import (
	"context"
	"fmt"

	"finance-digest/internal/collectors"
	"finance-digest/internal/store"
)

// Backend performs the actual translation call.
type Backend interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// Translator wraps a backend with the cache: the cache is consulted before
// every backend call and populated after every successful one.
type Translator struct {
	cache      *store.TranslationCache
	backend    Backend
	targetLang string
}

// NewTranslator creates a cache-aware translator.
func NewTranslator(cache *store.TranslationCache, backend Backend, targetLang string) *Translator {
	if targetLang == "" {
		targetLang = "en"
	}
	return &Translator{
		cache:      cache,
		backend:    backend,
		targetLang: targetLang,
	}
}

// Translate returns the target-language rendering of text. Text already in
// the target language is returned unchanged without touching cache or
// backend.
func (t *Translator) Translate(ctx context.Context, text string) (string, error) {
	if text == "" {
		return text, nil
	}

	if !t.needsTranslation(text) {
		return text, nil
	}

	if t.cache != nil {
		cached, ok, err := t.cache.Lookup(text)
		if err != nil {
			return "", err
		}
		if ok {
			return cached, nil
		}
	}

	if t.backend == nil {
		return "", fmt.Errorf("no translation backend configured")
	}

	sourceLang := collectors.DetectLanguage(text)
	translated, err := t.backend.Translate(ctx, text, sourceLang, t.targetLang)
	if err != nil {
		return "", fmt.Errorf("translation failed: %w", err)
	}

	if t.cache != nil {
		if err := t.cache.Save(text, translated, sourceLang, t.targetLang); err != nil {
			return "", err
		}
	}

	return translated, nil
}

// needsTranslation is a cheap pre-check: when the target is English, text
// without Han characters passes through untranslated.
func (t *Translator) needsTranslation(text string) bool {
	if t.targetLang != "en" {
		return true
	}
	return collectors.DetectLanguage(text) == "zh"
}
