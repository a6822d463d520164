package store

import (
	"testing"

	"finance-digest/internal/models"
)

func TestTranslationCacheLookupMiss(t *testing.T) {
	db := setupTestDB(t)
	cache := NewTranslationCache(db)

	_, found, err := cache.Lookup("never seen before")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if found {
		t.Error("Expected a miss for unknown text")
	}
}

func TestTranslationCacheSaveAndLookup(t *testing.T) {
	db := setupTestDB(t)
	cache := NewTranslationCache(db)

	if err := cache.Save("腾讯发布财报", "Tencent releases earnings", "zh", "en"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	translated, found, err := cache.Lookup("腾讯发布财报")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if !found {
		t.Fatal("Expected a hit after Save")
	}
	if translated != "Tencent releases earnings" {
		t.Errorf("Lookup = %q, want %q", translated, "Tencent releases earnings")
	}
}

func TestTranslationCacheSaveOverwrites(t *testing.T) {
	db := setupTestDB(t)
	cache := NewTranslationCache(db)

	if err := cache.Save("腾讯回购股份", "Tencent buys back stock", "zh", "en"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := cache.Save("腾讯回购股份", "Tencent repurchases shares", "zh", "en"); err != nil {
		t.Fatalf("Second Save failed: %v", err)
	}

	translated, found, err := cache.Lookup("腾讯回购股份")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if !found {
		t.Fatal("Expected a hit")
	}
	if translated != "Tencent repurchases shares" {
		t.Errorf("Expected the newer translation to win, got %q", translated)
	}

	var count int64
	db.Model(&models.TranslationCacheEntry{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected a single cache row, got %d", count)
	}
}
