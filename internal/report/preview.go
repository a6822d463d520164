package report

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"finance-digest/internal/models"
	"finance-digest/internal/store"
)

// WritePreview renders the digest to a local HTML file. It is used when no
// delivery transport is enabled; because nothing was delivered, the caller
// must not mark the included articles as reported.
func WritePreview(outputDir string, articles []models.Article, stats *store.Statistics) (string, error) {
	now := time.Now()

	html, err := RenderHTML(articles, stats, now)
	if err != nil {
		return "", err
	}

	path := filepath.Join(outputDir, fmt.Sprintf("report_%s.html", now.Format("20060102")))
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return "", fmt.Errorf("failed to write report preview: %w", err)
	}

	log.Printf("Report preview saved to %s", path)
	return path, nil
}
