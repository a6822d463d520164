package store

import (
	"fmt"
	"log"
	"sort"

	"finance-digest/internal/models"
)

// dedupWindowDays is how far back the deduplication check looks for a prior
// article with the same headline and source.
const dedupWindowDays = 7

// DedupSweep scans recent articles for groups sharing an identical title and
// source and retroactively flags all but the earliest-stored one as
// duplicates of it. Only already-committed rows are compared, so the sweep
// runs after a batch has been persisted.
func (s *ArticleStore) DedupSweep() (int, error) {
	articles, err := s.Recent(dedupWindowDays, "")
	if err != nil {
		return 0, fmt.Errorf("dedup sweep: %w", err)
	}

	// Lowest id first: the first-stored article in each group is canonical.
	sort.Slice(articles, func(i, j int) bool { return articles[i].ID < articles[j].ID })

	type identity struct {
		title  string
		source string
	}

	canonical := make(map[identity]*models.Article)
	marked := 0

	for i := range articles {
		article := &articles[i]
		key := identity{title: article.Title, source: article.Source}

		first, seen := canonical[key]
		if !seen {
			if !article.IsDuplicate {
				canonical[key] = article
			}
			continue
		}

		if article.IsDuplicate {
			continue // already annotated by a prior sweep
		}

		if err := s.MarkDuplicate(article.ID, first.ID); err != nil {
			log.Printf("Failed to mark article %d as duplicate of %d: %v", article.ID, first.ID, err)
			continue
		}
		marked++
	}

	if marked > 0 {
		log.Printf("Dedup sweep marked %d duplicate articles", marked)
	}
	return marked, nil
}
