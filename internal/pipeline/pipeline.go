// Package pipeline sequences collection, classification, storage, ranking
// and report tracking for one digest run.
package pipeline

import (
	"context"
	"log"
	"time"

	"finance-digest/internal/collectors"
	"finance-digest/internal/config"
	"finance-digest/internal/models"
	"finance-digest/internal/report"
	"finance-digest/internal/sentiment"
	"finance-digest/internal/store"
	"finance-digest/internal/translation"

	"github.com/google/uuid"
)

// existsWindowDays is how far back the pre-insert duplicate check looks.
const existsWindowDays = 7

// RunContext carries all per-run state through the pipeline stages: the
// in-memory candidate batch and the accumulated counters. There is one per
// run and no process-wide equivalent.
type RunContext struct {
	ID        uuid.UUID
	StartedAt time.Time
	Batch     []collectors.Candidate

	Collected int // raw candidates from all collectors
	Skipped   int // already stored, or repeated within the batch
	Processed int // inserted this run
	Failed    int // insert failures
	Ranked    int // items included in the digest
	Delivered bool
}

// Pipeline wires the collaborators for the digest workflow.
type Pipeline struct {
	cfg        *config.Config
	articles   *store.ArticleStore
	ranking    *store.Ranking
	reports    *store.ReportTracker
	translator *translation.Translator
	english    sentiment.Classifier
	chinese    sentiment.Classifier
	collectors []collectors.Collector
	delivery   report.Delivery // nil means preview-only, nothing gets marked reported
}

// Deps bundles the pipeline's collaborators.
type Deps struct {
	Config     *config.Config
	Articles   *store.ArticleStore
	Ranking    *store.Ranking
	Reports    *store.ReportTracker
	Translator *translation.Translator
	English    sentiment.Classifier
	Chinese    sentiment.Classifier
	Collectors []collectors.Collector
	Delivery   report.Delivery
}

// New constructs the pipeline.
func New(deps Deps) *Pipeline {
	return &Pipeline{
		cfg:        deps.Config,
		articles:   deps.Articles,
		ranking:    deps.Ranking,
		reports:    deps.Reports,
		translator: deps.Translator,
		english:    deps.English,
		chinese:    deps.Chinese,
		collectors: deps.Collectors,
		delivery:   deps.Delivery,
	}
}

// Run executes one complete digest cycle: collect, process, rank, deliver.
// A run always completes with counters; per-candidate failures are logged
// and isolated, never fatal to the batch.
func (p *Pipeline) Run(ctx context.Context) (*RunContext, error) {
	run := &RunContext{
		ID:        uuid.New(),
		StartedAt: time.Now(),
	}

	log.Printf("Starting digest run %s", run.ID)

	p.collect(ctx, run)
	log.Printf("Run %s: collected %d candidates", run.ID, run.Collected)

	p.process(ctx, run)
	log.Printf("Run %s: processed %d new articles (%d skipped, %d failed)",
		run.ID, run.Processed, run.Skipped, run.Failed)

	// Retroactive annotation for anything the pre-insert check let through.
	if _, err := p.articles.DedupSweep(); err != nil {
		log.Printf("Run %s: dedup sweep failed: %v", run.ID, err)
	}

	if err := p.report(run); err != nil {
		log.Printf("Run %s: report delivery failed: %v", run.ID, err)
	}

	log.Printf("Run %s finished in %.1fs: %d collected, %d processed, %d ranked, delivered=%v",
		run.ID, time.Since(run.StartedAt).Seconds(), run.Collected, run.Processed, run.Ranked, run.Delivered)

	return run, nil
}

// collect invokes every enabled collector for every watchlist entry and
// concatenates the results into one in-memory batch. A failing collector
// contributes nothing; it never aborts the run.
func (p *Pipeline) collect(ctx context.Context, run *RunContext) {
	for _, entry := range p.cfg.Watchlist {
		for _, collector := range p.collectors {
			candidates, err := collector.Collect(ctx, entry.Ticker, entry.CompanyName, p.cfg.Collectors.DaysLookback)
			if err != nil {
				log.Printf("Collector %s failed for %s: %v", collector.Name(), entry.Ticker, err)
				continue
			}
			run.Batch = append(run.Batch, candidates...)
		}
	}
	run.Collected = len(run.Batch)
}

// process persists the batch one candidate at a time. Commits are strictly
// sequential and an in-memory identity pre-pass collapses repeats within
// the batch, so the store-level duplicate check stays race free.
func (p *Pipeline) process(ctx context.Context, run *RunContext) {
	type identity struct {
		title  string
		source string
	}
	seen := make(map[identity]bool)

	for _, candidate := range run.Batch {
		key := identity{title: candidate.Title, source: candidate.Source}
		if seen[key] {
			run.Skipped++
			continue
		}

		exists, err := p.articles.Exists(candidate.Title, candidate.Source, existsWindowDays)
		if err != nil {
			log.Printf("Existence check failed for %q: %v", candidate.Title, err)
			run.Failed++
			continue
		}
		if exists {
			seen[key] = true
			run.Skipped++
			continue
		}

		article := p.buildArticle(ctx, candidate)

		if _, err := p.articles.Insert(article); err != nil {
			log.Printf("Failed to save article %q: %v", candidate.Title, err)
			run.Failed++
			continue
		}

		// Marked only once the row is committed, so a failed candidate
		// leaves a later identical one free to try again.
		seen[key] = true
		run.Processed++
	}
}

// buildArticle populates the derived fields for one candidate. Translation
// and classification failures are logged and leave their fields unset; the
// candidate still proceeds to insert.
func (p *Pipeline) buildArticle(ctx context.Context, candidate collectors.Candidate) *models.Article {
	article := &models.Article{
		Ticker:          candidate.Ticker,
		CompanyName:     candidate.CompanyName,
		Title:           candidate.Title,
		ContentOriginal: candidate.Content,
		Language:        candidate.Language,
		Source:          candidate.Source,
		SourceURL:       candidate.SourceURL,
		IsRumor:         candidate.IsRumor,
		RumorConfidence: candidate.RumorConfidence,
		PublishedDate:   candidate.PublishedDate,
		RelevanceScore:  candidate.RelevanceScore,
		Keywords:        candidate.Keywords,
	}

	original := candidate.Content
	if original == "" {
		original = candidate.Title
	}

	translated := original
	if p.cfg.Translation.Enabled && p.translator != nil && candidate.Language != p.cfg.Translation.TargetLang {
		result, err := p.translator.Translate(ctx, original)
		if err != nil {
			log.Printf("Translation failed for %q: %v", candidate.Title, err)
		} else {
			translated = result
		}
	}
	article.ContentTranslated = &translated

	classifier := p.english
	text := translated
	if candidate.Language == "zh" && p.chinese != nil {
		// Chinese text is judged on the original, not the translation.
		classifier = p.chinese
		text = original
	}

	if classifier != nil {
		judgment, err := classifier.Classify(text)
		if err != nil {
			log.Printf("Classification failed for %q: %v", candidate.Title, err)
		} else if judgment != nil {
			article.SentimentLabel = &judgment.Label
			article.SentimentScore = &judgment.Score
			article.SentimentConfidence = &judgment.Confidence
		}
	}

	return article
}

// report queries the digest view and hands it to the delivery transport.
// Articles are marked reported only on a confirmed delivery; on a preview
// or a failed delivery nothing is marked, so they stay eligible next run.
func (p *Pipeline) report(run *RunContext) error {
	articles, err := p.ranking.Top(store.TopOptions{
		Limit:             p.cfg.Report.MaxItems,
		MaxAgeDays:        p.cfg.Report.MaxAgeDays,
		ExcludeDuplicates: true,
		ExcludeReported:   true,
	})
	if err != nil {
		return err
	}
	run.Ranked = len(articles)

	stats, err := p.articles.Statistics()
	if err != nil {
		return err
	}

	if p.delivery == nil {
		_, err := report.WritePreview(p.cfg.Report.OutputDir, articles, stats)
		return err
	}

	if err := p.delivery.Deliver(articles, stats); err != nil {
		return err
	}
	run.Delivered = true

	ids := make([]uint, 0, len(articles))
	for _, article := range articles {
		ids = append(ids, article.ID)
	}
	return p.reports.MarkReported(ids)
}
