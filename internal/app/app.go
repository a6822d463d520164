// Package app assembles the digest pipeline from configuration.
package app

import (
	"finance-digest/internal/collectors"
	"finance-digest/internal/config"
	"finance-digest/internal/pipeline"
	"finance-digest/internal/report"
	"finance-digest/internal/sentiment"
	"finance-digest/internal/store"
	"finance-digest/internal/translation"

	"gorm.io/gorm"
)

// BuildPipeline wires every collaborator the configuration enables into a
// ready-to-run pipeline.
func BuildPipeline(db *gorm.DB, cfg *config.Config) *pipeline.Pipeline {
	articles := store.NewArticleStore(db)
	ranking := store.NewRanking(db)
	reports := store.NewReportTracker(db)

	var translator *translation.Translator
	if cfg.Translation.Enabled && cfg.Translation.Endpoint != "" {
		backend := translation.NewHTTPBackend(cfg.Translation.Endpoint)
		translator = translation.NewTranslator(store.NewTranslationCache(db), backend, cfg.Translation.TargetLang)
	}

	english, chinese := buildClassifiers(cfg)

	return pipeline.New(pipeline.Deps{
		Config:     cfg,
		Articles:   articles,
		Ranking:    ranking,
		Reports:    reports,
		Translator: translator,
		English:    english,
		Chinese:    chinese,
		Collectors: buildCollectors(cfg),
		Delivery:   buildDelivery(cfg),
	})
}

func buildClassifiers(cfg *config.Config) (english, chinese sentiment.Classifier) {
	english = sentiment.NewEnglishClassifier()
	chinese = sentiment.NewChineseClassifier()

	if cfg.Sentiment.Endpoint != "" {
		english = sentiment.NewRemoteClassifier(cfg.Sentiment.Endpoint, cfg.Sentiment.APIKey, english)
		chinese = sentiment.NewRemoteClassifier(cfg.Sentiment.Endpoint, cfg.Sentiment.APIKey, chinese)
	}
	return english, chinese
}

func buildCollectors(cfg *config.Config) []collectors.Collector {
	var enabled []collectors.Collector
	if cfg.Collectors.HKEXEnabled {
		enabled = append(enabled, collectors.NewHKEXCollector())
	}
	if cfg.Collectors.YahooEnabled {
		enabled = append(enabled, collectors.NewYahooCollector(cfg.Collectors.MaxPerSource))
	}
	if cfg.Collectors.GoogleNewsEnabled {
		enabled = append(enabled, collectors.NewGoogleNewsCollector(cfg.Collectors.MaxPerSource))
	}
	return enabled
}

// buildDelivery picks the first enabled transport. Email wins over Telegram
// when both are configured; with neither, the pipeline writes an HTML
// preview instead and nothing is ever marked reported.
func buildDelivery(cfg *config.Config) report.Delivery {
	if cfg.Email.Enabled {
		return report.NewEmailSender(cfg.Email)
	}
	if cfg.Telegram.Enabled {
		return report.NewTelegramNotifier(cfg.Telegram)
	}
	return nil
}
