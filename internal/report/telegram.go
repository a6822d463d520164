package report

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"finance-digest/internal/config"
	"finance-digest/internal/models"
	"finance-digest/internal/store"
)

// TelegramNotifier posts a plain-text digest to a Telegram chat via the bot
// API.
type TelegramNotifier struct {
	cfg    config.TelegramConfig
	apiURL string
	client *http.Client
}

// NewTelegramNotifier creates a Telegram digest delivery.
func NewTelegramNotifier(cfg config.TelegramConfig) *TelegramNotifier {
	return &TelegramNotifier{
		cfg:    cfg,
		apiURL: "https://api.telegram.org",
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Deliver formats the digest as a text message and posts it.
func (t *TelegramNotifier) Deliver(articles []models.Article, stats *store.Statistics) error {
	if t.cfg.BotToken == "" || t.cfg.ChatID == "" {
		return fmt.Errorf("telegram notifier misconfigured")
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", t.apiURL, t.cfg.BotToken)
	form := url.Values{}
	form.Set("chat_id", t.cfg.ChatID)
	form.Set("text", t.buildMessage(articles, stats))

	resp, err := t.client.Post(endpoint, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to post digest to telegram: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram error: %s", resp.Status)
	}

	log.Println("Digest posted to Telegram successfully")
	return nil
}

func (t *TelegramNotifier) buildMessage(articles []models.Article, stats *store.Statistics) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Daily News Digest - %s\n", time.Now().Format("Jan 2, 2006"))
	fmt.Fprintf(&b, "%d new articles, %d rumors on record\n\n", len(articles), stats.RumorsCount)

	if len(articles) == 0 {
		b.WriteString("No new articles to report today.\n")
		return b.String()
	}

	for i, article := range articles {
		label := models.SentimentNeutral
		if article.SentimentLabel != nil && *article.SentimentLabel != "" {
			label = *article.SentimentLabel
		}
		fmt.Fprintf(&b, "%d. [%s] %s\n   %s | score %.2f | %s\n   %s\n\n",
			i+1, article.Ticker, article.DisplayTitle(),
			label, article.RankScore(), article.Source,
			article.SourceURL)
	}

	return b.String()
}
