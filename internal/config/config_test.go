package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(cfg.Watchlist) == 0 {
		t.Error("Expected a default watchlist")
	}
	if cfg.Report.MaxItems != 15 {
		t.Errorf("MaxItems = %d, want 15", cfg.Report.MaxItems)
	}
	if cfg.Translation.TargetLang != "en" {
		t.Errorf("TargetLang = %q, want en", cfg.Translation.TargetLang)
	}
}

func TestLoadParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
watchlist:
  - ticker: "0700.HK"
    company_name: "Tencent"
  - ticker: "9988.HK"
    company_name: "Alibaba"
collectors:
  hkex_enabled: true
  yahoo_enabled: false
  google_news_enabled: true
  max_articles_per_source: 10
report:
  max_items: 5
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(cfg.Watchlist) != 2 {
		t.Fatalf("Expected 2 watchlist entries, got %d", len(cfg.Watchlist))
	}
	if cfg.Watchlist[1].CompanyName != "Alibaba" {
		t.Errorf("CompanyName = %q, want Alibaba", cfg.Watchlist[1].CompanyName)
	}
	if cfg.Collectors.YahooEnabled {
		t.Error("Expected Yahoo collector to be disabled")
	}
	if cfg.Collectors.MaxPerSource != 10 {
		t.Errorf("MaxPerSource = %d, want 10", cfg.Collectors.MaxPerSource)
	}
	if cfg.Report.MaxItems != 5 {
		t.Errorf("MaxItems = %d, want 5", cfg.Report.MaxItems)
	}
	// Unset fields fall back to defaults.
	if cfg.Report.MaxAgeDays != 7 {
		t.Errorf("MaxAgeDays = %d, want default 7", cfg.Report.MaxAgeDays)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SMTP_PASSWORD", "hunter2")
	t.Setenv("TELEGRAM_BOT_TOKEN", "token123")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Email.SenderPassword != "hunter2" {
		t.Error("Expected SMTP_PASSWORD to override the sender password")
	}
	if cfg.Telegram.BotToken != "token123" {
		t.Error("Expected TELEGRAM_BOT_TOKEN to override the bot token")
	}
}
