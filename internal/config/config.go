// Package config loads application settings from a YAML file with
// environment-variable overrides for credentials.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv     = "FINANCE_DIGEST_CONFIG"
	smtpPasswordEnv   = "SMTP_PASSWORD"
	telegramTokenEnv  = "TELEGRAM_BOT_TOKEN"
	telegramChatIDEnv = "TELEGRAM_CHAT_ID"
)

// Config holds high-level settings required across the application.
type Config struct {
	Watchlist   []WatchlistEntry  `yaml:"watchlist"`
	Collectors  CollectorsConfig  `yaml:"collectors"`
	Translation TranslationConfig `yaml:"translation"`
	Sentiment   SentimentConfig   `yaml:"sentiment"`
	Report      ReportConfig      `yaml:"report"`
	Email       EmailConfig       `yaml:"email"`
	Telegram    TelegramConfig    `yaml:"telegram"`
}

// WatchlistEntry names one security to collect news for.
type WatchlistEntry struct {
	Ticker      string `yaml:"ticker"`
	CompanyName string `yaml:"company_name"`
}

// CollectorsConfig toggles the individual news collectors.
type CollectorsConfig struct {
	HKEXEnabled       bool `yaml:"hkex_enabled"`
	YahooEnabled      bool `yaml:"yahoo_enabled"`
	GoogleNewsEnabled bool `yaml:"google_news_enabled"`
	MaxPerSource      int  `yaml:"max_articles_per_source"`
	DaysLookback      int  `yaml:"days_lookback"`
}

// TranslationConfig controls the translation collaborator.
type TranslationConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Endpoint   string `yaml:"endpoint"`
	TargetLang string `yaml:"target_lang"`
}

// SentimentConfig controls the classification collaborator. When Endpoint is
// set, classification is delegated to a remote inference service with the
// built-in lexicon analyzers as fallback.
type SentimentConfig struct {
	Endpoint string `yaml:"endpoint"`
	APIKey   string `yaml:"api_key"`
}

// ReportConfig shapes the daily digest.
type ReportConfig struct {
	MaxItems   int    `yaml:"max_items"`
	MaxAgeDays int    `yaml:"max_age_days"`
	OutputDir  string `yaml:"output_dir"` // preview HTML when delivery is disabled
}

// EmailConfig wires SMTP delivery of the digest.
type EmailConfig struct {
	Enabled        bool   `yaml:"enabled"`
	SMTPServer     string `yaml:"smtp_server"`
	SMTPPort       int    `yaml:"smtp_port"`
	SenderEmail    string `yaml:"sender_email"`
	SenderPassword string `yaml:"sender_password"`
	RecipientEmail string `yaml:"recipient_email"`
}

// TelegramConfig wires digest delivery to a Telegram chat.
type TelegramConfig struct {
	Enabled  bool   `yaml:"enabled"`
	BotToken string `yaml:"bot_token"`
	ChatID   string `yaml:"chat_id"`
}

// Load reads the YAML configuration file and applies environment overrides.
// A missing file is not an error; defaults are used instead.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(configPathEnv)
	}
	if path == "" {
		path = "config.yaml"
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.applyDefaults()
	cfg.applyEnvOverrides()
	return cfg, nil
}

// Default returns the built-in configuration used when no file is present.
func Default() *Config {
	return &Config{
		Watchlist: []WatchlistEntry{
			{Ticker: "0700.HK", CompanyName: "Tencent"},
		},
		Collectors: CollectorsConfig{
			HKEXEnabled:       true,
			YahooEnabled:      true,
			GoogleNewsEnabled: true,
			MaxPerSource:      20,
			DaysLookback:      1,
		},
		Translation: TranslationConfig{
			Enabled:    true,
			TargetLang: "en",
		},
		Report: ReportConfig{
			MaxItems:   15,
			MaxAgeDays: 7,
			OutputDir:  ".",
		},
	}
}

func (c *Config) applyDefaults() {
	if c.Collectors.MaxPerSource == 0 {
		c.Collectors.MaxPerSource = 20
	}
	if c.Collectors.DaysLookback == 0 {
		c.Collectors.DaysLookback = 1
	}
	if c.Translation.TargetLang == "" {
		c.Translation.TargetLang = "en"
	}
	if c.Report.MaxItems == 0 {
		c.Report.MaxItems = 15
	}
	if c.Report.MaxAgeDays == 0 {
		c.Report.MaxAgeDays = 7
	}
	if c.Report.OutputDir == "" {
		c.Report.OutputDir = "."
	}
}

// applyEnvOverrides keeps credentials out of the config file.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(smtpPasswordEnv); v != "" {
		c.Email.SenderPassword = v
	}
	if v := os.Getenv(telegramTokenEnv); v != "" {
		c.Telegram.BotToken = v
	}
	if v := os.Getenv(telegramChatIDEnv); v != "" {
		c.Telegram.ChatID = v
	}
}
