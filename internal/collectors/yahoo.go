package collectors

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"
)

const yahooSearchURL = "https://query1.finance.yahoo.com/v1/finance/search"

// yahooProfile: a semi-reliable aggregator, between the official channel and
// Google News in both rumor confidence and base relevance.
var yahooProfile = ScoringProfile{
	RumorTerms: append(append([]string{}, baseRumorTerms...),
		"could be", "might be", "potential", "possible",
	),
	ImportantTerms:      append(append([]string{}, baseImportantTerms...), analystTerms...),
	BaseRelevance:       0.4,
	RelevanceStep:       0.2,
	RumorConfidenceStep: 0.3,
	RumorConfidenceCap:  0.9,
}

// YahooCollector queries the Yahoo Finance search API for ticker news.
type YahooCollector struct {
	baseURL     string
	maxArticles int
	client      *http.Client
}

// NewYahooCollector creates a Yahoo Finance news collector.
func NewYahooCollector(maxArticles int) *YahooCollector {
	return &YahooCollector{
		baseURL:     yahooSearchURL,
		maxArticles: maxArticles,
		client:      &http.Client{Timeout: 15 * time.Second},
	}
}

// Name identifies the collector in run summaries.
func (y *YahooCollector) Name() string { return "Yahoo Finance" }

type yahooSearchResponse struct {
	News []yahooNewsItem `json:"news"`
}

type yahooNewsItem struct {
	Title               string `json:"title"`
	Link                string `json:"link"`
	Publisher           string `json:"publisher"`
	ProviderPublishTime int64  `json:"providerPublishTime"`
}

// Collect fetches recent ticker news. The window parameter is not supported
// by the API; stale items fall out at the ranking stage instead.
func (y *YahooCollector) Collect(ctx context.Context, ticker, companyName string, windowDays int) ([]Candidate, error) {
	query := url.Values{
		"q":          {ticker},
		"newsCount":  {fmt.Sprintf("%d", y.maxArticles)},
		"quotesCount": {"0"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, y.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := y.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch Yahoo Finance news: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Yahoo Finance returned HTTP %d", resp.StatusCode)
	}

	var result yahooSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse Yahoo Finance response: %w", err)
	}

	var candidates []Candidate
	for _, item := range result.News {
		if len(candidates) >= y.maxArticles {
			break
		}
		if item.Title == "" {
			continue
		}
		candidates = append(candidates, y.parseItem(item, ticker, companyName))
	}

	log.Printf("Collected %d articles from Yahoo Finance for %s", len(candidates), ticker)
	return candidates, nil
}

func (y *YahooCollector) parseItem(item yahooNewsItem, ticker, companyName string) Candidate {
	publisher := item.Publisher
	if publisher == "" {
		publisher = "Yahoo Finance"
	}

	publishedDate := time.Now()
	if item.ProviderPublishTime > 0 {
		publishedDate = time.Unix(item.ProviderPublishTime, 0)
	}

	isRumor, rumorConfidence := yahooProfile.DetectRumor(item.Title)

	return Candidate{
		Ticker:          ticker,
		CompanyName:     companyName,
		Title:           item.Title,
		Content:         item.Title,
		Language:        DetectLanguage(item.Title),
		Source:          fmt.Sprintf("Yahoo Finance (%s)", publisher),
		SourceURL:       item.Link,
		PublishedDate:   publishedDate,
		IsRumor:         isRumor,
		RumorConfidence: rumorConfidence,
		RelevanceScore:  yahooProfile.Relevance(item.Title),
		Keywords:        yahooProfile.Keywords(item.Title),
	}
}
