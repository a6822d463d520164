package collectors

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/mmcdole/gofeed/rss"
)

const googleNewsBaseURL = "https://news.google.com/rss/search"

// googleNewsProfile: an aggregator of many outlets, so speculation markers
// carry high confidence and the base relevance is the highest of the three
// sources.
var googleNewsProfile = ScoringProfile{
	RumorTerms: append(append([]string{}, baseRumorTerms...),
		"could be", "might be", "potential", "possible", "expected to",
		"plans to", "considering", "may", "sources close to",
		"据报道", "消息人士", "据称",
	),
	ImportantTerms: append(append(append([]string{}, baseImportantTerms...), analystTerms...),
		"ipo", "listing", "上市",
	),
	BaseRelevance:       0.5,
	RelevanceStep:       0.2,
	RumorConfidenceStep: 0.35,
	RumorConfidenceCap:  0.95,
}

// GoogleNewsCollector reads the Google News RSS search feed for a company.
type GoogleNewsCollector struct {
	baseURL     string
	maxArticles int
	client      *http.Client
	parser      *gofeed.Parser
}

// NewGoogleNewsCollector creates a Google News RSS collector.
func NewGoogleNewsCollector(maxArticles int) *GoogleNewsCollector {
	parser := gofeed.NewParser()
	parser.RSSTranslator = &outletTranslator{base: &gofeed.DefaultRSSTranslator{}}

	return &GoogleNewsCollector{
		baseURL:     googleNewsBaseURL,
		maxArticles: maxArticles,
		client:      &http.Client{Timeout: 15 * time.Second},
		parser:      parser,
	}
}

// Name identifies the collector in run summaries.
func (g *GoogleNewsCollector) Name() string { return "Google News" }

// outletTranslator keeps the per-item <source> element the default RSS
// translator drops. Google News uses it to name the originating outlet.
type outletTranslator struct {
	base *gofeed.DefaultRSSTranslator
}

func (t *outletTranslator) Translate(feed interface{}) (*gofeed.Feed, error) {
	rssFeed, ok := feed.(*rss.Feed)
	if !ok {
		return nil, fmt.Errorf("expected an RSS feed")
	}

	translated, err := t.base.Translate(rssFeed)
	if err != nil {
		return nil, err
	}

	for i, item := range rssFeed.Items {
		if item.Source == nil || i >= len(translated.Items) {
			continue
		}
		if translated.Items[i].Custom == nil {
			translated.Items[i].Custom = make(map[string]string)
		}
		translated.Items[i].Custom["source"] = item.Source.Title
	}
	return translated, nil
}

// Collect searches the RSS feed for stock news about the company within the
// window. An empty feed is a valid result.
func (g *GoogleNewsCollector) Collect(ctx context.Context, ticker, companyName string, windowDays int) ([]Candidate, error) {
	if companyName == "" {
		companyName = ticker
	}

	// "when:<N>d" restricts results to the lookback window.
	query := fmt.Sprintf("%s stock OR %s shares when:%dd", companyName, companyName, windowDays)
	feedURL := fmt.Sprintf("%s?q=%s&hl=en-US&gl=US&ceid=US:en", g.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch Google News feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Google News returned HTTP %d", resp.StatusCode)
	}

	feed, err := g.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RSS feed: %w", err)
	}

	var candidates []Candidate
	for _, item := range feed.Items {
		if len(candidates) >= g.maxArticles {
			break
		}
		if item.Title == "" {
			continue
		}

		candidate := g.parseItem(item, ticker, companyName)
		candidates = append(candidates, candidate)
	}

	log.Printf("Collected %d articles from Google News for %s", len(candidates), companyName)
	return candidates, nil
}

func (g *GoogleNewsCollector) parseItem(item *gofeed.Item, ticker, companyName string) Candidate {
	sourceName := item.Custom["source"]
	if sourceName == "" {
		sourceName = "Unknown"
	}

	// Feeds without a usable pubDate fall back to the fetch time.
	publishedDate := time.Now()
	if item.PublishedParsed != nil {
		publishedDate = *item.PublishedParsed
	}

	isRumor, rumorConfidence := googleNewsProfile.DetectRumor(item.Title)

	return Candidate{
		Ticker:          ticker,
		CompanyName:     companyName,
		Title:           item.Title,
		Content:         item.Title,
		Language:        DetectLanguage(item.Title),
		Source:          fmt.Sprintf("Google News (%s)", sourceName),
		SourceURL:       item.Link,
		PublishedDate:   publishedDate,
		IsRumor:         isRumor,
		RumorConfidence: rumorConfidence,
		RelevanceScore:  googleNewsProfile.Relevance(item.Title),
		Keywords:        googleNewsProfile.Keywords(item.Title),
	}
}
