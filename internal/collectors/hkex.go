package collectors

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const hkexBaseURL = "https://www1.hkexnews.hk"

// hkexProfile: an official channel, so a matched rumor term is most likely
// an announcement about a rumor rather than speculation itself; confidence
// stays low and so does the base relevance of routine filings.
var hkexProfile = ScoringProfile{
	RumorTerms:          baseRumorTerms,
	ImportantTerms:      baseImportantTerms,
	BaseRelevance:       0.3,
	RelevanceStep:       0.25,
	RumorConfidenceStep: 0.2,
	RumorConfidenceCap:  0.8,
}

// HKEXCollector scrapes the official HKEX announcement search.
type HKEXCollector struct {
	baseURL string
	client  *http.Client
}

// NewHKEXCollector creates an HKEX announcements collector.
func NewHKEXCollector() *HKEXCollector {
	return &HKEXCollector{
		baseURL: hkexBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Name identifies the collector in run summaries.
func (h *HKEXCollector) Name() string { return "HKEXnews" }

// Collect fetches company announcements published within the window.
func (h *HKEXCollector) Collect(ctx context.Context, ticker, companyName string, windowDays int) ([]Candidate, error) {
	stockCode := normalizeStockCode(ticker)

	now := time.Now()
	params := url.Values{
		"sortDir":            {"0"}, // newest first
		"sortBy":             {"datetime"},
		"dateOfReleaseFrom":  {now.AddDate(0, 0, -windowDays).Format("20060102")},
		"dateOfReleaseTo":    {now.Format("20060102")},
		"stockId":            {stockCode},
		"documentType":       {"-1"},
		"t1code":             {"-2"},
		"t2Gcode":            {"-2"},
		"t2code":             {"-2"},
		"rowRange":           {"100"},
	}

	searchURL := fmt.Sprintf("%s/search/titlesearch.xhtml?%s", h.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch HKEX announcements: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HKEXnews returned HTTP %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HKEX page: %w", err)
	}

	var candidates []Candidate
	doc.Find("div.row").Each(func(_ int, row *goquery.Selection) {
		candidate, ok := h.parseRow(row, ticker, companyName)
		if ok {
			candidates = append(candidates, candidate)
		}
	})

	log.Printf("Collected %d announcements from HKEXnews for %s", len(candidates), ticker)
	return candidates, nil
}

func (h *HKEXCollector) parseRow(row *goquery.Selection, ticker, companyName string) (Candidate, bool) {
	dateText := strings.TrimSpace(row.Find("div.col-date").Text())
	if dateText == "" {
		return Candidate{}, false
	}

	titleLink := row.Find("div.col-dn-title a").First()
	if titleLink.Length() == 0 {
		return Candidate{}, false
	}

	title := strings.TrimSpace(titleLink.Text())
	if title == "" {
		return Candidate{}, false
	}

	docURL, _ := titleLink.Attr("href")
	if docURL != "" && !strings.HasPrefix(docURL, "http") {
		docURL = h.baseURL + docURL
	}

	isRumor, rumorConfidence := hkexProfile.DetectRumor(title)

	return Candidate{
		Ticker:      ticker,
		CompanyName: companyName,
		Title:       title,
		// For announcements the title is usually the whole content.
		Content:         title,
		Language:        DetectLanguage(title),
		Source:          "HKEXnews (Official)",
		SourceURL:       docURL,
		PublishedDate:   parseHKEXDate(dateText),
		IsRumor:         isRumor,
		RumorConfidence: rumorConfidence,
		RelevanceScore:  hkexProfile.Relevance(title),
		Keywords:        hkexProfile.Keywords(title),
	}, true
}

// parseHKEXDate handles "DD/MM/YYYY HH:MM" with a date-only fallback.
func parseHKEXDate(raw string) time.Time {
	for _, layout := range []string{"02/01/2006 15:04", "02/01/2006"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Now()
}

// normalizeStockCode strips the exchange suffix and zero-pads to the five
// digits the HKEX search expects.
func normalizeStockCode(ticker string) string {
	code := strings.ReplaceAll(strings.TrimSuffix(ticker, ".HK"), ".", "")
	for len(code) < 5 {
		code = "0" + code
	}
	return code
}
