package collectors

import (
	"math"
	"strings"
	"unicode"
)

// ScoringProfile is a per-source table for the substring heuristics that
// flag speculation and score importance. Official sources get low rumor
// confidence (an announcement ABOUT a rumor is not itself a rumor);
// aggregators get higher confidence and a higher base relevance.
type ScoringProfile struct {
	RumorTerms     []string
	ImportantTerms []string

	BaseRelevance float64 // relevance when no important term matches
	RelevanceStep float64 // added per matched term, capped at 1.0

	RumorConfidenceStep float64 // per matched rumor term
	RumorConfidenceCap  float64
}

// DetectRumor reports whether the text carries speculation markers and how
// confident the profile is that it does.
func (p ScoringProfile) DetectRumor(text string) (bool, float64) {
	lower := strings.ToLower(text)

	count := 0
	for _, term := range p.RumorTerms {
		if strings.Contains(lower, term) {
			count++
		}
	}

	if count == 0 {
		return false, 0.0
	}

	confidence := math.Min(float64(count)*p.RumorConfidenceStep, p.RumorConfidenceCap)
	return true, confidence
}

// Relevance scores importance from matched terms, starting at the profile's
// base and capped at 1.0.
func (p ScoringProfile) Relevance(text string) float64 {
	lower := strings.ToLower(text)

	matches := 0
	for _, term := range p.ImportantTerms {
		if strings.Contains(lower, term) {
			matches++
		}
	}

	if matches == 0 {
		return p.BaseRelevance
	}

	return math.Min(p.BaseRelevance+float64(matches)*p.RelevanceStep, 1.0)
}

// Keywords returns the matched important terms in detection order.
func (p ScoringProfile) Keywords(text string) []string {
	lower := strings.ToLower(text)

	var found []string
	for _, term := range p.ImportantTerms {
		if strings.Contains(lower, term) {
			found = append(found, term)
		}
	}
	return found
}

// DetectLanguage returns "zh" when the text contains Han characters,
// otherwise "en".
func DetectLanguage(text string) string {
	for _, r := range text {
		if unicode.Is(unicode.Han, r) {
			return "zh"
		}
	}
	return "en"
}

// Shared term lists. The aggregator profiles extend these with terms that
// only show up in secondary reporting.
var baseRumorTerms = []string{
	"rumor", "rumour", "speculation", "alleged", "unconfirmed",
	"reportedly", "sources say", "insider claims", "whispers",
	"市场传闻", "传言", "据悉", "传", "有消息称", "知情人士",
}

var baseImportantTerms = []string{
	"earnings", "profit", "loss", "revenue", "dividend",
	"acquisition", "merger", "takeover", "buyout",
	"regulation", "investigation", "lawsuit", "settlement",
	"ceo", "chairman", "resignation", "appointment",
	"profit warning", "guidance", "forecast",
	"盈利", "收益", "亏损", "营收", "股息",
	"收购", "合并", "监管", "调查", "诉讼",
}

var analystTerms = []string{
	"upgrade", "downgrade", "analyst", "rating", "price target",
}
