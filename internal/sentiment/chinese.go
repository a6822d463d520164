package sentiment

import "strings"

var chinesePositiveTerms = []string{
	"增长", "上涨", "盈利", "收益", "成功", "强劲",
	"超预期", "利好", "看涨", "突破", "创新高",
}

var chineseNegativeTerms = []string{
	"下跌", "亏损", "损失", "暴跌", "风险", "警告",
	"调查", "诉讼", "违规", "弱", "看跌", "利空",
}

// ChineseClassifier scores Chinese financial text against Chinese term
// lists. No case folding: the match is a direct substring check.
type ChineseClassifier struct{}

// NewChineseClassifier creates the lexicon-based Chinese classifier.
func NewChineseClassifier() *ChineseClassifier {
	return &ChineseClassifier{}
}

// Classify returns the lexicon judgment, or nil for empty input.
func (c *ChineseClassifier) Classify(text string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	return lexiconScore(text, chinesePositiveTerms, chineseNegativeTerms), nil
}
