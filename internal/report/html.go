package report

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"finance-digest/internal/models"
	"finance-digest/internal/store"
)

const digestTemplate = `<!DOCTYPE html>
<html>
<head>
<style>
body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 800px; margin: 0 auto; padding: 20px; }
.header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 30px; border-radius: 10px; margin-bottom: 30px; }
.header h1 { margin: 0; font-size: 28px; }
.header .date { margin-top: 10px; opacity: 0.9; }
.stats { background: #f8f9fa; padding: 20px; border-radius: 8px; margin-bottom: 30px; }
.stat-item { display: inline-block; text-align: center; min-width: 150px; }
.stat-value { font-size: 24px; font-weight: bold; color: #667eea; }
.stat-label { font-size: 12px; color: #666; text-transform: uppercase; }
.article { background: white; border: 1px solid #e0e0e0; border-radius: 8px; padding: 20px; margin-bottom: 20px; }
.article-title { font-size: 18px; font-weight: bold; color: #2c3e50; margin: 10px 0; }
.badge { display: inline-block; padding: 4px 12px; border-radius: 12px; font-size: 11px; font-weight: bold; text-transform: uppercase; margin-right: 8px; }
.badge-positive { background: #d4edda; color: #155724; }
.badge-negative { background: #f8d7da; color: #721c24; }
.badge-neutral { background: #e2e3e5; color: #383d41; }
.badge-rumor { background: #fff3cd; color: #856404; }
.ticker { background: #667eea; color: white; padding: 2px 8px; border-radius: 4px; font-weight: bold; font-size: 12px; }
.meta { font-size: 13px; color: #666; margin-bottom: 10px; }
.meta-item { margin-right: 15px; display: inline-block; }
.keyword-tag { display: inline-block; background: #e8eaf6; color: #5c6bc0; padding: 4px 10px; border-radius: 4px; font-size: 11px; margin-right: 6px; }
.footer { text-align: center; padding: 20px; color: #999; font-size: 12px; border-top: 1px solid #e0e0e0; margin-top: 30px; }
</style>
</head>
<body>
<div class="header">
	<h1>Watchlist News Digest</h1>
	<div class="date">{{.Date}}</div>
</div>
<div class="stats">
	<div class="stat-item"><div class="stat-value">{{len .Articles}}</div><div class="stat-label">New Articles</div></div>
	<div class="stat-item"><div class="stat-value">{{.Stats.RumorsCount}}</div><div class="stat-label">Rumors</div></div>
	<div class="stat-item"><div class="stat-value">{{index .Stats.SentimentBreakdown "positive"}}</div><div class="stat-label">Positive</div></div>
	<div class="stat-item"><div class="stat-value">{{index .Stats.SentimentBreakdown "negative"}}</div><div class="stat-label">Negative</div></div>
</div>
{{if not .Articles}}
<div class="article"><p>No new articles to report today.</p></div>
{{end}}
{{range $i, $a := .Articles}}
<div class="article">
	<div>
		<span class="ticker">{{$a.Ticker}}</span>
		{{if $a.IsRumor}}<span class="badge badge-rumor">Rumor</span>{{end}}
		<span class="badge badge-{{sentimentLabel $a}}">{{sentimentLabel $a}}</span>
	</div>
	<h2 class="article-title">{{inc $i}}. {{$a.DisplayTitle}}</h2>
	<div class="meta">
		<span class="meta-item">{{$a.PublishedDate.Format "2006-01-02 15:04"}}</span>
		<span class="meta-item"><a href="{{$a.SourceURL}}">{{$a.Source}}</a></span>
		<span class="meta-item">Relevance: {{percent $a.RelevanceScore}}</span>
	</div>
	{{if $a.Keywords}}<div>{{range firstFive $a.Keywords}}<span class="keyword-tag">{{.}}</span>{{end}}</div>{{end}}
</div>
{{end}}
<div class="footer">
	<p>Generated automatically by finance-digest</p>
</div>
</body>
</html>
`

var templateFuncs = template.FuncMap{
	"inc":     func(i int) int { return i + 1 },
	"percent": func(v float64) string { return fmt.Sprintf("%.0f%%", v*100) },
	"firstFive": func(keywords []string) []string {
		if len(keywords) > 5 {
			return keywords[:5]
		}
		return keywords
	},
	"sentimentLabel": func(a models.Article) string {
		if a.SentimentLabel != nil && *a.SentimentLabel != "" {
			return *a.SentimentLabel
		}
		return models.SentimentNeutral
	},
}

var digestTmpl = template.Must(template.New("digest").Funcs(templateFuncs).Parse(digestTemplate))

// RenderHTML produces the digest document for the given articles and stats.
func RenderHTML(articles []models.Article, stats *store.Statistics, now time.Time) (string, error) {
	data := struct {
		Date     string
		Articles []models.Article
		Stats    *store.Statistics
	}{
		Date:     "Daily News Digest - " + now.Format("January 2, 2006"),
		Articles: articles,
		Stats:    stats,
	}

	var buf bytes.Buffer
	if err := digestTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render digest: %w", err)
	}
	return buf.String(), nil
}
