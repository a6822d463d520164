package handlers

import (
	"net/http"
	"strconv"
	"time"

	"finance-digest/internal/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DigestHandler exposes the stored digest data over HTTP.
type DigestHandler struct {
	db       *gorm.DB
	articles *store.ArticleStore
	ranking  *store.Ranking
	feedback *store.FeedbackLog
}

// NewDigestHandler creates a new digest API handler
func NewDigestHandler(db *gorm.DB) *DigestHandler {
	return &DigestHandler{
		db:       db,
		articles: store.NewArticleStore(db),
		ranking:  store.NewRanking(db),
		feedback: store.NewFeedbackLog(db),
	}
}

// HealthCheck returns service status
func (h *DigestHandler) HealthCheck(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err != nil || sqlDB.Ping() != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  "database connection failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
	})
}

// GetTopArticles returns the current ranking, suppression rules included,
// without marking anything reported.
func (h *DigestHandler) GetTopArticles(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "15"))
	maxAgeDays, _ := strconv.Atoi(c.DefaultQuery("max_age_days", "7"))

	articles, err := h.ranking.Top(store.TopOptions{
		Limit:             limit,
		MaxAgeDays:        maxAgeDays,
		ExcludeDuplicates: true,
		ExcludeReported:   c.DefaultQuery("include_reported", "false") != "true",
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch articles"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"articles": articles,
		"count":    len(articles),
	})
}

// GetRecentArticles returns everything stored within the window, duplicates
// included, for inspection.
func (h *DigestHandler) GetRecentArticles(c *gin.Context) {
	windowDays, _ := strconv.Atoi(c.DefaultQuery("days", "7"))
	ticker := c.Query("ticker")

	articles, err := h.articles.Recent(windowDays, ticker)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch articles"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"articles": articles,
		"count":    len(articles),
	})
}

// GetStatistics returns the aggregate view used in digest footers.
func (h *DigestHandler) GetStatistics(c *gin.Context) {
	stats, err := h.articles.Statistics()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

type feedbackRequest struct {
	ArticleID uint   `json:"article_id" binding:"required"`
	Type      string `json:"feedback_type" binding:"required"`
	Value     int    `json:"feedback_value"`
	Notes     string `json:"notes"`
}

// PostFeedback records a reader judgment on one article.
func (h *DigestHandler) PostFeedback(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.feedback.Record(req.ArticleID, req.Type, req.Value, req.Notes); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record feedback"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "recorded"})
}
