// Package report renders ranked articles into a daily digest and delivers
// it. The pipeline only marks articles reported after a delivery here has
// confirmed success.
package report

import (
	"finance-digest/internal/models"
	"finance-digest/internal/store"
)

// Delivery turns a ranked list and statistics into a delivered digest. A nil
// error is the delivery acknowledgement the pipeline requires before marking
// articles as reported.
type Delivery interface {
	Deliver(articles []models.Article, stats *store.Statistics) error
}
