package report

import (
	"fmt"
	"log"
	"net/smtp"
	"time"

	"finance-digest/internal/config"
	"finance-digest/internal/models"
	"finance-digest/internal/store"
)

// EmailSender delivers the digest as an HTML email over SMTP with STARTTLS.
type EmailSender struct {
	cfg config.EmailConfig
}

// NewEmailSender creates an SMTP digest delivery.
func NewEmailSender(cfg config.EmailConfig) *EmailSender {
	return &EmailSender{cfg: cfg}
}

// Deliver renders and sends the digest. A nil return means the SMTP server
// accepted the message.
func (e *EmailSender) Deliver(articles []models.Article, stats *store.Statistics) error {
	now := time.Now()

	subject := fmt.Sprintf("Daily News Digest - %s", now.Format("Jan 2, 2006"))
	if len(articles) > 0 {
		subject += fmt.Sprintf(" (%d articles)", len(articles))
	} else {
		subject += " (No new articles)"
	}

	html, err := RenderHTML(articles, stats, now)
	if err != nil {
		return err
	}

	message := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		e.cfg.SenderEmail, e.cfg.RecipientEmail, subject, html,
	)

	addr := fmt.Sprintf("%s:%d", e.cfg.SMTPServer, e.cfg.SMTPPort)
	auth := smtp.PlainAuth("", e.cfg.SenderEmail, e.cfg.SenderPassword, e.cfg.SMTPServer)

	log.Printf("Sending digest email to %s via %s", e.cfg.RecipientEmail, addr)
	if err := smtp.SendMail(addr, auth, e.cfg.SenderEmail, []string{e.cfg.RecipientEmail}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send digest email: %w", err)
	}

	log.Println("Digest email sent successfully")
	return nil
}
