package translation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPBackend calls a translation service over a small JSON protocol:
// POST {"q": ..., "source": ..., "target": ...} -> {"translated_text": ...}.
type HTTPBackend struct {
	endpoint string
	client   *http.Client
}

// NewHTTPBackend creates a translation backend for the given endpoint.
func NewHTTPBackend(endpoint string) *HTTPBackend {
	return &HTTPBackend{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// Translate sends one text for translation.
func (b *HTTPBackend) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"q":      text,
		"source": sourceLang,
		"target": targetLang,
	})
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}

	var result struct {
		TranslatedText string `json:"translated_text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if result.TranslatedText == "" {
		return "", fmt.Errorf("empty translation result")
	}

	return result.TranslatedText, nil
}
