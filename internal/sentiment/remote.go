package sentiment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

// RemoteClassifier delegates classification to an external inference
// service and falls back to a local classifier when the call fails, so a
// model outage degrades judgment quality instead of dropping candidates.
type RemoteClassifier struct {
	endpoint string
	apiKey   string
	client   *http.Client
	fallback Classifier
}

// NewRemoteClassifier creates a classifier backed by an HTTP inference
// service with a local fallback.
func NewRemoteClassifier(endpoint, apiKey string, fallback Classifier) *RemoteClassifier {
	return &RemoteClassifier{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 15 * time.Second},
		fallback: fallback,
	}
}

// Classify sends the text for scoring, or nil for empty input.
func (r *RemoteClassifier) Classify(text string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	result, err := r.post(text)
	if err != nil {
		log.Printf("Remote classification failed, using fallback: %v", err)
		if r.fallback != nil {
			return r.fallback.Classify(text)
		}
		return nil, err
	}

	return result, nil
}

func (r *RemoteClassifier) post(text string) (*Result, error) {
	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, r.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if r.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+r.apiKey)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &result, nil
}
