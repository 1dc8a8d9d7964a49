package services

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Sentiment is the classification attached to an entry: the winning label, its
// raw confidence, and the confidence signed by the label's polarity.
type Sentiment struct {
	Label      string
	Confidence float64
	Score      float64
}

// SentimentClient calls a remote text-classification API. The call is
// best-effort: every failure mode degrades to a nil result so entry creation
// never depends on the classifier being reachable.
type SentimentClient struct {
	endpoint   string
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
	log        *logrus.Logger
}

func NewSentimentClient(endpoint, apiKey string, timeout time.Duration, log *logrus.Logger) *SentimentClient {
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &SentimentClient{
		endpoint:   endpoint,
		apiKey:     apiKey,
		timeout:    timeout,
		httpClient: &http.Client{},
		log:        log,
	}
}

type classifyRequest struct {
	Inputs string `json:"inputs"`
}

type candidate struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classify sends text to the classification API and returns the winning
// candidate, or nil when classification is skipped or fails. It never returns
// an error: absence of a result is a normal outcome for callers.
func (c *SentimentClient) Classify(ctx context.Context, text string) *Sentiment {
	if c.apiKey == "" {
		c.log.Warn("sentiment API key not set; skipping sentiment")
		return nil
	}
	if strings.TrimSpace(text) == "" {
		return nil
	}

	body, err := json.Marshal(classifyRequest{Inputs: text})
	if err != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		c.log.WithError(err).Warn("sentiment request build failed")
		return nil
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WithError(err).Warn("sentiment request failed")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		c.log.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"body":   string(snippet),
		}).Warn("sentiment API returned non-success status")
		return nil
	}

	// Response shape is a list of candidate lists, one per input.
	var results [][]candidate
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		c.log.WithError(err).Warn("sentiment response decode failed")
		return nil
	}
	if len(results) == 0 || len(results[0]) == 0 {
		return nil
	}

	best := results[0][0]
	for _, cand := range results[0][1:] {
		if cand.Score > best.Score {
			best = cand
		}
	}

	sign := 0.0
	labelLower := strings.ToLower(best.Label)
	if strings.Contains(labelLower, "pos") {
		sign = 1
	} else if strings.Contains(labelLower, "neg") {
		sign = -1
	}

	return &Sentiment{
		Label:      best.Label,
		Confidence: best.Score,
		Score:      sign * best.Score,
	}
}
