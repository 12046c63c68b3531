package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// request is the payload sent to the extractive QA service.
type request struct {
	Question string `json:"question"`
	Context  string `json:"context"`
}

// response is the answer span and confidence reported by the service.
type response struct {
	Answer string  `json:"answer"`
	Score  float64 `json:"score"`
}

// Client calls an extractive QA HTTP service. Calls are bounded by the
// configured timeout; the caller must not hold any session lock while a
// call is in flight.
type Client struct {
	url    string
	token  string
	client *http.Client
}

// NewClient creates an adapter for the QA service at url. The token, when
// set, is sent as a bearer Authorization header.
func NewClient(url, token string, timeout time.Duration) *Client {
	return &Client{
		url:    url,
		token:  token,
		client: &http.Client{Timeout: timeout},
	}
}

// Available reports true; a constructed client always attempts calls.
func (c *Client) Available() bool { return true }

// Ask posts the question and passage to the QA service. The answer is
// accepted only when its confidence strictly exceeds ConfidenceCutoff.
// Every failure path logs and reports no answer instead of propagating.
func (c *Client) Ask(ctx context.Context, question, passage string) (string, bool) {
	answer, err := c.ask(ctx, question, passage)
	if err != nil {
		slog.Warn("inference call failed", "error", err)
		return "", false
	}

	if answer.Score <= ConfidenceCutoff {
		slog.Debug("inference answer below confidence cutoff", "score", answer.Score)
		return "", false
	}
	if answer.Answer == "" {
		return "", false
	}
	return answer.Answer, true
}

func (c *Client) ask(ctx context.Context, question, passage string) (*response, error) {
	payload, err := json.Marshal(request{Question: question, Context: passage})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal inference request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create inference request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("inference request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("inference service returned %s: %s", resp.Status, body)
	}

	var answer response
	if err := json.NewDecoder(resp.Body).Decode(&answer); err != nil {
		return nil, fmt.Errorf("failed to decode inference response: %w", err)
	}
	return &answer, nil
}
