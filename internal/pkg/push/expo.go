// Package push sends notifications through the Expo push service.
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// DefaultEndpoint is the Expo push API endpoint.
const DefaultEndpoint = "https://exp.host/--/api/v2/push/send"

// Expo rejects batches larger than 100 messages.
const batchSize = 100

// Message is one Expo push message.
type Message struct {
	To    string                 `json:"to"`
	Sound string                 `json:"sound"`
	Title string                 `json:"title"`
	Body  string                 `json:"body"`
	Data  map[string]interface{} `json:"data,omitempty"`
}

// ExpoClient delivers push messages. Delivery is fire-and-forget: send
// failures are logged and counted but never propagated to the caller.
type ExpoClient struct {
	endpoint string
	enabled  bool
	client   *http.Client
	logger   zerolog.Logger
}

// NewExpoClient creates a push client. When enabled is false Send is a
// no-op, which keeps development environments quiet.
func NewExpoClient(endpoint string, enabled bool, logger zerolog.Logger) *ExpoClient {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &ExpoClient{
		endpoint: endpoint,
		enabled:  enabled,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   logger,
	}
}

// Send pushes the same notification to every token, batching per the
// Expo API limit. Returns the number of messages accepted.
func (c *ExpoClient) Send(ctx context.Context, tokens []string, title, body string, data map[string]interface{}) int {
	if !c.enabled || len(tokens) == 0 {
		return 0
	}

	messages := make([]Message, 0, len(tokens))
	for _, token := range tokens {
		messages = append(messages, Message{
			To:    token,
			Sound: "default",
			Title: title,
			Body:  body,
			Data:  data,
		})
	}

	sent := 0
	for start := 0; start < len(messages); start += batchSize {
		end := start + batchSize
		if end > len(messages) {
			end = len(messages)
		}
		if err := c.sendBatch(ctx, messages[start:end]); err != nil {
			c.logger.Warn().Err(err).Int("batch", start/batchSize).Msg("Push batch failed")
			continue
		}
		sent += end - start
	}

	return sent
}

func (c *ExpoClient) sendBatch(ctx context.Context, batch []Message) error {
	payload, err := json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("failed to encode push batch: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build push request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("push request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("push endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
