package sender

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/webforgehq/outreach/internal/config"
)

// bulkTransport posts to a managed bulk-sending provider's JSON API. The
// provider throttles and queues on its side, so the sender can pace this
// backend faster than raw SMTP.
type bulkTransport struct {
	cfg    config.BulkConfig
	client *http.Client
}

type bulkSendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	Text    string `json:"text"`
}

type bulkErrorResponse struct {
	Message string `json:"message"`
}

func NewBulkTransport(cfg config.BulkConfig) EmailTransport {
	return &bulkTransport{
		cfg: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

func (t *bulkTransport) Name() string {
	return "bulk"
}

func (t *bulkTransport) Send(ctx context.Context, req EmailRequest) error {
	if req.To == "" {
		return fmt.Errorf("bulk send: invalid recipient: empty address")
	}

	payload, err := json.Marshal(bulkSendRequest{
		From:    req.From,
		To:      req.To,
		Subject: req.Subject,
		HTML:    req.HTML,
		Text:    req.Text,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal bulk send request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.cfg.BaseURL+"/emails", bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create bulk send request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+t.cfg.APIKey)

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("bulk send request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusAccepted {
		return nil
	}

	// Surface the provider's error text so the classifier can inspect it.
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var provider bulkErrorResponse
	if err := json.Unmarshal(body, &provider); err == nil && provider.Message != "" {
		return fmt.Errorf("bulk send returned status %d: %s", resp.StatusCode, provider.Message)
	}

	return fmt.Errorf("bulk send returned status %d: %s", resp.StatusCode, string(body))
}
