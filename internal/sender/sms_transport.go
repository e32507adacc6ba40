package sender

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/webforgehq/outreach/internal/config"
)

// twilioTransport posts to a Twilio-compatible messaging REST API.
type twilioTransport struct {
	cfg    config.SMSConfig
	client *http.Client
}

type twilioMessageResponse struct {
	SID          string `json:"sid"`
	Status       string `json:"status"`
	Code         int    `json:"code"`
	ErrorMessage string `json:"message"`
}

func NewTwilioTransport(cfg config.SMSConfig) SMSTransport {
	return &twilioTransport{
		cfg: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

func (t *twilioTransport) Name() string {
	return "twilio"
}

func (t *twilioTransport) Send(ctx context.Context, req SMSRequest) (string, error) {
	if req.To == "" {
		return "", fmt.Errorf("sms send: invalid 'To' phone number: empty")
	}

	form := url.Values{}
	form.Set("To", req.To)
	form.Set("From", req.From)
	form.Set("Body", req.Body)

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", strings.TrimRight(t.cfg.BaseURL, "/"), t.cfg.AccountSID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create sms request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.SetBasicAuth(t.cfg.AccountSID, t.cfg.AuthToken)

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("sms request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("failed to read sms response: %w", err)
	}

	var parsed twilioMessageResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode sms response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		// Include the provider code so the classifier can recognize
		// invalid-number rejections.
		return "", fmt.Errorf("sms send returned status %d (code %d): %s", resp.StatusCode, parsed.Code, parsed.ErrorMessage)
	}

	return parsed.SID, nil
}
