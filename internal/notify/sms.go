package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"cab-dispatch/pkg/utils"
)

// SMSSink posts messages to an HTTP SMS gateway.
type SMSSink struct {
	url    string
	apiKey string
	sender string
	client *http.Client
}

type smsPayload struct {
	To      string `json:"to"`
	From    string `json:"from,omitempty"`
	Message string `json:"message"`
}

func NewSMSSink(cfg utils.SMSConfig) (*SMSSink, error) {
	if cfg.GatewayURL == "" {
		return nil, fmt.Errorf("sms: %w", ErrDisabled)
	}
	return &SMSSink{
		url:    cfg.GatewayURL,
		apiKey: cfg.APIKey,
		sender: cfg.Sender,
		client: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (s *SMSSink) Send(ctx context.Context, msg Message) error {
	if msg.Phone == "" {
		return fmt.Errorf("sms: %w", ErrNoRecipient)
	}

	body, err := json.Marshal(smsPayload{To: msg.Phone, From: s.sender, Message: msg.Text})
	if err != nil {
		return fmt.Errorf("sms: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("sms: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("sms: send: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sms: gateway returned %d", resp.StatusCode)
	}
	return nil
}
