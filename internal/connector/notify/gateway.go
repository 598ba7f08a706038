package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// GatewayMessenger posts messages to an external WhatsApp-style messaging
// gateway over HTTP. The gateway owns session state and retries; we send one
// request and report the outcome.
type GatewayMessenger struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewGatewayMessenger builds a messenger with a bounded request timeout so a
// stalled gateway cannot hold a request open indefinitely.
func NewGatewayMessenger(baseURL, apiKey string, timeout time.Duration) *GatewayMessenger {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &GatewayMessenger{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client:  &http.Client{Timeout: timeout},
	}
}

func (g *GatewayMessenger) SendMessage(ctx context.Context, to string, body string) error {
	payload, err := json.Marshal(map[string]string{
		"to":   to,
		"body": body,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.BaseURL+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if g.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.APIKey)
	}

	resp, err := g.Client.Do(req)
	if err != nil {
		return fmt.Errorf("messaging gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("messaging gateway: unexpected status %d", resp.StatusCode)
	}
	return nil
}
