// Package notifier delivers transformed messages to the downstream chat
// platform. Delivery is single-attempt: the relay acknowledges inbound
// events whether or not the downstream accepts them, so failures here are
// reported to the caller for logging, never retried.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/telhawk-systems/larkrelay/pkg/lark"
)

// ErrNoWebhookURL is returned when delivery is attempted without a
// configured downstream URL.
var ErrNoWebhookURL = errors.New("lark webhook url not configured")

// Delivery describes one accepted downstream response.
type Delivery struct {
	StatusCode int
	Body       string
}

// Channel defines the interface for notification delivery.
type Channel interface {
	Send(ctx context.Context, msg *lark.Message) (*Delivery, error)
	Type() string
}

// LarkChannel sends card messages to a Lark incoming webhook.
type LarkChannel struct {
	WebhookURL string
	Timeout    time.Duration
	client     *http.Client
}

// NewLarkChannel creates a Lark notification channel. The timeout bounds
// each delivery attempt end to end.
func NewLarkChannel(webhookURL string, timeout time.Duration) *LarkChannel {
	return &LarkChannel{
		WebhookURL: webhookURL,
		Timeout:    timeout,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (l *LarkChannel) Type() string {
	return "lark"
}

// Send posts msg to the webhook URL exactly once. A non-2xx response is
// an error carrying the downstream status and body; a 2xx response is
// returned with its body for observability logging.
func (l *LarkChannel) Send(ctx context.Context, msg *lark.Message) (*Delivery, error) {
	if l.WebhookURL == "" {
		return nil, ErrNoWebhookURL
	}

	jsonData, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal lark payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.WebhookURL, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("create lark request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "larkrelay/1.0")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send lark notification: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read lark response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("lark returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return &Delivery{
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(body)),
	}, nil
}
