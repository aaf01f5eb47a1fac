package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/telhawk-systems/larkrelay/pkg/linear"
)

// RelayClient talks to a running relay the way Linear does: signed POSTs
// to /webhook, plus the health probe.
type RelayClient struct {
	baseURL string
	secret  string
	client  *http.Client
}

func NewRelayClient(baseURL, secret string) *RelayClient {
	return &RelayClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		secret:  secret,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// SendEvent signs and posts one event. It returns the relay's status word
// ("accepted" or "skipped") on 200 responses.
func (c *RelayClient) SendEvent(evt *linear.Event) (string, error) {
	body, err := json.Marshal(evt)
	if err != nil {
		return "", err
	}
	return c.SendRaw(body)
}

// SendRaw signs and posts a raw payload, useful for replaying captured
// webhook bodies verbatim.
func (c *RelayClient) SendRaw(body []byte) (string, error) {
	req, err := http.NewRequest("POST", c.baseURL+"/webhook", bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}

	req.Header.Set(linear.SignatureHeader, linear.Signature(c.secret, body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("relay returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var parsed struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("unexpected relay response: %s", strings.TrimSpace(string(respBody)))
	}

	return parsed.Status, nil
}

// Health probes GET /health and returns an error unless the relay
// answers 200.
func (c *RelayClient) Health() error {
	resp, err := c.client.Get(c.baseURL + "/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check failed with status %d", resp.StatusCode)
	}

	return nil
}
