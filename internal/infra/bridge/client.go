// Package bridge talks to the external fall-detection service.
package bridge

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"elderguard/config"
	"elderguard/internal/domain/service"
	"elderguard/internal/errors"
)

const (
	predictPath    = "/predict"
	defaultTimeout = 2 * time.Second
)

type predictResponse struct {
	FallDetected *bool `json:"fall_detected"`
}

// Client calls GET {baseURL}/predict.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates the bridge client from configuration.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	timeout := cfg.Bridge.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.Bridge.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// NewFallDetector exposes the client as a service.FallDetector for injection.
func NewFallDetector(c *Client) service.FallDetector {
	return c
}

// Predict implements service.FallDetector. Every transport, status or decoding
// problem is returned as an error.
func (c *Client) Predict(ctx context.Context) (bool, error) {
	if c.baseURL == "" {
		return false, errors.New("bridge base URL is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+predictPath, nil)
	if err != nil {
		return false, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, errors.Wrap(err, "bridge request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, errors.Errorf("bridge returned status %d", resp.StatusCode)
	}

	var body predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, errors.Wrap(err, "decode bridge response")
	}
	if body.FallDetected == nil {
		return false, errors.New("bridge response missing fall_detected")
	}

	return *body.FallDetected, nil
}

// BaseURL returns the configured bridge endpoint.
func (c *Client) BaseURL() string {
	return c.baseURL
}
