// Package gateway is the single chokepoint for calls to the BookClub backend.
// It owns the transport mechanics — request building, response parsing, error
// normalization — so auth headers, base URL, or retry policy have exactly one
// place to change. It performs no caching and no retries.
//
// The backend speaks RPC-style JSON over HTTP: one POST endpoint per verb,
// a flat object of named parameters in, either the payload or an object with
// an "error" field out.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bookclubapp/bookclub-client/internal/errors"
	"github.com/bookclubapp/bookclub-client/internal/id"
	"github.com/bookclubapp/bookclub-client/internal/ratelimit"
)

const (
	defaultTimeout = 30 * time.Second

	// Outbound rate limit per endpoint family, generous enough for
	// interactive use while keeping fan-out loops polite.
	defaultRPS   = 20.0
	defaultBurst = 40

	// errSnippetLen bounds how much of an unparseable body ends up in
	// error messages.
	errSnippetLen = 100
)

// Config holds gateway settings.
type Config struct {
	// BaseURL of the BookClub backend, e.g. "http://localhost:8000".
	BaseURL string
	// Timeout for each request. Zero means defaultTimeout.
	Timeout time.Duration
	// RPS and Burst bound outbound calls per endpoint family.
	// Zero values use the defaults.
	RPS   float64
	Burst int
}

// Client issues RPC calls against the BookClub backend.
type Client struct {
	http    *http.Client
	baseURL string
	limiter *ratelimit.Keyed
	logger  *slog.Logger
}

// New creates a gateway client.
func New(cfg Config, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	rps := cfg.RPS
	if rps == 0 {
		rps = defaultRPS
	}
	burst := cfg.Burst
	if burst == 0 {
		burst = defaultBurst
	}

	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		limiter: ratelimit.New(rps, burst),
		logger:  logger,
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// call executes one RPC round trip. params is marshaled as the JSON body
// (nil sends an empty object); on success the body is decoded into out
// unless out is nil.
func (c *Client) call(ctx context.Context, endpoint string, params, out any) error {
	if err := c.limiter.Wait(ctx, family(endpoint)); err != nil {
		return errors.Wrapf(err, errors.CodeUnavailable, "rate limit wait for %s", endpoint)
	}

	if params == nil {
		params = struct{}{}
	}
	body, err := json.Marshal(params)
	if err != nil {
		return errors.Wrapf(err, errors.CodeValidation, "encode request for %s", endpoint)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrapf(err, errors.CodeValidation, "build request for %s", endpoint)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	reqID := id.Request()
	c.logger.Debug("api request",
		"request_id", reqID,
		"endpoint", endpoint,
	)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("api request failed",
			"request_id", reqID,
			"endpoint", endpoint,
			"error", err,
		)
		return errors.Wrapf(err, errors.CodeUnavailable, "request to %s failed", endpoint)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, errors.CodeUnavailable, "read response from %s", endpoint)
	}

	c.logger.Debug("api response",
		"request_id", reqID,
		"endpoint", endpoint,
		"status", resp.StatusCode,
		"bytes", len(raw),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.statusError(endpoint, resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(err, errors.CodeBadResponse,
			"invalid JSON from %s: %s", endpoint, snippet(raw))
	}
	return nil
}

// statusError turns a failed response into a domain error, preferring the
// backend-supplied error message when the body carries one.
func (c *Client) statusError(endpoint string, status int, raw []byte) error {
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error != "" {
		return &errors.Error{Code: errors.FromStatus(status), Message: envelope.Error}
	}
	return &errors.Error{
		Code:    errors.FromStatus(status),
		Message: fmt.Sprintf("server error (%d) from %s: %s", status, endpoint, snippet(raw)),
	}
}

// family extracts the rate-limit key from an endpoint path:
// "/api/Shelving/addBook" -> "Shelving".
func family(endpoint string) string {
	parts := strings.SplitN(strings.TrimPrefix(endpoint, "/"), "/", 3)
	if len(parts) >= 2 {
		return parts[1]
	}
	return endpoint
}

// snippet truncates a raw body for inclusion in error messages.
func snippet(raw []byte) string {
	s := string(raw)
	if len(s) > errSnippetLen {
		return s[:errSnippetLen] + "..."
	}
	return s
}
