// Package books provides a client for the public Google Books volumes API,
// the third-party catalog the BookClub UI searches against. Calls are
// unauthenticated and rate limited; catalog metadata is not owned by this
// system and is never cached here.
package books

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/bookclubapp/bookclub-client/internal/ratelimit"
)

const (
	defaultBaseURL = "https://www.googleapis.com/books/v1"

	// Google allows ~100 requests per 100 seconds for anonymous callers.
	defaultRPS   = 1.0
	defaultBurst = 5

	defaultTimeout = 15 * time.Second

	// rateKey is the single limiter bucket; the API has one host.
	rateKey = "googlebooks"
)

// Client is a rate-limited Google Books API client.
type Client struct {
	http    *http.Client
	limiter *ratelimit.Keyed
	logger  *slog.Logger
	baseURL string
}

// New creates a Google Books client.
func New(logger *slog.Logger) *Client {
	return &Client{
		http:    &http.Client{Timeout: defaultTimeout},
		limiter: ratelimit.New(defaultRPS, defaultBurst),
		logger:  logger,
		baseURL: defaultBaseURL,
	}
}

// WithBaseURL overrides the API base URL. Used by tests and for proxies.
func (c *Client) WithBaseURL(base string) *Client {
	c.baseURL = base
	return c
}

// doRequest executes a GET with rate limiting and returns the raw body.
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx, rateKey); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("books request", "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return body, nil
	case http.StatusNotFound:
		return nil, ErrNotFound
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case http.StatusBadRequest:
		return nil, ErrBadRequest
	default:
		if resp.StatusCode >= 500 {
			return nil, ErrServer
		}
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}
}
