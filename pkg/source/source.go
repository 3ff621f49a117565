package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	// DefaultURL is the public listing page the records are scraped from.
	DefaultURL = "http://useragentstring.com/pages/useragentstring.php"

	// PinnedUserAgent is sent as our own User-Agent header when fetching the
	// listing page; the site serves a degraded page to clients without one.
	PinnedUserAgent = "Mozilla/5.0 (Windows NT 6.1; WOW64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/29.0.1547.62 Safari/537.36"

	defaultTimeout    = 10 * time.Second
	defaultMaxRetries = 1
	retryDelay        = 500 * time.Millisecond
)

// Record is one scraped user-agent listing: which browser it belongs to, the
// agent string itself, and its relative selection weight. Records are
// immutable once extracted.
type Record struct {
	Browser   string  `json:"browser"`
	UserAgent string  `json:"user_agent"`
	Weight    float64 `json:"weight"`
}

// Client retrieves the listing page over HTTP. The zero value is not usable;
// create instances with New.
type Client struct {
	// client is reused across requests for connection pooling
	client     *http.Client
	url        string
	timeout    time.Duration
	maxRetries int
	log        *slog.Logger
}

// New creates a source client with sane defaults: the public listing URL,
// a 10 second request timeout and a single bounded retry.
func New(opts ...Option) *Client {
	c := &Client{
		url:        DefaultURL,
		timeout:    defaultTimeout,
		maxRetries: defaultMaxRetries,
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.client == nil {
		c.client = &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:    10,
				IdleConnTimeout: 90 * time.Second,
			},
		}
	}
	return c
}

// URL returns the listing page address this client fetches from.
func (c *Client) URL() string { return c.url }

// Fetch downloads the listing page and extracts its records. Transport
// failures and 5xx responses are retried within the configured budget;
// 4xx responses and extraction failures are not, since repeating the request
// cannot change the outcome.
func (c *Client) Fetch(ctx context.Context) ([]Record, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			c.log.Debug("retrying source fetch",
				slog.String("url", c.url),
				slog.Int("attempt", attempt+1))
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %w", ErrRequestFailed, ctx.Err())
			case <-time.After(retryDelay):
			}
		}

		body, err := c.get(ctx)
		if err == nil {
			return Extract(bytes.NewReader(body))
		}

		lastErr = err
		if errors.Is(err, errPermanentStatus) {
			return nil, fmt.Errorf("%w: %w", ErrUnexpectedStatus, err)
		}
	}

	return nil, fmt.Errorf("%w after %d attempts: %w", ErrRequestFailed, c.maxRetries+1, lastErr)
}

// errPermanentStatus marks non-retryable HTTP responses inside the retry loop.
var errPermanentStatus = errors.New("permanent status")

// get performs a single GET attempt with a per-attempt timeout layered on the
// caller's context.
func (c *Client) get(ctx context.Context) ([]byte, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", PinnedUserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", c.url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := fmt.Errorf("get %s: unexpected status %d", c.url, resp.StatusCode)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return nil, fmt.Errorf("%w: %w", errPermanentStatus, err)
		}
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.url, err)
	}

	return body, nil
}
