package servarr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
)

const defaultTimeout = 30 * time.Second

// Client is a read-only API client for a single Servarr instance.
//
// Every request carries the instance API key in the X-Api-Key header.
// Get classifies failures into the package error types and is used
// during app-kind detection; TryGet swallows failures so a single
// broken endpoint degrades its payload section instead of aborting
// the whole collection cycle.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	verbose    bool
	logger     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the default 30s request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithVerbose enables logging of errors that TryGet swallows.
func WithVerbose(verbose bool) Option {
	return func(c *Client) {
		c.verbose = verbose
	}
}

// NewClient creates a client for one Servarr instance.
func NewClient(baseURL, apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("%w: URL is required", ErrInvalidConfig)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: API key is required", ErrInvalidConfig)
	}

	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// BaseURL returns the instance base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues an authenticated GET against endpoint (a path such as
// "/api/v3/queue?pageSize=20") and decodes the JSON response into out.
// Failures are returned as *ConnectionError, *AuthenticationError, or
// *RequestError.
func (c *Client) Get(ctx context.Context, endpoint string, out any) error {
	requestURL := c.baseURL + endpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug().Str("url", requestURL).Msg("Making Servarr API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &ConnectionError{
			URL:    c.baseURL,
			Reason: transportReason(err),
			Err:    err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return &AuthenticationError{URL: c.baseURL, StatusCode: resp.StatusCode}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &RequestError{
			URL:        requestURL,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", requestURL, err)
	}

	return nil
}

// TryGet is the non-raising variant of Get used for all data fetches
// after detection. On failure it leaves out untouched and reports
// false; authentication failures are always logged, everything else
// only when verbose.
func (c *Client) TryGet(ctx context.Context, endpoint string, out any) bool {
	err := c.Get(ctx, endpoint, out)
	if err == nil {
		return true
	}

	var authErr *AuthenticationError
	if errors.As(err, &authErr) {
		c.logger.Error().Msg(err.Error())
		return false
	}

	if c.verbose {
		c.logger.Error().Msg(err.Error())
	}
	return false
}

// transportReason maps a transport error onto the human-readable
// reason the original tool reported. The distinction is message-only;
// every case is still a ConnectionError.
func transportReason(err error) string {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return "host not found (check URL)"
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		return "connection refused (is the service running?)"
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return "request timed out"
	}

	return err.Error()
}
