package tradingeconomics

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// usCountry is the path segment every country-scoped endpoint shares.
var usCountry = url.PathEscape("united states")

// Client executes credentialed requests against the Trading Economics API.
// It holds no state beyond the immutable configuration; caching is layered
// on top by the caller so every endpoint gets the same treatment.
type Client struct {
	cfg    Config
	client *http.Client
}

// NewClient creates a Client with the given configuration and HTTP client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// get performs one credentialed GET against path and decodes the JSON body
// into out. The credential is appended as the c query parameter the way
// the API expects. Failures map onto the package error taxonomy:
// 401/403 AuthError, 429 RateLimitError, 5xx and network faults
// TransportError, bad JSON DecodeError. get never retries; the cache layer
// owns retry and degrade decisions.
func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	if q == nil {
		q = url.Values{}
	}
	q.Set("c", c.cfg.credential())
	q.Set("f", "json")

	u := fmt.Sprintf("%s%s?%s", c.cfg.BaseURL, path, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &TransportError{Err: err}
	}

	res, err := c.client.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	switch {
	case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
		return &AuthError{Status: res.StatusCode}
	case res.StatusCode == http.StatusTooManyRequests:
		return &RateLimitError{RetryAfter: retryAfter(res)}
	case res.StatusCode >= 400:
		return &TransportError{Status: res.StatusCode}
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return &DecodeError{Path: path, Err: err}
	}
	return nil
}

// retryAfter extracts a Retry-After hint in seconds, zero when absent.
func retryAfter(res *http.Response) time.Duration {
	v := res.Header.Get("Retry-After")
	if v == "" {
		return 0
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

// dateFormats covers the timestamp shapes the API serves for country and
// historical data.
var dateFormats = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// parseDate parses an upstream timestamp, returning the zero time when the
// value is empty or unparseable.
func parseDate(s string) time.Time {
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// ohlcDateFormats covers the day-first shapes of /markets/historical.
var ohlcDateFormats = []string{
	"02/01/2006",
	"2/1/2006",
	"02/01/2006 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseOHLCDate parses a market-history date, day first.
func parseOHLCDate(s string) time.Time {
	for _, layout := range ohlcDateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
