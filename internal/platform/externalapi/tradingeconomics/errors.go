package tradingeconomics

import (
	"fmt"
	"time"
)

// ConfigError reports an unusable credential or endpoint configuration.
// It is fatal at startup.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("tradingeconomics config: %s", e.Reason)
}

// AuthError reports an HTTP 401/403 from the upstream. It is never masked
// by stale cache; the UI surfaces it as a "check API key" notice.
type AuthError struct {
	Status int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("tradingeconomics auth rejected (http %d)", e.Status)
}

// RateLimitError reports an HTTP 429. RetryAfter carries the upstream's
// Retry-After hint when present, zero otherwise.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("tradingeconomics rate limited, retry after %s", e.RetryAfter)
	}
	return "tradingeconomics rate limited"
}

// TransportError reports a network fault, timeout, or upstream 5xx.
type TransportError struct {
	Status int // zero when the request never got a response
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("tradingeconomics http %d", e.Status)
	}
	return fmt.Sprintf("tradingeconomics request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError reports a response body that is not the JSON the upstream
// contract promises. Results are never cached.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("tradingeconomics decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
