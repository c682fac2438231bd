// Package tradingeconomics provides a client for the Trading Economics
// REST API: US country snapshot, historical series, forecasts, market
// quotes, OHLC history, news and the economic calendar.
package tradingeconomics

import (
	"os"
	"strings"
	"time"
)

// DefaultBaseURL is the production API host.
const DefaultBaseURL = "https://api.tradingeconomics.com"

// Config holds configuration for the Trading Economics API client.
type Config struct {
	Key     string        // credential key half
	Secret  string        // credential secret half
	BaseURL string        // API host, overridable for tests
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig reads the credential from TE_API_KEY ("key:secret") and the
// optional TE_BASE_URL override. The credential is loaded once at startup
// and never mutated; a missing or malformed value is a fatal ConfigError.
func LoadConfig() (Config, error) {
	raw := os.Getenv("TE_API_KEY")
	if raw == "" {
		return Config{}, &ConfigError{Reason: "TE_API_KEY is not set (expected key:secret)"}
	}

	parts := strings.Split(raw, ":")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Config{}, &ConfigError{Reason: "TE_API_KEY must contain exactly one ':' between key and secret"}
	}

	base := os.Getenv("TE_BASE_URL")
	if base == "" {
		base = DefaultBaseURL
	}

	return Config{
		Key:     parts[0],
		Secret:  parts[1],
		BaseURL: strings.TrimRight(base, "/"),
		Timeout: 10 * time.Second,
	}, nil
}

// credential returns the pair in the query-parameter form the API expects.
func (c Config) credential() string {
	return c.Key + ":" + c.Secret
}
