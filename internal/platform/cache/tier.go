// Package cache provides the tiered caching layer between the dashboard
// read API and the Trading Economics client.
package cache

import "time"

// Tier is a named time-to-live class applied uniformly to every
// fingerprint of that kind.
type Tier string

const (
	// TierMarket covers the ticker and market quote tables.
	TierMarket Tier = "market"
	// TierIndicator covers the country snapshot, forecasts and calendar.
	TierIndicator Tier = "indicator"
	// TierHistorical covers time series, OHLC history and news.
	TierHistorical Tier = "historical"
)

// TTL returns the freshness window for the tier.
func (t Tier) TTL() time.Duration {
	switch t {
	case TierMarket:
		return time.Minute
	case TierIndicator:
		return 15 * time.Minute
	default:
		return time.Hour
	}
}
