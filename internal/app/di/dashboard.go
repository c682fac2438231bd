// Package di provides dependency injection factories for creating
// application components.
package di

import (
	"te_dashboard/internal/feature/dashboard/domain/entity"
	"te_dashboard/internal/feature/dashboard/usecase"
	"te_dashboard/internal/platform/cache"
	"te_dashboard/internal/platform/config"
	"te_dashboard/internal/platform/externalapi/tradingeconomics"
	infrahttp "te_dashboard/internal/platform/http"
)

// NewDataSource creates the Trading Economics client wrapped in the
// tiered cache. mirror may be nil when Redis is not configured.
func NewDataSource(cfg tradingeconomics.Config, mirror *cache.RedisMirror) *cache.CachingSource {
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	client := tradingeconomics.NewClient(cfg, httpClient)
	return cache.NewCachingSource(client, mirror, nil)
}

// TickerEntries maps configured ticker slots to the usecase form,
// dropping entries with an unknown market category.
func TickerEntries(entries []config.TickerEntry) []usecase.TickerEntry {
	out := make([]usecase.TickerEntry, 0, len(entries))
	for _, e := range entries {
		category := entity.MarketCategory(e.Category)
		if !entity.ValidMarketCategory(category) {
			continue
		}
		out = append(out, usecase.TickerEntry{
			Label:        e.Label,
			Category:     category,
			Symbol:       e.Symbol,
			NameContains: e.NameContains,
		})
	}
	return out
}
