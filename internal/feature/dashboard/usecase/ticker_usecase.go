package usecase

import (
	"context"
	"strings"

	"te_dashboard/internal/feature/dashboard/domain/entity"
)

// TickerEntry configures one slot of the curated ticker bar. A slot is
// resolved by exact symbol match first, then by case-insensitive name
// substring when Symbol is empty or absent from the quotes.
type TickerEntry struct {
	Label        string
	Category     entity.MarketCategory
	Symbol       string
	NameContains string
}

// DefaultTickerEntries is the curated ticker bar: key US indices, the 10Y
// yield, the dollar index and WTI crude.
var DefaultTickerEntries = []TickerEntry{
	{Label: "S&P 500", Category: entity.MarketIndex, Symbol: "US500"},
	{Label: "Dow", Category: entity.MarketIndex, Symbol: "US30"},
	{Label: "Nasdaq", Category: entity.MarketIndex, Symbol: "US100"},
	{Label: "VIX", Category: entity.MarketIndex, Symbol: "USVIX"},
	{Label: "10Y Yield", Category: entity.MarketBond, NameContains: "US 10Y"},
	{Label: "DXY", Category: entity.MarketCurrency, Symbol: "DXY", NameContains: "Dollar Index"},
	{Label: "WTI", Category: entity.MarketCommodities, NameContains: "Crude Oil"},
}

// GetTicker resolves the curated ticker bar from the market quote tables.
// A category whose quotes cannot be fetched is skipped rather than failing
// the whole bar; the bar only errors when no category is reachable at all.
// Freshness reports the oldest contributing dataset, stale if any was.
func (u *DashboardUsecase) GetTicker(ctx context.Context) ([]entity.TickerItem, entity.Freshness, error) {
	quotes := make(map[entity.MarketCategory][]entity.MarketQuote)
	var fr entity.Freshness
	var lastErr error
	fetched := 0

	for _, category := range tickerCategories(u.tickers) {
		qs, f, err := u.source.Markets(ctx, category)
		if err != nil {
			lastErr = err
			continue
		}
		quotes[category] = qs
		fetched++
		if fr.FetchedAt.IsZero() || f.FetchedAt.Before(fr.FetchedAt) {
			fr.FetchedAt = f.FetchedAt
		}
		fr.Stale = fr.Stale || f.Stale
	}
	if fetched == 0 && lastErr != nil {
		return nil, entity.Freshness{}, lastErr
	}

	items := make([]entity.TickerItem, 0, len(u.tickers))
	for _, e := range u.tickers {
		q, ok := resolveQuote(quotes[e.Category], e)
		if !ok {
			continue
		}
		items = append(items, entity.TickerItem{
			Label:  e.Label,
			Value:  q.Last,
			Change: q.DailyPct,
		})
	}
	return items, fr, nil
}

// tickerCategories returns the distinct categories of the entries, in
// first-appearance order.
func tickerCategories(entries []TickerEntry) []entity.MarketCategory {
	seen := make(map[entity.MarketCategory]struct{}, 4)
	var out []entity.MarketCategory
	for _, e := range entries {
		if _, ok := seen[e.Category]; ok {
			continue
		}
		seen[e.Category] = struct{}{}
		out = append(out, e.Category)
	}
	return out
}

func resolveQuote(quotes []entity.MarketQuote, e TickerEntry) (entity.MarketQuote, bool) {
	if e.Symbol != "" {
		for _, q := range quotes {
			if q.Symbol == e.Symbol {
				return q, true
			}
		}
	}
	if e.NameContains != "" {
		needle := strings.ToLower(e.NameContains)
		for _, q := range quotes {
			if strings.Contains(strings.ToLower(q.Name), needle) {
				return q, true
			}
		}
	}
	return entity.MarketQuote{}, false
}
