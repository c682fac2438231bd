package entity

import "time"

// MarketCategory identifies one of the four market quote tables.
type MarketCategory string

const (
	MarketIndex       MarketCategory = "index"
	MarketBond        MarketCategory = "bond"
	MarketCurrency    MarketCategory = "currency"
	MarketCommodities MarketCategory = "commodities"
)

// MarketCategories in sidebar order.
var MarketCategories = []MarketCategory{
	MarketIndex, MarketBond, MarketCurrency, MarketCommodities,
}

// ValidMarketCategory reports whether c names a known market category.
func ValidMarketCategory(c MarketCategory) bool {
	for _, known := range MarketCategories {
		if c == known {
			return true
		}
	}
	return false
}

// MarketQuote is a live quote for one market symbol. Refreshed at the fast
// cache tier. Nil numeric fields mean the upstream did not provide them.
type MarketQuote struct {
	Symbol     string
	Name       string
	Category   MarketCategory
	Last       *float64
	Close      *float64
	DailyChg   *float64 // absolute daily change
	DailyPct   *float64
	WeeklyPct  *float64
	MonthlyPct *float64
	YearlyPct  *float64
}

// OHLCBar is one bar of market price history, used for candlestick charts
// and paginated tables. Sequences are ordered by Time ascending.
type OHLCBar struct {
	Symbol string
	Time   time.Time
	Open   *float64
	High   *float64
	Low    *float64
	Close  *float64
}

// TickerItem is one entry of the curated ticker bar (label, last value,
// daily % change).
type TickerItem struct {
	Label  string
	Value  *float64
	Change *float64
}
