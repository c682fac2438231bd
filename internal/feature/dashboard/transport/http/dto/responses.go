// Package dto defines the JSON response shapes of the dashboard read API.
package dto

// DataResponse is the envelope of every dataset endpoint. AsOf is the
// fetch time of the underlying cache entry (RFC 3339); Stale marks a
// payload served past its TTL because the upstream was unreachable.
type DataResponse struct {
	Data  any    `json:"data"`
	AsOf  string `json:"as_of"`
	Stale bool   `json:"stale"`
}

// ErrorResponse carries a human-readable error and a machine code the UI
// maps to its notices ("check API key", "temporarily unavailable").
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// IndicatorResponse is one row of an economy category table.
type IndicatorResponse struct {
	Group     string   `json:"group"`
	Name      string   `json:"name"`
	Latest    *float64 `json:"latest"`
	Previous  *float64 `json:"previous"`
	Change    *float64 `json:"change"`
	PctChange *float64 `json:"pct_change"`
	Unit      string   `json:"unit"`
	Reference string   `json:"reference,omitempty"`
}

// HistoricalPointResponse is one observation of a series chart.
type HistoricalPointResponse struct {
	Time  string   `json:"time"`
	Value *float64 `json:"value"`
}

// ForecastPointResponse is one forecast overlay marker.
type ForecastPointResponse struct {
	Period string  `json:"period"`
	Date   string  `json:"date"`
	Value  float64 `json:"value"`
}

// MarketQuoteResponse is one row of a markets table.
type MarketQuoteResponse struct {
	Symbol     string   `json:"symbol"`
	Name       string   `json:"name"`
	Last       *float64 `json:"last"`
	Close      *float64 `json:"close"`
	DailyChg   *float64 `json:"daily_change"`
	DailyPct   *float64 `json:"daily_pct"`
	WeeklyPct  *float64 `json:"weekly_pct"`
	MonthlyPct *float64 `json:"monthly_pct"`
	YearlyPct  *float64 `json:"yearly_pct"`
}

// OHLCBarResponse is one candlestick bar.
type OHLCBarResponse struct {
	Time  string   `json:"time"`
	Open  *float64 `json:"open"`
	High  *float64 `json:"high"`
	Low   *float64 `json:"low"`
	Close *float64 `json:"close"`
}

// NewsItemResponse is one news card.
type NewsItemResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Time        string `json:"time"`
	Category    string `json:"category"`
	Importance  int    `json:"importance"`
	URL         string `json:"url,omitempty"`
}

// CalendarEventResponse is one economic calendar row.
type CalendarEventResponse struct {
	Date      string `json:"date"`
	Event     string `json:"event"`
	Actual    string `json:"actual"`
	Consensus string `json:"consensus"`
	Previous  string `json:"previous"`
	Forecast  string `json:"forecast"`
}

// TickerItemResponse is one slot of the ticker bar.
type TickerItemResponse struct {
	Label  string   `json:"label"`
	Value  *float64 `json:"value"`
	Change *float64 `json:"change"`
}

// RefreshStatusResponse reports the scheduler state.
type RefreshStatusResponse struct {
	IntervalSeconds int    `json:"interval_seconds"`
	LastRefresh     string `json:"last_refresh,omitempty"`
}

// SetIntervalRequest selects the auto-refresh interval in seconds; one of
// 0, 60, 300, 900.
type SetIntervalRequest struct {
	Seconds int `json:"seconds"`
}
